// package model はドメインモデルを定義します
package model

import "io/fs"

// EntryKind はディレクトリ項目の種別を表します
type EntryKind int

const (
	// KindFile は通常ファイルを表します
	KindFile EntryKind = iota
	// KindDirectory はディレクトリを表します
	KindDirectory
	// KindOther はシンボリックリンクやデバイスなど、その他の種別を表します
	KindOther
)

// String は種別の表示名を返します
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "other"
	}
}

// KindFromMode は fs.FileMode から種別を導出します。
// シンボリックリンクは辿らず KindOther に分類されます。
func KindFromMode(mode fs.FileMode) EntryKind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDirectory
	default:
		return KindOther
	}
}

// DirectoryEntry はディレクトリ直下の1項目を表します
type DirectoryEntry struct {
	// Name は項目名を表します
	Name string
	// Kind は項目の種別を表します
	Kind EntryKind
	// Size はファイルサイズ（バイト）を表します。Kind が KindFile の場合のみ有効です
	Size int64
	// SizeErr はサイズ取得時のエラーを保持します
	SizeErr error
}
