// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"fmt"
	"os"

	"FontScope/internal/domain/model"
	"FontScope/internal/infrastructure/logging"
)

// NotFoundError は指定されたパスが存在しないことを表すエラーです
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("パスが存在しません: %s", e.Path)
}

// NotDirectoryError は指定されたパスがディレクトリでないことを表すエラーです
type NotDirectoryError struct {
	Path string
}

func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("ディレクトリではありません: %s", e.Path)
}

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// DirectoryLister はディレクトリ直下の項目を列挙するインターフェースです
type DirectoryLister interface {
	DirectoryValidator
	List(dir string) ([]model.DirectoryEntry, error)
}

// Lister はディレクトリ直下の項目を列挙する構造体です
type Lister struct {
	logger logging.Logger
}

// NewLister は新しい Lister インスタンスを作成します
func NewLister(logger logging.Logger) *Lister {
	return &Lister{logger: logger}
}

// ValidateDirectoryPath はパスが存在するディレクトリであることを確認します
func (l *Lister) ValidateDirectoryPath(path string) error {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return &NotFoundError{Path: path}
	}
	if err != nil {
		return fmt.Errorf("パスの確認に失敗しました: %w", err)
	}

	if !fileInfo.IsDir() {
		return &NotDirectoryError{Path: path}
	}

	return nil
}

// List はディレクトリ直下の項目を列挙します。再帰はしません。
// 個々のファイルのサイズ取得に失敗しても列挙全体は継続し、
// 該当エントリに SizeErr を設定します。
func (l *Lister) List(dir string) ([]model.DirectoryEntry, error) {
	if err := l.ValidateDirectoryPath(dir); err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ディレクトリの読み取りに失敗しました: %w", err)
	}

	entries := make([]model.DirectoryEntry, 0, len(dirEntries))
	for _, d := range dirEntries {
		entry := model.DirectoryEntry{
			Name: d.Name(),
			Kind: model.KindFromMode(d.Type()),
		}

		if entry.Kind == model.KindFile {
			info, err := d.Info()
			if err != nil {
				l.logger.Log(logging.LevelWarn, fmt.Sprintf("ファイル '%s' のサイズ取得に失敗", d.Name()), err)
				entry.SizeErr = err
			} else {
				entry.Size = info.Size()
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
