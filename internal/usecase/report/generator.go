// Package report はディレクトリ一覧レポートの生成機能を提供します
package report

import (
	"errors"
	"fmt"
	"strings"

	"FontScope/internal/domain/model"
	"FontScope/internal/infrastructure/filesystem"
	"FontScope/internal/infrastructure/logging"
)

// レポートで使用する固定文言です
const (
	DirectoryMarker   = "[ディレクトリ]"
	OtherTypeMarker   = "[その他の種別]"
	UnreadableSizeMsg = "サイズを読み取れません"
)

// DirectoryLister はディレクトリ直下の項目を列挙するインターフェースです
type DirectoryLister interface {
	List(dir string) ([]model.DirectoryEntry, error)
}

// Generator はディレクトリ一覧レポートを生成します
type Generator struct {
	lister DirectoryLister
	logger logging.Logger
}

// NewGenerator は新しい Generator インスタンスを作成します
func NewGenerator(lister DirectoryLister, logger logging.Logger) *Generator {
	return &Generator{
		lister: lister,
		logger: logger,
	}
}

// Generate は指定ディレクトリ直下の項目一覧を整形した文字列として返します。
// エラーもすべて文字列として返し、この境界の外へ伝播させません。
func (g *Generator) Generate(dir string) string {
	entries, err := g.lister.List(dir)
	if err != nil {
		return g.renderError(dir, err)
	}

	if len(entries) == 0 {
		return fmt.Sprintf("ディレクトリ '%s' には項目が見つかりませんでした", dir)
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, formatEntry(entry))
	}

	// ヘッダの項目数は常に行数と一致する
	var b strings.Builder
	fmt.Fprintf(&b, "ディレクトリ: %s\n", dir)
	fmt.Fprintf(&b, "%d 個の項目が見つかりました:\n\n", len(lines))
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// formatEntry は1項目を「名前 -> 詳細」の形式に整形します
func formatEntry(entry model.DirectoryEntry) string {
	switch entry.Kind {
	case model.KindFile:
		if entry.SizeErr != nil {
			return fmt.Sprintf("%s -> %s", entry.Name, UnreadableSizeMsg)
		}
		return fmt.Sprintf("%s -> %d Bytes", entry.Name, entry.Size)
	case model.KindDirectory:
		return fmt.Sprintf("%s -> %s", entry.Name, DirectoryMarker)
	default:
		return fmt.Sprintf("%s -> %s", entry.Name, OtherTypeMarker)
	}
}

// renderError は列挙時のエラーを利用者向けの文言に変換します
func (g *Generator) renderError(dir string, err error) string {
	g.logger.Log(logging.LevelError, fmt.Sprintf("ディレクトリ '%s' のレポート生成に失敗", dir), err)

	var notFound *filesystem.NotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("エラー: ディレクトリ '%s' が存在しません", dir)
	}

	var notDir *filesystem.NotDirectoryError
	if errors.As(err, &notDir) {
		return fmt.Sprintf("エラー: '%s' はディレクトリではありません", dir)
	}

	return fmt.Sprintf("ディレクトリへのアクセス中にエラーが発生しました: %v", err)
}
