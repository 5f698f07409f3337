package fonts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"

	"FontScope/internal/domain/model"
	"FontScope/internal/infrastructure/filesystem"
	"FontScope/internal/infrastructure/logging"
)

// Parser はディレクトリ直下の字体ファイルを解析します
type Parser struct {
	lister filesystem.DirectoryLister
	logger logging.Logger
}

// NewParser は新しい Parser インスタンスを作成します
func NewParser(lister filesystem.DirectoryLister, logger logging.Logger) *Parser {
	return &Parser{
		lister: lister,
		logger: logger,
	}
}

// ParseDirectory は dir 直下の字体ファイルをすべて解析します。
// 個々のファイルの解析失敗は Errors に記録し、処理は継続します。
func (p *Parser) ParseDirectory(dir string) model.FontParseResult {
	var result model.FontParseResult

	p.logger.Log(logging.LevelInfo, fmt.Sprintf("字体ディレクトリの解析を開始: %s", dir), nil)

	entries, err := p.lister.List(dir)
	if err != nil {
		p.logger.Log(logging.LevelError, fmt.Sprintf("字体ディレクトリ '%s' を読み取れません", dir), err)
		result.Errors = append(result.Errors, fmt.Sprintf("ディレクトリを読み取れません: %v", err))
		return result
	}

	for _, entry := range entries {
		if entry.Kind != model.KindFile || !IsParseableFontFile(entry.Name) {
			continue
		}
		result.TotalFiles++

		path := filepath.Join(dir, entry.Name)
		mapping, err := parseFontFile(path)
		if err != nil {
			msg := fmt.Sprintf("ファイル %s の解析に失敗: %v", path, err)
			p.logger.Log(logging.LevelWarn, msg, nil)
			result.Errors = append(result.Errors, msg)
			result.FailedParses++
			continue
		}

		result.Mappings = append(result.Mappings, mapping)
		result.SuccessfulParses++
	}

	p.logger.Log(logging.LevelInfo,
		fmt.Sprintf("字体解析完了: 成功 %d, 失敗 %d", result.SuccessfulParses, result.FailedParses), nil)

	return result
}

// ParseAndFormat は dir を解析し、表示用の文字列として結果を返します
func (p *Parser) ParseAndFormat(dir string) string {
	result := p.ParseDirectory(dir)
	return FormatParseResult(result)
}

// parseFontFile は単一の字体ファイルから名前情報を抽出します。
// TTC/OTC コレクションの場合は先頭の字体のみを対象とします。
func parseFontFile(path string) (model.FontMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.FontMapping{}, fmt.Errorf("ファイルの読み込みに失敗: %w", err)
	}

	collection, err := sfnt.ParseCollection(data)
	if err != nil {
		return model.FontMapping{}, fmt.Errorf("字体データの解析に失敗: %w", err)
	}

	face, err := collection.Font(0)
	if err != nil {
		return model.FontMapping{}, fmt.Errorf("字体データの取得に失敗: %w", err)
	}

	var buf sfnt.Buffer

	fontName, err := extractFontName(face, &buf)
	if err != nil {
		return model.FontMapping{}, err
	}

	style := lookupName(face, &buf, sfnt.NameIDSubfamily)

	return model.FontMapping{
		FilePath:   path,
		FontName:   fontName,
		FamilyName: lookupName(face, &buf, sfnt.NameIDFamily),
		StyleName:  style,
		IsBold:     containsStyle(style, "bold"),
		IsItalic:   containsStyle(style, "italic") || containsStyle(style, "oblique"),
	}, nil
}

// extractFontName は完全名、PostScript 名、族名の順で字体名を探します
func extractFontName(face *sfnt.Font, buf *sfnt.Buffer) (string, error) {
	for _, id := range []sfnt.NameID{sfnt.NameIDFull, sfnt.NameIDPostScript, sfnt.NameIDFamily} {
		if name := lookupName(face, buf, id); name != "" {
			return name, nil
		}
	}
	return "", errors.New("字体名を抽出できません")
}

// lookupName は指定 ID の名前を返します。未定義の場合は空文字列を返します。
func lookupName(face *sfnt.Font, buf *sfnt.Buffer, id sfnt.NameID) string {
	name, err := face.Name(buf, id)
	if err != nil {
		return ""
	}
	return name
}

func containsStyle(style, keyword string) bool {
	return strings.Contains(strings.ToLower(style), keyword)
}
