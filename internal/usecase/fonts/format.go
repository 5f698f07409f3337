package fonts

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"FontScope/internal/domain/model"
)

const sectionSeparator = "------------------------------"

// FormatParseResult は字体解析結果を表示用の文字列に整形します
func FormatParseResult(result model.FontParseResult) string {
	var b strings.Builder

	b.WriteString("字体解析結果\n")
	b.WriteString("==============================\n")
	fmt.Fprintf(&b, "総ファイル数: %d\n", result.TotalFiles)
	fmt.Fprintf(&b, "解析成功: %d\n", result.SuccessfulParses)
	fmt.Fprintf(&b, "解析失敗: %d\n\n", result.FailedParses)

	if len(result.Mappings) > 0 {
		b.WriteString("字体マッピング情報:\n")
		b.WriteString(sectionSeparator + "\n")

		for i, mapping := range result.Mappings {
			fmt.Fprintf(&b, "%d. %s\n", i+1, mapping.FontName)

			if mapping.FamilyName != "" {
				fmt.Fprintf(&b, "   族名: %s\n", mapping.FamilyName)
			}
			if mapping.StyleName != "" {
				fmt.Fprintf(&b, "   様式: %s\n", mapping.StyleName)
			}

			var attributes []string
			if mapping.IsBold {
				attributes = append(attributes, "太字")
			}
			if mapping.IsItalic {
				attributes = append(attributes, "斜体")
			}
			if len(attributes) > 0 {
				fmt.Fprintf(&b, "   属性: %s\n", strings.Join(attributes, ", "))
			}

			// パス全体ではなくファイル名のみを表示する
			fmt.Fprintf(&b, "   ファイル: %s\n\n", filepath.Base(mapping.FilePath))
		}
	}

	if len(result.Errors) > 0 {
		b.WriteString("解析エラー:\n")
		b.WriteString(sectionSeparator + "\n")
		for _, msg := range result.Errors {
			fmt.Fprintf(&b, "- %s\n", msg)
		}
		b.WriteString("\n")
	}

	if result.TotalFiles == 0 {
		b.WriteString("字体ファイルが見つかりませんでした\n")
	}

	return b.String()
}

// FormatCopyResult は字体コピー結果を表示用の文字列に整形します
func FormatCopyResult(result model.CopyResult) string {
	var b strings.Builder

	b.WriteString("字体ファイルコピー\n")
	fmt.Fprintf(&b, "コピー元: %s\n", result.SourceDir)
	fmt.Fprintf(&b, "コピー先: %s\n", result.TargetDir)
	fmt.Fprintf(&b, "所要時間: %d ms\n\n", result.DurationMS)

	b.WriteString("統計:\n")
	fmt.Fprintf(&b, "- 発見: %d 個の字体ファイル\n", result.TotalFiles)
	fmt.Fprintf(&b, "- 成功: %d 個\n", result.SuccessfulCopies)
	fmt.Fprintf(&b, "- 失敗: %d 個\n", result.FailedCopies)
	fmt.Fprintf(&b, "- 合計サイズ: %s\n\n", humanize.Bytes(uint64(result.TotalSize)))

	if len(result.Details) > 0 {
		b.WriteString("詳細:\n")
		for _, detail := range result.Details {
			mark := "[OK]"
			if !detail.Success {
				mark = "[NG]"
			}
			fmt.Fprintf(&b, "%s %s (%s)", mark, detail.FileName, humanize.Bytes(uint64(detail.FileSize)))
			if detail.Error != "" {
				fmt.Fprintf(&b, " - %s", detail.Error)
			}
			b.WriteString("\n")
		}
	}

	if len(result.Errors) > 0 {
		b.WriteString("\nエラー:\n")
		for _, msg := range result.Errors {
			fmt.Fprintf(&b, "- %s\n", msg)
		}
	}

	return b.String()
}
