package fonts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"FontScope/internal/domain/model"
	"FontScope/internal/infrastructure/filesystem"
	"FontScope/internal/infrastructure/logging"
)

// Copier は字体ファイルを別のディレクトリへコピーします
type Copier struct {
	lister filesystem.DirectoryLister
	logger logging.Logger
	// overwrite はコピー先に同名ファイルがある場合に上書きするかどうかを示します
	overwrite bool
}

// NewCopier は新しい Copier インスタンスを作成します
func NewCopier(lister filesystem.DirectoryLister, logger logging.Logger, overwrite bool) *Copier {
	return &Copier{
		lister:    lister,
		logger:    logger,
		overwrite: overwrite,
	}
}

// CopyFonts は source 直下の字体ファイルを target へコピーします。
// 個々のファイルのコピー失敗は Details に記録し、処理は継続します。
func (c *Copier) CopyFonts(source, target string) model.CopyResult {
	start := time.Now()
	result := model.CopyResult{
		SourceDir: source,
		TargetDir: target,
	}

	c.logger.Log(logging.LevelInfo, fmt.Sprintf("字体ファイルのコピーを開始: %s -> %s", source, target), nil)

	if err := c.lister.ValidateDirectoryPath(source); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("コピー元ディレクトリが無効です: %v", err))
		return result
	}

	if err := os.MkdirAll(target, 0755); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("コピー先ディレクトリを作成できません: %v", err))
		return result
	}

	entries, err := c.lister.List(source)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("コピー元ディレクトリを読み取れません: %v", err))
		return result
	}

	for _, entry := range entries {
		if entry.Kind != model.KindFile || !IsFontFile(entry.Name) {
			continue
		}
		result.TotalFiles++

		detail := c.copySingleFile(source, target, entry)
		if detail.Success {
			result.SuccessfulCopies++
			result.TotalSize += detail.FileSize
		} else {
			result.FailedCopies++
		}
		result.Details = append(result.Details, detail)
	}

	result.DurationMS = time.Since(start).Milliseconds()

	c.logger.Log(logging.LevelInfo,
		fmt.Sprintf("コピー完了: 成功 %d, 失敗 %d", result.SuccessfulCopies, result.FailedCopies), nil)

	return result
}

// CopyAndFormat はコピーを実行し、表示用の文字列として結果を返します
func (c *Copier) CopyAndFormat(source, target string) string {
	result := c.CopyFonts(source, target)
	return FormatCopyResult(result)
}

// copySingleFile は1ファイルをコピーし、結果の詳細を返します
func (c *Copier) copySingleFile(source, target string, entry model.DirectoryEntry) model.CopyDetail {
	detail := model.CopyDetail{
		FileName: entry.Name,
		FileSize: entry.Size,
	}

	targetPath := filepath.Join(target, entry.Name)
	if !c.overwrite {
		if _, err := os.Stat(targetPath); err == nil {
			detail.Error = "ファイルが既に存在します"
			return detail
		}
	}

	if err := copyFile(filepath.Join(source, entry.Name), targetPath); err != nil {
		c.logger.Log(logging.LevelError, fmt.Sprintf("コピー失敗: %s", entry.Name), err)
		detail.Error = err.Error()
		return detail
	}

	// 列挙時にサイズを取得できなかったエントリもあるため、コピー後の実ファイルを測る
	if info, err := os.Stat(targetPath); err == nil {
		detail.FileSize = info.Size()
	}

	c.logger.Log(logging.LevelInfo, fmt.Sprintf("コピー成功: %s", entry.Name), nil)
	detail.Success = true
	return detail
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		// 書き込み途中の不完全なファイルを残さない
		os.Remove(dst)
		return err
	}

	return out.Close()
}
