// Package ui はユーザーインターフェース機能を提供します
package ui

import (
	"errors"
	"fmt"

	"github.com/sqweek/dialog"

	"FontScope/internal/infrastructure/filesystem"
	"FontScope/internal/infrastructure/logging"
)

// DirectorySelector はディレクトリ選択機能を提供します
type DirectorySelector struct {
	validator filesystem.DirectoryValidator
	logger    logging.Logger
}

// NewDirectorySelector は新しい DirectorySelector インスタンスを作成します
func NewDirectorySelector(validator filesystem.DirectoryValidator, logger logging.Logger) *DirectorySelector {
	return &DirectorySelector{
		validator: validator,
		logger:    logger,
	}
}

// SelectDirectory はダイアログを表示してディレクトリを選択します。
// 選択されたパスは検証され、無効な場合は種別に応じたエラーを返します。
func (d *DirectorySelector) SelectDirectory(title string) (string, error) {
	selectedDir, err := dialog.Directory().Title(title).Browse()
	if err != nil {
		d.logger.Log(logging.LevelWarn, "ディレクトリ選択がキャンセルまたは失敗", err)
		return "", fmt.Errorf("ディレクトリの選択がキャンセルまたはエラーになりました: %w", err)
	}

	if err := d.validate(selectedDir); err != nil {
		return "", err
	}

	d.logger.Log(logging.LevelInfo, fmt.Sprintf("ディレクトリを選択: %s", selectedDir), nil)
	return selectedDir, nil
}

// validate は選択されたパスを検証し、エラー種別ごとの文言を付与します
func (d *DirectorySelector) validate(path string) error {
	err := d.validator.ValidateDirectoryPath(path)
	if err == nil {
		return nil
	}

	d.logger.Log(logging.LevelError, fmt.Sprintf("選択されたパス '%s' の検証に失敗", path), err)

	var notFound *filesystem.NotFoundError
	if errors.As(err, &notFound) {
		return fmt.Errorf("選択されたディレクトリ '%s' は存在しません: %w", path, err)
	}

	var notDir *filesystem.NotDirectoryError
	if errors.As(err, &notDir) {
		return fmt.Errorf("選択されたパス '%s' はディレクトリではありません: %w", path, err)
	}

	return fmt.Errorf("無効なディレクトリが選択されました: %w", err)
}
