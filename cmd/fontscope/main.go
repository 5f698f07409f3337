// Package main はデモ用ホストアプリケーションのエントリーポイントを提供します
package main

import (
	"fmt"
	"os"

	"FontScope/internal/gui"
	"FontScope/internal/infrastructure/filesystem"
	"FontScope/internal/infrastructure/logging"
	"FontScope/internal/interface/ui"
	"FontScope/internal/usecase/fonts"
	"FontScope/internal/usecase/report"
)

func main() {
	// ロガーの初期化
	logger := logging.NewJSONLogger(os.Stderr)

	// ディレクトリリスターの初期化
	lister := filesystem.NewLister(logger)

	// レポートジェネレーターと字体パーサーの初期化
	generator := report.NewGenerator(lister, logger)
	parser := fonts.NewParser(lister, logger)

	// フォルダ選択処理の実行
	selector := ui.NewDirectorySelector(lister, logger)
	dir, err := selector.SelectDirectory("調査対象フォルダを選択してください")
	if err != nil {
		logger.Log(logging.LevelError, "フォルダ選択に失敗", err)
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}
	logger.Log(logging.LevelInfo, fmt.Sprintf("選択されたフォルダ: %s", dir), nil)

	// ディレクトリ一覧と字体情報をまとめて表示する
	listing := generator.Generate(dir)
	fontInfo := parser.ParseAndFormat(dir)
	logger.Log(logging.LevelInfo, "レポートを生成しました", nil)

	viewer := gui.NewReportViewer("FontScope")
	viewer.Show(listing + "\n\n" + fontInfo)

	logger.Log(logging.LevelInfo, "処理が完了しました", nil)
}
