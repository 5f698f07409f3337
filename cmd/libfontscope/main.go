// Package main は c-shared ライブラリとして公開するネイティブ連携境界を提供します。
//
// ビルド例:
//
//	go build -buildmode=c-shared -o libfontscope.so ./cmd/libfontscope
//
// すべてのエラーはレポート文字列の内容として返されるため、
// この境界を越えて伝播する失敗経路はありません。
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"os"
	"sync"
	"unsafe"

	"FontScope/internal/infrastructure/filesystem"
	"FontScope/internal/infrastructure/logging"
	"FontScope/internal/usecase/fonts"
	"FontScope/internal/usecase/report"
)

var (
	loggerOnce   sync.Once
	bridgeLogger logging.Logger
)

// sharedLogger はホスト側の標準出力を汚さないよう、
// 標準エラー出力へ書き込むロガーを一度だけ初期化して返します
func sharedLogger() logging.Logger {
	loggerOnce.Do(func() {
		bridgeLogger = logging.NewJSONLogger(os.Stderr)
	})
	return bridgeLogger
}

// LoadDirectoryInfo は指定ディレクトリ直下の項目一覧レポートを返します。
// 引数の文字列は呼び出し側の所有のままコピーされ、戻り値の所有権は
// 呼び出し側へ移ります。戻り値は FreeResult で解放してください。
//
//export LoadDirectoryInfo
func LoadDirectoryInfo(directory *C.char) *C.char {
	logger := sharedLogger()
	generator := report.NewGenerator(filesystem.NewLister(logger), logger)
	return C.CString(generator.Generate(C.GoString(directory)))
}

// ParseFontsDirectory は指定ディレクトリ直下の字体ファイルを解析し、
// 字体名マッピングのレポートを返します
//
//export ParseFontsDirectory
func ParseFontsDirectory(directory *C.char) *C.char {
	logger := sharedLogger()
	parser := fonts.NewParser(filesystem.NewLister(logger), logger)
	return C.CString(parser.ParseAndFormat(C.GoString(directory)))
}

// CopyFontFiles はコピー元ディレクトリ直下の字体ファイルをコピー先へ
// コピーし、結果のレポートを返します
//
//export CopyFontFiles
func CopyFontFiles(sourceDirectory, targetDirectory *C.char, overwriteExisting C.int) *C.char {
	logger := sharedLogger()
	copier := fonts.NewCopier(filesystem.NewLister(logger), logger, overwriteExisting != 0)
	return C.CString(copier.CopyAndFormat(C.GoString(sourceDirectory), C.GoString(targetDirectory)))
}

// FreeResult は上記の関数が返した文字列を解放します
//
//export FreeResult
func FreeResult(result *C.char) {
	C.free(unsafe.Pointer(result))
}

func main() {}
