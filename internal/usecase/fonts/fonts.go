// Package fonts は字体ファイルの解析とコピー機能を提供します
package fonts

import (
	"path/filepath"
	"strings"
)

// copyExtensions はコピー対象とみなす拡張子です（Webフォント形式を含む）
var copyExtensions = map[string]bool{
	".ttf":   true,
	".otf":   true,
	".woff":  true,
	".woff2": true,
	".eot":   true,
	".ttc":   true,
}

// parseExtensions は sfnt として解析可能な拡張子です
var parseExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
	".ttc": true,
	".otc": true,
}

// IsFontFile はファイル名が字体ファイルの拡張子を持つかどうかを返します
func IsFontFile(name string) bool {
	return hasExtension(name, copyExtensions)
}

// IsParseableFontFile はファイル名が解析可能な字体形式かどうかを返します
func IsParseableFontFile(name string) bool {
	return hasExtension(name, parseExtensions)
}

func hasExtension(name string, extensions map[string]bool) bool {
	return extensions[strings.ToLower(filepath.Ext(name))]
}
