package model

// FontMapping は字体ファイルから抽出した名前情報を表します
type FontMapping struct {
	// FilePath は字体ファイルのパスを表します
	FilePath string `json:"file_path"`
	// FontName は完全名、PostScript 名、族名の優先順で抽出した字体名です
	FontName string `json:"font_name"`
	// FamilyName は字体の族名を表します
	FamilyName string `json:"family_name,omitempty"`
	// StyleName は字体の様式名（Regular, Bold など）を表します
	StyleName string `json:"style_name,omitempty"`
	// IsBold は太字かどうかを示します
	IsBold bool `json:"is_bold"`
	// IsItalic は斜体かどうかを示します
	IsItalic bool `json:"is_italic"`
}

// FontParseResult は字体ディレクトリ解析の集計結果を表します
type FontParseResult struct {
	TotalFiles       int           `json:"total_files"`
	SuccessfulParses int           `json:"successful_parses"`
	FailedParses     int           `json:"failed_parses"`
	Mappings         []FontMapping `json:"mappings"`
	Errors           []string      `json:"errors"`
}

// CopyDetail は1ファイルのコピー結果を表します
type CopyDetail struct {
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// CopyResult は字体ファイルコピーの集計結果を表します
type CopyResult struct {
	SourceDir        string       `json:"source_dir"`
	TargetDir        string       `json:"target_dir"`
	TotalFiles       int          `json:"total_files"`
	SuccessfulCopies int          `json:"successful_copies"`
	FailedCopies     int          `json:"failed_copies"`
	TotalSize        int64        `json:"total_size"`
	DurationMS       int64        `json:"duration_ms"`
	Details          []CopyDetail `json:"details"`
	Errors           []string     `json:"errors"`
}
