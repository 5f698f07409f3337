package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"FontScope/internal/domain/model"
	"FontScope/internal/infrastructure/filesystem"
)

type mockLogger struct {
	logs []struct {
		level   string
		message string
		err     error
	}
}

func (m *mockLogger) Log(level, message string, err error) {
	m.logs = append(m.logs, struct {
		level   string
		message string
		err     error
	}{level, message, err})
}

func newTestGenerator() *Generator {
	logger := &mockLogger{}
	return NewGenerator(filesystem.NewLister(logger), logger)
}

// stubLister は列挙結果を固定で返すテスト用のリスターです
type stubLister struct {
	entries []model.DirectoryEntry
	err     error
}

func (s *stubLister) List(dir string) ([]model.DirectoryEntry, error) {
	return s.entries, s.err
}

func TestGenerator_Generate_MissingPath(t *testing.T) {
	generator := newTestGenerator()

	tempDir, err := os.MkdirTemp("", "generator_test")
	if err != nil {
		t.Fatalf("一時ディレクトリの作成に失敗: %v", err)
	}
	defer os.RemoveAll(tempDir)

	missing := filepath.Join(tempDir, "notexist")
	output := generator.Generate(missing)

	if !strings.Contains(output, missing) {
		t.Errorf("出力に対象パスが含まれていない: %q", output)
	}
	if !strings.Contains(output, "存在しません") {
		t.Errorf("出力に不存在の文言が含まれていない: %q", output)
	}
}

func TestGenerator_Generate_NotADirectory(t *testing.T) {
	generator := newTestGenerator()

	tempDir, err := os.MkdirTemp("", "generator_test")
	if err != nil {
		t.Fatalf("一時ディレクトリの作成に失敗: %v", err)
	}
	defer os.RemoveAll(tempDir)

	file := filepath.Join(tempDir, "file.txt")
	if err := os.WriteFile(file, []byte("test"), 0644); err != nil {
		t.Fatalf("テストファイルの作成に失敗: %v", err)
	}

	output := generator.Generate(file)

	if !strings.Contains(output, file) {
		t.Errorf("出力に対象パスが含まれていない: %q", output)
	}
	if !strings.Contains(output, "ディレクトリではありません") {
		t.Errorf("出力にディレクトリでない旨の文言が含まれていない: %q", output)
	}
}

func TestGenerator_Generate_EmptyDirectory(t *testing.T) {
	generator := newTestGenerator()

	tempDir, err := os.MkdirTemp("", "generator_test")
	if err != nil {
		t.Fatalf("一時ディレクトリの作成に失敗: %v", err)
	}
	defer os.RemoveAll(tempDir)

	output := generator.Generate(tempDir)

	if !strings.Contains(output, "見つかりませんでした") {
		t.Errorf("出力に項目なしの文言が含まれていない: %q", output)
	}
}

func TestGenerator_Generate_EntryCountMatchesLines(t *testing.T) {
	generator := newTestGenerator()

	tempDir, err := os.MkdirTemp("", "generator_test")
	if err != nil {
		t.Fatalf("一時ディレクトリの作成に失敗: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// ファイル3つとディレクトリ2つを作成
	for i := 0; i < 3; i++ {
		name := filepath.Join(tempDir, fmt.Sprintf("file_%d.txt", i))
		if err := os.WriteFile(name, []byte("content"), 0644); err != nil {
			t.Fatalf("テストファイルの作成に失敗: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		name := filepath.Join(tempDir, fmt.Sprintf("dir_%d", i))
		if err := os.Mkdir(name, 0755); err != nil {
			t.Fatalf("テストディレクトリの作成に失敗: %v", err)
		}
	}

	output := generator.Generate(tempDir)

	// ヘッダと本文は空行1つで区切られる
	parts := strings.SplitN(output, "\n\n", 2)
	if len(parts) != 2 {
		t.Fatalf("出力の形式が不正: %q", output)
	}

	if !strings.Contains(parts[0], tempDir) {
		t.Errorf("ヘッダに対象パスが含まれていない: %q", parts[0])
	}
	if !strings.Contains(parts[0], "5 個の項目") {
		t.Errorf("ヘッダの項目数が不正: %q", parts[0])
	}

	lines := strings.Split(parts[1], "\n")
	if len(lines) != 5 {
		t.Errorf("本文の行数が不正: got %v, want 5", len(lines))
	}
}

func TestGenerator_Generate_EntryLineFormat(t *testing.T) {
	generator := newTestGenerator()

	tempDir, err := os.MkdirTemp("", "generator_test")
	if err != nil {
		t.Fatalf("一時ディレクトリの作成に失敗: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// 12 バイトのファイルとサブディレクトリを1つずつ作成
	if err := os.WriteFile(filepath.Join(tempDir, "a.txt"), []byte("abcdefghijkl"), 0644); err != nil {
		t.Fatalf("テストファイルの作成に失敗: %v", err)
	}
	if err := os.Mkdir(filepath.Join(tempDir, "b"), 0755); err != nil {
		t.Fatalf("テストディレクトリの作成に失敗: %v", err)
	}

	output := generator.Generate(tempDir)

	if !strings.Contains(output, "a.txt -> 12 Bytes") {
		t.Errorf("ファイル行の形式が不正: %q", output)
	}
	if !strings.Contains(output, "b -> "+DirectoryMarker) {
		t.Errorf("ディレクトリ行の形式が不正: %q", output)
	}
	if !strings.Contains(output, "2 個の項目") {
		t.Errorf("ヘッダの項目数が不正: %q", output)
	}
}

func TestFormatEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry model.DirectoryEntry
		want  string
	}{
		{
			name:  "サイズを取得できたファイル",
			entry: model.DirectoryEntry{Name: "a.txt", Kind: model.KindFile, Size: 12},
			want:  "a.txt -> 12 Bytes",
		},
		{
			name:  "サイズを取得できなかったファイル",
			entry: model.DirectoryEntry{Name: "broken.txt", Kind: model.KindFile, SizeErr: errors.New("permission denied")},
			want:  "broken.txt -> " + UnreadableSizeMsg,
		},
		{
			name:  "ディレクトリ",
			entry: model.DirectoryEntry{Name: "subdir", Kind: model.KindDirectory},
			want:  "subdir -> " + DirectoryMarker,
		},
		{
			name:  "その他の種別",
			entry: model.DirectoryEntry{Name: "link", Kind: model.KindOther},
			want:  "link -> " + OtherTypeMarker,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatEntry(tt.entry); got != tt.want {
				t.Errorf("formatEntry() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerator_Generate_SizeUnavailable(t *testing.T) {
	logger := &mockLogger{}
	lister := &stubLister{
		entries: []model.DirectoryEntry{
			{Name: "ok.txt", Kind: model.KindFile, Size: 7},
			{Name: "broken.txt", Kind: model.KindFile, SizeErr: errors.New("permission denied")},
		},
	}
	generator := NewGenerator(lister, logger)

	output := generator.Generate("/fonts")

	// サイズ取得に失敗した行だけが劣化し、他の行と項目数は維持される
	if !strings.Contains(output, "broken.txt -> "+UnreadableSizeMsg) {
		t.Errorf("サイズ取得失敗の行が不正: %q", output)
	}
	if !strings.Contains(output, "ok.txt -> 7 Bytes") {
		t.Errorf("正常なファイル行が不正: %q", output)
	}
	if !strings.Contains(output, "2 個の項目") {
		t.Errorf("ヘッダの項目数が不正: %q", output)
	}
}

func TestGenerator_Generate_EnumerationFailure(t *testing.T) {
	logger := &mockLogger{}
	underlying := errors.New("permission denied")
	lister := &stubLister{
		err: fmt.Errorf("ディレクトリの読み取りに失敗しました: %w", underlying),
	}
	generator := NewGenerator(lister, logger)

	output := generator.Generate("/restricted")

	if !strings.Contains(output, "ディレクトリへのアクセス中にエラーが発生しました") {
		t.Errorf("出力に列挙失敗の文言が含まれていない: %q", output)
	}
	if !strings.Contains(output, underlying.Error()) {
		t.Errorf("出力に元のエラー内容が含まれていない: %q", output)
	}
}

func TestGenerator_Generate_Idempotent(t *testing.T) {
	generator := newTestGenerator()

	tempDir, err := os.MkdirTemp("", "generator_test")
	if err != nil {
		t.Fatalf("一時ディレクトリの作成に失敗: %v", err)
	}
	defer os.RemoveAll(tempDir)

	if err := os.WriteFile(filepath.Join(tempDir, "a.txt"), []byte("content"), 0644); err != nil {
		t.Fatalf("テストファイルの作成に失敗: %v", err)
	}

	first := generator.Generate(tempDir)
	second := generator.Generate(tempDir)

	if first != second {
		t.Errorf("同一ディレクトリに対する出力が一致しない:\n1回目: %q\n2回目: %q", first, second)
	}
}
