package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font/gofont/goregular"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/folio"
	"github.com/tsawler/folio/block"
)

const rfpInput = `{"status": "ok", "noticeId": 9, "fastapi": {"data": {"report": {
  "summary_opinion": "차별화 전략이 필요합니다.",
  "track_a_comparison": [{"year": "2023", "ministry": "산업부", "title": "수소 저장", "similarity": "상", "difference": "규모"}],
  "track_b_comparison": [],
  "strategies": ["실증 규모 확대"]
}}}}`

// resetFlags restores the package-level flag state after a test.
func resetFlags(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()
	t.Cleanup(func() {
		kindName = ""
		themeFile = ""
		fontFile = ""
		dateFlag = ""
		outDir = "."
		previewPPMM = 0
	})
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunRender(t *testing.T) {
	resetFlags(t)
	outDir = t.TempDir()
	dateFlag = "2024-01-05"

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := runRender(cmd, []string{writeInput(t, rfpInput)}); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	want := filepath.Join(outDir, "유사 RFP 분석 결과_2024-01-05.pdf")
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("expected %s to exist: %v", want, err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}
	if !strings.Contains(out.String(), want) {
		t.Errorf("expected output to name %s, got %q", want, out.String())
	}
}

func TestRunRender_Preview(t *testing.T) {
	resetFlags(t)
	outDir = t.TempDir()
	dateFlag = "2024-01-05"
	previewPPMM = 1

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	if err := runRender(cmd, []string{writeInput(t, rfpInput)}); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	png := filepath.Join(outDir, "유사 RFP 분석 결과_2024-01-05_p1.png")
	if _, err := os.Stat(png); err != nil {
		t.Errorf("expected preview %s: %v", png, err)
	}
}

func TestRunRender_Stdin(t *testing.T) {
	resetFlags(t)
	outDir = t.TempDir()
	kindName = "script"

	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(`{"slides": [{"title": "개요", "script": "안녕하세요"}], "qna": []}`))
	cmd.SetOut(&bytes.Buffer{})

	if err := runRender(cmd, []string{"-"}); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "발표 스크립트 생성 결과_") {
		t.Errorf("expected one script PDF, got %v", entries)
	}
}

func TestRunRender_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		setup func()
		want  string
	}{
		{"unknown kind flag", rfpInput, func() { kindName = "nope" }, "unknown report kind"},
		{"undetectable input", `{"foo": 1}`, func() {}, "unknown report kind"},
		{"malformed json", `{"slides": `, func() { kindName = "script" }, "failed to decode"},
		{"bad date", rfpInput, func() { dateFlag = "05/01/2024" }, "invalid --date"},
		{"missing theme file", rfpInput, func() { themeFile = "/nonexistent/theme.yaml" }, "failed to load theme"},
		{"missing font file", rfpInput, func() { fontFile = "/nonexistent/font.ttf" }, "failed to load font"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			outDir = t.TempDir()
			tt.setup()

			cmd := &cobra.Command{}
			cmd.SetOut(&bytes.Buffer{})
			err := runRender(cmd, []string{writeInput(t, tt.input)})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}

			entries, _ := os.ReadDir(outDir)
			if len(entries) != 0 {
				t.Errorf("expected no output files, got %v", entries)
			}
		})
	}
}

func TestRunRender_WarnsAboutUndrawableText(t *testing.T) {
	tests := []struct {
		name     string
		font     bool
		contains string
	}{
		{"core font", false, "cannot be drawn with Helvetica"},
		{"font without hangul", true, "cannot be drawn with the configured font"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			outDir = t.TempDir()
			dateFlag = "2024-01-05"
			if tt.font {
				fontFile = filepath.Join(t.TempDir(), "regular.ttf")
				if err := os.WriteFile(fontFile, goregular.TTF, 0644); err != nil {
					t.Fatal(err)
				}
			}

			var stderr bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&stderr)
			if err := runRender(cmd, []string{writeInput(t, rfpInput)}); err != nil {
				t.Fatalf("runRender failed: %v", err)
			}

			msg := stderr.String()
			if !strings.Contains(msg, "missing_glyph") || !strings.Contains(msg, tt.contains) {
				t.Errorf("expected a missing_glyph warning naming the font, got %q", msg)
			}
		})
	}
}

func TestRunRender_MissingInput(t *testing.T) {
	resetFlags(t)
	err := runRender(&cobra.Command{}, []string{filepath.Join(t.TempDir(), "none.json")})
	if err == nil || !strings.Contains(err.Error(), "failed to read input") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestRunLayout(t *testing.T) {
	resetFlags(t)
	dateFlag = "2024-01-05"

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := runLayout(cmd, []string{writeInput(t, rfpInput)}); err != nil {
		t.Fatalf("runLayout failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"유사 RFP 분석 결과_2024-01-05.pdf",
		"summary_card",
		"section_header",
		"A-1 수소 저장",
		"타 발주처 기준 유사 RFP가 없습니다.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected layout output to contain %q\n%s", want, text)
		}
	}
}

func TestWriteTable_AlignsWideText(t *testing.T) {
	blocks := []block.Block{
		block.SectionHeader{Title: "자격요건 상세 체크리스트", Icon: "📋"},
		block.Paragraph{Text: "plain"},
	}
	res, _, err := folio.New("t").Blocks(blocks...).Layout()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	writeTable(&buf, blocks, res)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %d lines", len(lines))
	}

	// The summary column starts at the same display offset on every line
	col := summaryOffset(lines[0], "SUMMARY")
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 5 {
			t.Fatalf("short row %q", line)
		}
		if got := summaryOffset(line, fields[4]); got != col {
			t.Errorf("summary at %d, header at %d: %q", got, col, line)
		}
	}
}

func summaryOffset(line, cell string) int {
	i := strings.Index(line, cell)
	if i < 0 {
		return -1
	}
	return runewidth.StringWidth(line[:i])
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		b    block.Block
		want string
	}{
		{block.SectionHeader{Title: "요약", Icon: "■"}, "■ 요약"},
		{block.RequirementRow{Judgment: block.Fail, PrimaryText: "연구소"}, "[불가] 연구소"},
		{block.Paragraph{Text: "line\nbreak"}, "line break"},
		{block.NumberedList{Items: []string{"a", "b"}}, "2 items"},
		{block.Card{Tag: "A-1", Title: "t"}, "A-1 t"},
		{block.Placeholder{Text: "없음"}, "없음"},
	}
	for _, tt := range tests {
		if got := describe(tt.b); got != tt.want {
			t.Errorf("describe(%T) = %q, want %q", tt.b, got, tt.want)
		}
	}
}
