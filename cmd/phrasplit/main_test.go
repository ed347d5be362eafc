package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phrasplit/phrasplit/core/markup"
	"github.com/phrasplit/phrasplit/core/segment"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolvePattern(t *testing.T) {
	if got := resolvePattern("mustache"); got != markup.Patterns["mustache"] {
		t.Errorf("named dialect should resolve, got %q", got)
	}
	raw := `\[\[[^\]]+\]\]`
	if got := resolvePattern(raw); got != raw {
		t.Errorf("raw pattern should pass through, got %q", got)
	}
}

func TestSentencesCmd(t *testing.T) {
	in := writeInput(t, "in.txt", "First sentence. Second sentence.")
	out := filepath.Join(t.TempDir(), "out.txt")

	cmd := &SentencesCmd{Backend: "fast"}
	cmd.Path = in
	cmd.Output = out
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "First sentence.\nSecond sentence.\n"
	if string(data) != want {
		t.Errorf("got %q, want %q", data, want)
	}
}

func TestParagraphsCmd(t *testing.T) {
	in := writeInput(t, "in.txt", "First paragraph.\n\nSecond paragraph.")
	out := filepath.Join(t.TempDir(), "out.txt")

	cmd := &ParagraphsCmd{}
	cmd.Path = in
	cmd.Output = out
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "First paragraph.\nSecond paragraph.\n" {
		t.Errorf("got %q", data)
	}
}

func TestSegmentsCmdEmitsJSON(t *testing.T) {
	in := writeInput(t, "in.txt", "Hello world. How are you?")
	out := filepath.Join(t.TempDir(), "out.json")

	cmd := &SegmentsCmd{Mode: "sentence", Backend: "fast"}
	cmd.Path = in
	cmd.Output = out
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var segs []segment.Segment
	if err := json.Unmarshal(data, &segs); err != nil {
		t.Fatal(err)
	}
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[0].ID != "p0s0" || segs[0].CharEnd != 12 {
		t.Errorf("first segment = %+v", segs[0])
	}
}

func TestSegmentsCmdXMLInput(t *testing.T) {
	in := writeInput(t, "in.xml", "<doc><p>Hello world. How are you?</p></doc>")
	out := filepath.Join(t.TempDir(), "out.json")

	cmd := &SegmentsCmd{Mode: "sentence", Backend: "fast"}
	cmd.Path = in
	cmd.XML = true
	cmd.Output = out
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "<doc>") {
		t.Error("XML markup should not reach the splitter")
	}
	var segs []segment.Segment
	if err := json.Unmarshal(data, &segs); err != nil {
		t.Fatal(err)
	}
	if len(segs) != 2 {
		t.Errorf("got %d segments, want 2", len(segs))
	}
}

func TestLonglinesCmd(t *testing.T) {
	in := writeInput(t, "in.txt", "This is a long sentence. This is another sentence that makes it longer.")
	out := filepath.Join(t.TempDir(), "out.txt")

	cmd := &LonglinesCmd{MaxLength: 30, Backend: "fast"}
	cmd.Path = in
	cmd.Output = out
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) < 2 {
		t.Errorf("expected re-wrapped lines, got %q", lines)
	}
}

func TestValidateCmdReportsBreaks(t *testing.T) {
	in := writeInput(t, "in.txt", "Use {{first, second}} here.")

	cmd := &ValidateCmd{Pattern: "mustache", Mode: "clause", Backend: "fast"}
	cmd.Path = in
	if err := cmd.Run(); err == nil {
		t.Error("expected an error for a split placeholder")
	}

	ok := &ValidateCmd{Pattern: "mustache", Mode: "sentence", Backend: "fast"}
	ok.Path = in
	if err := ok.Run(); err != nil {
		t.Errorf("sentence mode should keep the placeholder intact: %v", err)
	}
}

func TestInvalidMaxLength(t *testing.T) {
	in := writeInput(t, "in.txt", "text")

	cmd := &LonglinesCmd{MaxLength: 0, Backend: "fast"}
	cmd.Path = in
	if err := cmd.Run(); err == nil {
		t.Error("expected error for zero max length")
	}
}
