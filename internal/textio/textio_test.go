package textio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"

	phraserrors "github.com/phrasplit/phrasplit/core/errors"
)

func TestReadFilePlain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	content := "First sentence. Second sentence.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != content {
		t.Errorf("got %q, want %q", got, content)
	}
}

func TestReadFileXZ(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt.xz")
	content := "Compressed text. With two sentences."

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w, err := xz.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != content {
		t.Errorf("got %q, want %q", got, content)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadAllRejectsInvalidUTF8(t *testing.T) {
	_, err := ReadAll(strings.NewReader("ok\xff\xfe"))
	if !errors.Is(err, phraserrors.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestExtractText(t *testing.T) {
	xml := `<?xml version="1.0"?>
<doc>
  <title>The Title</title>
  <body>
    <p>First paragraph text.</p>
    <p>Second <em>emphasized</em> paragraph.</p>
  </body>
</doc>`

	got, err := ExtractText(strings.NewReader(xml))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"The Title", "First paragraph text.", "emphasized"} {
		if !strings.Contains(got, want) {
			t.Errorf("extracted text missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<") {
		t.Errorf("extracted text still contains markup:\n%s", got)
	}
}

func TestExtractTextSeparatesElements(t *testing.T) {
	xml := `<doc><p>One.</p><p>Two.</p></doc>`
	got, err := ExtractText(strings.NewReader(xml))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "One.\n\nTwo.") {
		t.Errorf("element texts should be paragraph-separated, got %q", got)
	}
}

func TestExtractTextFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.xml")
	if err := os.WriteFile(path, []byte(`<doc><p>Hello from XML.</p></doc>`), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ExtractTextFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hello from XML." {
		t.Errorf("got %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteFile(path, []byte("written")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "written" {
		t.Errorf("got %q", data)
	}
}
