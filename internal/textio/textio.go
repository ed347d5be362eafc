// Package textio reads splitting input from files and streams. It handles
// xz-compressed input transparently and can pull the text content out of
// XML documents so markup never reaches the splitter.
package textio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/ulikunitz/xz"

	"github.com/phrasplit/phrasplit/core/errors"
)

// textExpr selects every text node in a document.
var textExpr = xpath.MustCompile("//text()")

// ReadFile reads the file at path and returns its contents as a string.
// Files ending in .xz are decompressed transparently. The content must be
// valid UTF-8.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xzr, err := xz.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("xz reader: %w", err)
		}
		reader = xzr
	}

	return ReadAll(reader)
}

// ReadAll reads everything from r and returns it as a string, rejecting
// content that is not valid UTF-8.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if !utf8.Valid(data) {
		return "", errors.NewValidation("input", "not valid UTF-8")
	}
	return string(data), nil
}

// ExtractText parses r as XML and concatenates its text nodes, separated by
// blank lines so element boundaries become paragraph breaks.
func ExtractText(r io.Reader) (string, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parsing XML: %w", err)
	}

	var parts []string
	for _, node := range xmlquery.QuerySelectorAll(doc, textExpr) {
		text := strings.TrimSpace(node.Data)
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

// ExtractTextFromFile reads the file at path (decompressing .xz) and
// extracts its XML text content.
func ExtractTextFromFile(path string) (string, error) {
	content, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return ExtractText(bytes.NewReader([]byte(content)))
}

// WriteFile writes data to path, or to stdout when path is "-" or empty.
func WriteFile(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
