package splitter

import (
	"strings"
	"unicode/utf8"

	"github.com/phrasplit/phrasplit/core/errors"
)

// The plain-text helpers return just the unit texts for callers that do not
// need offsets or identifiers. They share the offset-preserving engine, so
// their output always matches the Split result for the same configuration.

// SplitSentences splits text into sentence strings.
func SplitSentences(text string, backend Backend) ([]string, error) {
	return texts(text, Options{Mode: ModeSentence, Backend: backend})
}

// SplitClauses splits text into clause strings.
func SplitClauses(text string, backend Backend) ([]string, error) {
	return texts(text, Options{Mode: ModeClause, Backend: backend})
}

// SplitParagraphs splits text into paragraph strings. Paragraph detection is
// pattern-based regardless of backend, so none is taken.
func SplitParagraphs(text string) ([]string, error) {
	return texts(text, Options{Mode: ModeParagraph, Backend: BackendFast})
}

func texts(text string, opts Options) ([]string, error) {
	segs, err := Split(text, opts)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(segs))
	for i, seg := range segs {
		out[i] = seg.Text
	}
	return out, nil
}

// SplitLongLines rewraps text so no output line exceeds maxLen runes, except
// a single word that is itself longer than maxLen, which passes through
// intact. Short input lines are kept as they are (trimmed); long lines are
// broken first at sentence boundaries, then still-long sentences at clause
// boundaries with word-level packing under maxLen.
func SplitLongLines(text string, maxLen int, backend Backend) ([]string, error) {
	if maxLen <= 0 {
		return nil, errors.NewConfig("max_length", "must be positive")
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if utf8.RuneCountInString(trimmed) <= maxLen {
			out = append(out, trimmed)
			continue
		}

		segs, err := Split(trimmed, Options{Mode: ModeSentence, Backend: backend})
		if err != nil {
			return nil, err
		}
		for _, seg := range segs {
			if utf8.RuneCountInString(seg.Text) <= maxLen {
				out = append(out, seg.Text)
				continue
			}
			clauses, err := Split(seg.Text, Options{Mode: ModeClause, Backend: backend, MaxChars: maxLen})
			if err != nil {
				return nil, err
			}
			for _, cl := range clauses {
				out = append(out, cl.Text)
			}
		}
	}
	return out, nil
}
