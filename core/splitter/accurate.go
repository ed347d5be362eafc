package splitter

import (
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"github.com/phrasplit/phrasplit/core/segment"
)

// The Punkt tokenizer is loaded at most once per process. The probe result
// is write-once, read-many: concurrent split calls may read it without
// locking after the sync.Once completes.
var (
	punktOnce sync.Once
	punktTok  *sentences.DefaultSentenceTokenizer
	punktErr  error
)

// punktTokenizer loads the English Punkt model on first use and caches the
// outcome, success or failure, for the lifetime of the process.
func punktTokenizer() (*sentences.DefaultSentenceTokenizer, error) {
	punktOnce.Do(func() {
		punktTok, punktErr = english.NewSentenceTokenizer(nil)
	})
	return punktTok, punktErr
}

// AccurateAvailable reports whether the accurate backend can be used. The
// underlying probe runs at most once per process.
func AccurateAvailable() bool {
	_, err := punktTokenizer()
	return err == nil
}

// punktProvider is the model-based boundary provider. Sentence boundaries
// come from the Punkt tokenizer; paragraph and clause boundaries reuse the
// pattern scanner, which is what defines those granularities.
type punktProvider struct {
	tok *sentences.DefaultSentenceTokenizer
}

func (punktProvider) name() string { return "punkt" }

func (p punktProvider) boundaries(text string, level segment.Level) []span {
	if level != segment.LevelSentence {
		return fastProvider{}.boundaries(text, level)
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	// The tokenizer returns sentence texts without positions. Map each one
	// back with a monotonic forward cursor: every search starts where the
	// previous sentence ended, so repeated sentences resolve to their own
	// occurrence rather than the first one.
	var spans []span
	cursor := 0
	for _, s := range p.tok.Tokenize(text) {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed == "" {
			continue
		}
		rel := strings.Index(text[cursor:], trimmed)
		if rel < 0 {
			continue
		}
		end := cursor + rel + len(trimmed)
		spans = append(spans, span{cursor, end})
		cursor = end
	}
	if len(spans) == 0 {
		return []span{{0, len(text)}}
	}
	return spans
}
