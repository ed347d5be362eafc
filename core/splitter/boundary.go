package splitter

import (
	"github.com/phrasplit/phrasplit/core/errors"
	"github.com/phrasplit/phrasplit/core/segment"
)

// span is a candidate unit before whitespace trimming, as byte offsets
// relative to the text the provider was given. Spans are internal and never
// exposed to callers.
type span struct {
	start, end int
}

// provider locates candidate unit boundaries within a span of text.
//
// boundaries returns ordered, non-overlapping raw spans covering the
// candidate units at the requested level, relative to text. Whitespace
// padding is allowed; the splitter trims it while computing absolute
// offsets. Empty or whitespace-only input yields no spans.
type provider interface {
	name() string
	boundaries(text string, level segment.Level) []span
}

// resolveProvider maps a backend selector to a concrete provider. Forcing
// BackendAccurate fails when the sentence model cannot be loaded; auto
// selection falls back to the pattern scanner silently.
func resolveProvider(b Backend) (provider, error) {
	switch b {
	case BackendFast:
		return fastProvider{}, nil
	case BackendAccurate:
		tok, err := punktTokenizer()
		if err != nil {
			return nil, errors.NewBackend(string(BackendAccurate), "sentence model unavailable", err)
		}
		return punktProvider{tok: tok}, nil
	default: // BackendAuto
		if tok, err := punktTokenizer(); err == nil {
			return punktProvider{tok: tok}, nil
		}
		return fastProvider{}, nil
	}
}
