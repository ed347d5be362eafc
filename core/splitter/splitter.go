package splitter

import (
	"github.com/phrasplit/phrasplit/core/errors"
	"github.com/phrasplit/phrasplit/core/segment"
)

// Mode is the requested segmentation granularity.
type Mode string

// Recognized modes, coarsest first.
const (
	ModeParagraph Mode = "paragraph"
	ModeSentence  Mode = "sentence"
	ModeClause    Mode = "clause"
)

// Level returns the segment level corresponding to the mode.
func (m Mode) Level() segment.Level {
	return segment.Level(m)
}

// Backend selects the boundary detection strategy.
type Backend string

// Recognized backends.
const (
	// BackendAuto prefers the accurate backend when available and falls
	// back to fast silently.
	BackendAuto Backend = "auto"
	// BackendFast is the pattern scanner: deterministic, always available.
	BackendFast Backend = "fast"
	// BackendAccurate is the Punkt sentence tokenizer; forcing it fails
	// when the model cannot be loaded.
	BackendAccurate Backend = "accurate"
)

// Options is the read-only configuration for one split call.
type Options struct {
	// Mode is the target granularity. Empty means ModeSentence.
	Mode Mode

	// Backend selects boundary detection. Empty means BackendAuto.
	Backend Backend

	// MaxChars, when positive, re-splits any unit longer than MaxChars
	// runes at word boundaries. Zero disables length bounding; negative
	// values are rejected.
	MaxChars int
}

// normalize applies defaults and validates the options.
func (o Options) normalize() (Options, error) {
	if o.Mode == "" {
		o.Mode = ModeSentence
	}
	switch o.Mode {
	case ModeParagraph, ModeSentence, ModeClause:
	default:
		return o, errors.NewMode(string(o.Mode))
	}
	if o.Backend == "" {
		o.Backend = BackendAuto
	}
	switch o.Backend {
	case BackendAuto, BackendFast, BackendAccurate:
	default:
		return o, errors.NewConfig("backend", "unknown backend "+string(o.Backend)+" (want auto, fast, or accurate)")
	}
	if o.MaxChars < 0 {
		return o, errors.NewConfig("max_chars", "must be positive")
	}
	return o, nil
}

// Split segments text at the granularity requested by opts and returns the
// flat, document-ordered sequence of segments. Empty or whitespace-only text
// returns an empty sequence, not an error. Two calls with identical arguments
// produce identical output, including identifiers.
func Split(text string, opts Options) ([]segment.Segment, error) {
	it, err := NewIterator(text, opts)
	if err != nil {
		return nil, err
	}
	var segs []segment.Segment
	for {
		seg, ok := it.Next()
		if !ok {
			break
		}
		segs = append(segs, seg)
	}
	return segs, nil
}
