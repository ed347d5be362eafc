// Package segment defines the Segment value type produced by the splitting
// engine: one unit of text (paragraph, sentence, or clause) together with the
// exact byte range it occupies in the original document.
//
// Offset invariant: for every Segment s produced from input text,
// text[s.CharStart:s.CharEnd] == s.Text. Offsets are byte offsets into the
// UTF-8 input, half-open [CharStart, CharEnd). Segments are immutable value
// objects; the engine creates them once and never mutates them.
package segment

import (
	"fmt"

	"github.com/phrasplit/phrasplit/core/errors"
)

// Level is the granularity of a segment.
type Level string

// Segment granularity levels, coarsest first.
const (
	LevelParagraph Level = "paragraph"
	LevelSentence  Level = "sentence"
	LevelClause    Level = "clause"
)

// IsValid returns true if the level is one of the recognized granularities.
func (l Level) IsValid() bool {
	switch l {
	case LevelParagraph, LevelSentence, LevelClause:
		return true
	}
	return false
}

// Segment is one unit of output text with its exact source offsets and a
// stable hierarchical identifier.
type Segment struct {
	// ID is the stable hierarchy-encoding label, e.g. "p0s1c2" for the
	// third clause of the second sentence of the first paragraph. Units
	// re-split under a length bound carry a numeric "-n" suffix.
	ID string `json:"id"`

	// Text is the trimmed content, byte-identical to the document slice
	// [CharStart, CharEnd).
	Text string `json:"text"`

	// CharStart is the byte offset of the first byte of Text in the document.
	CharStart int `json:"char_start"`

	// CharEnd is the byte offset one past the last byte of Text.
	CharEnd int `json:"char_end"`

	// Level is the granularity this segment was emitted at.
	Level Level `json:"level"`

	// ParagraphIdx is the zero-based index of the enclosing paragraph,
	// counted over emitted paragraphs in document order.
	ParagraphIdx int `json:"paragraph_idx"`

	// SentenceIdx is the sentence index within the paragraph. Nil for
	// paragraph-level segments.
	SentenceIdx *int `json:"sentence_idx,omitempty"`

	// ClauseIdx is the clause index within the sentence. Nil unless the
	// segment was produced at clause granularity.
	ClauseIdx *int `json:"clause_idx,omitempty"`

	// Meta carries auxiliary key-value metadata, e.g. the boundary
	// detection method that produced this segment.
	Meta map[string]string `json:"meta,omitempty"`
}

// String returns a debug representation, e.g. Segment(p0s1)[13:26](13 bytes).
func (s Segment) String() string {
	return fmt.Sprintf("Segment(%s)[%d:%d](%d bytes)", s.ID, s.CharStart, s.CharEnd, len(s.Text))
}

// Validate checks the structural invariants of a segment. It does not check
// the offset invariant against a document; callers that hold the document can
// compare text[s.CharStart:s.CharEnd] with s.Text directly.
func (s Segment) Validate() error {
	if s.ID == "" {
		return errors.NewValidation("id", "must not be empty")
	}
	if s.CharStart < 0 {
		return errors.NewValidation("char_start", "must be >= 0")
	}
	if s.CharEnd < s.CharStart {
		return errors.NewValidation("char_end", fmt.Sprintf("(%d) must be >= char_start (%d)", s.CharEnd, s.CharStart))
	}
	if !s.Level.IsValid() {
		return errors.NewValidation("level", fmt.Sprintf("unknown level %q", s.Level))
	}
	if s.ParagraphIdx < 0 {
		return errors.NewValidation("paragraph_idx", "must be >= 0")
	}
	return nil
}
