package splitter

import (
	"github.com/phrasplit/phrasplit/core/segment"
)

// Iterator produces segments one at a time, computing one paragraph's units
// per pull instead of materializing the whole tree. Stopping early costs
// nothing and requires no cleanup; a fresh Iterator restarts from offset 0.
//
// An Iterator is single-use and not safe for concurrent use; create one per
// goroutine.
type Iterator struct {
	doc    string
	opts   Options
	prov   provider
	method string

	paras []span // raw paragraph candidates over the whole document
	pi    int    // next candidate to consume
	pIdx  int    // emitted paragraph counter

	buf []segment.Segment // segments of the paragraph being drained
	bi  int
}

// NewIterator validates opts, resolves the boundary backend, and returns a
// lazily evaluated iterator over the segments of text.
func NewIterator(text string, opts Options) (*Iterator, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	prov, err := resolveProvider(opts.Backend)
	if err != nil {
		return nil, err
	}
	return &Iterator{
		doc:    text,
		opts:   opts,
		prov:   prov,
		method: prov.name(),
		paras:  prov.boundaries(text, segment.LevelParagraph),
	}, nil
}

// Next returns the next segment in document order. The second return value
// is false once the sequence is exhausted.
func (it *Iterator) Next() (segment.Segment, bool) {
	for {
		if it.bi < len(it.buf) {
			seg := it.buf[it.bi]
			it.bi++
			return seg, true
		}
		if it.pi >= len(it.paras) {
			return segment.Segment{}, false
		}
		cand := it.paras[it.pi]
		it.pi++

		start, end := trimSpan(it.doc, cand.start, cand.end)
		if start >= end {
			// Whitespace-only candidate: skip without consuming an index.
			continue
		}
		it.buf = it.splitParagraph(start, end, it.pIdx)
		it.bi = 0
		it.pIdx++
	}
}

// splitParagraph produces all segments of the paragraph at doc[start:end],
// recursing to sentence and clause granularity as the mode requires and
// applying the length bound to the leaves.
func (it *Iterator) splitParagraph(start, end, pIdx int) []segment.Segment {
	if it.opts.Mode == ModeParagraph {
		seg := it.newSegment(paragraphID(pIdx), segment.LevelParagraph, start, end, pIdx, nil, nil)
		return applyBound(it.doc, []segment.Segment{seg}, it.opts.MaxChars)
	}

	ptext := it.doc[start:end]
	var out []segment.Segment
	sIdx := 0
	for _, ss := range it.prov.boundaries(ptext, segment.LevelSentence) {
		s0, s1 := trimSpan(it.doc, start+ss.start, start+ss.end)
		if s0 >= s1 {
			continue
		}
		if it.opts.Mode == ModeSentence {
			s := sIdx
			out = append(out, it.newSegment(sentenceID(pIdx, sIdx), segment.LevelSentence, s0, s1, pIdx, &s, nil))
		} else {
			out = append(out, it.splitClauses(s0, s1, pIdx, sIdx)...)
		}
		sIdx++
	}
	if len(out) == 0 {
		// No sentence boundary found: the whole unit is one segment.
		s := 0
		seg := it.newSegment(sentenceID(pIdx, 0), segment.LevelSentence, start, end, pIdx, &s, nil)
		if it.opts.Mode == ModeClause {
			c := 0
			seg = it.newSegment(clauseID(pIdx, 0, 0), segment.LevelClause, start, end, pIdx, &s, &c)
		}
		out = []segment.Segment{seg}
	}
	return applyBound(it.doc, out, it.opts.MaxChars)
}

// splitClauses produces the clause segments of one sentence span.
func (it *Iterator) splitClauses(start, end, pIdx, sIdx int) []segment.Segment {
	stext := it.doc[start:end]
	var out []segment.Segment
	cIdx := 0
	for _, cs := range it.prov.boundaries(stext, segment.LevelClause) {
		c0, c1 := trimSpan(it.doc, start+cs.start, start+cs.end)
		if c0 >= c1 {
			continue
		}
		s, c := sIdx, cIdx
		out = append(out, it.newSegment(clauseID(pIdx, sIdx, cIdx), segment.LevelClause, c0, c1, pIdx, &s, &c))
		cIdx++
	}
	if len(out) == 0 {
		s, c := sIdx, 0
		out = []segment.Segment{it.newSegment(clauseID(pIdx, sIdx, 0), segment.LevelClause, start, end, pIdx, &s, &c)}
	}
	return out
}

// newSegment builds a segment for the trimmed absolute range [start, end).
func (it *Iterator) newSegment(id string, lvl segment.Level, start, end, pIdx int, sIdx, cIdx *int) segment.Segment {
	return segment.Segment{
		ID:           id,
		Text:         it.doc[start:end],
		CharStart:    start,
		CharEnd:      end,
		Level:        lvl,
		ParagraphIdx: pIdx,
		SentenceIdx:  sIdx,
		ClauseIdx:    cIdx,
		Meta:         map[string]string{"method": it.method},
	}
}
