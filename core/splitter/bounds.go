package splitter

import (
	"unicode"
	"unicode/utf8"

	"github.com/phrasplit/phrasplit/core/segment"
)

// applyBound re-splits every segment longer than maxChars runes. Segments
// within the bound pass through unchanged.
func applyBound(doc string, segs []segment.Segment, maxChars int) []segment.Segment {
	if maxChars <= 0 {
		return segs
	}
	out := make([]segment.Segment, 0, len(segs))
	for _, seg := range segs {
		if utf8.RuneCountInString(seg.Text) <= maxChars {
			out = append(out, seg)
			continue
		}
		out = append(out, splitOversized(doc, seg, maxChars)...)
	}
	return out
}

// splitOversized divides one oversized segment at word boundaries, greedily
// packing whole words until adding the next word would exceed maxChars
// runes. Each sub-segment is a contiguous sub-range of the parent's already
// exact range, so offsets stay exact without re-scanning. A single word
// longer than maxChars is emitted alone, exceeding the bound; content is
// never truncated.
func splitOversized(doc string, seg segment.Segment, maxChars int) []segment.Segment {
	words := wordSpans(doc, seg.CharStart, seg.CharEnd)
	if len(words) <= 1 {
		return []segment.Segment{seg}
	}

	var groups []span
	groupStart := words[0].start
	lastEnd := words[0].end
	for _, w := range words[1:] {
		if utf8.RuneCountInString(doc[groupStart:w.end]) > maxChars {
			groups = append(groups, span{groupStart, lastEnd})
			groupStart = w.start
		}
		lastEnd = w.end
	}
	groups = append(groups, span{groupStart, lastEnd})

	out := make([]segment.Segment, 0, len(groups))
	for n, g := range groups {
		sub := seg
		sub.ID = boundedID(seg.ID, n)
		sub.CharStart = g.start
		sub.CharEnd = g.end
		sub.Text = doc[g.start:g.end]
		out = append(out, sub)
	}
	return out
}

// wordSpans returns the absolute byte span of each whitespace-delimited word
// in doc[start:end].
func wordSpans(doc string, start, end int) []span {
	var words []span
	i := start
	for i < end {
		r, size := utf8.DecodeRuneInString(doc[i:end])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		wordStart := i
		for i < end {
			r, size = utf8.DecodeRuneInString(doc[i:end])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		words = append(words, span{wordStart, i})
	}
	return words
}
