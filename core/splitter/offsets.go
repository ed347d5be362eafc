package splitter

import (
	"unicode"
	"unicode/utf8"
)

// trimSpan narrows the absolute byte range [start, end) of doc to the
// minimal span containing no leading or trailing whitespace. The result is
// computed by walking inward from both edges of the candidate range, never
// by searching for the content elsewhere in the document, so repeated
// content stays positionally correct. A whitespace-only range collapses to
// start == end.
func trimSpan(doc string, start, end int) (int, int) {
	for start < end {
		r, size := utf8.DecodeRuneInString(doc[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}
	for end > start {
		r, size := utf8.DecodeLastRuneInString(doc[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	return start, end
}
