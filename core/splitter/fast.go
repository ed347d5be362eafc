package splitter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/phrasplit/phrasplit/core/segment"
)

// fastProvider is the pattern-based boundary provider: pure scanning with no
// external state, deterministic, always available.
type fastProvider struct{}

func (fastProvider) name() string { return "fast" }

func (fastProvider) boundaries(text string, level segment.Level) []span {
	switch level {
	case segment.LevelParagraph:
		return paragraphSpans(text)
	case segment.LevelSentence:
		return sentenceSpans(text)
	case segment.LevelClause:
		return clauseSpans(text)
	}
	return nil
}

// paragraphBreakRE matches one run of blank lines, including blank lines
// that contain only spaces or tabs.
var paragraphBreakRE = regexp.MustCompile(`\n[ \t\r]*\n(?:[ \t\r]*\n)*`)

// paragraphSpans splits on blank-line runs. The spans between breaks may be
// whitespace-only; the splitter discards those after trimming.
func paragraphSpans(text string) []span {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var spans []span
	start := 0
	for _, loc := range paragraphBreakRE.FindAllStringIndex(text, -1) {
		spans = append(spans, span{start, loc[0]})
		start = loc[1]
	}
	if start < len(text) {
		spans = append(spans, span{start, len(text)})
	}
	return spans
}

// nonTerminalAbbrevs are words whose trailing period does not end a
// sentence even when the next word is capitalized: titles, ranks, and a few
// reference abbreviations. Corporate suffixes like "Inc." and "Ltd." are
// deliberately absent; they frequently do end sentences.
var nonTerminalAbbrevs = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"rev": true, "fr": true, "sr": true, "jr": true, "st": true,
	"mt": true, "capt": true, "col": true, "gen": true, "lt": true,
	"sgt": true, "maj": true, "gov": true, "sen": true, "rep": true,
	"hon": true, "fig": true, "vs": true, "vol": true, "al": true,
	"cf": true, "ca": true, "co": true,
}

// sentenceSpans scans for terminal punctuation followed by whitespace and a
// capitalized (or digit, or quote-opening) continuation, skipping boundaries
// after title abbreviations, single-letter initials, dotted acronyms, and
// other non-terminal periods.
func sentenceSpans(text string) []span {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var spans []span
	start := 0
	i := 0
	for i < len(text) {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
			continue
		}

		// Consume the terminal run ("...", "?!", etc.) and any closing
		// quotes or brackets that belong to the sentence.
		j := i
		for j < len(text) && (text[j] == '.' || text[j] == '!' || text[j] == '?') {
			j++
		}
		runLen := j - i
		for j < len(text) {
			r, size := utf8.DecodeRuneInString(text[j:])
			if !isCloser(r) {
				break
			}
			j += size
		}

		// The punctuation must sit at a whitespace edge; "3.5" or
		// "example.com/path" never ends a sentence mid-token.
		if j < len(text) {
			r, _ := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(r) {
				i = j
				continue
			}
		}

		if j < len(text) {
			k := j
			for k < len(text) {
				r, size := utf8.DecodeRuneInString(text[k:])
				if !unicode.IsSpace(r) {
					break
				}
				k += size
			}
			if k < len(text) {
				r, _ := utf8.DecodeRuneInString(text[k:])
				if !isSentenceStart(r) {
					i = j
					continue
				}
				// Only a lone period consults the look-behind rules;
				// "?", "!", and ellipses are always terminal.
				if runLen == 1 && text[i] == '.' && nonTerminalBefore(text[:i]) {
					i = j
					continue
				}
			}
		}

		spans = append(spans, span{start, j})
		start = j
		i = j
	}
	if start < len(text) && strings.TrimSpace(text[start:]) != "" {
		spans = append(spans, span{start, len(text)})
	}
	return spans
}

// nonTerminalBefore reports whether the word ending immediately before the
// period at the end of prefix makes that period non-terminal: a title
// abbreviation, a single uppercase initial, or a dotted acronym such as
// "U.S.A" or "Ph.D". Tokens with long dot-separated parts (URLs, file
// names) are treated as ordinary words so their final period can end a
// sentence.
func nonTerminalBefore(prefix string) bool {
	end := len(prefix)
	wordStart := end
	for wordStart > 0 {
		r, size := utf8.DecodeLastRuneInString(prefix[:wordStart])
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '&' || r == '-' {
			wordStart -= size
			continue
		}
		break
	}
	word := prefix[wordStart:end]
	if word == "" {
		return false
	}
	if strings.Contains(word, ".") {
		for _, part := range strings.Split(word, ".") {
			if utf8.RuneCountInString(part) > 2 {
				return false
			}
		}
		return true
	}
	if utf8.RuneCountInString(word) == 1 {
		r, _ := utf8.DecodeRuneInString(word)
		if unicode.IsUpper(r) {
			return true
		}
	}
	return nonTerminalAbbrevs[strings.ToLower(word)]
}

// clauseSpans splits after commas, semicolons, and colons followed by
// whitespace, and after em/en dashes. The delimiter stays with the clause to
// its left.
func clauseSpans(text string) []span {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var spans []span
	start := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		isDelim := r == ',' || r == ';' || r == ':'
		isDash := r == '—' || r == '–'
		if !isDelim && !isDash {
			i += size
			continue
		}
		j := i + size
		if isDelim {
			if j >= len(text) {
				// Trailing delimiter belongs to the final clause.
				i = j
				continue
			}
			next, _ := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(next) {
				// "12:30", "1,000" and similar intra-token punctuation.
				i = j
				continue
			}
		}
		spans = append(spans, span{start, j})
		start = j
		i = j
	}
	if start < len(text) && strings.TrimSpace(text[start:]) != "" {
		spans = append(spans, span{start, len(text)})
	}
	return spans
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '}', '”', '’', '»':
		return true
	}
	return false
}

func isOpener(r rune) bool {
	switch r {
	case '"', '\'', '(', '[', '{', '“', '‘', '«':
		return true
	}
	return false
}

// isSentenceStart reports whether r plausibly begins a new sentence. The
// scanner is conservative: a lowercase continuation keeps the text in the
// current sentence.
func isSentenceStart(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsDigit(r) || isOpener(r)
}
