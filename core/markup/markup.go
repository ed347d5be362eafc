// Package markup checks segmentation results against embedded markup: a
// placeholder (templating variable, speech-synthesis annotation, tag) must
// never be split across two segments, or downstream processing of the
// segments would see half a construct.
//
// Placeholders are located with a caller-supplied regular expression.
// Patterns provides ready-made expressions for common dialects; any other
// dialect can be covered by passing a custom pattern string.
package markup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/phrasplit/phrasplit/core/errors"
	"github.com/phrasplit/phrasplit/core/segment"
	"github.com/phrasplit/phrasplit/core/splitter"
)

// Patterns maps well-known markup dialects to placeholder-matching regular
// expressions. The map is data, not behavior: callers may pass any of these
// values, or their own pattern, to the validation functions.
var Patterns = map[string]string{
	// SSMD annotations: [text]{attributes}
	"ssmd": `\[[^\]]+\]\{[^{}]*\}`,
	// Speech Markdown: ((text)[attributes])
	"speechmarkdown": `\(\(.+?\)\[.+?\]\)`,
	// Mustache/Handlebars variables: {{name}}
	"mustache": `\{\{[^{}]+\}\}`,
	// A single XML/HTML tag: <tag attr="...">
	"html_tag": `<[^>]+>`,
	// Markdown links: [text](target)
	"markdown_link": `\[[^\]]+\]\([^)]+\)`,
}

// compile wraps regexp compilation in the pattern error type.
func compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.NewPattern(pattern, err)
	}
	return re, nil
}

// ValidateNoPlaceholderBreaks reports every placeholder in text that is
// split by the given segmentation: matched by pattern but not fully
// contained in a single segment's range. A placeholder lying entirely in a
// gap between segments is not reported; gaps are skipped whitespace that no
// downstream processing traverses. The returned warnings are advisory data,
// not errors.
func ValidateNoPlaceholderBreaks(text string, segs []segment.Segment, pattern string) ([]string, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return brokenPlaceholders(re, text, segs), nil
}

// brokenPlaceholders is the single definition of a broken placeholder: it
// returns one warning per pattern match that touches a segment without being
// fully contained in one. Both validation and mode suggestion go through it,
// so a suggested mode always validates clean.
func brokenPlaceholders(re *regexp.Regexp, text string, segs []segment.Segment) []string {
	var warnings []string
	for _, loc := range re.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]

		var touching []string
		contained := false
		for _, seg := range segs {
			if seg.CharEnd <= start || seg.CharStart >= end {
				continue
			}
			touching = append(touching, seg.ID)
			if seg.CharStart <= start && end <= seg.CharEnd {
				contained = true
			}
		}
		if contained || len(touching) == 0 {
			continue
		}
		warnings = append(warnings, fmt.Sprintf(
			"placeholder %q at [%d,%d) is split across segments %s",
			text[start:end], start, end, strings.Join(touching, ", ")))
	}
	return warnings
}

// SuggestSplittingMode returns the finest splitting mode whose segmentation
// of text leaves every placeholder intact, evaluating clause, then sentence,
// then paragraph. When no mode is safe, paragraph is returned as the
// coarsest fallback. The backend is auto-selected, matching what a default
// Split call will use.
func SuggestSplittingMode(text, pattern string) (splitter.Mode, error) {
	re, err := compile(pattern)
	if err != nil {
		return "", err
	}

	modes := []splitter.Mode{splitter.ModeClause, splitter.ModeSentence, splitter.ModeParagraph}
	for _, mode := range modes {
		segs, err := splitter.Split(text, splitter.Options{Mode: mode})
		if err != nil {
			return "", err
		}
		if len(brokenPlaceholders(re, text, segs)) == 0 {
			return mode, nil
		}
	}
	return splitter.ModeParagraph, nil
}
