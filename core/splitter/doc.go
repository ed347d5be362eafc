// Package splitter segments text into a hierarchy of paragraph, sentence,
// and clause units while preserving the exact byte range each unit occupies
// in the original, unmodified input.
//
// # Offsets
//
// Every returned segment satisfies text[seg.CharStart:seg.CharEnd] == seg.Text.
// Segments are ordered by ascending CharStart and never overlap; the gaps
// between them are the inter-unit whitespace that segmentation skips, so the
// original document can always be reconstructed from segments plus gaps.
//
// # Boundary backends
//
// Two interchangeable boundary providers detect candidate unit breaks:
//
//   - fast: a deterministic pattern scanner. Blank-line runs delimit
//     paragraphs, terminal punctuation with abbreviation/acronym/URL
//     look-behind delimits sentences, and internal punctuation (commas,
//     semicolons, colons, dashes) delimits clauses.
//   - accurate: a Punkt sentence tokenizer (github.com/neurosnap/sentences).
//     Its trained model is probed at most once per process; if the probe
//     fails, auto selection silently falls back to fast, while forcing
//     BackendAccurate returns an error matching errors.ErrBackendUnavailable.
//
// Paragraph and clause boundaries always come from the pattern scanner; the
// model only locates sentence breaks.
//
// # Hierarchy and identifiers
//
// Splitting walks document > paragraph > sentence > clause down to the
// requested mode. Each emitted unit carries a deterministic identifier
// encoding its position: "p0" in paragraph mode, "p0s1" in sentence mode,
// "p0s1c2" in clause mode. Counters restart within each parent, and
// whitespace-only candidates are skipped without consuming an index. Units
// longer than Options.MaxChars runes are re-split at word boundaries; the
// resulting sub-segments append "-0", "-1", ... to the parent identifier.
// A single word longer than MaxChars is emitted oversized rather than
// truncated.
//
// # Concurrency
//
// The engine is synchronous and CPU-bound. Split calls with independent
// inputs may run concurrently; the only shared state is the write-once
// availability probe of the accurate backend.
package splitter
