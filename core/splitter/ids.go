package splitter

import "strconv"

// Identifiers encode hierarchy position as level-tag+index pairs down to the
// requested granularity: "p0" for a paragraph, "p0s1" for a sentence,
// "p0s1c2" for a clause. Counters are per-parent and count only emitted
// units, so identical input and mode always yield identical identifiers.

func paragraphID(p int) string {
	return "p" + strconv.Itoa(p)
}

func sentenceID(p, s int) string {
	return "p" + strconv.Itoa(p) + "s" + strconv.Itoa(s)
}

func clauseID(p, s, c int) string {
	return "p" + strconv.Itoa(p) + "s" + strconv.Itoa(s) + "c" + strconv.Itoa(c)
}

// boundedID labels the n-th word-packed sub-segment of an oversized unit.
func boundedID(base string, n int) string {
	return base + "-" + strconv.Itoa(n)
}
