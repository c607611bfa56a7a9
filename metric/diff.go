package metric

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffLines returns the line-level edit count between a and b. Lines are
// mapped to single runes (diffmatchpatch line mode), diffed, and the edit
// count is taken with DiffLevenshtein, so a changed line costs one edit.
func DiffLines(a, b string) int {
	if a == b {
		return 0
	}
	dmp := diffmatchpatch.New()
	ca, cb, _ := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)

	return dmp.DiffLevenshtein(diffs)
}

// lineCount counts lines the way DiffLinesToChars splits them: a trailing
// fragment without newline is a line too.
func lineCount(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}

	return n
}

func newDiffLines() Metric {
	return &funcMetric{name: "diff_lines", kind: EditBased,
		bound: func(a, b string) float64 { return float64(max(lineCount(a), lineCount(b))) },
		fn:    func(a, b string) float64 { return float64(DiffLines(a, b)) }}
}
