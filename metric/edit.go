package metric

// Edit-based metrics operate on runes so multi-byte characters count once.
// All of them use rolling rows where the recurrence allows it.

// Levenshtein counts single-rune insertions, deletions and substitutions.
//
// Complexity: O(n·m) time, O(min(n,m)) memory.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra // keep the rolling rows on the shorter side
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// DamerauLevenshtein is the optimal-string-alignment variant: adjacent
// transpositions cost one edit, no substring is edited twice.
//
// Complexity: O(n·m) time, O(m) memory (three rolling rows).
func DamerauLevenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	m := len(rb)
	prev2 := make([]int, m+1) // row i-2
	prev := make([]int, m+1)  // row i-1
	curr := make([]int, m+1)  // row i
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				curr[j] = min(curr[j], prev2[j-2]+1)
			}
		}
		prev2, prev, curr = prev, curr, prev2
	}

	return prev[m]
}

// Hamming counts positional mismatches over the common prefix length plus
// the length difference, so unequal lengths are allowed.
func Hamming(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	d := len(ra) - len(rb)
	for i := range rb {
		if ra[i] != rb[i] {
			d++
		}
	}

	return d
}

// LCSSeqDistance is len(a)+len(b) − 2·LCS(a, b): the insert/delete-only
// edit distance.
func LCSSeqDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	return len(ra) + len(rb) - 2*lcsLen(ra, rb)
}

// lcsLen returns the longest common subsequence length using two rows.
func lcsLen(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// JaroSimilarity returns the Jaro similarity in [0, 1]. Two empty strings
// are identical (1); one empty string shares nothing (0).
func JaroSimilarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	window := max(len(ra), len(rb))/2 - 1
	if window < 0 {
		window = 0
	}
	matchedA := make([]bool, len(ra))
	matchedB := make([]bool, len(rb))
	matches := 0
	for i := range ra {
		lo, hi := max(0, i-window), min(len(rb), i+window+1)
		for j := lo; j < hi; j++ {
			if matchedB[j] || ra[i] != rb[j] {
				continue
			}
			matchedA[i], matchedB[j] = true, true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	// Count half-transpositions between the matched sequences.
	transpositions, k := 0, 0
	for i := range ra {
		if !matchedA[i] {
			continue
		}
		for !matchedB[k] {
			k++
		}
		if ra[i] != rb[k] {
			transpositions++
		}
		k++
	}
	m := float64(matches)

	return (m/float64(len(ra)) + m/float64(len(rb)) + (m-float64(transpositions)/2)/m) / 3
}

const (
	winklerPrefixScale = 0.1 // standard Winkler p
	winklerMaxPrefix   = 4   // prefix bonus is capped at four runes
	winklerThreshold   = 0.7 // boost only already-similar pairs
)

// JaroWinklerSimilarity boosts the Jaro similarity by the common prefix.
func JaroWinklerSimilarity(a, b string) float64 {
	j := JaroSimilarity(a, b)
	if j <= winklerThreshold {
		return j
	}
	ra, rb := []rune(a), []rune(b)
	prefix := 0
	for prefix < min(len(ra), len(rb), winklerMaxPrefix) && ra[prefix] == rb[prefix] {
		prefix++
	}

	return j + float64(prefix)*winklerPrefixScale*(1-j)
}

func newLevenshtein() Metric {
	return &funcMetric{name: "levenshtein", kind: EditBased, bound: maxRuneLen,
		fn: func(a, b string) float64 { return float64(Levenshtein(a, b)) }}
}

func newDamerauLevenshtein() Metric {
	return &funcMetric{name: "damerau_levenshtein", kind: EditBased, bound: maxRuneLen,
		fn: func(a, b string) float64 { return float64(DamerauLevenshtein(a, b)) }}
}

func newHamming() Metric {
	return &funcMetric{name: "hamming", kind: EditBased, bound: maxRuneLen,
		fn: func(a, b string) float64 { return float64(Hamming(a, b)) }}
}

func newLCSSeq() Metric {
	return &funcMetric{name: "lcsseq", kind: EditBased,
		bound: func(a, b string) float64 { return float64(runeLen(a) + runeLen(b)) },
		fn:    func(a, b string) float64 { return float64(LCSSeqDistance(a, b)) }}
}

func newJaro() Metric {
	return &funcMetric{name: "jaro", kind: EditBased,
		fn: func(a, b string) float64 { return 1 - JaroSimilarity(a, b) }}
}

func newJaroWinkler() Metric {
	return &funcMetric{name: "jaro_winkler", kind: EditBased,
		fn: func(a, b string) float64 { return 1 - JaroWinklerSimilarity(a, b) }}
}
