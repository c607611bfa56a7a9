package metric

import (
	"math"
	"strings"
)

// qgramSize is the character gram length of the q-gram metrics.
const qgramSize = 2

// multiset counts occurrences of grams or tokens.
type multiset map[string]int

// qgrams returns the multiset of q-rune grams of s. Strings shorter than q
// contribute themselves as one gram so short samples still compare.
func qgrams(s string, q int) multiset {
	r := []rune(s)
	out := make(multiset)
	if len(r) == 0 {
		return out
	}
	if len(r) < q {
		out[s]++
		return out
	}
	for i := 0; i+q <= len(r); i++ {
		out[string(r[i:i+q])]++
	}

	return out
}

// tokenSet returns the whitespace tokens of s with multiplicity 1.
func tokenSet(s string) multiset {
	out := make(multiset)
	for _, tok := range strings.Fields(s) {
		out[tok] = 1
	}

	return out
}

func (m multiset) size() int {
	n := 0
	for _, c := range m {
		n += c
	}

	return n
}

// intersect returns Σ min(a[g], b[g]).
func intersect(a, b multiset) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for g, ca := range a {
		n += min(ca, b[g])
	}

	return n
}

func jaccardDistance(a, b multiset) float64 {
	inter := intersect(a, b)
	union := a.size() + b.size() - inter
	if union == 0 {
		return 0
	}

	return 1 - float64(inter)/float64(union)
}

func diceDistance(a, b multiset) float64 {
	total := a.size() + b.size()
	if total == 0 {
		return 0
	}

	return 1 - 2*float64(intersect(a, b))/float64(total)
}

func overlapDistance(a, b multiset) float64 {
	sa, sb := a.size(), b.size()
	if sa == 0 && sb == 0 {
		return 0
	}
	smaller := min(sa, sb)
	if smaller == 0 {
		return 1
	}

	return 1 - float64(intersect(a, b))/float64(smaller)
}

func cosineDistance(a, b multiset) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	// Integer sums keep the result independent of map iteration order.
	var dot, na, nb int
	for g, ca := range a {
		na += ca * ca
		dot += ca * b[g]
	}
	for _, cb := range b {
		nb += cb * cb
	}
	if na == 0 || nb == 0 {
		return 1
	}

	return math.Max(0, 1-float64(dot)/math.Sqrt(float64(na)*float64(nb))) // rounding can dip below zero
}

// newTokenMetric builds a TokenBased metric from a multiset extractor and a
// multiset distance. Identical inputs short-circuit to 0.
func newTokenMetric(name string, grams func(string) multiset, dist func(a, b multiset) float64) Metric {
	return &funcMetric{name: name, kind: TokenBased, fn: func(a, b string) float64 {
		if a == b {
			return 0
		}

		return dist(grams(a), grams(b))
	}}
}

func bigrams(s string) multiset { return qgrams(s, qgramSize) }

func newJaccard() Metric      { return newTokenMetric("jaccard", bigrams, jaccardDistance) }
func newSorensenDice() Metric { return newTokenMetric("sorensen_dice", bigrams, diceDistance) }
func newOverlap() Metric      { return newTokenMetric("overlap", bigrams, overlapDistance) }
func newCosine() Metric       { return newTokenMetric("cosine", bigrams, cosineDistance) }
func newTokenJaccard() Metric { return newTokenMetric("token_jaccard", tokenSet, jaccardDistance) }
