// Package metric - modifiers.
//
// A modifier wraps a base metric, normalized into [0, 1] first, and changes
// how the two strings are presented to it:
//   - normalized: the base distance divided by its upper bound.
//   - partial:    best window of the longer string against the shorter one.
//   - token_sort: whitespace tokens sorted before comparing.
//   - token_set:  shared tokens compared against each side's remainder.
//   - weighted:   best of the above, rescaled by the length ratio.
//
// Compression-based metrics are not composable: window and token rewrites
// change what the compressor sees and the result is no longer an NCD.
package metric

import (
	"fmt"
	"sort"
	"strings"
)

// Modifier names accepted by Compose, in registration order.
const (
	ModNormalized = "normalized"
	ModPartial    = "partial"
	ModTokenSort  = "token_sort"
	ModTokenSet   = "token_set"
	ModWeighted   = "weighted"
)

// modifierNames drives fuzzy resolution of the "<modifier>:" prefix.
var modifierNames = []string{ModNormalized, ModPartial, ModTokenSort, ModTokenSet, ModWeighted}

// Modifiers returns the known modifier names in registration order.
func Modifiers() []string { return append([]string(nil), modifierNames...) }

// Compose wraps base with the named modifier. It fails with ErrNotComposable
// before any computation when base refuses modification.
//
// Contract:
//   - The modifier name must be exact; fuzzy resolution happens in Lookup.
//   - Every composed metric returns values in [0, 1] and 0 for a == b.
//
// Errors: ErrNotComposable (checked first), ErrUnknownModifier.
// Complexity: O(1); the base is wrapped, not rebuilt.
func Compose(modifier string, base Metric) (Metric, error) {
	if !base.Kind().Composable() {
		return nil, fmt.Errorf("%s on %s: %w", modifier, base.Name(), ErrNotComposable)
	}
	norm := &normalized{base: base}
	switch modifier {
	case ModNormalized:
		return norm, nil
	case ModPartial:
		return &composed{name: modifier, base: norm, fn: partialDistance}, nil
	case ModTokenSort:
		return &composed{name: modifier, base: norm, fn: tokenSortDistance}, nil
	case ModTokenSet:
		return &composed{name: modifier, base: norm, fn: tokenSetDistance}, nil
	case ModWeighted:
		return &composed{name: modifier, base: norm, fn: weightedDistance}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModifier, modifier)
	}
}

// normalized maps the base distance into [0, 1] using its Bounded upper
// bound; unbounded bases are clamped.
type normalized struct {
	base Metric
}

func (n *normalized) Name() string { return ModNormalized + ":" + n.base.Name() }
func (n *normalized) Kind() Kind   { return Modified }

func (n *normalized) Distance(a, b string) (float64, error) {
	d, err := n.base.Distance(a, b)
	if err != nil || d == 0 {
		return d, err
	}
	if bd, ok := n.base.(Bounded); ok {
		hi := bd.MaxDistance(a, b)
		if hi <= 0 {
			return 0, nil
		}
		d /= hi
	}

	return min(d, 1), nil
}

// composed applies a preprocessing/rescaling strategy around a normalized base.
type composed struct {
	name string
	base *normalized
	fn   func(base *normalized, a, b string) (float64, error)
}

func (c *composed) Name() string { return c.name + ":" + c.base.base.Name() }
func (c *composed) Kind() Kind   { return Modified }

func (c *composed) Distance(a, b string) (float64, error) {
	if a == b {
		return 0, nil
	}

	return c.fn(c.base, a, b)
}

// partialDistance slides the shorter string over every same-length window of
// the longer one and keeps the best window. A perfect window stops the scan.
//
// Complexity: (|long| − |short| + 1) base calls on windows of |short| runes.
func partialDistance(base *normalized, a, b string) (float64, error) {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return base.Distance(a, b)
	}
	s := string(short)
	best := 1.0
	for i := 0; i+len(short) <= len(long); i++ {
		d, err := base.Distance(s, string(long[i:i+len(short)]))
		if err != nil {
			return 0, err
		}
		if d < best {
			best = d
			if best == 0 {
				break
			}
		}
	}

	return best, nil
}

// sortedTokens joins the whitespace tokens of s in lexical order.
func sortedTokens(s string) string {
	f := strings.Fields(s)
	sort.Strings(f)

	return strings.Join(f, " ")
}

func tokenSortDistance(base *normalized, a, b string) (float64, error) {
	return base.Distance(sortedTokens(a), sortedTokens(b))
}

// tokenSetDistance compares the sorted token intersection against each side's
// intersection+remainder and keeps the smallest of the three distances.
func tokenSetDistance(base *normalized, a, b string) (float64, error) {
	ta, tb := tokenSet(a), tokenSet(b)
	var inter, onlyA, onlyB []string
	for tok := range ta {
		if tb[tok] > 0 {
			inter = append(inter, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range tb {
		if ta[tok] == 0 {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(inter)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	t0 := strings.Join(inter, " ")
	t1 := strings.TrimSpace(t0 + " " + strings.Join(onlyA, " "))
	t2 := strings.TrimSpace(t0 + " " + strings.Join(onlyB, " "))

	best := 1.0
	for _, pair := range [3][2]string{{t0, t1}, {t0, t2}, {t1, t2}} {
		d, err := base.Distance(pair[0], pair[1])
		if err != nil {
			return 0, err
		}
		best = min(best, d)
	}

	return best, nil
}

// Length-ratio thresholds and scales of the weighted modifier.
const (
	weightedPartialRatio = 1.5  // at or above: also try partial matching
	weightedLongRatio    = 8.0  // at or above: partial matches count less
	weightedTokenScale   = 0.95 // token-reordering matches are slightly discounted
	weightedPartialScale = 0.9
	weightedLongScale    = 0.6
)

// weightedDistance rescales the best of several match strategies by a
// match-quality heuristic driven by the length ratio, then converts the
// resulting similarity back to a distance.
func weightedDistance(base *normalized, a, b string) (float64, error) {
	la, lb := runeLen(a), runeLen(b)
	if la == 0 || lb == 0 {
		return base.Distance(a, b)
	}
	full, err := base.Distance(a, b)
	if err != nil {
		return 0, err
	}
	sim := 1 - full
	ratio := float64(max(la, lb)) / float64(min(la, lb))

	tokenScale := weightedTokenScale
	if ratio >= weightedPartialRatio {
		scale := weightedPartialScale
		if ratio >= weightedLongRatio {
			scale = weightedLongScale
		}
		p, err := partialDistance(base, a, b)
		if err != nil {
			return 0, err
		}
		sim = max(sim, scale*(1-p))
		tokenScale *= scale
	}

	ts, err := tokenSortDistance(base, a, b)
	if err != nil {
		return 0, err
	}
	tt, err := tokenSetDistance(base, a, b)
	if err != nil {
		return 0, err
	}
	sim = max(sim, tokenScale*(1-ts), tokenScale*(1-tt))

	return max(0, 1-sim), nil
}
