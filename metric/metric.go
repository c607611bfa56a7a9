package metric

import "unicode/utf8"

// Kind tags the closed set of metric families.
type Kind int

const (
	// EditBased metrics count character (or line) edits.
	EditBased Kind = iota

	// TokenBased metrics compare q-gram or token multisets.
	TokenBased

	// CompressionBased metrics estimate information distance through a compressor.
	CompressionBased

	// Modified metrics wrap a composable base metric.
	Modified
)

// String returns the human-readable kind name.
func (k Kind) String() string {
	switch k {
	case EditBased:
		return "edit"
	case TokenBased:
		return "token"
	case CompressionBased:
		return "compression"
	case Modified:
		return "modified"
	default:
		return "unknown"
	}
}

// Composable reports whether modifiers may wrap metrics of this kind.
func (k Kind) Composable() bool { return k != CompressionBased }

// Metric computes a non-negative dissimilarity between two strings.
// Implementations must be safe for concurrent use.
type Metric interface {
	// Name returns the canonical registry name.
	Name() string

	// Kind returns the metric family.
	Kind() Kind

	// Distance returns the dissimilarity of a and b.
	Distance(a, b string) (float64, error)
}

// Token is the opaque per-item value produced by Precalculate. Only the
// metric that produced it may inspect it.
type Token any

// Precalculator is implemented by metrics with a per-item share of work.
type Precalculator interface {
	Metric

	// Precalculate computes the per-item token of s.
	Precalculate(s string) (Token, error)

	// DistanceFromTokens computes Distance(a, b) reusing the tokens of a and b.
	DistanceFromTokens(ta, tb Token, a, b string) (float64, error)
}

// Bounded is implemented by metrics with a known upper bound for a pair;
// Normalized divides by it.
type Bounded interface {
	MaxDistance(a, b string) float64
}

// SupportsPrecalc reports whether m benefits from per-item precalculation.
func SupportsPrecalc(m Metric) bool {
	_, ok := m.(Precalculator)

	return ok
}

// Precalculate returns m's token for s, or a nil token for metrics without
// a per-item share of work.
func Precalculate(m Metric, s string) (Token, error) {
	if p, ok := m.(Precalculator); ok {
		return p.Precalculate(s)
	}

	return nil, nil
}

// DistanceFromTokens computes the distance using tokens when m supports
// them and falls back to Distance otherwise.
func DistanceFromTokens(m Metric, ta, tb Token, a, b string) (float64, error) {
	if p, ok := m.(Precalculator); ok {
		return p.DistanceFromTokens(ta, tb, a, b)
	}

	return m.Distance(a, b)
}

// funcMetric adapts an infallible distance function to Metric.
type funcMetric struct {
	name  string
	kind  Kind
	fn    func(a, b string) float64
	bound func(a, b string) float64
}

func (f *funcMetric) Name() string { return f.name }
func (f *funcMetric) Kind() Kind   { return f.kind }

func (f *funcMetric) Distance(a, b string) (float64, error) {
	return f.fn(a, b), nil
}

func (f *funcMetric) MaxDistance(a, b string) float64 {
	if f.bound == nil {
		return 1
	}

	return f.bound(a, b)
}

// maxRuneLen is the Bounded helper shared by the edit counts.
func maxRuneLen(a, b string) float64 {
	return float64(max(runeLen(a), runeLen(b)))
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
