// Package metric - normalized compression distance.
//
// NCD turns any codec.Compressor into a Metric. The per-item share of work,
// C(x), is exposed through Precalculator so matrix builds compress each item
// once; the joint size C(x‖y) is inherent to the pair.
package metric

import (
	"fmt"

	"github.com/katalvlaran/textdiv/codec"
)

// NCD is the normalized compression distance over a compressor C:
//
//	NCD(x, y) = (C(x‖y) − min(C(x), C(y))) / max(C(x), C(y))
//
// Identical inputs (including two empty strings) are 0 without invoking the
// compressor. A zero denominator yields 0. Compressor artefacts that make the
// numerator negative are clamped to 0; values slightly above 1 on tiny inputs
// are expected and kept.
//
// Precalculate caches C(x) per item; C(x‖y) is always computed per pair.
type NCD struct {
	c codec.Compressor
}

// compile-time check: NCD takes part in precalculation.
var _ Precalculator = (*NCD)(nil)

// NewNCD wraps c. The compressor's level is already clamped by codec.New.
func NewNCD(c codec.Compressor) *NCD { return &NCD{c: c} }

// Name returns "ncd_<codec>".
func (n *NCD) Name() string { return "ncd_" + n.c.Name() }

// Kind returns CompressionBased.
func (n *NCD) Kind() Kind { return CompressionBased }

// Compressor returns the underlying codec (for reporting its level).
func (n *NCD) Compressor() codec.Compressor { return n.c }

// Distance computes C(x), C(y) and C(x‖y).
//
// Contract:
//   - Distance(x, x) == 0 without compressing.
//   - The result is ≥ 0; it may exceed 1 slightly on very short inputs.
//
// Complexity: three compressor passes over O(|a|+|b|) bytes.
func (n *NCD) Distance(a, b string) (float64, error) {
	if a == b {
		return 0, nil
	}
	ca, err := n.c.CompressedLen([]byte(a))
	if err != nil {
		return 0, err
	}
	cb, err := n.c.CompressedLen([]byte(b))
	if err != nil {
		return 0, err
	}

	return n.fromSizes(ca, cb, a, b)
}

// Precalculate returns C(s) as the token.
func (n *NCD) Precalculate(s string) (Token, error) {
	size, err := n.c.CompressedLen([]byte(s))
	if err != nil {
		return nil, err
	}

	return size, nil
}

// DistanceFromTokens reuses C(a) and C(b) from the tokens. It returns the
// same value as Distance(a, b).
//
// Errors: ErrForeignToken when a token was not produced by an NCD.
// Complexity: one compressor pass over |a|+|b| bytes.
func (n *NCD) DistanceFromTokens(ta, tb Token, a, b string) (float64, error) {
	if a == b {
		return 0, nil
	}
	ca, okA := ta.(int)
	cb, okB := tb.(int)
	if !okA || !okB {
		return 0, fmt.Errorf("%s: %w", n.Name(), ErrForeignToken)
	}

	return n.fromSizes(ca, cb, a, b)
}

// fromSizes finishes the formula given C(a) and C(b): it compresses a‖b and
// clamps a negative numerator to 0. A zero denominator (both empty) is 0.
func (n *NCD) fromSizes(ca, cb int, a, b string) (float64, error) {
	hi, lo := max(ca, cb), min(ca, cb)
	if hi == 0 {
		return 0, nil
	}
	joined := make([]byte, 0, len(a)+len(b))
	joined = append(joined, a...)
	joined = append(joined, b...)
	cab, err := n.c.CompressedLen(joined)
	if err != nil {
		return 0, err
	}
	num := cab - lo
	if num < 0 {
		num = 0
	}

	return float64(num) / float64(hi), nil
}
