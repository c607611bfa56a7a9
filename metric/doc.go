// Package metric defines the pluggable distance functions used to compare
// text samples.
//
// 🚀 Kinds
//
//	EditBased         levenshtein, damerau_levenshtein, hamming, lcsseq,
//	                  jaro, jaro_winkler, diff_lines
//	TokenBased        jaccard, sorensen_dice, overlap, cosine (character
//	                  bigrams), token_jaccard (whitespace tokens)
//	CompressionBased  ncd_<codec> for every codec in package codec
//	Modified          partial, token_sort, token_set, weighted and normalized
//	                  wrappers around any composable metric
//
// Every metric satisfies Metric. Metrics whose cost has a per-item part
// (NCD caches C(x)) also satisfy Precalculator; the package-level
// Precalculate and DistanceFromTokens helpers give the remaining metrics a
// no-op pass-through so callers never branch on the kind.
//
// Contracts:
//   - Distance(a, a) == 0 for every metric.
//   - Results are finite and non-negative.
//   - Edit-based results are raw edit counts; token-based and modified
//     results lie in [0, 1]; NCD may slightly exceed 1 on tiny inputs.
//   - Compression-based metrics refuse modification (ErrNotComposable).
//
// Names are resolved through a Registry. Modified metrics use the
// "<modifier>:<base>" syntax, e.g. "token_sort:levenshtein". Unknown names
// resolve to the registered name with the smallest edit distance.
//
// Usage:
//
//	reg := metric.Default()
//	m, name, err := reg.Lookup("levenstein", metric.DefaultOptions())
//	// name == "levenshtein"
//	d, err := m.Distance("kitten", "sitting") // 3
package metric
