package metric_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/textdiv/metric"
)

var (
	benchA = strings.Repeat("lorem ipsum dolor sit amet ", 40)
	benchB = strings.Repeat("lorem ipsum dolor sat amet ", 40)
)

func BenchmarkLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = metric.Levenshtein(benchA, benchB)
	}
}

// BenchmarkNCD_Precalc measures the per-pair cost once C(x) is cached.
func BenchmarkNCD_Precalc(b *testing.B) {
	m, _, err := metric.Default().Lookup("ncd_zstd", metric.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	ta, _ := metric.Precalculate(m, benchA)
	tb, _ := metric.Precalculate(m, benchB)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = metric.DistanceFromTokens(m, ta, tb, benchA, benchB)
	}
}
