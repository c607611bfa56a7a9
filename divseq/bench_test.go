package divseq_test

import (
	"testing"

	"github.com/katalvlaran/textdiv/divseq"
)

func BenchmarkSequence_MaxiMin500(b *testing.B) {
	dm := randomDistance(b, 500, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = divseq.Sequence(dm, divseq.MaxiMin)
	}
}

func BenchmarkSequence_MaxiMean500(b *testing.B) {
	dm := randomDistance(b, 500, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = divseq.Sequence(dm, divseq.MaxiMean)
	}
}
