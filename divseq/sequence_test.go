package divseq_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/textdiv"
	"github.com/katalvlaran/textdiv/divseq"
	"github.com/katalvlaran/textdiv/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// scenario is the four-item matrix A, B, C, D.
var scenario = [][]float64{
	{0, 1, 9, 3},
	{1, 0, 4, 8},
	{9, 4, 0, 2},
	{3, 8, 2, 0},
}

func TestSequence_MaxiMinScenario(t *testing.T) {
	res, err := divseq.Sequence(mustDense(t, scenario), divseq.MaxiMin)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 3, 1}, res.Order) // C, A, D, B
	assert.Equal(t, []int{1, 3, 0, 2}, res.Rank)
	assert.Equal(t, divseq.MaxiMin, res.Strategy)
}

// TestSequence_MaxiMeanScenario: after C and A, B and D both average 2.5,
// so the lower index (B) wins.
func TestSequence_MaxiMeanScenario(t *testing.T) {
	res, err := divseq.Sequence(mustDense(t, scenario), divseq.MaxiMean)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1, 3}, res.Order)
	assert.Equal(t, []int{1, 2, 0, 3}, res.Rank)
}

func TestSequence_Single(t *testing.T) {
	for _, s := range divseq.Strategies {
		res, err := divseq.Sequence(mustDense(t, [][]float64{{0}}), s)
		require.NoError(t, err)
		assert.Equal(t, []int{0}, res.Order)
		assert.Equal(t, []int{0}, res.Rank)
	}
}

// TestSequence_SeedTie checks the lowest index wins equal row sums.
func TestSequence_SeedTie(t *testing.T) {
	res, err := divseq.Sequence(mustDense(t, [][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}), divseq.MaxiMin)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestSequence_Errors(t *testing.T) {
	_, err := divseq.Sequence(nil, divseq.MaxiMin)
	require.ErrorIs(t, err, divseq.ErrEmptyMatrix)
	assert.ErrorIs(t, err, textdiv.ErrConfiguration)

	var typedNil *matrix.Dense
	_, err = divseq.Sequence(typedNil, divseq.MaxiMin)
	assert.ErrorIs(t, err, divseq.ErrEmptyMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = divseq.Sequence(rect, divseq.MaxiMin)
	assert.ErrorIs(t, err, divseq.ErrInvalidMatrix)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = divseq.Sequence(mustDense(t, [][]float64{{0, -1}, {-1, 0}}), divseq.MaxiMin)
	assert.ErrorIs(t, err, matrix.ErrNegativeEntry)

	_, err = divseq.Sequence(mustDense(t, [][]float64{{0, 1}, {2, 0}}), divseq.MaxiMin)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, err = divseq.Sequence(mustDense(t, scenario), divseq.Strategy(7))
	assert.ErrorIs(t, err, divseq.ErrUnknownStrategy)
}

// randomDistance returns a symmetric zero-diagonal matrix with values that
// collide often, to exercise the tie rules.
func randomDistance(t testing.TB, n int, seed int64) *matrix.Dense {
	r := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, m.SetSym(i, j, float64(r.Intn(5))))
		}
	}

	return m
}

// TestSequence_PermutationAndInverse checks the structural properties and
// determinism on random inputs.
func TestSequence_PermutationAndInverse(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		dm := randomDistance(t, 3+int(seed), seed)
		for _, s := range divseq.Strategies {
			res, err := divseq.Sequence(dm, s)
			require.NoError(t, err)
			n := dm.Rows()
			require.Len(t, res.Order, n)
			require.Len(t, res.Rank, n)

			seen := make([]bool, n)
			for k, item := range res.Order {
				require.False(t, seen[item], "duplicate item %d", item)
				seen[item] = true
				assert.Equal(t, k, res.Rank[item])
			}

			again, err := divseq.Sequence(dm, s)
			require.NoError(t, err)
			assert.Equal(t, res, again, "sequencing must be deterministic")
		}
	}
}

// TestSequence_MatchesNaive compares against the O(N³) recomputation.
func TestSequence_MatchesNaive(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		dm := randomDistance(t, 12, seed)
		for _, s := range divseq.Strategies {
			res, err := divseq.Sequence(dm, s)
			require.NoError(t, err)
			assert.Equal(t, naive(dm, s), res.Order, "seed=%d %v", seed, s)
		}
	}
}

// TestSequence_ForeignMatrix runs the non-Dense path.
func TestSequence_ForeignMatrix(t *testing.T) {
	dense := mustDense(t, scenario)
	res, err := divseq.Sequence(wrapped{dense}, divseq.MaxiMin)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 3, 1}, res.Order)
}

func TestResult_Prefix(t *testing.T) {
	res, err := divseq.Sequence(mustDense(t, scenario), divseq.MaxiMin)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, res.Prefix(2))
	assert.Empty(t, res.Prefix(-1))
	assert.Equal(t, res.Order, res.Prefix(10))

	p := res.Prefix(1)
	p[0] = 99
	assert.Equal(t, 2, res.Order[0], "prefix is a copy")
}

func TestParseStrategy(t *testing.T) {
	s, err := divseq.ParseStrategy("maximin")
	require.NoError(t, err)
	assert.Equal(t, divseq.MaxiMin, s)

	s, err = divseq.ParseStrategy("MaxiMean")
	require.NoError(t, err)
	assert.Equal(t, divseq.MaxiMean, s)
	assert.Equal(t, "MaxiMean", s.String())

	_, err = divseq.ParseStrategy("maxisum")
	assert.ErrorIs(t, err, divseq.ErrUnknownStrategy)
}

// wrapped hides the concrete type so Sequence takes the generic path.
type wrapped struct{ *matrix.Dense }

func (w wrapped) Clone() matrix.Matrix { return wrapped{w.Dense.Clone().(*matrix.Dense)} }

// naive recomputes every candidate score from scratch at each step.
func naive(dm *matrix.Dense, s divseq.Strategy) []int {
	n := dm.Rows()
	rows := dm.ToRows()
	bestSeed, bestSum := 0, -1.0
	for i, r := range rows {
		sum := 0.0
		for _, v := range r {
			sum += v
		}
		if sum > bestSum {
			bestSeed, bestSum = i, sum
		}
	}
	order := []int{bestSeed}
	selected := map[int]bool{bestSeed: true}
	for len(order) < n {
		best, bestVal := -1, 0.0
		for j := 0; j < n; j++ {
			if selected[j] {
				continue
			}
			var v float64
			if s == divseq.MaxiMin {
				v = rows[j][order[0]]
				for _, k := range order {
					v = min(v, rows[j][k])
				}
			} else {
				for _, k := range order {
					v += rows[j][k]
				}
				v /= float64(len(order))
			}
			if best < 0 || v > bestVal {
				best, bestVal = j, v
			}
		}
		order = append(order, best)
		selected[best] = true
	}

	return order
}
