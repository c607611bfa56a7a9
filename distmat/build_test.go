package distmat_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/katalvlaran/textdiv"
	"github.com/katalvlaran/textdiv/distmat"
	"github.com/katalvlaran/textdiv/matrix"
	"github.com/katalvlaran/textdiv/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t testing.TB, name string) metric.Metric {
	t.Helper()
	m, _, err := metric.Default().Lookup(name, metric.DefaultOptions())
	require.NoError(t, err)

	return m
}

func corpus(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strings.Repeat(fmt.Sprintf("sample %d text %d ", i, i*i%7), 3+i%5)
	}

	return out
}

// countingMetric counts calls and optionally fails on one pair.
type countingMetric struct {
	calls   atomic.Int64
	failOn  [2]string
	failErr error
	value   float64
}

func (c *countingMetric) Name() string       { return "counting" }
func (c *countingMetric) Kind() metric.Kind { return metric.EditBased }
func (c *countingMetric) Distance(a, b string) (float64, error) {
	c.calls.Add(1)
	if c.failErr != nil && a == c.failOn[0] && b == c.failOn[1] {
		return 0, c.failErr
	}

	return c.value, nil
}

func TestCompute_Empty(t *testing.T) {
	_, err := distmat.Compute(context.Background(), lookup(t, "levenshtein"), nil)
	require.ErrorIs(t, err, distmat.ErrEmptyCollection)
	assert.ErrorIs(t, err, textdiv.ErrConfiguration)

	_, err = distmat.Compute(context.Background(), nil, []string{"a"})
	assert.ErrorIs(t, err, distmat.ErrNilMetric)
}

func TestCompute_Single(t *testing.T) {
	m := &countingMetric{value: 1}
	dm, err := distmat.Compute(context.Background(), m, []string{"only"})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}}, dm.ToRows())
	assert.Zero(t, m.calls.Load(), "the diagonal never calls the metric")
}

// TestCompute_UpperTriangleOnly checks the metric is called once per i<j pair.
func TestCompute_UpperTriangleOnly(t *testing.T) {
	m := &countingMetric{value: 2}
	items := corpus(9)
	dm, err := distmat.Compute(context.Background(), m, items, distmat.WithWorkers(3))
	require.NoError(t, err)
	assert.Equal(t, int64(9*8/2), m.calls.Load())

	_, err = matrix.ValidateDistance(dm)
	require.NoError(t, err)
}

func TestCompute_SmallValues(t *testing.T) {
	dm, err := distmat.Compute(context.Background(), lookup(t, "levenshtein"),
		[]string{"kitten", "sitting", "kitten"})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 3, 0},
		{3, 0, 3},
		{0, 3, 0},
	}, dm.ToRows())
}

// TestCompute_DeterministicAcrossWorkers builds the same matrix with 1..8
// workers, with and without precalculation, and demands bit equality.
func TestCompute_DeterministicAcrossWorkers(t *testing.T) {
	items := corpus(14)
	for _, name := range []string{"ncd_zlib", "ncd_zstd", "jaro_winkler", "token_set:levenshtein"} {
		m := lookup(t, name)
		ref, err := distmat.Compute(context.Background(), m, items, distmat.WithWorkers(1), distmat.WithPrecalc(false))
		require.NoError(t, err)
		_, err = matrix.ValidateDistance(ref)
		require.NoError(t, err, name)

		for _, w := range []int{1, 2, 4, 8} {
			for _, pre := range []bool{true, false} {
				dm, err := distmat.Compute(context.Background(), m, items,
					distmat.WithWorkers(w), distmat.WithPrecalc(pre))
				require.NoError(t, err)
				assert.True(t, ref.Equal(dm), "%s workers=%d precalc=%v", name, w, pre)
			}
		}
	}
}

func TestCompute_ErrorAborts(t *testing.T) {
	items := corpus(6)
	boom := errors.New("boom")
	m := &countingMetric{value: 1, failOn: [2]string{items[1], items[4]}, failErr: boom}

	dm, err := distmat.Compute(context.Background(), m, items, distmat.WithWorkers(2))
	require.Error(t, err)
	assert.Nil(t, dm, "no partial matrix")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "pair (1,4)")
}

func TestCompute_InvalidValue(t *testing.T) {
	m := &countingMetric{value: -1}
	_, err := distmat.Compute(context.Background(), m, corpus(3))
	require.ErrorIs(t, err, distmat.ErrInvalidDistance)
	assert.ErrorIs(t, err, textdiv.ErrComputation)
}

func TestCompute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := distmat.Compute(ctx, lookup(t, "levenshtein"), corpus(5))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompute_Timeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)
	_, err := distmat.Compute(ctx, lookup(t, "levenshtein"), corpus(5))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestCompute_Progress checks the cadence bound, monotonicity and the final call.
func TestCompute_Progress(t *testing.T) {
	const n = 40
	total := n * (n - 1) / 2
	var calls []int
	dm, err := distmat.Compute(context.Background(), &countingMetric{value: 1}, corpus(n),
		distmat.WithWorkers(4),
		distmat.WithProgress(func(done, tot int) {
			assert.Equal(t, total, tot)
			calls = append(calls, done) // serialized by the builder
		}))
	require.NoError(t, err)
	require.NotNil(t, dm)

	require.NotEmpty(t, calls)
	assert.LessOrEqual(t, len(calls), 101)
	assert.Equal(t, total, calls[len(calls)-1])
	assert.IsIncreasing(t, calls)
}

func TestPair(t *testing.T) {
	d, err := distmat.Pair(lookup(t, "levenshtein"), "kitten", "sitting")
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)

	_, err = distmat.Pair(&countingMetric{value: -0.5}, "a", "b")
	assert.ErrorIs(t, err, distmat.ErrInvalidDistance)
}
