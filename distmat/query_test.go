package distmat_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/textdiv/distmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareOneToMany(t *testing.T) {
	cands := []string{"sitting", "kitten", "mitten", "bitten"}
	scores, err := distmat.CompareOneToMany(context.Background(), lookup(t, "levenshtein"), "kitten", cands)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 0, 1, 1}, scores)

	assert.Equal(t, []int{1, 2, 3}, distmat.Nearest(scores, 3))
	assert.Equal(t, []int{0, 2}, distmat.Farthest(scores, 2))
	assert.Equal(t, []int{1, 2, 3, 0}, distmat.Nearest(scores, 0))
	assert.Len(t, distmat.Farthest(scores, 99), 4)
}

// TestCompareOneToMany_MatchesMatrix checks query scores equal the matrix row.
func TestCompareOneToMany_MatchesMatrix(t *testing.T) {
	items := corpus(8)
	m := lookup(t, "levenshtein")
	dm, err := distmat.Compute(context.Background(), m, items)
	require.NoError(t, err)

	scores, err := distmat.CompareOneToMany(context.Background(), m, items[3], items, distmat.WithWorkers(2))
	require.NoError(t, err)
	row, err := dm.Row(3)
	require.NoError(t, err)
	assert.Equal(t, row, scores)
}

func TestCompareOneToMany_Empty(t *testing.T) {
	_, err := distmat.CompareOneToMany(context.Background(), lookup(t, "jaccard"), "q", nil)
	assert.ErrorIs(t, err, distmat.ErrEmptyCollection)
}

// TestCompareOneToMany_Precalc checks the cached NCD path against direct calls.
func TestCompareOneToMany_Precalc(t *testing.T) {
	items := corpus(6)
	m := lookup(t, "ncd_lz4")
	with, err := distmat.CompareOneToMany(context.Background(), m, items[0], items)
	require.NoError(t, err)
	without, err := distmat.CompareOneToMany(context.Background(), m, items[0], items, distmat.WithPrecalc(false))
	require.NoError(t, err)
	assert.Equal(t, without, with)
	assert.Zero(t, with[0])
}
