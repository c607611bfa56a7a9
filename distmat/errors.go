package distmat

import (
	"fmt"

	"github.com/katalvlaran/textdiv"
)

var (
	// ErrEmptyCollection is returned when there is nothing to compare.
	ErrEmptyCollection = fmt.Errorf("distmat: empty collection: %w", textdiv.ErrConfiguration)

	// ErrNilMetric is returned when no metric is supplied.
	ErrNilMetric = fmt.Errorf("distmat: nil metric: %w", textdiv.ErrConfiguration)

	// ErrInvalidDistance is returned when a metric yields NaN, ±Inf or a
	// negative value.
	ErrInvalidDistance = fmt.Errorf("distmat: invalid distance value: %w", textdiv.ErrComputation)
)

// pairErrorf tags err with the failing pair.
func pairErrorf(i, j int, err error) error {
	return fmt.Errorf("distmat: pair (%d,%d): %w", i, j, err)
}
