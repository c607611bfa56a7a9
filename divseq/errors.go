package divseq

import (
	"fmt"

	"github.com/katalvlaran/textdiv"
)

var (
	// ErrEmptyMatrix is returned for a nil or 0×0 matrix.
	ErrEmptyMatrix = fmt.Errorf("divseq: empty distance matrix: %w", textdiv.ErrConfiguration)

	// ErrInvalidMatrix wraps a matrix that violates the distance contract
	// (non-square, NaN/Inf, negative, non-zero diagonal, asymmetric).
	// The underlying matrix sentinel stays reachable with errors.Is.
	ErrInvalidMatrix = fmt.Errorf("divseq: invalid distance matrix: %w", textdiv.ErrConfiguration)

	// ErrUnknownStrategy is returned by ParseStrategy and Sequence.
	ErrUnknownStrategy = fmt.Errorf("divseq: unknown strategy: %w", textdiv.ErrConfiguration)
)
