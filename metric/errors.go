package metric

import (
	"fmt"

	"github.com/katalvlaran/textdiv"
)

var (
	// ErrUnknownMetric is returned when a name cannot be resolved at all
	// (empty name or empty registry).
	ErrUnknownMetric = fmt.Errorf("metric: unknown metric: %w", textdiv.ErrConfiguration)

	// ErrUnknownModifier is returned for an unknown "<modifier>:" prefix that
	// has no fuzzy candidate.
	ErrUnknownModifier = fmt.Errorf("metric: unknown modifier: %w", textdiv.ErrConfiguration)

	// ErrNotComposable is returned when a modifier is applied to a metric
	// that refuses modification (compression-based metrics).
	ErrNotComposable = fmt.Errorf("metric: metric cannot be modified: %w", textdiv.ErrConfiguration)

	// ErrDuplicateMetric is returned by Register for an already registered name.
	ErrDuplicateMetric = fmt.Errorf("metric: duplicate metric name: %w", textdiv.ErrConfiguration)

	// ErrForeignToken is returned when a token produced by a different metric
	// is handed to DistanceFromTokens.
	ErrForeignToken = fmt.Errorf("metric: token not produced by this metric: %w", textdiv.ErrComputation)
)
