package report

import (
	"fmt"

	"github.com/katalvlaran/textdiv"
)

var (
	// ErrNameCount is returned when the number of names does not match the
	// number of items in the data.
	ErrNameCount = fmt.Errorf("report: names do not match data size: %w", textdiv.ErrConfiguration)

	// ErrMalformed is returned by the readers for input that is not a
	// matrix export.
	ErrMalformed = fmt.Errorf("report: malformed input: %w", textdiv.ErrConfiguration)
)
