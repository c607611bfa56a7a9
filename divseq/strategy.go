package divseq

import (
	"fmt"
	"strings"
)

// Strategy selects the greedy objective.
type Strategy int

const (
	// MaxiMin maximizes the distance to the nearest already-selected item.
	MaxiMin Strategy = iota

	// MaxiMean maximizes the mean distance to the already-selected items.
	MaxiMean
)

// Strategies lists every strategy in declaration order.
var Strategies = []Strategy{MaxiMin, MaxiMean}

// String returns the label used in reports ("MaxiMin", "MaxiMean").
func (s Strategy) String() string {
	switch s {
	case MaxiMin:
		return "MaxiMin"
	case MaxiMean:
		return "MaxiMean"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool { return s == MaxiMin || s == MaxiMean }

// ParseStrategy maps a label onto a Strategy, ignoring case.
func ParseStrategy(label string) (Strategy, error) {
	for _, s := range Strategies {
		if strings.EqualFold(label, s.String()) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, label)
}
