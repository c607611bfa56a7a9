// SPDX-License-Identifier: MIT

package textdiv

import "errors"

// Error classes shared by every package in the module. Package-level
// sentinels wrap exactly one of these, so callers can match either the
// precise condition or its class with errors.Is.
var (
	// ErrConfiguration marks invalid input detected before any computation
	// starts: empty collections, unknown metric names, forbidden compositions.
	// Nothing is written when it is returned.
	ErrConfiguration = errors.New("textdiv: configuration error")

	// ErrComputation marks a failure while computing a distance (e.g. a codec
	// failed). It aborts the whole run; partial matrices are never returned.
	ErrComputation = errors.New("textdiv: computation error")
)
