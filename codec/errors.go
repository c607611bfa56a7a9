package codec

import (
	"fmt"

	"github.com/katalvlaran/textdiv"
)

var (
	// ErrUnknownCodec is returned by New and RangeOf for names that are not registered.
	ErrUnknownCodec = fmt.Errorf("codec: unknown codec: %w", textdiv.ErrConfiguration)

	// ErrCompress wraps any failure raised by an underlying compressor.
	ErrCompress = fmt.Errorf("codec: compression failed: %w", textdiv.ErrComputation)
)

// compressErrorf tags a codec failure with the codec name, keeping both the
// ErrCompress class and the library error reachable through errors.Is/As.
func compressErrorf(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrCompress, name, err)
}
