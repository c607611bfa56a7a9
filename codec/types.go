package codec

// DefaultLevel asks New for the codec's documented default level.
const DefaultLevel = -1

// Compressor reports the compressed length of its input.
type Compressor interface {
	// Name returns the registry name of the codec (e.g. "zstd").
	Name() string

	// Level returns the effective (already clamped) compression level.
	Level() int

	// CompressedLen compresses p and returns the output size in bytes.
	CompressedLen(p []byte) (int, error)
}

// Range describes the levels a codec supports.
type Range struct {
	Min, Max, Default int
}

// Clamp maps level into [Min, Max]; DefaultLevel maps to Default.
func (r Range) Clamp(level int) int {
	switch {
	case level == DefaultLevel:
		return r.Default
	case level < r.Min:
		return r.Min
	case level > r.Max:
		return r.Max
	default:
		return level
	}
}

// countWriter is an io.Writer that only counts bytes.
type countWriter struct{ n int }

func (w *countWriter) Write(p []byte) (int, error) {
	w.n += len(p)

	return len(p), nil
}
