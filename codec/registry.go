package codec

import "fmt"

// entry binds a codec name to its level range and constructor.
type entry struct {
	name  string
	rng   Range
	build func(level int) (Compressor, error)
}

// registry is ordered: Names reports codecs in this order.
var registry = []entry{
	{"zlib", zlibRange, newZlib},
	{"gzip", gzipRange, newGzip},
	{"deflate", deflateRange, newDeflate},
	{"zstd", zstdRange, newZstd},
	{"s2", s2Range, newS2},
	{"xz", xzRange, newXZ},
	{"lzma", lzmaRange, newLZMA},
	{"lz4", lz4Range, newLZ4},
	{"brotli", brotliRange, newBrotli},
	{"bzip2", bzip2Range, newBzip2},
}

func lookup(name string) (entry, error) {
	for _, e := range registry {
		if e.name == name {
			return e, nil
		}
	}

	return entry{}, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

// New builds the named codec at level, clamped into the codec's range.
// Pass DefaultLevel for the codec default.
func New(name string, level int) (Compressor, error) {
	e, err := lookup(name)
	if err != nil {
		return nil, err
	}

	return e.build(e.rng.Clamp(level))
}

// RangeOf reports the supported level range of the named codec.
func RangeOf(name string) (Range, error) {
	e, err := lookup(name)
	if err != nil {
		return Range{}, err
	}

	return e.rng, nil
}

// Names lists registered codecs in registration order.
func Names() []string {
	out := make([]string, len(registry))
	for i, e := range registry {
		out[i] = e.name
	}

	return out
}
