package codec

import (
	"io"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

var (
	xzRange   = Range{Min: 0, Max: 9, Default: 6}
	lzmaRange = Range{Min: 0, Max: 9, Default: 6}
)

// presetDictCap mirrors the xz-utils presets: the level only selects the
// dictionary capacity.
var presetDictCap = [10]int{
	256 << 10, // 0
	1 << 20,   // 1
	2 << 20,   // 2
	4 << 20,   // 3
	4 << 20,   // 4
	8 << 20,   // 5
	8 << 20,   // 6
	16 << 20,  // 7
	32 << 20,  // 8
	64 << 20,  // 9
}

func newXZ(level int) (Compressor, error) {
	cfg := xz.WriterConfig{DictCap: presetDictCap[level]}
	if err := cfg.Verify(); err != nil {
		return nil, compressErrorf("xz", err)
	}

	return &streamCodec{name: "xz", level: level, open: func(w io.Writer) (io.WriteCloser, error) {
		return cfg.NewWriter(w)
	}}, nil
}

func newLZMA(level int) (Compressor, error) {
	cfg := lzma.WriterConfig{DictCap: presetDictCap[level]}
	if err := cfg.Verify(); err != nil {
		return nil, compressErrorf("lzma", err)
	}

	return &streamCodec{name: "lzma", level: level, open: func(w io.Writer) (io.WriteCloser, error) {
		return cfg.NewWriter(w)
	}}, nil
}
