package codec

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

var lz4Range = Range{Min: 0, Max: 9, Default: 0}

var lz4Levels = [10]lz4.CompressionLevel{
	lz4.Fast, lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4,
	lz4.Level5, lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

func newLZ4(level int) (Compressor, error) {
	lvl := lz4Levels[level]

	return &streamCodec{name: "lz4", level: level, open: func(w io.Writer) (io.WriteCloser, error) {
		zw := lz4.NewWriter(w)
		if err := zw.Apply(lz4.CompressionLevelOption(lvl), lz4.ConcurrencyOption(1)); err != nil {
			return nil, err
		}

		return zw, nil
	}}, nil
}
