package codec

import (
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

var (
	zstdRange = Range{Min: 1, Max: 22, Default: 3}
	s2Range   = Range{Min: 1, Max: 3, Default: 1}
)

// newZstd shares one encoder: EncodeAll is safe for concurrent use and each
// call stays on the calling goroutine.
func newZstd(level int) (Compressor, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
		zstd.WithEncoderConcurrency(1),
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		return nil, compressErrorf("zstd", err)
	}

	return &bufferCodec{name: "zstd", level: level, encode: func(p []byte) ([]byte, error) {
		return enc.EncodeAll(p, nil), nil
	}}, nil
}

func newS2(level int) (Compressor, error) {
	encode := s2.Encode
	switch level {
	case 2:
		encode = s2.EncodeBetter
	case 3:
		encode = s2.EncodeBest
	}

	return &bufferCodec{name: "s2", level: level, encode: func(p []byte) ([]byte, error) {
		return encode(nil, p), nil
	}}, nil
}
