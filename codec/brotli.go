package codec

import (
	"io"

	"github.com/andybalholm/brotli"
	"github.com/dsnet/compress/bzip2"
)

var (
	brotliRange = Range{Min: brotli.BestSpeed, Max: brotli.BestCompression, Default: brotli.BestCompression}
	bzip2Range  = Range{Min: bzip2.BestSpeed, Max: bzip2.BestCompression, Default: bzip2.BestCompression}
)

func newBrotli(level int) (Compressor, error) {
	return &streamCodec{name: "brotli", level: level, open: func(w io.Writer) (io.WriteCloser, error) {
		return brotli.NewWriterLevel(w, level), nil
	}}, nil
}

func newBzip2(level int) (Compressor, error) {
	conf := &bzip2.WriterConfig{Level: level}

	return &streamCodec{name: "bzip2", level: level, open: func(w io.Writer) (io.WriteCloser, error) {
		return bzip2.NewWriter(w, conf)
	}}, nil
}
