package codec

import (
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

var (
	zlibRange    = Range{Min: 0, Max: 9, Default: 6}
	gzipRange    = Range{Min: 0, Max: 9, Default: 9}
	deflateRange = Range{Min: 0, Max: 9, Default: 6}
)

func newZlib(level int) (Compressor, error) {
	return &streamCodec{name: "zlib", level: level, open: func(w io.Writer) (io.WriteCloser, error) {
		return zlib.NewWriterLevel(w, level)
	}}, nil
}

func newGzip(level int) (Compressor, error) {
	return &streamCodec{name: "gzip", level: level, open: func(w io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriterLevel(w, level)
	}}, nil
}

func newDeflate(level int) (Compressor, error) {
	return &streamCodec{name: "deflate", level: level, open: func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, level)
	}}, nil
}
