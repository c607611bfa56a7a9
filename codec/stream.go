package codec

import "io"

// opener builds a compressing writer over w at a fixed level.
type opener func(w io.Writer) (io.WriteCloser, error)

// streamCodec drives any io.WriteCloser-style encoder into a countWriter.
// A fresh encoder is built per call, which keeps it safe for concurrent use.
type streamCodec struct {
	name  string
	level int
	open  opener
}

func (c *streamCodec) Name() string { return c.name }
func (c *streamCodec) Level() int   { return c.level }

// CompressedLen writes p through a fresh encoder and returns the byte count
// observed after Close (trailers included).
func (c *streamCodec) CompressedLen(p []byte) (int, error) {
	var cw countWriter
	w, err := c.open(&cw)
	if err != nil {
		return 0, compressErrorf(c.name, err)
	}
	if _, err = w.Write(p); err != nil {
		_ = w.Close()
		return 0, compressErrorf(c.name, err)
	}
	if err = w.Close(); err != nil {
		return 0, compressErrorf(c.name, err)
	}

	return cw.n, nil
}

// bufferCodec wraps one-shot encoders that return the encoded block.
type bufferCodec struct {
	name   string
	level  int
	encode func(p []byte) ([]byte, error)
}

func (c *bufferCodec) Name() string { return c.name }
func (c *bufferCodec) Level() int   { return c.level }

func (c *bufferCodec) CompressedLen(p []byte) (int, error) {
	out, err := c.encode(p)
	if err != nil {
		return 0, compressErrorf(c.name, err)
	}

	return len(out), nil
}
