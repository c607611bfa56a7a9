// Package codec exposes compressors as a single capability: "how many bytes
// does this input compress to?".
//
// Normalized compression distance only needs compressed sizes, so every
// codec streams into a counting sink and never keeps the output.
//
// ⚙️ Codecs and level ranges (min..max, default):
//
//	zlib     0..9   6   klauspost/compress/zlib
//	gzip     0..9   9   klauspost/compress/gzip
//	deflate  0..9   6   klauspost/compress/flate (raw DEFLATE)
//	zstd     1..22  3   klauspost/compress/zstd
//	s2       1..3   1   klauspost/compress/s2 (1 fast, 2 better, 3 best)
//	xz       0..9   6   ulikunitz/xz (level selects the dictionary size)
//	lzma     0..9   6   ulikunitz/xz/lzma (level selects the dictionary size)
//	lz4      0..9   0   pierrec/lz4/v4 (0 is the fast mode)
//	brotli   0..11  11  andybalholm/brotli
//	bzip2    1..9   9   dsnet/compress/bzip2
//
// Out-of-range levels are clamped silently, never rejected. The clamped level
// is fixed when the Compressor is built, so every call in a run uses it.
//
// Every Compressor is safe for concurrent use.
//
// Usage:
//
//	c, err := codec.New("zstd", 30) // clamped to 22
//	n, err := c.CompressedLen([]byte("hello"))
package codec
