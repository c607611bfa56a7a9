// Package textdiv ranks and orders collections of text samples by pairwise
// dissimilarity and picks diverse subsets or total orderings from them.
//
// 🚀 What is textdiv?
//
//	A small, deterministic toolkit that brings together:
//		• Metrics: edit-based, q-gram/token-based, compression-based (NCD)
//		  and composed ("modified") distances behind one interface
//		• Codecs: zlib, gzip, deflate, zstd, s2, xz, lzma, lz4, brotli, bzip2
//		  exposed only as "compressed length" capabilities
//		• Distance matrices: symmetric N×N builds that evaluate the upper
//		  triangle once, optionally in parallel and with per-item precalc
//		• Diversity sequencing: greedy MaxiMin / MaxiMean orderings with
//		  rank vectors, O(N²) overall
//
// Data flow:
//
//	items ─► metric (+precalc) ─► distmat ─► divseq ─► order + ranks
//	                        └──► pair / one-vs-many query
//
// Under the hood, everything is organized into subpackages:
//
//	codec/    — compressor capability and concrete codecs with level clamping
//	metric/   — the Metric interface, metric kinds, registry and name resolution
//	matrix/   — dense row-major storage and distance-matrix validators
//	distmat/  — pairwise, matrix and one-vs-many computations
//	divseq/   — MaxiMin / MaxiMean diversity sequencing
//	corpus/   — file collection with extension filtering
//	report/   — CSV and JSON exporters
//
// Errors raised anywhere in the module belong to one of two classes,
// ErrConfiguration and ErrComputation, and can be matched with errors.Is.
//
//	go install github.com/katalvlaran/textdiv/cmd/textdiv@latest
package textdiv
