// Package report writes distance matrices, diversity sequences and query
// results as CSV or JSON, and reads matrices back.
//
// CSV layouts:
//
//	matrix    File,<name_0>,...,<name_N-1>
//	          <name_i>,<d(i,0)>,...,<d(i,N-1)>
//	sequence  File,Rank_<strategy>
//	          <name>,<rank>      one row per item in selection order, rank 1-based
//	query     File,Distance
//	          <name>,<distance>  rows in the order given (nearest first)
//
// Numbers use the shortest decimal that round-trips, so a matrix written and
// read back is bit-identical. The readers accept matrices that are symmetric
// with a zero diagonal to within ImportEpsilon and store them exactly
// symmetric; anything further off is ErrMalformed.
package report
