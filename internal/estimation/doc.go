// Package estimation computes paint quantities, cost and labor for a set of measured surfaces.
//
// Estimate is the whole formula. The Engine runs pluggable Calculator objects that itemize the same
// figures into a breakdown (one line per primer, paint and labor).
package estimation
