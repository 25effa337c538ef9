// Package genproblem generates random VM-placement problems for
// benchmarking, the Go counterpart of original_source/VMAllocation/
// ProblemGenerator.cpp: a fixed number of PM "types" (capacity vectors) are
// drawn once, then each PM is assigned one type, so that real-world-style
// host homogeneity (a handful of distinct SKUs) is preserved rather than
// every PM getting an independent random capacity.
package genproblem
