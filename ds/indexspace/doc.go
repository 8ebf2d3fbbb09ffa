// Package indexspace implements the integer index-space primitives that an
// index transform is built from: half-open intervals, boxes, index arrays,
// and the three kinds of output index map (constant, single-input-dimension,
// and index-array) that an [IndexTransform] composes.
//
// Everything here is pure and deterministic. Index arithmetic that could
// overflow is routed through [github.com/tawesoft/gridspace/operator/checked]
// and reported as [ErrOverflow] rather than silently wrapping.
package indexspace
