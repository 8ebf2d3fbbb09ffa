// Package partition implements the pre-partition analyzer, partition
// enumerator, and range coalescer built on top of [indexspace] and [grid]:
// given an [indexspace.IndexTransform] and a selection of its output
// dimensions tied to a [grid.Grid], it enumerates the grid cells the
// transform's image intersects and, for each, a restricted cell transform
// whose image lies entirely within that one cell.
package partition
