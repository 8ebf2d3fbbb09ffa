// Package grid implements the [Grid] abstraction: a mapping between an
// output index space and an infinite lattice of integer cell coordinates,
// one cell size or split-point set per dimension.
//
// Two concrete grids are provided: [RegularGrid], whose cells are all the
// same size, and [IrregularGrid], whose cells are bounded by caller-supplied
// split points and whose outermost two cells per dimension are unbounded.
package grid
