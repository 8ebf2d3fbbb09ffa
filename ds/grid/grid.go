package grid

import (
    "github.com/tawesoft/gridspace/ds/indexspace"
)

// Grid maps output-space coordinates, one dimension at a time, to and from
// an integer lattice of cell indices. Implementations are immutable after
// construction and safe for concurrent use by multiple goroutines.
type Grid interface {
    // Rank returns the number of dimensions this grid covers.
    Rank() int

    // OutputToCell returns the cell index along dim containing output.
    OutputToCell(dim int, output indexspace.Index) indexspace.Index

    // CellToOutputInterval returns the output-space interval covered by
    // cell along dim. The interval may be unbounded in either direction
    // (see [indexspace.NegInfinity], [indexspace.PosInfinity]).
    CellToOutputInterval(dim int, cell indexspace.Index) indexspace.IndexInterval

    // Bounds returns, in grid cell-index space, the box of cell indices the
    // grid actually distinguishes, and whether that box is meaningful. A
    // RegularGrid is unbounded in every dimension and returns false; an
    // IrregularGrid with k split points along a dimension returns the
    // half-open cell-index interval [-1, k), covering its k+1 cells
    // including the two unbounded outer ones.
    Bounds() (indexspace.Box, bool)
}
