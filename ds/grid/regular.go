package grid

import (
    "fmt"

    "github.com/tawesoft/gridspace/ds/indexspace"
)

// RegularGrid partitions output space into same-sized cells along each
// dimension: cell c along dim d spans [c*CellSize[d], (c+1)*CellSize[d]).
// Cell indices are computed via Euclidean floor division, so negative
// output coordinates fall into negative cells rather than truncating
// toward zero.
type RegularGrid struct {
    CellSize []indexspace.Index
}

// NewRegularGrid validates and constructs a RegularGrid. Every entry of
// cellSize must be strictly positive.
func NewRegularGrid(cellSize []indexspace.Index) (RegularGrid, error) {
    for i, s := range cellSize {
        if s <= 0 {
            return RegularGrid{}, fmt.Errorf("%w: dim %d has size %d", ErrBadCellSize, i, s)
        }
    }
    return RegularGrid{CellSize: append([]indexspace.Index(nil), cellSize...)}, nil
}

// Rank returns the number of dimensions.
func (g RegularGrid) Rank() int {
    return len(g.CellSize)
}

// OutputToCell returns floor(output / CellSize[dim]).
func (g RegularGrid) OutputToCell(dim int, output indexspace.Index) indexspace.Index {
    return indexspace.FloorDiv(output, g.CellSize[dim])
}

// CellToOutputInterval returns [cell*CellSize[dim], (cell+1)*CellSize[dim]).
func (g RegularGrid) CellToOutputInterval(dim int, cell indexspace.Index) indexspace.IndexInterval {
    size := g.CellSize[dim]
    origin := cell * size
    return indexspace.IndexInterval{Origin: origin, Size: size}
}

// Bounds always returns false: a RegularGrid extends infinitely in every
// dimension, so no finite box of cell indices bounds it.
func (g RegularGrid) Bounds() (indexspace.Box, bool) {
    return nil, false
}
