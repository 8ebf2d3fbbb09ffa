package grid

import (
    "fmt"
    "sort"

    "github.com/tawesoft/gridspace/ds/indexspace"
)

// IrregularGrid partitions output space along each dimension by a sorted,
// strictly increasing list of split points. A dimension with k split points
// has k+1 cells: cell -1 spans (-inf, p0), cell i (0 <= i < k-1) spans
// [p_i, p_{i+1}), and cell k-1 spans [p_{k-1}, +inf).
type IrregularGrid struct {
    SplitPoints [][]indexspace.Index
}

// NewIrregularGrid validates and constructs an IrregularGrid. Each
// dimension's split points must be strictly increasing (a dimension may
// have zero split points, giving it a single cell, index -1, spanning all
// of output space).
func NewIrregularGrid(splitPoints [][]indexspace.Index) (IrregularGrid, error) {
    for d, pts := range splitPoints {
        for i := 1; i < len(pts); i++ {
            if pts[i] <= pts[i-1] {
                return IrregularGrid{}, fmt.Errorf("%w: dim %d", ErrBadSplitPoints, d)
            }
        }
    }
    out := make([][]indexspace.Index, len(splitPoints))
    for d, pts := range splitPoints {
        out[d] = append([]indexspace.Index(nil), pts...)
    }
    return IrregularGrid{SplitPoints: out}, nil
}

// Rank returns the number of dimensions.
func (g IrregularGrid) Rank() int {
    return len(g.SplitPoints)
}

// OutputToCell returns the index of the cell along dim containing output,
// found by binary search over that dimension's split points.
func (g IrregularGrid) OutputToCell(dim int, output indexspace.Index) indexspace.Index {
    pts := g.SplitPoints[dim]
    i := sort.Search(len(pts), func(i int) bool { return pts[i] > output })
    return indexspace.Index(i) - 1
}

// CellToOutputInterval returns the output-space interval covered by cell
// along dim. The two outermost cells extend to [indexspace.NegInfinity] or
// [indexspace.PosInfinity] respectively.
func (g IrregularGrid) CellToOutputInterval(dim int, cell indexspace.Index) indexspace.IndexInterval {
    pts := g.SplitPoints[dim]
    k := indexspace.Index(len(pts))

    var lo, hi indexspace.Index
    if cell <= -1 {
        lo = indexspace.NegInfinity
    } else {
        lo = pts[cell]
    }
    if cell >= k-1 {
        hi = indexspace.PosInfinity
    } else {
        hi = pts[cell+1]
    }
    return indexspace.IndexInterval{Origin: lo, Size: hi - lo}
}

// Bounds returns, per dimension, the half-open cell-index interval [-1, k)
// where k is that dimension's split-point count - the full range of cells
// the dimension distinguishes, including its two unbounded outer cells.
func (g IrregularGrid) Bounds() (indexspace.Box, bool) {
    b := make(indexspace.Box, len(g.SplitPoints))
    for d, pts := range g.SplitPoints {
        b[d] = indexspace.IndexInterval{Origin: -1, Size: indexspace.Index(len(pts)) + 1}
    }
    return b, true
}
