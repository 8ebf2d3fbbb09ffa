package grid_test

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/tawesoft/gridspace/ds/grid"
    "github.com/tawesoft/gridspace/ds/indexspace"
)

func TestIrregularGrid(t *testing.T) {
    // split points 0, 10, 20 -> cells -1 [ -inf,0), 0 [0,10), 1 [10,20), 2 [20,+inf)
    g, err := grid.NewIrregularGrid([][]indexspace.Index{{0, 10, 20}})
    assert.NoError(t, err)
    assert.Equal(t, 1, g.Rank())

    assert.Equal(t, indexspace.Index(-1), g.OutputToCell(0, -5))
    assert.Equal(t, indexspace.Index(0), g.OutputToCell(0, 0))
    assert.Equal(t, indexspace.Index(0), g.OutputToCell(0, 9))
    assert.Equal(t, indexspace.Index(1), g.OutputToCell(0, 10))
    assert.Equal(t, indexspace.Index(2), g.OutputToCell(0, 20))
    assert.Equal(t, indexspace.Index(2), g.OutputToCell(0, 1000000))

    lo := g.CellToOutputInterval(0, -1)
    assert.Equal(t, indexspace.NegInfinity, lo.Origin)
    assert.Equal(t, indexspace.Index(0), lo.End())

    mid := g.CellToOutputInterval(0, 0)
    assert.Equal(t, indexspace.Index(0), mid.Origin)
    assert.Equal(t, indexspace.Index(10), mid.End())

    hi := g.CellToOutputInterval(0, 2)
    assert.Equal(t, indexspace.Index(20), hi.Origin)
    assert.Equal(t, indexspace.PosInfinity, hi.End())

    b, ok := g.Bounds()
    assert.True(t, ok)
    assert.Equal(t, indexspace.Index(-1), b[0].Origin)
    assert.Equal(t, indexspace.Index(4), b[0].Size) // cells -1, 0, 1, 2
}

func TestIrregularGridRejectsNonIncreasing(t *testing.T) {
    _, err := grid.NewIrregularGrid([][]indexspace.Index{{0, 10, 10}})
    assert.ErrorIs(t, err, grid.ErrBadSplitPoints)

    _, err = grid.NewIrregularGrid([][]indexspace.Index{{10, 0}})
    assert.ErrorIs(t, err, grid.ErrBadSplitPoints)
}

func TestIrregularGridNoSplitPoints(t *testing.T) {
    g, err := grid.NewIrregularGrid([][]indexspace.Index{{}})
    assert.NoError(t, err)
    assert.Equal(t, indexspace.Index(-1), g.OutputToCell(0, 0))
    assert.Equal(t, indexspace.Index(-1), g.OutputToCell(0, 1000))

    iv := g.CellToOutputInterval(0, -1)
    assert.Equal(t, indexspace.NegInfinity, iv.Origin)
    assert.Equal(t, indexspace.PosInfinity, iv.End())
}
