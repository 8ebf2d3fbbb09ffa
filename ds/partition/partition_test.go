package partition

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/tawesoft/gridspace/ds/grid"
    "github.com/tawesoft/gridspace/ds/indexspace"
)

func box(pairs ...indexspace.Index) indexspace.Box {
    b := make(indexspace.Box, 0, len(pairs)/2)
    for i := 0; i < len(pairs); i += 2 {
        b = append(b, indexspace.IndexInterval{Origin: pairs[i], Size: pairs[i+1]})
    }
    return b
}

func singleDim(offset, stride indexspace.Index, dim int) indexspace.OutputIndexMap {
    m, err := indexspace.SingleInputDimensionMap(offset, stride, dim)
    if err != nil {
        panic(err)
    }
    return m
}

// scenario: a single constant output map, grid over that one dim.
func TestPartitionConstant(t *testing.T) {
    tr, err := indexspace.NewIndexTransform(box(0, 5), []indexspace.OutputIndexMap{
        indexspace.ConstantMap(7),
    })
    require.NoError(t, err)

    g, err := grid.NewRegularGrid([]indexspace.Index{10})
    require.NoError(t, err)

    var cells [][]indexspace.Index
    err = Partition(tr, []int{0}, g, func(idx []indexspace.Index, ct indexspace.IndexTransform) error {
        cells = append(cells, append([]indexspace.Index(nil), idx...))
        assert.Equal(t, 1, ct.Rank())
        origPoint, err := ct.Apply([]indexspace.Index{ct.Domain[0].Origin})
        require.NoError(t, err)
        out, err := tr.Apply(origPoint)
        require.NoError(t, err)
        assert.Equal(t, indexspace.Index(7), out[0])
        return nil
    })
    require.NoError(t, err)
    assert.Equal(t, [][]indexspace.Index{{0}}, cells)
}

// scenario: identity 1-D strided map over a bounded domain.
func TestPartitionIdentity1D(t *testing.T) {
    tr, err := indexspace.NewIndexTransform(box(3, 15), []indexspace.OutputIndexMap{
        singleDim(0, 1, 0),
    })
    require.NoError(t, err)

    g, err := grid.NewRegularGrid([]indexspace.Index{10})
    require.NoError(t, err)

    var cells [][]indexspace.Index
    err = Partition(tr, []int{0}, g, func(idx []indexspace.Index, ct indexspace.IndexTransform) error {
        cells = append(cells, append([]indexspace.Index(nil), idx...))
        out0, err := ct.Apply([]indexspace.Index{ct.Domain[0].Origin})
        require.NoError(t, err)
        assert.Equal(t, idx[0], g.OutputToCell(0, out0[0]))
        return nil
    })
    require.NoError(t, err)
    // domain [3,18) crosses cells 0 ([0,10)) and 1 ([10,20)).
    assert.Equal(t, [][]indexspace.Index{{0}, {1}}, cells)
}

// scenario: 2-D identity with a non-uniform cell shape.
func TestPartitionIdentity2D(t *testing.T) {
    tr, err := indexspace.NewIndexTransform(box(6, 8, 0, 50), []indexspace.OutputIndexMap{
        singleDim(0, 1, 0),
        singleDim(0, 1, 1),
    })
    require.NoError(t, err)

    g, err := grid.NewRegularGrid([]indexspace.Index{20, 10})
    require.NoError(t, err)

    var cells [][]indexspace.Index
    err = Partition(tr, []int{0, 1}, g, func(idx []indexspace.Index, ct indexspace.IndexTransform) error {
        cells = append(cells, append([]indexspace.Index(nil), idx...))
        return nil
    })
    require.NoError(t, err)
    // domain [6,14) is entirely within cell 0 ([0,20)) along dim 0.
    // domain [0,50) along dim 1 spans cells 0,1,2,3,4 ([0,10)..[40,50)).
    assert.Len(t, cells, 5)
    for i, c := range cells {
        assert.Equal(t, indexspace.Index(0), c[0])
        assert.Equal(t, indexspace.Index(i), c[1])
    }
}

// scenario: a 1-D index-array output map.
func TestPartitionIndexArray(t *testing.T) {
    arr, err := indexspace.NewIndexArray(
        []indexspace.Index{0},
        []indexspace.Index{5},
        []indexspace.Index{3, 3, 11, 11, 3},
    )
    require.NoError(t, err)
    m, err := indexspace.IndexArrayMap(0, 1, arr, []int{0})
    require.NoError(t, err)

    tr, err := indexspace.NewIndexTransform(box(0, 5), []indexspace.OutputIndexMap{m})
    require.NoError(t, err)

    g, err := grid.NewRegularGrid([]indexspace.Index{10})
    require.NoError(t, err)

    type emission struct {
        cell indexspace.Index
        pts  []indexspace.Index
    }
    var got []emission
    err = Partition(tr, []int{0}, g, func(idx []indexspace.Index, ct indexspace.IndexTransform) error {
        require.Equal(t, 1, ct.Rank())
        var pts []indexspace.Index
        for v := ct.Domain[0].Origin; v < ct.Domain[0].End(); v++ {
            origPoint, err := ct.Apply([]indexspace.Index{v})
            require.NoError(t, err)
            out, err := tr.Apply(origPoint)
            require.NoError(t, err)
            pts = append(pts, out[0])
        }
        got = append(got, emission{cell: idx[0], pts: pts})
        return nil
    })
    require.NoError(t, err)

    // cell 0 ([0,10)) holds the three 3s and 11s that is cell 1 ([10,20)).
    require.Len(t, got, 2)
    assert.Equal(t, indexspace.Index(0), got[0].cell)
    assert.ElementsMatch(t, []indexspace.Index{3, 3, 3}, got[0].pts)
    assert.Equal(t, indexspace.Index(1), got[1].cell)
    assert.ElementsMatch(t, []indexspace.Index{11, 11}, got[1].pts)
}

// scenario: a single input dim diagonally feeding two coupled grid dims via
// opposing strides - the reachable cell-index set is not an axis-aligned
// box, and the natural (cursor) emission order is not globally
// lexicographic over the two grid dims.
func TestPartitionDiagonalCoupled(t *testing.T) {
    tr, err := indexspace.NewIndexTransform(box(0, 3), []indexspace.OutputIndexMap{
        singleDim(0, 1, 0),
        singleDim(0, -1, 0),
    })
    require.NoError(t, err)

    g, err := grid.NewRegularGrid([]indexspace.Index{1, 1})
    require.NoError(t, err)

    var cells [][]indexspace.Index
    err = Partition(tr, []int{0, 1}, g, func(idx []indexspace.Index, ct indexspace.IndexTransform) error {
        cells = append(cells, append([]indexspace.Index(nil), idx...))
        return nil
    })
    require.NoError(t, err)

    // input 0 -> (0,0); input 1 -> (1,-1); input 2 -> (2,-2).
    assert.Equal(t, [][]indexspace.Index{{0, 0}, {1, -1}, {2, -2}}, cells)
}

// scenario: range coalescing over two independent strided dims, one fully
// within grid_bounds, the other only partially reachable.
func TestGetGridCellRangesCoalesces(t *testing.T) {
    tr, err := indexspace.NewIndexTransform(box(6, 8, 0, 50), []indexspace.OutputIndexMap{
        singleDim(0, 1, 0),
        singleDim(0, 1, 1),
    })
    require.NoError(t, err)

    g, err := grid.NewRegularGrid([]indexspace.Index{5, 5})
    require.NoError(t, err)

    bounds := box(0, 5, 0, 10)

    var boxes []indexspace.Box
    err = GetGridCellRanges(tr, []int{0, 1}, bounds, g, func(b indexspace.Box) error {
        boxes = append(boxes, b.Clone())
        return nil
    })
    require.NoError(t, err)

    require.Len(t, boxes, 1)
    assert.Equal(t, box(1, 2, 0, 10), boxes[0])
}

func TestGetGridCellRangesNoCoalescingForCoupledDims(t *testing.T) {
    tr, err := indexspace.NewIndexTransform(box(0, 3), []indexspace.OutputIndexMap{
        singleDim(0, 1, 0),
        singleDim(0, -1, 0),
    })
    require.NoError(t, err)

    g, err := grid.NewRegularGrid([]indexspace.Index{1, 1})
    require.NoError(t, err)

    bounds := box(0, 3, -3, 3)

    var boxes []indexspace.Box
    err = GetGridCellRanges(tr, []int{0, 1}, bounds, g, func(b indexspace.Box) error {
        boxes = append(boxes, b.Clone())
        return nil
    })
    require.NoError(t, err)
    // coupled diagonal pairs can't be folded into a shared box: one box per cell.
    assert.Len(t, boxes, 3)
}
