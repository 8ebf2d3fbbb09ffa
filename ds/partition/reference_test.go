package partition

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/tawesoft/gridspace/ds/grid"
    "github.com/tawesoft/gridspace/ds/indexspace"
)

// cartesianWalk calls fn once per point of domain, in row-major order.
func cartesianWalk(domain indexspace.Box, fn func(point []indexspace.Index)) {
    if domain.IsEmpty() {
        return
    }
    point := make([]indexspace.Index, len(domain))
    for i, iv := range domain {
        point[i] = iv.Origin
    }
    for {
        fn(append([]indexspace.Index(nil), point...))
        i := len(domain) - 1
        for i >= 0 {
            point[i]++
            if point[i] < domain[i].End() {
                break
            }
            point[i] = domain[i].Origin
            i--
        }
        if i < 0 {
            return
        }
    }
}

// checkPartitionAgainstBruteForce verifies the four universal invariants -
// coverage, confinement, no duplication, and agreement with per-point
// brute-force cell assignment - for one transform/grid pair.
func checkPartitionAgainstBruteForce(t *testing.T, tr indexspace.IndexTransform, gridDims []int, g grid.Grid) {
    t.Helper()

    wantCell := make(map[string][]indexspace.Index)
    cartesianWalk(tr.Domain, func(point []indexspace.Index) {
        out, err := tr.Apply(point)
        require.NoError(t, err)
        cell := make([]indexspace.Index, len(gridDims))
        for i, d := range gridDims {
            cell[i] = g.OutputToCell(i, out[d])
        }
        wantCell[encodeCellKey(point)] = cell
        _ = cell
    })

    seen := map[string]bool{}
    totalPointsCovered := 0

    err := Partition(tr, gridDims, g, func(idx []indexspace.Index, ct indexspace.IndexTransform) error {
        key := encodeCellKey(idx)
        assert.False(t, seen[key], "cell %v emitted more than once", idx)
        seen[key] = true

        cartesianWalk(ct.Domain, func(localPoint []indexspace.Index) {
            origPoint, err := ct.Apply(localPoint)
            require.NoError(t, err)
            out, err := tr.Apply(origPoint)
            require.NoError(t, err)
            for i, d := range gridDims {
                assert.Equal(t, idx[i], g.OutputToCell(i, out[d]),
                    "cell transform point %v output dim %d escaped its cell", localPoint, d)
            }
        })
        return nil
    })
    require.NoError(t, err)

    // every original input point's brute-force cell must have been emitted,
    // and reconstructing the original point's image from within the
    // matching cell transform must be possible in principle (confinement
    // already checked above covers this; here we just check coverage).
    for _, cell := range wantCell {
        assert.True(t, seen[encodeCellKey(cell)], "cell %v reachable by brute force but never emitted", cell)
        totalPointsCovered++
    }
    assert.Equal(t, len(wantCell), totalPointsCovered)
}

func TestPartitionAgreesWithBruteForceStrided(t *testing.T) {
    tr, err := indexspace.NewIndexTransform(box(3, 15), []indexspace.OutputIndexMap{
        singleDim(0, 1, 0),
    })
    require.NoError(t, err)
    g, err := grid.NewRegularGrid([]indexspace.Index{10})
    require.NoError(t, err)
    checkPartitionAgainstBruteForce(t, tr, []int{0}, g)
}

func TestPartitionAgreesWithBruteForceNegativeStride(t *testing.T) {
    tr, err := indexspace.NewIndexTransform(box(-4, 9), []indexspace.OutputIndexMap{
        singleDim(5, -2, 0),
    })
    require.NoError(t, err)
    g, err := grid.NewRegularGrid([]indexspace.Index{3})
    require.NoError(t, err)
    checkPartitionAgainstBruteForce(t, tr, []int{0}, g)
}

func TestPartitionAgreesWithBruteForceDiagonal(t *testing.T) {
    tr, err := indexspace.NewIndexTransform(box(0, 7), []indexspace.OutputIndexMap{
        singleDim(0, 1, 0),
        singleDim(0, -1, 0),
    })
    require.NoError(t, err)
    g, err := grid.NewRegularGrid([]indexspace.Index{2, 2})
    require.NoError(t, err)
    checkPartitionAgainstBruteForce(t, tr, []int{0, 1}, g)
}

func TestPartitionAgreesWithBruteForceIndexArray(t *testing.T) {
    arr, err := indexspace.NewIndexArray(
        []indexspace.Index{0},
        []indexspace.Index{6},
        []indexspace.Index{1, 9, 4, 14, 1, 4},
    )
    require.NoError(t, err)
    m, err := indexspace.IndexArrayMap(0, 1, arr, []int{0})
    require.NoError(t, err)

    tr, err := indexspace.NewIndexTransform(box(0, 6), []indexspace.OutputIndexMap{m})
    require.NoError(t, err)
    g, err := grid.NewRegularGrid([]indexspace.Index{5})
    require.NoError(t, err)
    checkPartitionAgainstBruteForce(t, tr, []int{0}, g)
}

func TestPartitionAgreesWithBruteForceIrregularGrid(t *testing.T) {
    tr, err := indexspace.NewIndexTransform(box(-5, 20), []indexspace.OutputIndexMap{
        singleDim(0, 1, 0),
    })
    require.NoError(t, err)
    g, err := grid.NewIrregularGrid([][]indexspace.Index{{-2, 0, 4, 10}})
    require.NoError(t, err)
    checkPartitionAgainstBruteForce(t, tr, []int{0}, g)
}

func TestPartitionAgreesWithBruteForceMixedUnboundAndIndexArray(t *testing.T) {
    arr, err := indexspace.NewIndexArray(
        []indexspace.Index{0},
        []indexspace.Index{4},
        []indexspace.Index{2, 8, 2, 8},
    )
    require.NoError(t, err)
    arrMap, err := indexspace.IndexArrayMap(0, 1, arr, []int{1})
    require.NoError(t, err)

    tr, err := indexspace.NewIndexTransform(box(0, 3, 0, 4), []indexspace.OutputIndexMap{
        singleDim(100, 1, 0), // dim 0 is unbound: not a grid dim.
        arrMap,
    })
    require.NoError(t, err)
    g, err := grid.NewRegularGrid([]indexspace.Index{5})
    require.NoError(t, err)
    checkPartitionAgainstBruteForce(t, tr, []int{1}, g)
}
