package indexspace_test

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/tawesoft/gridspace/ds/indexspace"
)

func TestConstantMap(t *testing.T) {
    m := indexspace.ConstantMap(42)
    assert.Equal(t, indexspace.MapConstant, m.Kind)
    assert.Equal(t, indexspace.Index(42), m.Constant)
}

func TestSingleInputDimensionMap(t *testing.T) {
    m, err := indexspace.SingleInputDimensionMap(3, 2, 1)
    assert.NoError(t, err)
    assert.Equal(t, indexspace.MapSingleInputDimension, m.Kind)

    _, err = indexspace.SingleInputDimensionMap(0, 0, 0)
    assert.ErrorIs(t, err, indexspace.ErrBadShape, "zero stride must be rejected")

    _, err = indexspace.SingleInputDimensionMap(0, 1, -1)
    assert.ErrorIs(t, err, indexspace.ErrBadInputDim)
}

func TestIndexArrayMap(t *testing.T) {
    arr, _ := indexspace.NewIndexArray([]indexspace.Index{0}, []indexspace.Index{4}, []indexspace.Index{1, 2, 3, 4})

    m, err := indexspace.IndexArrayMap(0, 1, arr, []int{0})
    assert.NoError(t, err)
    assert.Equal(t, indexspace.MapIndexArray, m.Kind)

    _, err = indexspace.IndexArrayMap(0, 1, arr, []int{0, 1}) // rank mismatch
    assert.ErrorIs(t, err, indexspace.ErrRankMismatch)

    _, err = indexspace.IndexArrayMap(0, 0, arr, []int{0})
    assert.ErrorIs(t, err, indexspace.ErrBadShape)
}

func TestMapKindString(t *testing.T) {
    assert.Equal(t, "Constant", indexspace.MapConstant.String())
    assert.Equal(t, "SingleInputDimension", indexspace.MapSingleInputDimension.String())
    assert.Equal(t, "IndexArray", indexspace.MapIndexArray.String())
}
