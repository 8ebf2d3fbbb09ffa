package indexspace_test

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/tawesoft/gridspace/ds/indexspace"
)

func TestIndexArrayAt(t *testing.T) {
    // 2x3 array, origin (10, 100), values 0..5 row-major.
    arr, err := indexspace.NewIndexArray(
        []indexspace.Index{10, 100},
        []indexspace.Index{2, 3},
        []indexspace.Index{0, 1, 2, 3, 4, 5},
    )
    assert.NoError(t, err)
    assert.Equal(t, 2, arr.Rank())

    v, err := arr.At([]indexspace.Index{10, 100})
    assert.NoError(t, err)
    assert.Equal(t, indexspace.Index(0), v)

    v, err = arr.At([]indexspace.Index{11, 102})
    assert.NoError(t, err)
    assert.Equal(t, indexspace.Index(5), v)

    _, err = arr.At([]indexspace.Index{12, 100})
    assert.ErrorIs(t, err, indexspace.ErrOutOfDomain)
}

func TestNewIndexArrayValidation(t *testing.T) {
    _, err := indexspace.NewIndexArray(
        []indexspace.Index{0},
        []indexspace.Index{0, 0},
        nil,
    )
    assert.ErrorIs(t, err, indexspace.ErrBadShape)

    _, err = indexspace.NewIndexArray(
        []indexspace.Index{0, 0},
        []indexspace.Index{2, 2},
        []indexspace.Index{1, 2, 3}, // wrong length, expected 4
    )
    assert.ErrorIs(t, err, indexspace.ErrBadShape)
}
