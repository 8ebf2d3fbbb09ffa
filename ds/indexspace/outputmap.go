package indexspace

import (
    "fmt"
)

// MapKind distinguishes the three shapes an [OutputIndexMap] can take.
type MapKind int

const (
    // MapConstant: output = Constant, regardless of input.
    MapConstant MapKind = iota

    // MapSingleInputDimension: output = Offset + Stride*input[InputDim].
    MapSingleInputDimension

    // MapIndexArray: output = Offset + Stride*Array[project(input, InputDims)].
    MapIndexArray
)

func (k MapKind) String() string {
    switch k {
    case MapConstant:
        return "Constant"
    case MapSingleInputDimension:
        return "SingleInputDimension"
    case MapIndexArray:
        return "IndexArray"
    default:
        return fmt.Sprintf("MapKind(%d)", int(k))
    }
}

// OutputIndexMap is one coordinate-producing rule of an [IndexTransform],
// tagged by Kind. Only the fields relevant to Kind are meaningful; the zero
// value is MapConstant(0).
type OutputIndexMap struct {
    Kind MapKind

    Constant Index // MapConstant

    Offset Index // MapSingleInputDimension, MapIndexArray
    Stride Index // MapSingleInputDimension, MapIndexArray

    InputDim int // MapSingleInputDimension

    Array     IndexArray // MapIndexArray
    InputDims []int      // MapIndexArray: ordered input dims the array is projected over
}

// ConstantMap returns an output map that always evaluates to c.
func ConstantMap(c Index) OutputIndexMap {
    return OutputIndexMap{Kind: MapConstant, Constant: c}
}

// SingleInputDimensionMap returns an output map computing
// offset + stride*input[inputDim]. stride must be non-zero.
func SingleInputDimensionMap(offset, stride Index, inputDim int) (OutputIndexMap, error) {
    if stride == 0 {
        return OutputIndexMap{}, fmt.Errorf("%w: SingleInputDimension stride must be non-zero", ErrBadShape)
    }
    if inputDim < 0 {
        return OutputIndexMap{}, fmt.Errorf("%w: negative input dimension %d", ErrBadInputDim, inputDim)
    }
    return OutputIndexMap{Kind: MapSingleInputDimension, Offset: offset, Stride: stride, InputDim: inputDim}, nil
}

// IndexArrayMap returns an output map computing
// offset + stride*array[project(input, inputDims)]. len(inputDims) must
// equal array.Rank().
func IndexArrayMap(offset, stride Index, array IndexArray, inputDims []int) (OutputIndexMap, error) {
    if stride == 0 {
        return OutputIndexMap{}, fmt.Errorf("%w: IndexArray stride must be non-zero", ErrBadShape)
    }
    if len(inputDims) != array.Rank() {
        return OutputIndexMap{}, fmt.Errorf("%w: IndexArray projects %d input dims but array has rank %d", ErrRankMismatch, len(inputDims), array.Rank())
    }
    dims := append([]int(nil), inputDims...)
    return OutputIndexMap{Kind: MapIndexArray, Offset: offset, Stride: stride, Array: array, InputDims: dims}, nil
}

// inputDims returns every input dimension this map depends on, in no
// particular order. A Constant map depends on none.
func (m OutputIndexMap) inputDims() []int {
    switch m.Kind {
    case MapSingleInputDimension:
        return []int{m.InputDim}
    case MapIndexArray:
        return m.InputDims
    default:
        return nil
    }
}
