package indexspace

import (
    "fmt"
)

// IndexArray is a multidimensional array of Index values, addressed by an
// Origin and a per-dimension Shape, with Data stored contiguously in
// row-major order (len(Data) must equal the product of Shape).
//
// IndexArray is the payload of a [MapIndexArray] output map: the value at a
// coordinate is read by subtracting Origin, then projecting the result
// through Shape using a row-major index.
type IndexArray struct {
    Origin []Index
    Shape  []Index
    Data   []Index
}

// NewIndexArray validates and constructs an IndexArray.
func NewIndexArray(origin, shape []Index, data []Index) (IndexArray, error) {
    if len(origin) != len(shape) {
        return IndexArray{}, fmt.Errorf("%w: IndexArray origin rank %d != shape rank %d", ErrBadShape, len(origin), len(shape))
    }
    for _, s := range shape {
        if s <= 0 {
            return IndexArray{}, fmt.Errorf("%w: IndexArray shape entries must be positive", ErrBadShape)
        }
    }
    if Index(len(data)) != size(shape) {
        return IndexArray{}, fmt.Errorf("%w: IndexArray data length %d != product of shape", ErrBadShape, len(data))
    }
    return IndexArray{Origin: origin, Shape: shape, Data: data}, nil
}

// Rank returns the number of dimensions of the array.
func (a IndexArray) Rank() int {
    return len(a.Shape)
}

// At returns the value stored at point, a coordinate in the array's own
// (non-origin-relative) index space. It returns ErrOutOfDomain if point
// falls outside the array's declared domain.
func (a IndexArray) At(point []Index) (Index, error) {
    if len(point) != len(a.Shape) {
        return 0, fmt.Errorf("%w: IndexArray access rank %d != array rank %d", ErrRankMismatch, len(point), len(a.Shape))
    }
    rel := make([]Index, len(point))
    for i, p := range point {
        rel[i] = p - a.Origin[i]
    }
    idx, ok := rowMajorIndex(a.Shape, rel)
    if !ok {
        return 0, fmt.Errorf("%w: point %v outside array domain (origin=%v, shape=%v)", ErrOutOfDomain, point, a.Origin, a.Shape)
    }
    return a.Data[idx], nil
}
