package indexspace

import (
    "fmt"
)

// IndexTransform maps points of an N-dimensional input [Box] (the Domain)
// to M-dimensional output tuples, one coordinate per [OutputIndexMap].
type IndexTransform struct {
    Domain     Box
    OutputMaps []OutputIndexMap
}

// NewIndexTransform validates and constructs an IndexTransform: every
// SingleInputDimension and IndexArray map must reference input dimensions
// within the domain's rank, and an IndexArray map's array shape must match
// the sizes of the domain intervals it is projected over (the array
// "broadcasts to the input domain projected on input_dims").
func NewIndexTransform(domain Box, outputMaps []OutputIndexMap) (IndexTransform, error) {
    rank := domain.Rank()
    for oi, m := range outputMaps {
        for _, d := range m.inputDims() {
            if (d < 0) || (d >= rank) {
                return IndexTransform{}, fmt.Errorf("%w: output map %d references input dim %d outside domain rank %d", ErrBadInputDim, oi, d, rank)
            }
        }
        if m.Kind == MapIndexArray {
            for i, d := range m.InputDims {
                if m.Array.Shape[i] != domain[d].Size {
                    return IndexTransform{}, fmt.Errorf(
                        "%w: output map %d array shape[%d]=%d does not match domain[%d] size %d",
                        ErrBadShape, oi, i, m.Array.Shape[i], d, domain[d].Size)
                }
            }
        }
    }
    return IndexTransform{Domain: domain.Clone(), OutputMaps: append([]OutputIndexMap(nil), outputMaps...)}, nil
}

// Rank returns the input rank (dimensionality of the domain).
func (t IndexTransform) Rank() int {
    return t.Domain.Rank()
}

// OutputRank returns the output rank (number of output maps).
func (t IndexTransform) OutputRank() int {
    return len(t.OutputMaps)
}

// Apply evaluates every output map at point, an input-space coordinate of
// rank t.Rank(). It does not itself check that point lies within t.Domain -
// callers enumerating a restricted sub-box are expected to have already
// confirmed that.
func (t IndexTransform) Apply(point []Index) ([]Index, error) {
    if len(point) != t.Rank() {
        return nil, fmt.Errorf("%w: point has rank %d, transform expects %d", ErrRankMismatch, len(point), t.Rank())
    }
    out := make([]Index, len(t.OutputMaps))
    for oi, m := range t.OutputMaps {
        v, err := t.applyOne(m, point)
        if err != nil {
            return nil, fmt.Errorf("output map %d: %w", oi, err)
        }
        out[oi] = v
    }
    return out, nil
}

func (t IndexTransform) applyOne(m OutputIndexMap, point []Index) (Index, error) {
    switch m.Kind {
    case MapConstant:
        return m.Constant, nil

    case MapSingleInputDimension:
        scaled, ok := CheckedMul(m.Stride, point[m.InputDim])
        if !ok {
            return 0, fmt.Errorf("%w: stride*input overflowed", ErrOverflow)
        }
        out, ok := CheckedAdd(m.Offset, scaled)
        if !ok {
            return 0, fmt.Errorf("%w: offset+stride*input overflowed", ErrOverflow)
        }
        return out, nil

    case MapIndexArray:
        coord := make([]Index, len(m.InputDims))
        for i, d := range m.InputDims {
            coord[i] = point[d]
        }
        arrVal, err := m.Array.At(coord)
        if err != nil {
            return 0, err
        }
        scaled, ok := CheckedMul(m.Stride, arrVal)
        if !ok {
            return 0, fmt.Errorf("%w: stride*array overflowed", ErrOverflow)
        }
        out, ok := CheckedAdd(m.Offset, scaled)
        if !ok {
            return 0, fmt.Errorf("%w: offset+stride*array overflowed", ErrOverflow)
        }
        return out, nil

    default:
        return 0, fmt.Errorf("%w: unknown output map kind %v", ErrBadShape, m.Kind)
    }
}

// String renders the transform's domain and output rank for debugging.
func (t IndexTransform) String() string {
    return fmt.Sprintf("IndexTransform{domain=%s, outputs=%d}", t.Domain, len(t.OutputMaps))
}
