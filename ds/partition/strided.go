package partition

import (
    "fmt"
    "sort"

    "github.com/tawesoft/gridspace/ds/grid"
    "github.com/tawesoft/gridspace/ds/indexspace"
)

// invertAffineInterval returns the maximal interval of input values v for
// which offset + stride*v falls within outInterval, where output =
// offset + stride*input. outInterval may have an unbounded end (see
// [indexspace.NegInfinity], [indexspace.PosInfinity]).
func invertAffineInterval(outInterval indexspace.IndexInterval, offset, stride indexspace.Index) (indexspace.IndexInterval, error) {
    if outInterval.IsEmpty() {
        return indexspace.IndexInterval{}, nil
    }
    outLo := outInterval.Origin
    outHi := outInterval.End()

    loNum, ok := indexspace.CheckedSub(outLo, offset)
    if !ok {
        return indexspace.IndexInterval{}, fmt.Errorf("%w: affine inversion overflowed", ErrOutOfRange)
    }
    hiNum, ok := indexspace.CheckedSub(outHi, offset)
    if !ok {
        return indexspace.IndexInterval{}, fmt.Errorf("%w: affine inversion overflowed", ErrOutOfRange)
    }

    var lo, hiExclusive indexspace.Index
    if stride > 0 {
        lo = indexspace.CeilDiv(loNum, stride)
        hiExclusive = indexspace.CeilDiv(hiNum, stride)
    } else {
        lo = indexspace.FloorDiv(hiNum, stride) + 1
        hiExclusive = indexspace.FloorDiv(loNum, stride) + 1
    }

    if hiExclusive <= lo {
        return indexspace.IndexInterval{}, nil
    }
    return indexspace.IndexInterval{Origin: lo, Size: hiExclusive - lo}, nil
}

// enumerateStridedSet computes the maximal runs of the set's single shared
// input dimension (if any) over which every member's cell index stays
// constant, by repeatedly jumping to the next breakpoint rather than
// scanning point by point.
func enumerateStridedSet(cs *connectedSet, domain indexspace.Box, g grid.Grid) ([]candidate, error) {
    if len(cs.inputDims) == 0 {
        // A set of one or more Constant output maps sharing no input dim at
        // all can only occur as a singleton: each Constant grid dim forms
        // its own component (no edges connect it to any other node).
        m := cs.stridedMembers[0]
        cellIdx := g.OutputToCell(cs.gridDims[0], m.constant)
        return []candidate{{cellIndices: []indexspace.Index{cellIdx}}}, nil
    }

    iv := domain[cs.inputDims[0]]
    if iv.IsEmpty() {
        return nil, nil
    }

    var candidates []candidate
    cursor := iv.Origin
    end := iv.End()

    for cursor < end {
        tuple := make([]indexspace.Index, len(cs.stridedMembers))
        combinedEnd := end

        for i, m := range cs.stridedMembers {
            scaled, ok := indexspace.CheckedMul(m.stride, cursor)
            if !ok {
                return nil, fmt.Errorf("%w: strided member evaluation overflowed", ErrOutOfRange)
            }
            output, ok := indexspace.CheckedAdd(m.offset, scaled)
            if !ok {
                return nil, fmt.Errorf("%w: strided member evaluation overflowed", ErrOutOfRange)
            }

            cellIdx := g.OutputToCell(cs.gridDims[i], output)
            tuple[i] = cellIdx

            outInterval := g.CellToOutputInterval(cs.gridDims[i], cellIdx)
            runInterval, err := invertAffineInterval(outInterval, m.offset, m.stride)
            if err != nil {
                return nil, err
            }
            if runInterval.IsEmpty() {
                return nil, fmt.Errorf("%w: cell %d's own output interval did not invert to contain the evaluating point", ErrInternal, cellIdx)
            }
            if runEnd := runInterval.End(); runEnd < combinedEnd {
                combinedEnd = runEnd
            }
        }

        candidates = append(candidates, candidate{
            cellIndices:   tuple,
            inputInterval: indexspace.IndexInterval{Origin: cursor, Size: combinedEnd - cursor},
        })
        cursor = combinedEnd
    }

    // A single-member set's own cell index is the only coordinate in its
    // tuple, so the cursor scan's natural order is required to be
    // ascending cell index by spec section 8's "strictly lexicographic
    // order" invariant - which a negative stride violates (the cursor
    // still advances by increasing input, but the cell index it lands on
    // then decreases). Multi-member sets are left in cursor order: their
    // tuples vary jointly and are not generally sortable into a global
    // lexicographic order over the individual grid dims (see DESIGN.md).
    if len(cs.stridedMembers) == 1 {
        sort.Slice(candidates, func(a, b int) bool {
            return candidates[a].cellIndices[0] < candidates[b].cellIndices[0]
        })
    }

    return candidates, nil
}
