package partition

import (
    "fmt"
    "sort"
    "strconv"
    "strings"

    "github.com/tawesoft/gridspace/ds/grid"
    "github.com/tawesoft/gridspace/ds/indexspace"
)

type rowGroupBuilder struct {
    cellIndices []indexspace.Index
    rows        [][]indexspace.Index
}

// evalLocalMap evaluates m, an output map belonging to an index-array
// connected set, against tuple - a local coordinate vector indexed by
// position (via dimPos) rather than by the transform's own input rank,
// since every map in an index-array set only ever references dims within
// that set.
func evalLocalMap(m indexspace.OutputIndexMap, dimPos map[int]int, tuple []indexspace.Index) (indexspace.Index, error) {
    switch m.Kind {
    case indexspace.MapConstant:
        return m.Constant, nil

    case indexspace.MapSingleInputDimension:
        v := tuple[dimPos[m.InputDim]]
        scaled, ok := indexspace.CheckedMul(m.Stride, v)
        if !ok {
            return 0, fmt.Errorf("%w: index-array set member overflowed", ErrOutOfRange)
        }
        out, ok := indexspace.CheckedAdd(m.Offset, scaled)
        if !ok {
            return 0, fmt.Errorf("%w: index-array set member overflowed", ErrOutOfRange)
        }
        return out, nil

    case indexspace.MapIndexArray:
        coord := make([]indexspace.Index, len(m.InputDims))
        for i, d := range m.InputDims {
            coord[i] = tuple[dimPos[d]]
        }
        arrVal, err := m.Array.At(coord)
        if err != nil {
            return 0, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
        }
        scaled, ok := indexspace.CheckedMul(m.Stride, arrVal)
        if !ok {
            return 0, fmt.Errorf("%w: index-array set member overflowed", ErrOutOfRange)
        }
        out, ok := indexspace.CheckedAdd(m.Offset, scaled)
        if !ok {
            return 0, fmt.Errorf("%w: index-array set member overflowed", ErrOutOfRange)
        }
        return out, nil

    default:
        return 0, fmt.Errorf("%w: unknown output map kind", ErrInternal)
    }
}

func encodeCellKey(ix []indexspace.Index) string {
    var sb strings.Builder
    for i, v := range ix {
        if i > 0 {
            sb.WriteByte('|')
        }
        sb.WriteString(strconv.FormatInt(int64(v), 10))
    }
    return sb.String()
}

func lexLess(a, b []indexspace.Index) bool {
    for i := range a {
        if a[i] != b[i] {
            return a[i] < b[i]
        }
    }
    return false
}

// buildArraySet enumerates the cartesian product of cs's bounded input dims
// against domain, evaluates every member map per combination, groups the
// resulting rows by their cell-index tuple, and stores the groups in
// cs.candidates sorted lexicographically by cell indices.
func buildArraySet(cs *connectedSet, domain indexspace.Box, g grid.Grid) error {
    intervals := make([]indexspace.IndexInterval, len(cs.inputDims))
    for i, d := range cs.inputDims {
        intervals[i] = domain[d]
        if intervals[i].IsEmpty() {
            cs.candidates = nil
            return nil
        }
    }

    dimPos := make(map[int]int, len(cs.inputDims))
    for i, d := range cs.inputDims {
        dimPos[d] = i
    }

    groups := make(map[string]*rowGroupBuilder)
    var order []string

    counters := make([]indexspace.Index, len(intervals))
    for i := range counters {
        counters[i] = intervals[i].Origin
    }

    for {
        tuple := append([]indexspace.Index(nil), counters...)

        cellTuple := make([]indexspace.Index, len(cs.gridDims))
        for gi, p := range cs.gridDims {
            val, err := evalLocalMap(cs.arrayMaps[gi], dimPos, tuple)
            if err != nil {
                return err
            }
            cellTuple[gi] = g.OutputToCell(p, val)
        }

        key := encodeCellKey(cellTuple)
        grp, ok := groups[key]
        if !ok {
            grp = &rowGroupBuilder{cellIndices: cellTuple}
            groups[key] = grp
            order = append(order, key)
        }
        grp.rows = append(grp.rows, tuple)

        carry := true
        for i := len(counters) - 1; i >= 0 && carry; i-- {
            counters[i]++
            if counters[i] < intervals[i].End() {
                carry = false
            } else {
                counters[i] = intervals[i].Origin
            }
        }
        if carry {
            break
        }
    }

    sort.Slice(order, func(a, b int) bool {
        return lexLess(groups[order[a]].cellIndices, groups[order[b]].cellIndices)
    })

    candidates := make([]candidate, len(order))
    for i, key := range order {
        candidates[i] = candidate{cellIndices: groups[key].cellIndices, rows: groups[key].rows}
    }
    cs.candidates = candidates
    return nil
}
