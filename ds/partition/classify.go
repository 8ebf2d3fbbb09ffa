package partition

import (
    "fmt"
    "slices"
    "sort"

    "github.com/tawesoft/gridspace/ds/bitseq"
    "github.com/tawesoft/gridspace/ds/indexspace"
)

// classifyInputDims returns, for each position in gridDims (0-based, in the
// caller's order), the sorted, deduplicated list of input dims the output
// map at that grid dim depends on. A Constant map depends on none.
func classifyInputDims(t indexspace.IndexTransform, gridDims []int) ([][]int, error) {
    deps := make([][]int, len(gridDims))
    for p, g := range gridDims {
        if (g < 0) || (g >= t.OutputRank()) {
            return nil, fmt.Errorf("%w: grid output dimension %d out of range [0, %d)", ErrInvalidArgument, g, t.OutputRank())
        }
        m := t.OutputMaps[g]
        switch m.Kind {
        case indexspace.MapConstant:
            // no dependency
        case indexspace.MapSingleInputDimension:
            deps[p] = []int{m.InputDim}
        case indexspace.MapIndexArray:
            dims := append([]int(nil), m.InputDims...)
            sort.Ints(dims)
            deps[p] = slices.Compact(dims)
        }
    }
    return deps, nil
}

// checkDuplicateGridDims returns ErrInvalidArgument iff the same original
// output dimension appears more than once in gridDims.
func checkDuplicateGridDims(gridDims []int) error {
    seen := make(map[int]bool, len(gridDims))
    for _, g := range gridDims {
        if seen[g] {
            return fmt.Errorf("%w: duplicate grid output dimension %d", ErrInvalidArgument, g)
        }
        seen[g] = true
    }
    return nil
}

// buildConnectedSets groups the grid dims in gridDims (given their
// precomputed input-dim dependencies deps) into maximal connected
// components over the bipartite (input dim, grid dim) graph, using a BFS
// over a bitseq visited-set for the grid-dim side.
func buildConnectedSets(t indexspace.IndexTransform, gridDims []int, deps [][]int) []*connectedSet {
    k := len(gridDims)

    // inputAdj[d] lists every grid-dim position that depends on input dim d.
    inputAdj := make(map[int][]int)
    for p, dims := range deps {
        for _, d := range dims {
            inputAdj[d] = append(inputAdj[d], p)
        }
    }

    var visited bitseq.Store
    visited.Resize(k)

    var sets []*connectedSet
    for start := 0; start < k; start++ {
        if visited.Get(start) {
            continue
        }

        queue := []int{start}
        visited.Set(start, true)
        gridMembers := map[int]bool{start: true}
        inputMembers := map[int]bool{}

        for len(queue) > 0 {
            p := queue[0]
            queue = queue[1:]
            for _, d := range deps[p] {
                if inputMembers[d] {
                    continue
                }
                inputMembers[d] = true
                for _, p2 := range inputAdj[d] {
                    if !visited.Get(p2) {
                        visited.Set(p2, true)
                        gridMembers[p2] = true
                        queue = append(queue, p2)
                    }
                }
            }
        }

        sets = append(sets, newConnectedSet(t, gridDims, gridMembers, inputMembers))
    }
    return sets
}

func sortedIntKeys(m map[int]bool) []int {
    out := make([]int, 0, len(m))
    for k := range m {
        out = append(out, k)
    }
    sort.Ints(out)
    return out
}

func newConnectedSet(t indexspace.IndexTransform, gridDims []int, gridMembers, inputMembers map[int]bool) *connectedSet {
    gridList := sortedIntKeys(gridMembers)
    inputList := sortedIntKeys(inputMembers)

    isArray := false
    for _, p := range gridList {
        if t.OutputMaps[gridDims[p]].Kind == indexspace.MapIndexArray {
            isArray = true
            break
        }
    }

    cs := &connectedSet{gridDims: gridList, inputDims: inputList, isIndexArray: isArray}
    if isArray {
        cs.arrayMaps = make([]indexspace.OutputIndexMap, len(gridList))
        for i, p := range gridList {
            cs.arrayMaps[i] = t.OutputMaps[gridDims[p]]
        }
    } else {
        cs.stridedMembers = make([]stridedMember, len(gridList))
        for i, p := range gridList {
            m := t.OutputMaps[gridDims[p]]
            if m.Kind == indexspace.MapConstant {
                cs.stridedMembers[i] = stridedMember{isConstant: true, constant: m.Constant}
            } else {
                cs.stridedMembers[i] = stridedMember{offset: m.Offset, stride: m.Stride}
            }
        }
    }
    return cs
}
