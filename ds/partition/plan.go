package partition

import (
    "github.com/tawesoft/gridspace/ds/grid"
    "github.com/tawesoft/gridspace/ds/indexspace"
)

// PrePartition classifies t's output maps at the positions named by
// gridDims, groups them into connected sets, and precomputes each set's
// reachable cell-index candidates against g. The returned Plan is
// immutable; repeated calls with equal inputs produce deep-equal plans.
//
// An empty input domain yields an empty, non-error Plan (no sets, no
// cells).
func PrePartition(t indexspace.IndexTransform, gridDims []int, g grid.Grid) (*Plan, error) {
    if err := checkDuplicateGridDims(gridDims); err != nil {
        return nil, err
    }

    deps, err := classifyInputDims(t, gridDims)
    if err != nil {
        return nil, err
    }

    plan := &Plan{
        Transform:      t,
        GridOutputDims: append([]int(nil), gridDims...),
    }

    if t.Domain.IsEmpty() {
        return plan, nil
    }

    sets := buildConnectedSets(t, gridDims, deps)
    for _, cs := range sets {
        if cs.isIndexArray {
            if err := buildArraySet(cs, t.Domain, g); err != nil {
                return nil, err
            }
        } else {
            candidates, err := enumerateStridedSet(cs, t.Domain, g)
            if err != nil {
                return nil, err
            }
            cs.candidates = candidates
        }
    }
    plan.sets = sets
    plan.unboundInputDims = unboundInputDims(t.Rank(), sets)

    return plan, nil
}

func unboundInputDims(rank int, sets []*connectedSet) []int {
    bound := make([]bool, rank)
    for _, cs := range sets {
        for _, d := range cs.inputDims {
            bound[d] = true
        }
    }
    var out []int
    for d := 0; d < rank; d++ {
        if !bound[d] {
            out = append(out, d)
        }
    }
    return out
}
