package partition

import (
    "fmt"

    "github.com/tawesoft/gridspace/ds/grid"
    "github.com/tawesoft/gridspace/ds/indexspace"
)

// CellCallback receives, for each grid cell the transform's image
// intersects, the cell's index tuple (aligned with the grid dims passed to
// [Partition]) and a restricted transform whose image lies entirely within
// that cell. A non-nil return stops enumeration immediately; that error is
// returned from [Partition] unchanged.
type CellCallback func(cellIndices []indexspace.Index, cellTransform indexspace.IndexTransform) error

// Partition builds a [Plan] via [PrePartition] and walks it, invoking
// callback once per grid cell with non-empty intersection, in the order
// described by [PrePartition]'s connected-set decomposition: independent
// connected sets nest outer-to-inner by their lowest grid-dim position;
// within one connected set, cells follow that set's own natural
// enumeration order (ascending cell index for a single-member strided set,
// ascending input coordinate for a multi-member strided set, lexicographic
// cell-index order for index-array sets). Because grid dims coupled within
// one connected set vary together rather than independently, this is not
// always the same thing as strict global lexicographic order over every
// individual grid dim - see DESIGN.md for a worked example.
func Partition(t indexspace.IndexTransform, gridDims []int, g grid.Grid, callback CellCallback) error {
    plan, err := PrePartition(t, gridDims, g)
    if err != nil {
        return err
    }
    return walkPlan(plan, callback)
}

// PartitionRegular is a convenience wrapper over Partition using a
// [grid.RegularGrid] built from cellShape.
func PartitionRegular(t indexspace.IndexTransform, gridDims []int, cellShape []indexspace.Index, callback CellCallback) error {
    g, err := grid.NewRegularGrid(cellShape)
    if err != nil {
        return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
    }
    return Partition(t, gridDims, g, callback)
}

func walkPlan(plan *Plan, callback CellCallback) error {
    if plan.Transform.Domain.IsEmpty() {
        return nil
    }

    k := len(plan.GridOutputDims)
    tuple := make([]indexspace.Index, k)
    chosen := make([]candidate, len(plan.sets))

    var recurse func(i int) error
    recurse = func(i int) error {
        if i == len(plan.sets) {
            ct := buildCellTransform(plan, chosen)
            return callback(append([]indexspace.Index(nil), tuple...), ct)
        }
        cs := plan.sets[i]
        for _, cand := range cs.candidates {
            chosen[i] = cand
            for j, p := range cs.gridDims {
                tuple[p] = cand.cellIndices[j]
            }
            if err := recurse(i + 1); err != nil {
                return err
            }
        }
        return nil
    }

    return recurse(0)
}
