package partition

import (
    "fmt"

    "github.com/tawesoft/gridspace/ds/grid"
    "github.com/tawesoft/gridspace/ds/indexspace"
)

// RangeCallback receives one axis-aligned box of grid cell indices from
// [GetGridCellRanges]. A non-nil return stops enumeration immediately.
type RangeCallback func(cellBox indexspace.Box) error

type rangeSetInfo struct {
    simple     bool // belongs to a single-grid-dim strided set: representable as one Index range
    isEmpty    bool // this set reaches no cells at all, within gridBounds
    clipped    indexspace.IndexInterval
    fullBounds bool // clipped == gridBounds[this set's one position], exactly
}

// GetGridCellRanges invokes callback once per axis-aligned box of grid
// cell indices needed to jointly cover exactly the same cells [Partition]
// would emit, coalescing a trailing run of grid dims into a single box
// wherever every dim in that run is fed by a single-member strided
// connected set (so it occupies a genuine contiguous Index range on its
// own) and its reachable range, once clipped to gridBounds, equals
// gridBounds exactly - the dim doesn't constrain which cells its
// neighbours reach. One further, non-full-bounds dim immediately before
// that run may also be folded into the same box if it too is
// single-member-strided, since everything after it is already fully
// unconstrained (see DESIGN.md for a worked example). Grid dims fed by an
// index-array set, or by a strided set coupling more than one grid dim
// (their reachable set is not generally an axis-aligned box), are never
// folded: one box is emitted per distinct value.
//
// An IrregularGrid's unbounded boundary cells (-1 and k-1) are clipped to
// gridBounds before being used in any emitted box or foldability check,
// resolving the otherwise-ambiguous treatment of infinite cells against a
// finite gridBounds.
func GetGridCellRanges(t indexspace.IndexTransform, gridDims []int, gridBounds indexspace.Box, g grid.Grid, callback RangeCallback) error {
    if len(gridBounds) != len(gridDims) {
        return fmt.Errorf("%w: grid bounds rank %d does not match %d grid dims", ErrInvalidArgument, len(gridBounds), len(gridDims))
    }

    plan, err := PrePartition(t, gridDims, g)
    if err != nil {
        return err
    }
    if plan.Transform.Domain.IsEmpty() {
        return nil
    }

    sets := plan.sets
    k := len(gridDims)

    infos := make([]rangeSetInfo, len(sets))
    for i, cs := range sets {
        if cs.isIndexArray || (len(cs.gridDims) != 1) {
            continue
        }
        pos := cs.gridDims[0]
        if len(cs.candidates) == 0 {
            infos[i] = rangeSetInfo{simple: true, isEmpty: true}
            continue
        }
        lo, hi := cs.candidates[0].cellIndices[0], cs.candidates[0].cellIndices[0]
        for _, c := range cs.candidates {
            v := c.cellIndices[0]
            if v < lo {
                lo = v
            }
            if v > hi {
                hi = v
            }
        }
        natural := indexspace.IndexInterval{Origin: lo, Size: hi - lo + 1}
        if indexspace.Index(len(cs.candidates)) != natural.Size {
            // some cells between lo and hi are skipped (a stride wider than
            // a cell): not one contiguous range, so enumerate it per cell.
            continue
        }
        clipped, ok := natural.Intersect(gridBounds[pos])
        if !ok {
            infos[i] = rangeSetInfo{simple: true, isEmpty: true}
            continue
        }
        infos[i] = rangeSetInfo{simple: true, clipped: clipped, fullBounds: clipped.Equal(gridBounds[pos])}
    }

    for _, info := range infos {
        if info.simple && info.isEmpty {
            return nil
        }
    }

    suffixFoldable := make([]bool, len(sets)+1)
    suffixFoldable[len(sets)] = true
    for i := len(sets) - 1; i >= 0; i-- {
        suffixFoldable[i] = infos[i].simple && infos[i].fullBounds && suffixFoldable[i+1]
    }

    boundary := len(sets)
    for i := 0; i <= len(sets); i++ {
        if suffixFoldable[i] {
            boundary = i
            break
        }
    }

    rangeStart := boundary
    if (boundary > 0) && infos[boundary-1].simple {
        rangeStart = boundary - 1
    }

    box := make(indexspace.Box, k)
    for i := rangeStart; i < len(sets); i++ {
        box[sets[i].gridDims[0]] = infos[i].clipped
    }

    var recurse func(i int) error
    recurse = func(i int) error {
        if i == rangeStart {
            return callback(box.Clone())
        }
        cs := sets[i]
        for _, cand := range cs.candidates {
            for j, p := range cs.gridDims {
                box[p] = indexspace.IndexInterval{Origin: cand.cellIndices[j], Size: 1}
            }
            if err := recurse(i + 1); err != nil {
                return err
            }
        }
        return nil
    }

    return recurse(0)
}
