package partition

import (
    "github.com/tawesoft/gridspace/ds/indexspace"
)

// stridedMember is one grid dimension's evaluation rule within a strided
// connectedSet: either a fixed constant (zero input dims) or an affine
// function of the set's single shared input dimension.
type stridedMember struct {
    isConstant bool
    constant   indexspace.Index
    offset     indexspace.Index
    stride     indexspace.Index
}

// candidate is one reachable combination of cell indices for a single
// connectedSet's own grid dimensions, together with whatever is needed to
// later restrict the original input domain to this candidate's pre-image.
type candidate struct {
    // cellIndices is aligned with the owning connectedSet's gridDims.
    cellIndices []indexspace.Index

    // Set for strided sets: the maximal input-dim sub-interval (of the
    // set's single input dim) over which every member's cell index equals
    // cellIndices. Zero value for a zero-input-dim (all-constant) set.
    inputInterval indexspace.IndexInterval

    // Set for index-array sets: the distinct input coordinate rows (each
    // aligned with the owning connectedSet's inputDims) that land in this
    // cell-index combination, in deduplicated, deterministic order.
    rows [][]indexspace.Index
}

// connectedSet is one maximal group of (input dim, grid dim) nodes coupled
// through output maps - the unit of independent enumeration. gridDims and
// inputDims hold positions: gridDims are positions into the caller's
// grid-output-dimension list (0-based, matching the Grid's own dimension
// numbering), inputDims are absolute dimensions of the transform's domain.
type connectedSet struct {
    gridDims  []int
    inputDims []int

    isIndexArray bool

    // valid when !isIndexArray; aligned with gridDims.
    stridedMembers []stridedMember

    // valid when isIndexArray; aligned with gridDims.
    arrayMaps []indexspace.OutputIndexMap

    // candidates is precomputed once, at PrePartition time, for both
    // flavours of set (a convenience over the minimal per-cursor-step plan
    // a strided set strictly needs - see DESIGN.md).
    candidates []candidate
}

// Plan is the immutable, precomputed result of [PrePartition]: an ordered
// list of connected sets ready to be walked by [Partition] or
// [GetGridCellRanges]. Two PrePartition calls on equal inputs produce
// deep-equal plans.
type Plan struct {
    Transform      indexspace.IndexTransform
    GridOutputDims []int

    sets []*connectedSet

    // unboundInputDims lists, ascending, every original input dim touched
    // by no grid dim in GridOutputDims.
    unboundInputDims []int
}
