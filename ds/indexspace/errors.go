package indexspace

import (
    "errors"
)

// Sentinel errors for indexspace operations.
var (
    // ErrBadShape indicates a malformed interval, box, or array shape - for
    // example, a negative interval size.
    ErrBadShape = errors.New("indexspace: malformed shape or interval")

    // ErrRankMismatch indicates two values that should share a rank (e.g. a
    // point and the domain it is being applied to) do not.
    ErrRankMismatch = errors.New("indexspace: rank mismatch")

    // ErrBadInputDim indicates an output map references an input dimension
    // outside the domain's rank.
    ErrBadInputDim = errors.New("indexspace: input dimension out of range")

    // ErrOutOfDomain indicates an IndexArray was evaluated at a coordinate
    // outside its declared shape.
    ErrOutOfDomain = errors.New("indexspace: value outside declared domain")

    // ErrOverflow indicates index arithmetic overflowed during composition
    // or output-map evaluation.
    ErrOverflow = errors.New("indexspace: index arithmetic overflow")
)
