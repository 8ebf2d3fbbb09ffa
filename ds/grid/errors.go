package grid

import (
    "errors"
)

// Sentinel errors for grid construction.
var (
    // ErrBadCellSize indicates a RegularGrid cell size was not positive.
    ErrBadCellSize = errors.New("grid: cell size must be positive")

    // ErrBadSplitPoints indicates an IrregularGrid's split points were not
    // strictly increasing.
    ErrBadSplitPoints = errors.New("grid: split points must be strictly increasing")

    // ErrRankMismatch indicates a per-dimension argument slice did not match
    // the grid's rank.
    ErrRankMismatch = errors.New("grid: rank mismatch")

    // ErrDimOutOfRange indicates a dimension index outside [0, Rank()).
    ErrDimOutOfRange = errors.New("grid: dimension index out of range")
)
