package partition

import (
    "errors"
)

// Sentinel errors, modeling spec's {InvalidArgument, OutOfRange, Internal}
// status classes as plain Go errors. A callback's own error propagates
// unwrapped (the "Cancelled" class) and is never one of these sentinels.
var (
    // ErrInvalidArgument covers malformed transforms, out-of-range or
    // duplicate grid dims, and index-array evaluations outside their
    // declared domain.
    ErrInvalidArgument = errors.New("partition: invalid argument")

    // ErrOutOfRange covers index arithmetic overflow during composition or
    // output-map evaluation.
    ErrOutOfRange = errors.New("partition: index arithmetic out of range")

    // ErrInternal covers invariant violations that should be unreachable.
    ErrInternal = errors.New("partition: internal invariant violation")
)
