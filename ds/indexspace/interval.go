package indexspace

import (
    "fmt"
    "math"

    "github.com/tawesoft/gridspace/operator/checked"
)

// Index addresses a single element along one dimension of an index space. It
// is wide enough to address any practical array extent.
type Index int64

// indexLimits bounds all checked arithmetic performed on an [Index].
var indexLimits = checked.Limits[Index]{
    Min: Index(math.MinInt64),
    Max: Index(math.MaxInt64),
}

// NegInfinity and PosInfinity stand in for the unbounded ends of a
// grid.IrregularGrid's two boundary cells. They are not the true minimum and
// maximum representable [Index]: headroom is kept either side so that a
// single checked addition or subtraction against one of them cannot itself
// overflow.
const (
    NegInfinity Index = math.MinInt64 / 2
    PosInfinity Index = math.MaxInt64 / 2
)

// CheckedAdd, CheckedSub and CheckedMul wrap [checked.Limits.Add] etc. bound
// to the full range of [Index]. The bool result is false iff the operation,
// or either input, would fall outside the representable range.
func CheckedAdd(a, b Index) (Index, bool) { return indexLimits.Add(a, b) }
func CheckedSub(a, b Index) (Index, bool) { return indexLimits.Sub(a, b) }
func CheckedMul(a, b Index) (Index, bool) { return indexLimits.Mul(a, b) }

// FloorDiv returns floor(a / b) for b != 0, using Euclidean rounding rather
// than Go's truncate-toward-zero "/" operator. This matters whenever a is
// negative - for example FloorDiv(-7, 2) is -4, not -3.
func FloorDiv(a, b Index) Index {
    q := a / b
    r := a % b
    if (r != 0) && ((r < 0) != (b < 0)) {
        q--
    }
    return q
}

// CeilDiv returns ceil(a / b) for b != 0.
func CeilDiv(a, b Index) Index {
    q := a / b
    r := a % b
    if (r != 0) && ((r < 0) == (b < 0)) {
        q++
    }
    return q
}

// IndexInterval is the half-open range [Origin, Origin+Size). A Size of zero
// (or less) denotes an empty interval; all empty intervals are considered
// equal to one another regardless of Origin.
type IndexInterval struct {
    Origin Index
    Size   Index
}

// NewIndexInterval validates and constructs an IndexInterval. Size must be
// non-negative, and Origin+Size must not overflow.
func NewIndexInterval(origin, size Index) (IndexInterval, error) {
    if size < 0 {
        return IndexInterval{}, fmt.Errorf("%w: negative interval size %d", ErrBadShape, size)
    }
    if _, ok := CheckedAdd(origin, size); !ok {
        return IndexInterval{}, fmt.Errorf("%w: interval [%d, %d+%d) overflows", ErrOverflow, origin, origin, size)
    }
    return IndexInterval{Origin: origin, Size: size}, nil
}

// IsEmpty reports whether the interval contains no elements.
func (iv IndexInterval) IsEmpty() bool {
    return iv.Size <= 0
}

// End returns the (exclusive) end of the interval, Origin+Size.
func (iv IndexInterval) End() Index {
    if iv.IsEmpty() {
        return iv.Origin
    }
    return iv.Origin + iv.Size
}

// Contains reports whether x lies within the interval.
func (iv IndexInterval) Contains(x Index) bool {
    if iv.IsEmpty() {
        return false
    }
    return (x >= iv.Origin) && (x < iv.End())
}

// Equal reports whether two intervals represent the same set of indices.
// Two empty intervals are always equal, regardless of Origin.
func (iv IndexInterval) Equal(other IndexInterval) bool {
    if iv.IsEmpty() && other.IsEmpty() {
        return true
    }
    return (iv.Origin == other.Origin) && (iv.Size == other.Size)
}

// Intersect returns the overlap of two intervals. The second return value is
// false iff the intersection is empty.
func (iv IndexInterval) Intersect(other IndexInterval) (IndexInterval, bool) {
    if iv.IsEmpty() || other.IsEmpty() {
        return IndexInterval{}, false
    }
    lo := iv.Origin
    if other.Origin > lo {
        lo = other.Origin
    }
    hi := iv.End()
    if other.End() < hi {
        hi = other.End()
    }
    if hi <= lo {
        return IndexInterval{}, false
    }
    return IndexInterval{Origin: lo, Size: hi - lo}, true
}

// String renders the interval in half-open mathematical notation.
func (iv IndexInterval) String() string {
    if iv.IsEmpty() {
        return "[)"
    }
    return fmt.Sprintf("[%d, %d)", iv.Origin, iv.End())
}
