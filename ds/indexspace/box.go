package indexspace

import (
    "strings"
)

// Box is an ordered collection of intervals, one per dimension, representing
// a rectilinear region of an index space. A zero-rank Box (len(Box) == 0)
// represents the single point at the origin of a 0-dimensional space.
type Box []IndexInterval

// Rank returns the number of dimensions of the box.
func (b Box) Rank() int {
    return len(b)
}

// IsEmpty reports whether any dimension of the box is empty, and therefore
// the box as a whole contains no points.
func (b Box) IsEmpty() bool {
    for _, iv := range b {
        if iv.IsEmpty() {
            return true
        }
    }
    return false
}

// Clone returns an independent copy of the box.
func (b Box) Clone() Box {
    out := make(Box, len(b))
    copy(out, b)
    return out
}

// Contains reports whether point lies within the box. len(point) must equal
// b.Rank().
func (b Box) Contains(point []Index) bool {
    if len(point) != len(b) {
        return false
    }
    for i, iv := range b {
        if !iv.Contains(point[i]) {
            return false
        }
    }
    return true
}

// Intersect returns the intersection of two boxes of equal rank. The second
// return value is false iff the intersection is empty along any dimension.
func (b Box) Intersect(other Box) (Box, bool) {
    if len(b) != len(other) {
        return nil, false
    }
    out := make(Box, len(b))
    for i := range b {
        iv, ok := b[i].Intersect(other[i])
        if !ok {
            return nil, false
        }
        out[i] = iv
    }
    return out, true
}

// String renders the box as a cross product of its per-dimension intervals.
func (b Box) String() string {
    var sb strings.Builder
    for i, iv := range b {
        if i > 0 {
            sb.WriteString(" x ")
        }
        sb.WriteString(iv.String())
    }
    return sb.String()
}
