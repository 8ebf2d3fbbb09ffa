package indexspace

// rowMajorIndex computes the flat, row-major offset of coords into a
// contiguous buffer shaped by lengths: the last dimension is fastest-
// varying, matching C/row-major storage order. len(coords) must equal
// len(lengths). A coordinate outside [0, lengths[i]) is rejected rather
// than wrapped, since an out-of-domain IndexArray access is a reportable
// error here, not a convenience wraparound.
func rowMajorIndex(lengths []Index, coords []Index) (int, bool) {
    stride := Index(1)
    total := Index(0)
    for i := len(lengths) - 1; i >= 0; i-- {
        if (coords[i] < 0) || (coords[i] >= lengths[i]) {
            return 0, false
        }
        total += coords[i] * stride
        stride *= lengths[i]
    }
    return int(total), true
}

// size returns the product of lengths, i.e. the total element count of a
// contiguous buffer with that shape. An empty shape has size 1 (a single
// scalar element).
func size(lengths []Index) Index {
    total := Index(1)
    for _, l := range lengths {
        total *= l
    }
    return total
}
