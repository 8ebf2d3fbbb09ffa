package checked_test

import (
    "testing"

    "github.com/tawesoft/gridspace/internal/test"
    "github.com/tawesoft/gridspace/must"
    "github.com/tawesoft/gridspace/operator/checked"
)

// weirdInt is deliberately not one of the types GetLimits' type switch
// enumerates, to exercise its unreachable default case.
type weirdInt int64

func TestGetLimitsPanicsOnUnknownType(t *testing.T) {
    ok := test.Panics(t, func() {
        checked.GetLimits[weirdInt]()
    }, nil)
    if !ok {
        t.Errorf("GetLimits[weirdInt]() did not panic")
    }
}

func TestGetLimitsKnownTypes(t *testing.T) {
    if l := checked.GetLimits[int32](); l != checked.Int32 {
        t.Errorf("GetLimits[int32]() = %v, want %v", l, checked.Int32)
    }
    if l := checked.GetLimits[uint64](); l != checked.Uint64 {
        t.Errorf("GetLimits[uint64]() = %v, want %v", l, checked.Uint64)
    }
}
