package test

import (
    "errors"
    "testing"
)

// Panics returns true iff calling f panics and either target is nil, or the
// panic value is an error for which errors.Is(error, target) is true.
func Panics(t *testing.T, f func(), target error) (result bool) {
    t.Helper()
    defer func() {
        if r := recover(); r == nil {
            result = false
        } else if err, ok := r.(error); ok {
            result = (target == nil) || errors.Is(err, target)
        } else {
            result = (target == nil)
        }
    }()
    f()
    return false
}
