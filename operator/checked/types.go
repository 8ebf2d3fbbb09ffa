package checked

import (
    "golang.org/x/exp/constraints"
)

// Number represents any number type supported by the checked arithmetic in
// this package - i.e. integers and floats, the same set [operator.Number]
// describes for unchecked arithmetic.
type Number interface {
    constraints.Integer | constraints.Float
}
