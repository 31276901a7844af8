package Trees

import (
	"errors"
	"fmt"
)

// ErrPivotNotFound is matched by errors.Is for every *PivotNotFoundError.
var ErrPivotNotFound = errors.New("Trees: pivot not present")

// PivotNotFoundError is returned by Split when the pivot isn't in the tree. The tree is left untouched.
type PivotNotFoundError[T any] struct {
	Pivot T
}

func (e *PivotNotFoundError[T]) Error() string {
	return fmt.Sprintf("Trees: pivot %v not present", e.Pivot)
}

func (e *PivotNotFoundError[T]) Unwrap() error {
	return ErrPivotNotFound
}

// InvalidOrderError is the panic value for a broken ordering precondition: Build given a slice that
// isn't strictly increasing, or Join/JoinWith given ranges that aren't ordered. Left must be less than Right
// but isn't.
type InvalidOrderError[T any] struct {
	Op          string
	Left, Right T
}

func (e InvalidOrderError[T]) Error() string {
	return fmt.Sprintf("Trees: %s requires %v < %v", e.Op, e.Left, e.Right)
}
