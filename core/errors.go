package core

import (
	"errors"
	"fmt"
)

var (
	ErrLengthMismatch  = errors.New("xs and ys must have the same length")
	ErrBufferSize      = errors.New("distance buffer must hold n*n values")
	ErrUnknownDistance = errors.New("unknown distance function")
)

// MustMatch panics when xs and ys differ in length.
// It returns the number of points otherwise.
func MustMatch(xs, ys []float32) int {
	if len(xs) != len(ys) {
		panic(fmt.Errorf("%w: len(xs)=%d, len(ys)=%d", ErrLengthMismatch, len(xs), len(ys)))
	}
	return len(xs)
}

// MustFit panics when distances cannot hold exactly n*n values.
func MustFit(distances []float32, n int) {
	if len(distances) != n*n {
		panic(fmt.Errorf("%w: n=%d, len(distances)=%d", ErrBufferSize, n, len(distances)))
	}
}
