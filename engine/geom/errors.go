package geom

import "errors"

// Epsilon is the length below which vectors and extents count as degenerate.
const Epsilon = 1e-9

// ErrDegenerate marks a geometric precondition violation: zero-length
// direction vectors, zero-area windows, perspective divides by zero.
var ErrDegenerate = errors.New("geometric degeneracy")
