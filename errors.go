package ciphersleuth

import "errors"

// ErrInvalidN indicates identify/Identify was called with n < 1 — a
// programming error, not a data problem.
var ErrInvalidN = errors.New("ciphersleuth: n must be >= 1")
