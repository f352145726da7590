package label

import "errors"

var (
	// ErrLengthMismatch indicates FromColumns received columns of differing length.
	ErrLengthMismatch = errors.New("label: column length mismatch")
)
