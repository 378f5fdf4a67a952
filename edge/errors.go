package edge

import "errors"

var (
	// ErrEmptyInput is returned for a nil image or one with a zero
	// dimension.
	ErrEmptyInput = errors.New("edge: empty input image")

	// ErrInvalidKernel is returned for a kernel whose side length is not
	// a positive odd number, or whose rows are not square.
	ErrInvalidKernel = errors.New("edge: invalid kernel")

	// ErrInputTooSmall is returned when the image is narrower or shorter
	// than the kernel footprint.
	ErrInputTooSmall = errors.New("edge: input smaller than kernel")
)

// ErrUnknownOperator is returned by ParseOperator for an unrecognized name
// and by Pipeline.Run when no operator is set.
var ErrUnknownOperator = errors.New("edge: unknown operator")
