package regrid

import "errors"

var (
	// ErrInvalidSpec is returned when a RemapSpec references
	// a logical column or row outside of the source data.
	// It signals a mismatch between the host integration
	// and the data and is not recovered internally.
	ErrInvalidSpec = errors.New("invalid remap spec")

	// ErrIndexOutOfRange is returned by mutating operations
	// for an index beyond the current axis length.
	// Queries report the same condition as an absent result.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnsupported is returned for operations that the
	// current variant does not support, like resizing
	// a single index of a FixedAxisMeasure.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrInvalidSize is returned for negative or NaN pixel sizes.
	ErrInvalidSize = errors.New("invalid size")
)
