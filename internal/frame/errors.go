package frame

import "errors"

var (
	// ErrLengthMismatch means columns or labels of differing lengths were
	// combined into one frame.
	ErrLengthMismatch = errors.New("column lengths do not match")
	// ErrUnknownColumn means a named column does not exist in the frame.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrDuplicateColumn means two columns in one frame share a name.
	ErrDuplicateColumn = errors.New("duplicate column name")
	// ErrBadKeySpec means a merge was requested without a usable key
	// specification.
	ErrBadKeySpec = errors.New("invalid join key specification")
	// ErrBadEdges means bin edges were missing or not strictly increasing.
	ErrBadEdges = errors.New("bin edges must be strictly increasing and at least two")
	// ErrDuplicatePair means unstack found two entries for one
	// (row, column) pair.
	ErrDuplicatePair = errors.New("duplicate (row, column) pair")
)
