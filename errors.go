package wireframe

import "errors"

// Sentinel errors for the two fatal I/O conditions. The library returns
// them as wrapped values; callers match with errors.Is and decide whether
// to halt.
var (
	// ErrUnreadableInput reports that the wireframe input source could
	// not be opened or read.
	ErrUnreadableInput = errors.New("wireframe: unreadable input")

	// ErrUnwritableOutput reports that the output sink was unavailable
	// at write time.
	ErrUnwritableOutput = errors.New("wireframe: unwritable output")
)
