// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"io"

	"github.com/gogpu/wireframe"
)

// Backend is the interface that all export backends must implement.
// Backends receive 2D line segments in draw order and translate them to
// their output format (SVG elements, raster pixels, ...).
//
// The renderer drives a backend through one fixed lifecycle: a single Begin
// with the canvas dimensions, any number of Line calls, then a single End.
// Output methods on the extension interfaces (WriteTo, SaveToFile) are only
// valid after End.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
type Backend interface {
	// Begin initializes the backend for a canvas of the given dimensions.
	// This must be called before any Line call.
	Begin(width, height int) error

	// Line records one segment from (x1, y1) to (x2, y2) stroked with the
	// given color. Calls arrive in draw order and must be kept in order.
	Line(x1, y1, x2, y2 float64, color wireframe.Color)

	// End finalizes the output. After End is called, the output methods
	// of WriterBackend and FileBackend can be used.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an
// io.Writer. This is useful for streaming output or writing to network
// connections.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	// Returns the number of bytes written and any error.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to
// a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}
