// Package svg provides an SVG backend for the render system.
// It writes the segment stream as SVG line elements embedded in a minimal
// HTML5 page, the format consumed by any web browser.
//
// # Output
//
// The document is a fixed prologue (doctype, head, an <svg> element sized
// to the canvas), one <line> element per segment with its stroke color,
// and a fixed epilogue. Coordinates are written with one decimal place.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/wireframe/render/backends/svg"
//
//	// Create via registry
//	backend, _ := render.NewBackend("svg")
//
//	// Or create directly
//	backend := svg.NewBackend()
//
//	// Render, then save
//	r.Render(edges, backend)
//	backend.SaveToFile("output.html")
package svg

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/wireframe"
	"github.com/gogpu/wireframe/render"
)

func init() {
	render.Register("svg", func() render.Backend {
		return NewBackend()
	})
}

// Backend buffers the markup for one rendered document.
// It implements render.Backend, render.WriterBackend and render.FileBackend.
type Backend struct {
	buf bytes.Buffer
}

// Ensure Backend implements all required interfaces.
var (
	_ render.Backend       = (*Backend)(nil)
	_ render.WriterBackend = (*Backend)(nil)
	_ render.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin resets the buffer and writes the document prologue for a canvas of
// the given dimensions.
func (b *Backend) Begin(width, height int) error {
	b.buf.Reset()
	b.buf.WriteString("<!DOCTYPE html>\n")
	b.buf.WriteString("<html>\n")
	b.buf.WriteString("<head>\n")
	b.buf.WriteString("<title>Wireframe</title>\n")
	b.buf.WriteString("</head>\n")
	b.buf.WriteString("<body>\n")
	fmt.Fprintf(&b.buf, "<svg width=\"%dpx\" height=\"%dpx\">\n", width, height)
	return nil
}

// Line appends one stroked line element. Coordinates are rounded to one
// decimal place; the color name is written verbatim as the stroke style.
func (b *Backend) Line(x1, y1, x2, y2 float64, color wireframe.Color) {
	fmt.Fprintf(&b.buf,
		"<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" style=\"stroke: %s;\" />\n",
		x1, y1, x2, y2, color)
}

// End writes the document epilogue.
func (b *Backend) End() error {
	b.buf.WriteString("</svg>\n")
	b.buf.WriteString("</body>\n")
	b.buf.WriteString("</html>\n")
	return nil
}

// WriteTo writes the buffered document to w.
// This should only be called after End().
// A write failure wraps wireframe.ErrUnwritableOutput.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("%w: %v", wireframe.ErrUnwritableOutput, err)
	}
	return int64(n), nil
}

// SaveToFile saves the buffered document to a file at the given path.
// This should only be called after End().
// A create or write failure wraps wireframe.ErrUnwritableOutput.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", wireframe.ErrUnwritableOutput, err)
	}
	if _, err := b.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", wireframe.ErrUnwritableOutput, err)
	}
	return nil
}
