// Package raster provides a raster backend for the render system.
// It strokes the segment stream into a pixel image using gg and exports
// the result as PNG.
//
// # Supported Features
//
//   - Solid color strokes from the wireframe palette
//   - White canvas background
//   - PNG output via WriteTo and SaveToFile
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/wireframe/render/backends/raster"
//
//	// Create via registry
//	backend, _ := render.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	// Render, then save
//	r.Render(edges, backend)
//	backend.SaveToFile("output.png")
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/gogpu/wireframe"
	"github.com/gogpu/wireframe/render"
)

func init() {
	render.Register("raster", func() render.Backend {
		return NewBackend()
	})
}

// Backend strokes segments into a gg.Context.
// It implements render.Backend, render.WriterBackend and render.FileBackend.
type Backend struct {
	dc *gg.Context
}

// Ensure Backend implements all required interfaces.
var (
	_ render.Backend       = (*Backend)(nil)
	_ render.WriterBackend = (*Backend)(nil)
	_ render.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin creates the drawing context and clears it to white.
func (b *Backend) Begin(width, height int) error {
	b.dc = gg.NewContext(width, height)
	b.dc.ClearWithColor(gg.White)
	b.dc.SetLineWidth(1)
	return nil
}

// Line strokes one segment with the given palette color.
func (b *Backend) Line(x1, y1, x2, y2 float64, color wireframe.Color) {
	b.dc.SetColor(color.RGBA())
	b.dc.DrawLine(x1, y1, x2, y2)
	if err := b.dc.Stroke(); err != nil {
		wireframe.Logger().Warn("raster stroke failed", "err", err)
	}
}

// End finalizes the rendering.
// After End is called, output methods (WriteTo, SaveToFile) can be used.
func (b *Backend) End() error {
	return nil
}

// Image returns the rendered image.
// This should only be called after End(). Returns nil before Begin.
func (b *Backend) Image() image.Image {
	if b.dc == nil {
		return nil
	}
	return b.dc.Image()
}

// WriteTo encodes the rendered image as PNG and writes it to w.
// This should only be called after End().
// An encode or write failure wraps wireframe.ErrUnwritableOutput.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := b.dc.EncodePNG(cw); err != nil {
		return cw.n, fmt.Errorf("%w: %v", wireframe.ErrUnwritableOutput, err)
	}
	return cw.n, nil
}

// SaveToFile saves the rendered image as a PNG file at the given path.
// This should only be called after End().
// A write failure wraps wireframe.ErrUnwritableOutput.
func (b *Backend) SaveToFile(path string) error {
	if err := b.dc.SavePNG(path); err != nil {
		return fmt.Errorf("%w: %v", wireframe.ErrUnwritableOutput, err)
	}
	return nil
}

// countingWriter tracks bytes written so WriteTo can report a byte count
// even though PNG encoding reports only errors.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
