package raster

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/wireframe"
	"github.com/gogpu/wireframe/render"
)

// pngSignature is the fixed 8-byte PNG file header.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestImageNilBeforeBegin(t *testing.T) {
	if img := NewBackend().Image(); img != nil {
		t.Errorf("Image() before Begin = %v, want nil", img)
	}
}

func TestLineDrawsPixels(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(50, 50); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	b.Line(5, 25, 45, 25, wireframe.Blue)
	if err := b.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	img := b.Image()
	if img == nil {
		t.Fatal("Image() returned nil after End")
	}

	// The horizontal stroke must leave non-white pixels along its row.
	white := color.RGBA{255, 255, 255, 255}
	touched := 0
	for x := 5; x <= 45; x++ {
		if color.RGBAModel.Convert(img.At(x, 25)) != white {
			touched++
		}
	}
	if touched == 0 {
		t.Error("no pixels drawn along the stroked line")
	}
}

func TestBackgroundIsWhite(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(10, 10); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := b.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	white := color.RGBA{255, 255, 255, 255}
	if got := color.RGBAModel.Convert(b.Image().At(5, 5)); got != white {
		t.Errorf("background pixel = %v, want white", got)
	}
}

func TestWriteToEncodesPNG(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(20, 20); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	b.Line(0, 0, 19, 19, wireframe.Magenta)
	if err := b.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}
	if !bytes.HasPrefix(buf.Bytes(), pngSignature) {
		t.Error("output does not start with the PNG signature")
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteToFailureWrapsSentinel(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(10, 10); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := b.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	_, err := b.WriteTo(failingWriter{err: errors.New("broken pipe")})
	if !errors.Is(err, wireframe.ErrUnwritableOutput) {
		t.Errorf("WriteTo error = %v, want ErrUnwritableOutput", err)
	}
}

func TestSaveToFile(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(20, 20); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	b.Line(0, 10, 19, 10, wireframe.Purple)
	if err := b.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := b.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.HasPrefix(data, pngSignature) {
		t.Error("saved file does not start with the PNG signature")
	}
}

func TestSaveToFileBadPath(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(10, 10); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := b.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	err := b.SaveToFile(filepath.Join(t.TempDir(), "missing", "out.png"))
	if !errors.Is(err, wireframe.ErrUnwritableOutput) {
		t.Errorf("SaveToFile error = %v, want ErrUnwritableOutput", err)
	}
}

func TestRegistered(t *testing.T) {
	if !render.IsRegistered("raster") {
		t.Fatal("raster backend should self-register")
	}
	b, err := render.NewBackend("raster")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Errorf("registry returned %T, want *raster.Backend", b)
	}
}

func TestEndToEndPrimitiveCount(t *testing.T) {
	edges := []wireframe.Edge{
		wireframe.NewEdge(wireframe.V3(0, 0, 0), wireframe.V3(1, 0, 0)),
		wireframe.NewEdge(wireframe.V3(0, 0, 0), wireframe.V3(0, 0, 1)),
	}

	b := NewBackend()
	if err := render.NewRenderer().Render(edges, b); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if b.Image() == nil {
		t.Fatal("Image() returned nil after full render")
	}
}
