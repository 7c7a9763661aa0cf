// Command wireframe renders the 3D model in input.txt as four scaled and
// translated colored copies, writing output.html (SVG markup) and
// output.png (raster preview). Filenames are fixed; there are no flags.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/wireframe"
	"github.com/gogpu/wireframe/render"

	_ "github.com/gogpu/wireframe/render/backends/raster"
	_ "github.com/gogpu/wireframe/render/backends/svg"
)

const (
	inputFilename      = "input.txt"
	htmlOutputFilename = "output.html"
	pngOutputFilename  = "output.png"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	wireframe.SetLogger(logger)

	if err := run(logger); err != nil {
		logger.Error("wireframe failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	edges, err := loadEdges()
	if err != nil {
		return err
	}
	logger.Info("model loaded", "edges", edges.Len(), "truncated", edges.Truncated)

	r := render.NewRenderer()
	outputs := []struct {
		backend string
		path    string
	}{
		{"svg", htmlOutputFilename},
		{"raster", pngOutputFilename},
	}
	for _, out := range outputs {
		b, err := render.NewBackend(out.backend)
		if err != nil {
			return err
		}
		if err := r.Render(edges.Edges, debugBackend{b, logger}); err != nil {
			return err
		}
		fb, ok := b.(render.FileBackend)
		if !ok {
			return fmt.Errorf("backend %q cannot save files", out.backend)
		}
		if err := fb.SaveToFile(out.path); err != nil {
			return err
		}
		logger.Info("output written", "backend", out.backend, "path", out.path)
	}
	return nil
}

func loadEdges() (*wireframe.EdgeList, error) {
	f, err := os.Open(inputFilename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", wireframe.ErrUnreadableInput, err)
	}
	defer f.Close()
	return wireframe.ReadEdges(f)
}

// debugBackend echoes every transformed segment at debug level before
// forwarding it, mirroring the coordinate dump of the original tool.
type debugBackend struct {
	render.Backend
	logger *slog.Logger
}

func (d debugBackend) Line(x1, y1, x2, y2 float64, color wireframe.Color) {
	d.logger.Debug("segment",
		"x1", x1, "y1", y1, "x2", x2, "y2", y2, "color", color.Name)
	d.Backend.Line(x1, y1, x2, y2, color)
}
