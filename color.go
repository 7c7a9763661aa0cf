package wireframe

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Color identifies a stroke color by its SVG 1.1 color name. The name is
// written verbatim into SVG output; raster backends resolve it to a pixel
// value via RGBA.
type Color struct {
	Name string
}

// RGBA resolves the color name against the SVG color table. Unknown names
// resolve to black, matching how a conforming SVG viewer falls back.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := colornames.Map[c.Name]; ok {
		return rgba
	}
	return colornames.Black
}

// String returns the SVG color name.
func (c Color) String() string {
	return c.Name
}

// The fixed four-entry palette, in instance draw order.
var (
	Magenta = Color{Name: "magenta"}
	Cyan    = Color{Name: "cyan"}
	Blue    = Color{Name: "blue"}
	Purple  = Color{Name: "purple"}
)

// DefaultPalette returns the palette assigned to the four default instances.
func DefaultPalette() [4]Color {
	return [4]Color{Magenta, Cyan, Blue, Purple}
}
