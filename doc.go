// Package wireframe projects 3D line-segment models onto a 2D canvas.
//
// # Overview
//
// wireframe implements a fixed fly-weight transform pipeline: a model is a
// list of edges in homogeneous coordinates, and each rendered copy of the
// model is produced by composing rotation, scaling, translation and
// projection into a single 2x4 screen transform. The render sub-package
// streams the transformed segments to pluggable export backends (SVG markup,
// raster PNG).
//
// # Quick Start
//
//	f, _ := os.Open("input.txt")
//	defer f.Close()
//
//	list, err := wireframe.ReadEdges(f)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	r := render.NewRenderer()
//	b := svg.NewBackend()
//	if err := r.Render(list.Edges, b); err != nil {
//		log.Fatal(err)
//	}
//	b.SaveToFile("output.html")
//
// # Coordinate System
//
// The projection maps model x to screen x and model z to screen y. Screen
// coordinates follow the usual raster convention: origin at the top left,
// y increasing downward. The composed transform negates the z scale factor
// so that model z still reads as "up" in the rendered image.
//
// # Scope
//
// This is not a general 3D engine. There is no camera model, no clipping,
// no hidden-surface removal, and the five transforms compose in one fixed
// order. See the render package for the instance parameters that vary
// between the four rendered copies.
package wireframe
