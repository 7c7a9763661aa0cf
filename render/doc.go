// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render streams transformed wireframe segments to export backends.
//
// The renderer walks the edge list once per rendered instance, applies the
// instance's composed screen transform to every edge, and hands each
// resulting 2D segment straight to a Backend. Segments are never collected
// in memory; the backend sees them in draw order, instance by instance, so
// later segments paint over earlier ones in the final image.
//
// Backends translate the segment stream into an output format (SVG markup,
// raster pixels). They register by name in the database/sql driver style:
//
//	// Import to register the backend
//	import _ "github.com/gogpu/wireframe/render/backends/svg"
//
//	// Create via registry
//	backend, _ := render.NewBackend("svg")
//
//	// Render and save
//	r := render.NewRenderer()
//	if err := r.Render(list.Edges, backend); err != nil {
//		return err
//	}
//	backend.(render.FileBackend).SaveToFile("output.html")
package render
