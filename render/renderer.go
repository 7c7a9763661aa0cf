// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/wireframe"

// Canvas dimensions of the reference output, in pixels.
const (
	CanvasWidth  = 500
	CanvasHeight = 500
)

// Renderer draws scaled and translated copies of a wireframe model onto a
// backend. The zero configuration matches the reference pipeline: a 500x500
// canvas, the fixed view rotation, and four instances shrinking across the
// canvas quadrants.
//
// A Renderer holds only immutable configuration and is safe to reuse
// across models and backends.
type Renderer struct {
	width, height int
	angles        wireframe.Angles
	instances     []wireframe.Instance
}

// Option configures a Renderer during creation.
type Option func(*Renderer)

// WithCanvasSize overrides the canvas dimensions passed to the backend.
func WithCanvasSize(width, height int) Option {
	return func(r *Renderer) {
		r.width = width
		r.height = height
	}
}

// WithAngles overrides the view rotation shared by all instances.
func WithAngles(a wireframe.Angles) Option {
	return func(r *Renderer) {
		r.angles = a
	}
}

// WithInstances overrides the rendered copies. Instances draw in slice
// order; an empty slice renders nothing.
func WithInstances(instances []wireframe.Instance) Option {
	return func(r *Renderer) {
		r.instances = instances
	}
}

// NewRenderer creates a Renderer with the reference defaults, then applies
// the given options.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		width:     CanvasWidth,
		height:    CanvasHeight,
		angles:    wireframe.DefaultAngles(),
		instances: wireframe.DefaultInstances(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render streams every configured instance of the model to the backend.
// For each instance a fresh screen transform is composed, then every edge
// is transformed and emitted as one Line call, in edge-list order. Each
// instance is fully emitted before the next begins, so the backend receives
// contiguous uniformly-colored blocks in instance order.
//
// Render performs no filtering, clipping or deduplication.
func (r *Renderer) Render(edges []wireframe.Edge, b Backend) error {
	if err := b.Begin(r.width, r.height); err != nil {
		return err
	}
	for _, inst := range r.instances {
		r.renderInstance(edges, inst, b)
	}
	return b.End()
}

// renderInstance emits one block of segments for a single instance.
func (r *Renderer) renderInstance(edges []wireframe.Edge, inst wireframe.Instance, b Backend) {
	m := wireframe.Compose(inst, r.angles)
	for _, e := range edges {
		p, q := m.MulEdge(e)
		b.Line(p.X, p.Y, q.X, q.Y, inst.Color)
	}
}
