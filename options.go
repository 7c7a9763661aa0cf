package wireframe

// LoadOption configures ReadEdges.
//
// Example:
//
//	// Default 5000-edge capacity
//	list, err := wireframe.ReadEdges(f)
//
//	// Smaller capacity for constrained callers
//	list, err := wireframe.ReadEdges(f, wireframe.WithMaxEdges(100))
type LoadOption func(*loadOptions)

// loadOptions holds optional configuration for edge loading.
type loadOptions struct {
	maxEdges int
}

// defaultLoadOptions returns the default load options.
func defaultLoadOptions() loadOptions {
	return loadOptions{maxEdges: MaxEdges}
}

// WithMaxEdges overrides the edge-list capacity. Values below one are
// ignored and the default is kept.
func WithMaxEdges(n int) LoadOption {
	return func(o *loadOptions) {
		if n > 0 {
			o.maxEdges = n
		}
	}
}
