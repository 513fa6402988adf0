package outliner

import "github.com/inkline/outliner/layout"

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	config layout.Config
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{config: layout.DefaultConfig()}
}

// clone creates a copy of ExtractOptions. Config is a plain value, so a
// shallow copy is a deep copy.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{config: o.config}
}
