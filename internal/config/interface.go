package config

import "context"

// Loader is the interface for a format-specific job declaration loader.
type Loader interface {
	// Load reads declarations from the given paths and translates them into
	// the format-agnostic model, preserving declaration order.
	Load(ctx context.Context, paths ...string) (*Model, error)

	// Extensions lists the file extensions (with the leading dot) this
	// loader understands.
	Extensions() []string
}
