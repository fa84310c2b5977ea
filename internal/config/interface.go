package config

import "context"

// Loader is the interface for a format-specific chart document loader.
type Loader interface {
	// Load reads the document at path and translates it into the
	// format-agnostic Document.
	Load(ctx context.Context, path string) (*Document, error)
}
