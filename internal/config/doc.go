// Package config defines the format-agnostic chart document every loader
// translates into, and the Loader interface the application depends on.
package config
