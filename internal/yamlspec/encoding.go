package yamlspec

import (
	"path/filepath"
	"strings"
)

// Encoding describes the encoding of a chart file.
type Encoding int

const (
	EncodingUnknown Encoding = iota
	EncodingJSON
	EncodingYAML
)

// String provides the string representation of the encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingJSON:
		return "json"
	case EncodingYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// EncodingFromExt returns the encoding implied by a file's extension.
func EncodingFromExt(path string) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return EncodingJSON
	case ".yaml", ".yml":
		return EncodingYAML
	default:
		return EncodingUnknown
	}
}
