package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/vizpipe/internal/config"
	"github.com/vk/vizpipe/internal/ctxlog"
	"go.uber.org/zap"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL chart loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the file at path, which must hold exactly one chart block, and
// translates it into a config.Document.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", zap.String("path", path))

	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	if len(root.Charts) != 1 {
		return nil, fmt.Errorf("HCL file %s must contain exactly one chart block, found %d", path, len(root.Charts))
	}

	doc, err := translateChart(ctx, root.Charts[0])
	if err != nil {
		return nil, fmt.Errorf("in HCL file %s: %w", path, err)
	}

	logger.Debug("HCL loading complete.", zap.String("chart", doc.Name), zap.Int("encodings", len(doc.Encoding)))
	return doc, nil
}
