package yamlspec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/vizpipe/internal/config"
	"github.com/vk/vizpipe/internal/ctxlog"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Loader implements config.Loader for JSON and YAML chart files.
type Loader struct{}

// NewLoader creates a new JSON/YAML chart loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and translates the chart at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	enc := EncodingFromExt(path)
	logger.Debug("Chart loader started.", zap.String("path", path), zap.Stringer("encoding", enc))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart file %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(enc, f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s file %s: %w", enc, path, err)
	}

	logger.Debug("Chart loading complete.", zap.String("chart", doc.Name), zap.Int("encodings", len(doc.Encoding)))
	return doc, nil
}

type decoder interface {
	Decode(any) error
}

// Parse decodes one chart document from r. Unknown encodings are read as
// YAML, which also accepts most JSON.
func Parse(enc Encoding, r io.Reader) (*config.Document, error) {
	var dec decoder = yaml.NewDecoder(r)
	if enc == EncodingJSON {
		dec = json.NewDecoder(r)
	}

	var c chart
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("document is empty")
		}
		return nil, err
	}
	if c.Mark == "" {
		return nil, errors.New("mark is required")
	}
	return c.translate(), nil
}

func (c *chart) translate() *config.Document {
	doc := &config.Document{
		Name:     c.Name,
		Mark:     c.Mark,
		Resolve:  c.Resolve,
		Encoding: make(map[string]*config.FieldDecl, len(c.Encoding)),
	}

	if c.Data != nil {
		doc.Data = &config.Data{URL: c.Data.URL, FormatType: c.Data.FormatType, Values: c.Data.Values}
	}

	for ch, fs := range c.Encoding {
		if fs == nil {
			continue
		}
		decl := &config.FieldDecl{
			Field:     fs.Field,
			Type:      fs.Type,
			Aggregate: fs.Aggregate,
			TimeUnit:  fs.TimeUnit,
		}
		if b := fs.Bin; b != nil && b.Enabled {
			decl.Bin = &config.BinDecl{MaxBins: b.MaxBins, Step: b.Step, Min: b.Min, Max: b.Max}
		}
		if s := fs.Scale; s != nil {
			decl.Scale = &config.ScaleDecl{Type: s.Type, Domain: s.Domain, Padding: s.Padding, BandWidth: s.BandWidth}
		}
		doc.Encoding[ch] = decl
	}

	if t := c.Transform; t != nil {
		doc.Transform = &config.Transform{Filter: t.Filter, FilterNull: t.FilterNull}
		for _, calc := range t.Calculate {
			doc.Transform.Calculate = append(doc.Transform.Calculate, &config.Calculate{Field: calc.Field, Expr: calc.Expr})
		}
	}

	if cfg := c.Config; cfg != nil {
		doc.Config = &config.Config{
			CellWidth:     cfg.CellWidth,
			CellHeight:    cfg.CellHeight,
			BandWidth:     cfg.BandWidth,
			TextBandWidth: cfg.TextBandWidth,
			Padding:       cfg.Padding,
			FacetPadding:  cfg.FacetPadding,
			Stacked:       cfg.Stacked,
		}
	}
	return doc
}
