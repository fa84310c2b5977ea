package hcl

import (
	"context"
	"fmt"

	"github.com/vk/vizpipe/internal/config"
	"github.com/vk/vizpipe/internal/ctxlog"
	"go.uber.org/zap"
)

// translateChart converts a decoded chart block into the format-agnostic
// document.
func translateChart(ctx context.Context, c *chartBlock) (*config.Document, error) {
	doc := &config.Document{
		Name:     c.Name,
		Mark:     c.Mark,
		Resolve:  c.Resolve,
		Encoding: make(map[string]*config.FieldDecl, len(c.Encodings)),
	}

	if c.Data != nil {
		data, err := translateData(c.Data)
		if err != nil {
			return nil, fmt.Errorf("chart '%s': %w", c.Name, err)
		}
		doc.Data = data
	}

	for _, enc := range c.Encodings {
		if _, dup := doc.Encoding[enc.Channel]; dup {
			return nil, fmt.Errorf("chart '%s': channel '%s' is encoded more than once", c.Name, enc.Channel)
		}
		decl, err := translateEncoding(enc)
		if err != nil {
			return nil, fmt.Errorf("chart '%s', encoding '%s': %w", c.Name, enc.Channel, err)
		}
		doc.Encoding[enc.Channel] = decl
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

	ctxlog.FromContext(ctx).Debug("Translated chart block.", zap.String("chart", c.Name), zap.Bool("inline_values", doc.Data != nil && doc.Data.Values != nil))
	return doc, nil
}

func translateData(d *dataBlock) (*config.Data, error) {
	values, err := exprValue(d.Values)
	if err != nil {
		return nil, fmt.Errorf("invalid data values: %w", err)
	}
	data := &config.Data{URL: d.URL, FormatType: d.FormatType}
	if values != nil {
		rows, ok := values.([]any)
		if !ok {
			return nil, fmt.Errorf("data values must be a list of rows, got %T", values)
		}
		data.Values = rows
	}
	return data, nil
}

func translateEncoding(enc *encodingBlock) (*config.FieldDecl, error) {
	decl := &config.FieldDecl{
		Field:     enc.Field,
		Type:      enc.Type,
		Aggregate: enc.Aggregate,
		TimeUnit:  enc.TimeUnit,
	}
	if b := enc.Bin; b != nil {
		decl.Bin = &config.BinDecl{MaxBins: b.MaxBins, Step: b.Step, Min: b.Min, Max: b.Max}
	}
	if s := enc.Scale; s != nil {
		domain, err := exprValue(s.Domain)
		if err != nil {
			return nil, fmt.Errorf("invalid scale domain: %w", err)
		}
		decl.Scale = &config.ScaleDecl{Type: s.Type, Padding: s.Padding, BandWidth: s.BandWidth}
		if domain != nil {
			list, ok := domain.([]any)
			if !ok {
				return nil, fmt.Errorf("scale domain must be a list, got %T", domain)
			}
			decl.Scale.Domain = list
		}
	}
	return decl, nil
}
