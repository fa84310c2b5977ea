package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes the top-level blocks of a chart file.
type fileRoot struct {
	Charts []*chartBlock `hcl:"chart,block"`
	Remain hcl.Body      `hcl:",remain"`
}

type chartBlock struct {
	Name      string            `hcl:"name,label"`
	Mark      string            `hcl:"mark"`
	Data      *dataBlock        `hcl:"data,block"`
	Encodings []*encodingBlock  `hcl:"encoding,block"`
	Transform *transformBlock   `hcl:"transform,block"`
	Resolve   map[string]string `hcl:"resolve,optional"`
	Config    *configBlock      `hcl:"config,block"`
}

type dataBlock struct {
	URL        string         `hcl:"url,optional"`
	FormatType string         `hcl:"format_type,optional"`
	Values     hcl.Expression `hcl:"values,optional"`
}

type encodingBlock struct {
	Channel   string      `hcl:"channel,label"`
	Field     string      `hcl:"field,optional"`
	Type      string      `hcl:"type,optional"`
	Aggregate string      `hcl:"aggregate,optional"`
	TimeUnit  string      `hcl:"time_unit,optional"`
	Bin       *binBlock   `hcl:"bin,block"`
	Scale     *scaleBlock `hcl:"scale,block"`
}

type binBlock struct {
	MaxBins *int     `hcl:"max_bins,optional"`
	Step    *float64 `hcl:"step,optional"`
	Min     *float64 `hcl:"min,optional"`
	Max     *float64 `hcl:"max,optional"`
}

type scaleBlock struct {
	Type      string         `hcl:"type,optional"`
	Domain    hcl.Expression `hcl:"domain,optional"`
	Padding   *float64       `hcl:"padding,optional"`
	BandWidth *float64       `hcl:"band_width,optional"`
}

type transformBlock struct {
	Filter     string            `hcl:"filter,optional"`
	FilterNull map[string]bool   `hcl:"filter_null,optional"`
	Calculate  []*calculateBlock `hcl:"calculate,block"`
}

type calculateBlock struct {
	Field string `hcl:"field,label"`
	Expr  string `hcl:"expr"`
}

type configBlock struct {
	CellWidth     *float64 `hcl:"cell_width,optional"`
	CellHeight    *float64 `hcl:"cell_height,optional"`
	BandWidth     *float64 `hcl:"band_width,optional"`
	TextBandWidth *float64 `hcl:"text_band_width,optional"`
	Padding       *float64 `hcl:"padding,optional"`
	FacetPadding  *float64 `hcl:"facet_padding,optional"`
	Stacked       string   `hcl:"stacked,optional"`
}
