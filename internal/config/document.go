package config

// Document is the unified, format-agnostic representation of one chart
// specification. Optional scalars are pointers so the model can tell an
// explicit zero apart from an omitted setting.
type Document struct {
	Name      string
	Data      *Data
	Mark      string
	Encoding  map[string]*FieldDecl
	Transform *Transform
	Resolve   map[string]string
	Config    *Config
}

// Data describes where rows come from.
type Data struct {
	URL        string
	FormatType string
	Values     []any
}

// FieldDecl is the declaration bound to one encoding channel.
type FieldDecl struct {
	Field     string
	Type      string
	Aggregate string
	Bin       *BinDecl
	TimeUnit  string
	Scale     *ScaleDecl
}

// BinDecl is present when a field is binned. An empty BinDecl means "bin
// with defaults".
type BinDecl struct {
	MaxBins *int
	Step    *float64
	Min     *float64
	Max     *float64
}

// ScaleDecl carries user overrides of a channel's scale.
type ScaleDecl struct {
	Type      string
	Domain    []any
	Padding   *float64
	BandWidth *float64
}

// Transform is the global, pre-encoding transform block.
type Transform struct {
	// FilterNull overrides, per field type, whether null values are removed.
	// When set it replaces the default policy entirely.
	FilterNull map[string]bool
	Filter     string
	Calculate  []*Calculate
}

// Calculate declares a derived field.
type Calculate struct {
	Field string
	Expr  string
}

// Config carries layout and stacking settings.
type Config struct {
	CellWidth     *float64
	CellHeight    *float64
	BandWidth     *float64
	TextBandWidth *float64
	Padding       *float64
	FacetPadding  *float64
	Stacked       string
}
