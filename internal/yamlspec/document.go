package yamlspec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// chart mirrors the on-disk layout shared by the JSON and YAML encodings.
type chart struct {
	Name      string                `yaml:"name" json:"name"`
	Mark      string                `yaml:"mark" json:"mark"`
	Data      *data                 `yaml:"data" json:"data"`
	Encoding  map[string]*fieldSpec `yaml:"encoding" json:"encoding"`
	Transform *transform            `yaml:"transform" json:"transform"`
	Resolve   map[string]string     `yaml:"resolve" json:"resolve"`
	Config    *chartConfig          `yaml:"config" json:"config"`
}

type data struct {
	URL        string `yaml:"url" json:"url"`
	FormatType string `yaml:"formatType" json:"formatType"`
	Values     []any  `yaml:"values" json:"values"`
}

type fieldSpec struct {
	Field     string     `yaml:"field" json:"field"`
	Type      string     `yaml:"type" json:"type"`
	Aggregate string     `yaml:"aggregate" json:"aggregate"`
	TimeUnit  string     `yaml:"timeUnit" json:"timeUnit"`
	Bin       *binSpec   `yaml:"bin" json:"bin"`
	Scale     *scaleSpec `yaml:"scale" json:"scale"`
}

// binSpec accepts either a boolean or an object. `bin: false` decodes to a
// disabled spec and is treated as absent.
type binSpec struct {
	Enabled bool     `yaml:"-" json:"-"`
	MaxBins *int     `yaml:"maxbins" json:"maxbins"`
	Step    *float64 `yaml:"step" json:"step"`
	Min     *float64 `yaml:"min" json:"min"`
	Max     *float64 `yaml:"max" json:"max"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *binSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&b.Enabled)
	}
	type body binSpec
	var v body
	if err := node.Decode(&v); err != nil {
		return err
	}
	*b = binSpec(v)
	b.Enabled = true
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *binSpec) UnmarshalJSON(raw []byte) error {
	if isJSONScalar(raw) {
		return json.Unmarshal(raw, &b.Enabled)
	}
	type body binSpec
	var v body
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*b = binSpec(v)
	b.Enabled = true
	return nil
}

type scaleSpec struct {
	Type      string   `yaml:"type" json:"type"`
	Domain    []any    `yaml:"domain" json:"domain"`
	Padding   *float64 `yaml:"padding" json:"padding"`
	BandWidth *float64 `yaml:"bandWidth" json:"bandWidth"`
}

type transform struct {
	FilterNull filterNull   `yaml:"filterNull" json:"filterNull"`
	Filter     string       `yaml:"filter" json:"filter"`
	Calculate  []calculated `yaml:"calculate" json:"calculate"`
}

type calculated struct {
	Field string `yaml:"field" json:"field"`
	Expr  string `yaml:"expr" json:"expr"`
}

// filterNull accepts a per-type map or a single boolean applied to every
// field type.
type filterNull map[string]bool

var fieldTypes = []string{"nominal", "ordinal", "quantitative", "temporal"}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *filterNull) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var on bool
		if err := node.Decode(&on); err != nil {
			return fmt.Errorf("filterNull must be a boolean or a map: %w", err)
		}
		*f = allTypes(on)
		return nil
	case yaml.MappingNode:
		var m map[string]bool
		if err := node.Decode(&m); err != nil {
			return err
		}
		*f = m
		return nil
	}
	return fmt.Errorf("line %d: filterNull must be a boolean or a map", node.Line)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *filterNull) UnmarshalJSON(raw []byte) error {
	if string(bytes.TrimSpace(raw)) == "null" {
		return nil
	}
	if !isJSONScalar(raw) {
		var m map[string]bool
		if err := json.Unmarshal(raw, &m); err != nil {
			return err
		}
		*f = m
		return nil
	}
	var on bool
	if err := json.Unmarshal(raw, &on); err != nil {
		return fmt.Errorf("filterNull must be a boolean or a map: %w", err)
	}
	*f = allTypes(on)
	return nil
}

func allTypes(on bool) filterNull {
	m := make(filterNull, len(fieldTypes))
	for _, ft := range fieldTypes {
		m[ft] = on
	}
	return m
}

func isJSONScalar(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || raw[0] != '{'
}

type chartConfig struct {
	CellWidth     *float64 `yaml:"cellWidth" json:"cellWidth"`
	CellHeight    *float64 `yaml:"cellHeight" json:"cellHeight"`
	BandWidth     *float64 `yaml:"bandWidth" json:"bandWidth"`
	TextBandWidth *float64 `yaml:"textBandWidth" json:"textBandWidth"`
	Padding       *float64 `yaml:"padding" json:"padding"`
	FacetPadding  *float64 `yaml:"facetPadding" json:"facetPadding"`
	Stacked       string   `yaml:"stacked" json:"stacked"`
}
