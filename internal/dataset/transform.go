package dataset

import "encoding/json"

// TransformType is the tag the engine dispatches a transform on.
type TransformType string

const (
	TypeFilter    TransformType = "filter"
	TypeFormula   TransformType = "formula"
	TypeBin       TransformType = "bin"
	TypeAggregate TransformType = "aggregate"
	TypeSort      TransformType = "sort"
	TypeRank      TransformType = "rank"
)

// Transform is one declarative pipeline operation. The concrete types in this
// package are the only implementations.
type Transform interface {
	TransformType() TransformType
}

// Filter drops rows for which Test evaluates false.
type Filter struct {
	Test string `json:"test"`
}

// Formula writes the value of Expr into Field.
type Formula struct {
	Field string `json:"field"`
	Expr  string `json:"expr"`
}

// BinOutput names the fields a Bin transform writes.
type BinOutput struct {
	Start string `json:"start"`
	Mid   string `json:"mid"`
	End   string `json:"end"`
}

// Bin buckets a quantitative field.
type Bin struct {
	Field   string    `json:"field"`
	Output  BinOutput `json:"output"`
	MaxBins int       `json:"maxbins,omitempty"`
	Step    float64   `json:"step,omitempty"`
	Min     *float64  `json:"min,omitempty"`
	Max     *float64  `json:"max,omitempty"`
}

// Aggregate groups rows and computes measures. Measures are described either
// by Summarize or by the parallel Fields, Ops and As lists.
type Aggregate struct {
	Groupby   []string   `json:"groupby,omitempty"`
	Summarize *Summarize `json:"summarize,omitempty"`
	Fields    []string   `json:"fields,omitempty"`
	Ops       []string   `json:"ops,omitempty"`
	As        []string   `json:"as,omitempty"`
}

// Sort orders rows by Field.
type Sort struct {
	Field string `json:"field"`
}

// RankOutput names the field a Rank transform writes.
type RankOutput struct {
	Rank string `json:"rank"`
}

// Rank assigns each row its position by Field.
type Rank struct {
	Field  string     `json:"field"`
	Output RankOutput `json:"output"`
}

func (*Filter) TransformType() TransformType    { return TypeFilter }
func (*Formula) TransformType() TransformType   { return TypeFormula }
func (*Bin) TransformType() TransformType       { return TypeBin }
func (*Aggregate) TransformType() TransformType { return TypeAggregate }
func (*Sort) TransformType() TransformType      { return TypeSort }
func (*Rank) TransformType() TransformType      { return TypeRank }

// tagged prefixes the "type" key onto the encoded body of a transform.
type tagged[T any] struct {
	Type TransformType `json:"type"`
	Body T
}

func (t tagged[T]) MarshalJSON() ([]byte, error) {
	head, err := json.Marshal(struct {
		Type TransformType `json:"type"`
	}{t.Type})
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(t.Body)
	if err != nil {
		return nil, err
	}
	if len(body) <= 2 {
		return head, nil
	}
	out := make([]byte, 0, len(head)+len(body))
	out = append(out, head[:len(head)-1]...)
	out = append(out, ',')
	return append(out, body[1:]...), nil
}

// Each transform marshals through a local alias so the alias carries the
// struct tags without the MarshalJSON method.

func (t *Filter) MarshalJSON() ([]byte, error) {
	type body Filter
	return tagged[body]{TypeFilter, body(*t)}.MarshalJSON()
}

func (t *Formula) MarshalJSON() ([]byte, error) {
	type body Formula
	return tagged[body]{TypeFormula, body(*t)}.MarshalJSON()
}

func (t *Bin) MarshalJSON() ([]byte, error) {
	type body Bin
	return tagged[body]{TypeBin, body(*t)}.MarshalJSON()
}

func (t *Aggregate) MarshalJSON() ([]byte, error) {
	type body Aggregate
	return tagged[body]{TypeAggregate, body(*t)}.MarshalJSON()
}

func (t *Sort) MarshalJSON() ([]byte, error) {
	type body Sort
	return tagged[body]{TypeSort, body(*t)}.MarshalJSON()
}

func (t *Rank) MarshalJSON() ([]byte, error) {
	type body Rank
	return tagged[body]{TypeRank, body(*t)}.MarshalJSON()
}
