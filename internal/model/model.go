// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// Data describes the rows a chart reads.
type Data struct {
	URL        string
	FormatType string
	Values     []any
}

// HasValues reports whether the chart carries literal rows.
func (d Data) HasValues() bool {
	return len(d.Values) > 0
}

// Formula declares a derived field computed before encoding.
type Formula struct {
	Field string
	Expr  string
}

// Transform is the global transform configuration.
type Transform struct {
	// FilterNull, when non-nil, replaces the default per-type null filtering
	// policy. Types missing from the map are not filtered.
	FilterNull map[FieldType]bool
	Filter     string
	Calculate  []Formula
}

// StackProperties describes a stacked chart: values on FieldChannel are
// stacked for each value on GroupbyChannel.
type StackProperties struct {
	GroupbyChannel Channel
	FieldChannel   Channel
	StackFields    []string
	Offset         string
}

// ResolveMode says whether a facet's child panels share a scale.
type ResolveMode string

const (
	ResolveShared      ResolveMode = "shared"
	ResolveIndependent ResolveMode = "independent"
)

// Model is the read-only view of a validated chart specification.
type Model interface {
	// Channels returns the bound channels in canonical order.
	Channels() []Channel
	Has(ch Channel) bool
	// FieldDef returns the binding of ch, or nil when ch is unbound.
	FieldDef(ch Channel) *FieldDef
	Mark() Mark
	Data() Data
	Transform() Transform
	Config() Config
	// Stack returns nil when the chart is not stacked.
	Stack() *StackProperties
	// DataTable names the dataset encodings read from.
	DataTable() string
	Resolve(ch Channel) ResolveMode
}

// Field returns the reference name of the field bound to ch, or "" when ch is
// unbound.
func Field(m Model, ch Channel, opt RefOption) string {
	fd := m.FieldDef(ch)
	if fd == nil {
		return ""
	}
	return fd.Ref(opt)
}

// ScaleOf returns the scale of ch, or nil when ch is unbound or scale-less.
func ScaleOf(m Model, ch Channel) *Scale {
	fd := m.FieldDef(ch)
	if fd == nil {
		return nil
	}
	return fd.Scale
}

// IsOrdinalScale reports whether ch is bound to a discrete scale.
func IsOrdinalScale(m Model, ch Channel) bool {
	s := ScaleOf(m, ch)
	return s != nil && s.Type.Discrete()
}

// HasAggregate reports whether any channel summarizes its field.
func HasAggregate(m Model) bool {
	for _, ch := range m.Channels() {
		if m.FieldDef(ch).IsAggregate() {
			return true
		}
	}
	return false
}
