// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"

	"github.com/vk/vizpipe/internal/config"
	"github.com/vk/vizpipe/internal/dataset"
	"github.com/vk/vizpipe/internal/timeunit"
)

// Unit is a single-view chart: one mark, its encodings and, optionally, a
// row/column facet over them.
type Unit struct {
	name      string
	mark      Mark
	data      Data
	transform Transform
	config    Config
	fields    map[Channel]*FieldDef
	channels  []Channel
	resolve   map[Channel]ResolveMode
	stack     *StackProperties
	dataTable string
}

var _ Model = (*Unit)(nil)

// New builds a Unit from doc, resolving scale types and sizes and deriving the
// stack properties. Unknown names (channels, types, marks, units) are errors;
// the consistency of the combination is not checked.
func New(doc *config.Document) (*Unit, error) {
	mark, err := ParseMark(doc.Mark)
	if err != nil {
		return nil, err
	}

	u := &Unit{
		name:    doc.Name,
		mark:    mark,
		config:  translateConfig(doc.Config),
		fields:  make(map[Channel]*FieldDef),
		resolve: make(map[Channel]ResolveMode),
	}

	if doc.Data != nil {
		u.data = Data{URL: doc.Data.URL, FormatType: doc.Data.FormatType, Values: doc.Data.Values}
	}

	if u.transform, err = translateTransform(doc.Transform); err != nil {
		return nil, err
	}

	scales := make(map[Channel]*config.ScaleDecl)
	for name, decl := range doc.Encoding {
		if decl == nil {
			continue
		}
		ch, err := ParseChannel(name)
		if err != nil {
			return nil, err
		}
		fd, err := translateFieldDecl(decl)
		if err != nil {
			return nil, fmt.Errorf("channel %s: %w", ch, err)
		}
		u.fields[ch] = fd
		scales[ch] = decl.Scale
	}
	for _, ch := range Channels {
		fd, ok := u.fields[ch]
		if !ok {
			continue
		}
		u.channels = append(u.channels, ch)
		if fd.Scale, err = u.resolveScale(ch, fd, scales[ch]); err != nil {
			return nil, fmt.Errorf("channel %s: %w", ch, err)
		}
	}

	for name, mode := range doc.Resolve {
		ch, err := ParseChannel(name)
		if err != nil {
			return nil, fmt.Errorf("resolve: %w", err)
		}
		switch ResolveMode(mode) {
		case ResolveShared, ResolveIndependent:
			u.resolve[ch] = ResolveMode(mode)
		default:
			return nil, fmt.Errorf("resolve %s: unknown mode %q", ch, mode)
		}
	}

	u.dataTable = dataset.Source
	if HasAggregate(u) {
		u.dataTable = dataset.Summary
	}
	u.stack = u.deriveStack()
	return u, nil
}

// Name returns the document name, if any.
func (u *Unit) Name() string { return u.name }

func (u *Unit) Channels() []Channel { return u.channels }

func (u *Unit) Has(ch Channel) bool {
	_, ok := u.fields[ch]
	return ok
}

func (u *Unit) FieldDef(ch Channel) *FieldDef { return u.fields[ch] }

func (u *Unit) Mark() Mark { return u.mark }

func (u *Unit) Data() Data { return u.data }

func (u *Unit) Transform() Transform { return u.transform }

func (u *Unit) Config() Config { return u.config }

func (u *Unit) Stack() *StackProperties { return u.stack }

func (u *Unit) DataTable() string { return u.dataTable }

func (u *Unit) Resolve(ch Channel) ResolveMode {
	if mode, ok := u.resolve[ch]; ok {
		return mode
	}
	return ResolveShared
}

func translateConfig(c *config.Config) Config {
	out := DefaultConfig()
	if c == nil {
		return out
	}
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&out.CellWidth, c.CellWidth)
	set(&out.CellHeight, c.CellHeight)
	set(&out.BandWidth, c.BandWidth)
	set(&out.TextBandWidth, c.TextBandWidth)
	set(&out.Padding, c.Padding)
	set(&out.FacetPadding, c.FacetPadding)
	if c.Stacked != "" {
		out.Stacked = c.Stacked
	}
	return out
}

func translateTransform(t *config.Transform) (Transform, error) {
	var out Transform
	if t == nil {
		return out, nil
	}
	out.Filter = t.Filter
	if t.FilterNull != nil {
		out.FilterNull = make(map[FieldType]bool, len(t.FilterNull))
		for name, on := range t.FilterNull {
			ft, err := ParseFieldType(name)
			if err != nil {
				return out, fmt.Errorf("filter_null: %w", err)
			}
			out.FilterNull[ft] = on
		}
	}
	for _, c := range t.Calculate {
		if c == nil {
			continue
		}
		out.Calculate = append(out.Calculate, Formula{Field: c.Field, Expr: c.Expr})
	}
	return out, nil
}

func translateFieldDecl(d *config.FieldDecl) (*FieldDef, error) {
	fd := &FieldDef{Field: d.Field, Aggregate: d.Aggregate}

	if fd.Aggregate == Count && fd.Field == "" {
		fd.Field = Wildcard
	}

	switch {
	case d.Type != "":
		ft, err := ParseFieldType(d.Type)
		if err != nil {
			return nil, err
		}
		fd.Type = ft
	case fd.Aggregate == Count:
		fd.Type = Quantitative
	default:
		return nil, fmt.Errorf("field %q has no type", d.Field)
	}

	if d.TimeUnit != "" {
		unit, err := timeunit.Parse(d.TimeUnit)
		if err != nil {
			return nil, err
		}
		fd.TimeUnit = unit
	}

	if d.Bin != nil {
		fd.Bin = &Bin{Min: d.Bin.Min, Max: d.Bin.Max}
		if d.Bin.MaxBins != nil {
			fd.Bin.MaxBins = *d.Bin.MaxBins
		}
		if d.Bin.Step != nil {
			fd.Bin.Step = *d.Bin.Step
		}
	}
	return fd, nil
}

// resolveScale applies the scale type inference rules and size defaults.
func (u *Unit) resolveScale(ch Channel, fd *FieldDef, decl *config.ScaleDecl) (*Scale, error) {
	if !ch.HasScale() {
		return nil, nil
	}
	s := &Scale{Type: inferScaleType(ch, fd)}
	if decl != nil {
		// Facet and shape scales are always ordinal.
		if decl.Type != "" && !ch.IsFacet() && ch != Shape {
			t, err := ParseScaleType(decl.Type)
			if err != nil {
				return nil, err
			}
			s.Type = t
		}
		s.Domain = decl.Domain
	}

	if s.Type.Discrete() {
		s.Padding = u.config.Padding
		s.BandWidth = u.config.BandWidth
		if ch == X && u.mark == TextMark {
			s.BandWidth = u.config.TextBandWidth
		}
	}
	if decl != nil {
		if decl.Padding != nil {
			s.Padding = *decl.Padding
		}
		if decl.BandWidth != nil {
			s.BandWidth = *decl.BandWidth
		}
	}
	return s, nil
}

func inferScaleType(ch Channel, fd *FieldDef) ScaleType {
	if ch.IsFacet() || ch == Shape {
		return ScaleOrdinal
	}
	switch fd.Type {
	case Nominal:
		return ScaleOrdinal
	case Ordinal:
		if ch == Color {
			// Ordinal colors use a continuous ramp fed by the rank field.
			return ScaleLinear
		}
		return ScaleOrdinal
	case Temporal:
		if ch != Color && fd.TimeUnit.Bounded() {
			return ScaleOrdinal
		}
		return ScaleTime
	case Quantitative:
		if fd.Bin != nil && ch != X && ch != Y && ch != Color {
			return ScaleOrdinal
		}
		return ScaleLinear
	}
	return ScaleLinear
}

// deriveStack returns stack properties for aggregated bar and area charts
// that split one measure by a color or detail field.
func (u *Unit) deriveStack() *StackProperties {
	if u.mark != Bar && u.mark != Area {
		return nil
	}
	if u.config.Stacked == StackNone || !HasAggregate(u) {
		return nil
	}

	var stackFields []string
	for _, ch := range []Channel{Color, Detail} {
		fd := u.fields[ch]
		if fd != nil && !fd.IsAggregate() {
			stackFields = append(stackFields, fd.Ref(RefOption{}))
		}
	}
	if len(stackFields) == 0 {
		return nil
	}

	x, y := u.fields[X], u.fields[Y]
	xMeasure := x != nil && x.IsMeasure()
	yMeasure := y != nil && y.IsMeasure()
	switch {
	case xMeasure && !yMeasure:
		return &StackProperties{GroupbyChannel: Y, FieldChannel: X, StackFields: stackFields, Offset: u.config.Stacked}
	case yMeasure && !xMeasure:
		return &StackProperties{GroupbyChannel: X, FieldChannel: Y, StackFields: stackFields, Offset: u.config.Stacked}
	}
	return nil
}
