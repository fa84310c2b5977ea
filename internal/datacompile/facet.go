package datacompile

import (
	"github.com/vk/vizpipe/internal/dataset"
	"github.com/vk/vizpipe/internal/model"
)

// FacetDomains builds, for each faceted axis, the dataset listing the facet
// values that axis needs a slot for. When a child panel has an independent
// discrete x (for columns) or y (for rows) scale with a fixed band size, the
// dataset also counts the distinct child values, so each panel can be sized
// exactly.
//
// With both axes faceted, the counts are taken per (column, row) pair first
// and each axis then takes the maximum over its pairs. This gives every axis
// one size even when some pairs have no rows. dataName is the dataset the
// facet reads from.
func FacetDomains(m model.Model, dataName string) []*dataset.Dataset {
	hasColumn, hasRow := m.Has(model.Column), m.Has(model.Row)
	if !hasColumn && !hasRow {
		return nil
	}

	childX := independentChildField(m, model.X)
	childY := independentChildField(m, model.Y)

	var out []*dataset.Dataset
	var cross string
	if hasColumn && hasRow && (childX != "" || childY != "") {
		columnField := model.Field(m, model.Column, model.RefOption{})
		rowField := model.Field(m, model.Row, model.RefOption{})

		agg := &dataset.Aggregate{Groupby: []string{columnField, rowField}}
		for _, f := range []string{childX, childY} {
			if f != "" {
				agg.Fields = append(agg.Fields, f)
				agg.Ops = append(agg.Ops, "distinct")
			}
		}
		cross = dataset.Cross + "_" + columnField + "_" + rowField
		out = append(out, &dataset.Dataset{
			Name:      cross,
			Source:    dataName,
			Transform: []dataset.Transform{agg},
		})
	}

	if hasColumn {
		out = append(out, facetAxisDomain(m, model.Column, dataset.ColumnDomain, childX, dataName, cross))
	}
	if hasRow {
		out = append(out, facetAxisDomain(m, model.Row, dataset.RowDomain, childY, dataName, cross))
	}
	return out
}

func facetAxisDomain(m model.Model, ch model.Channel, name, child, dataName, cross string) *dataset.Dataset {
	agg := &dataset.Aggregate{Groupby: []string{model.Field(m, ch, model.RefOption{})}}
	source := dataName
	if cross != "" {
		source = cross
	}

	switch {
	case child == "":
	case cross != "":
		counted := DistinctPrefix + child
		agg.Fields = []string{counted}
		agg.Ops = []string{"max"}
		agg.As = []string{counted}
	default:
		agg.Fields = []string{child}
		agg.Ops = []string{"distinct"}
	}

	return &dataset.Dataset{
		Name:      name,
		Source:    source,
		Transform: []dataset.Transform{agg},
	}
}

// independentChildField returns the field on ch when the child scale there is
// independent, discrete and has a fixed band size; otherwise "".
func independentChildField(m model.Model, ch model.Channel) string {
	fd := m.FieldDef(ch)
	if fd == nil || m.Resolve(ch) != model.ResolveIndependent {
		return ""
	}
	if s := fd.Scale; s == nil || !s.Type.Discrete() || s.BandWidth <= 0 {
		return ""
	}
	return fd.Ref(model.RefOption{})
}
