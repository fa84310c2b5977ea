package datacompile

import (
	"strconv"

	"github.com/vk/vizpipe/internal/dataset"
	"github.com/vk/vizpipe/internal/model"
)

// Fields written by the layout dataset.
const (
	CellWidth  = "cellWidth"
	CellHeight = "cellHeight"
	Width      = "width"
	Height     = "height"
)

// DistinctPrefix names the field holding a distinct count.
const DistinctPrefix = "distinct_"

var layoutChannels = []model.Channel{model.X, model.Y, model.Row, model.Column}

// Layout builds the dataset computing cell and total sizes in pixels. Sizes
// of discrete scales depend on how many distinct values the data holds, so
// they are emitted as formulas over a single row of distinct counts. When no
// count is needed the formulas run over one placeholder row.
func Layout(m model.Model) (*dataset.Dataset, error) {
	distinct := dataset.NewSummarize()
	for _, ch := range layoutChannels {
		if !model.IsOrdinalScale(m, ch) || model.ScaleOf(m, ch).HasDomainValues() {
			continue
		}
		distinct.Add(model.Field(m, ch, model.RefOption{}), "distinct")
	}

	cellWidth, err := cellSize(m, model.X)
	if err != nil {
		return nil, err
	}
	cellHeight, err := cellSize(m, model.Y)
	if err != nil {
		return nil, err
	}

	d := &dataset.Dataset{Name: dataset.Layout}
	if distinct.Len() > 0 {
		d.Source = m.DataTable()
		d.Append(&dataset.Aggregate{Summarize: distinct})
	} else {
		d.Values = []any{map[string]any{}}
	}
	d.Append(
		&dataset.Formula{Field: CellWidth, Expr: cellWidth},
		&dataset.Formula{Field: CellHeight, Expr: cellHeight},
		&dataset.Formula{Field: Width, Expr: facetSize(m, model.Column, CellWidth)},
		&dataset.Formula{Field: Height, Expr: facetSize(m, model.Row, CellHeight)},
	)
	return d, nil
}

// cellSize returns the expression for the size of one cell along ch (x or y).
func cellSize(m model.Model, ch model.Channel) (string, error) {
	cfg := m.Config()
	fd := m.FieldDef(ch)
	if fd == nil {
		if ch == model.X && m.Mark() == model.TextMark {
			return num(cfg.TextBandWidth), nil
		}
		return num(cfg.BandWidth), nil
	}

	s := fd.Scale
	switch {
	case s != nil && s.Type.Discrete():
		return "(" + cardinality(m, ch) + " + " + num(s.Padding) + ") * " + num(s.BandWidth), nil
	case s != nil && s.Type.Continuous():
		if ch == model.X {
			return num(cfg.CellWidth), nil
		}
		return num(cfg.CellHeight), nil
	}
	return "", invalidModel("layout channel %s is bound to neither a discrete nor a continuous scale", ch)
}

// facetSize returns the total size along the axis faceted by ch. The outer
// facet padding is reserved even when ch is unbound.
func facetSize(m model.Model, ch model.Channel, cellField string) string {
	pad := num(m.Config().FacetPadding)
	if !m.Has(ch) {
		return datum(cellField) + " + " + pad
	}
	return "(" + datum(cellField) + " + " + pad + ") * " + cardinality(m, ch)
}

// cardinality returns the number of discrete values on ch: the length of an
// explicit domain, else the size of a bounded time unit, else the distinct
// count computed at runtime.
func cardinality(m model.Model, ch model.Channel) string {
	if s := model.ScaleOf(m, ch); s.HasDomainValues() {
		return strconv.Itoa(len(s.Domain))
	}
	fd := m.FieldDef(ch)
	if fd.TimeUnit != "" {
		if domain := rawDomain(fd.TimeUnit, ch); domain != nil {
			return strconv.Itoa(len(domain))
		}
	}
	return model.Field(m, ch, model.RefOption{Datum: true, Prefix: DistinctPrefix})
}
