package datacompile

import (
	"path"
	"strings"

	"github.com/samber/lo"
	"github.com/vk/vizpipe/internal/dataset"
	"github.com/vk/vizpipe/internal/model"
)

// defaultNullFilter says, per field type, whether rows with a null value are
// dropped when the chart does not override the policy.
var defaultNullFilter = map[model.FieldType]bool{
	model.Nominal:      false,
	model.Ordinal:      false,
	model.Quantitative: true,
	model.Temporal:     true,
}

// Source builds the base dataset: where rows come from, how they are parsed,
// and the null filter, formula, filter, bin and time-unit transforms, in
// that order. Bins and time units therefore only see filtered, calculated
// fields.
func Source(m model.Model) *dataset.Dataset {
	d := &dataset.Dataset{Name: dataset.Source}

	data := m.Data()
	switch {
	case data.HasValues():
		d.Values = data.Values
		d.Format = &dataset.Format{Type: "json"}
	case data.URL != "":
		d.URL = data.URL
		d.Format = &dataset.Format{Type: formatType(data)}
	}

	if parse := formatParse(m); len(parse) > 0 {
		if d.Format == nil {
			d.Format = &dataset.Format{}
		}
		d.Format.Parse = parse
	}

	d.Append(nullFilterTransform(m)...)
	d.Append(formulaTransform(m)...)
	d.Append(filterTransform(m)...)
	d.Append(binTransform(m)...)
	d.Append(timeUnitTransform(m)...)
	return d
}

// formatType is the declared format, else the URL extension when the engine
// can parse it, else json.
func formatType(data model.Data) string {
	if data.FormatType != "" {
		return data.FormatType
	}
	p, _, _ := strings.Cut(data.URL, "?")
	ext := strings.TrimPrefix(path.Ext(p), ".")
	if lo.Contains([]string{"json", "csv", "tsv"}, ext) {
		return ext
	}
	return "json"
}

// formatParse maps temporal fields to "date" and quantitative fields to
// "number". Counts and calculated fields are left alone: they do not exist
// in the raw rows.
func formatParse(m model.Model) map[string]string {
	calculated := lo.SliceToMap(m.Transform().Calculate, func(f model.Formula) (string, bool) {
		return f.Field, true
	})

	parse := make(map[string]string)
	for _, ch := range m.Channels() {
		fd := m.FieldDef(ch)
		switch fd.Type {
		case model.Temporal:
			parse[fd.Field] = "date"
		case model.Quantitative:
			if fd.Role() == model.RoleCount || calculated[fd.Field] {
				continue
			}
			parse[fd.Field] = "number"
		}
	}
	return parse
}

func nullFilterTransform(m model.Model) []dataset.Transform {
	policy := m.Transform().FilterNull
	if policy == nil {
		policy = defaultNullFilter
	}

	var fields []string
	for _, ch := range m.Channels() {
		fd := m.FieldDef(ch)
		if fd.Field == "" || fd.Field == model.Wildcard {
			continue
		}
		if policy[fd.Type] {
			fields = append(fields, fd.Field)
		}
	}
	fields = lo.Uniq(fields)
	if len(fields) == 0 {
		return nil
	}

	tests := lo.Map(fields, func(f string, _ int) string {
		return datum(f) + "!==null"
	})
	return []dataset.Transform{&dataset.Filter{Test: strings.Join(tests, " && ")}}
}

func formulaTransform(m model.Model) []dataset.Transform {
	return lo.Map(m.Transform().Calculate, func(f model.Formula, _ int) dataset.Transform {
		return &dataset.Formula{Field: f.Field, Expr: f.Expr}
	})
}

func filterTransform(m model.Model) []dataset.Transform {
	if test := m.Transform().Filter; test != "" {
		return []dataset.Transform{&dataset.Filter{Test: test}}
	}
	return nil
}

// autoMaxBins is the bin count used when neither maxbins nor step is given.
// Facets, sizes and shapes get fewer bins since each bin costs a cell, a
// size step or a symbol.
func autoMaxBins(ch model.Channel) int {
	switch ch {
	case model.Row, model.Column, model.Size, model.Shape:
		return 6
	}
	return 10
}

func binTransform(m model.Model) []dataset.Transform {
	var out []dataset.Transform
	binned := make(map[string]bool)
	ranged := make(map[string]bool)

	for _, ch := range m.Channels() {
		fd := m.FieldDef(ch)
		if fd.Bin == nil {
			continue
		}
		start, end := fd.Field+model.BinStart, fd.Field+model.BinEnd

		if !binned[fd.Field] {
			binned[fd.Field] = true
			bin := &dataset.Bin{
				Field: fd.Field,
				Output: dataset.BinOutput{
					Start: start,
					Mid:   fd.Field + model.BinMid,
					End:   end,
				},
				MaxBins: fd.Bin.MaxBins,
				Step:    fd.Bin.Step,
				Min:     fd.Bin.Min,
				Max:     fd.Bin.Max,
			}
			if bin.MaxBins == 0 && bin.Step == 0 {
				bin.MaxBins = autoMaxBins(ch)
			}
			out = append(out, bin)
		}

		if (model.IsOrdinalScale(m, ch) || ch == model.Color) && !ranged[fd.Field] {
			ranged[fd.Field] = true
			out = append(out, &dataset.Formula{
				Field: fd.Field + model.BinRange,
				Expr:  datum(start) + " + '-' + " + datum(end),
			})
		}
	}
	return out
}

// timeUnitTransform truncates each time-unit field in place.
func timeUnitTransform(m model.Model) []dataset.Transform {
	var out []dataset.Transform
	seen := make(map[string]bool)
	for _, ch := range m.Channels() {
		fd := m.FieldDef(ch)
		if fd.TimeUnit == "" || seen[fd.Field] {
			continue
		}
		seen[fd.Field] = true
		out = append(out, &dataset.Formula{
			Field: fd.Field,
			Expr:  fd.TimeUnit.Expression(datum(fd.Field)),
		})
	}
	return out
}
