package datacompile

import (
	"github.com/samber/lo"
	"github.com/vk/vizpipe/internal/dataset"
	"github.com/vk/vizpipe/internal/model"
)

// Stack builds the dataset summing the stacked field per group (and per facet
// cell), so a shared scale can be fit to the tallest stack. The per-segment
// stacking itself happens in the engine.
func Stack(m model.Model) (*dataset.Dataset, error) {
	sp := m.Stack()
	if sp == nil {
		return nil, invalidModel("stack dataset requested for a chart without stack properties")
	}
	field := model.Field(m, sp.FieldChannel, model.RefOption{})
	if field == "" {
		return nil, invalidModel("stacked channel %s is unbound", sp.FieldChannel)
	}

	var groupby []string
	for _, ch := range []model.Channel{sp.GroupbyChannel, model.Column, model.Row} {
		if f := model.Field(m, ch, model.RefOption{}); f != "" {
			groupby = append(groupby, f)
		}
	}

	sum := dataset.NewSummarize()
	sum.Add(field, "sum")
	return &dataset.Dataset{
		Name:   dataset.StackedScale,
		Source: m.DataTable(),
		Transform: []dataset.Transform{
			&dataset.Aggregate{Groupby: lo.Uniq(groupby), Summarize: sum},
		},
	}, nil
}
