package datacompile

import (
	"github.com/samber/lo"
	"github.com/vk/vizpipe/internal/dataset"
	"github.com/vk/vizpipe/internal/model"
)

// Summary builds the aggregated dataset, or returns nil when no channel
// aggregates. It groups by every non-aggregated field, with binned fields
// expanded to their bin outputs, and registers each aggregate under its
// field. Counts register under the wildcard, so repeated counts collapse
// into one measure.
func Summary(m model.Model) *dataset.Dataset {
	var groupby []string
	measures := dataset.NewSummarize()

	for _, ch := range m.Channels() {
		fd := m.FieldDef(ch)
		switch fd.Role() {
		case model.RoleCount:
			measures.Add(model.Wildcard, model.Count)
		case model.RoleAggregate:
			measures.Add(fd.Field, fd.Aggregate)
		case model.RoleBinned:
			groupby = append(groupby,
				fd.Ref(model.RefOption{BinSuffix: model.BinStart}),
				fd.Ref(model.RefOption{BinSuffix: model.BinMid}),
				fd.Ref(model.RefOption{BinSuffix: model.BinEnd}),
			)
			if model.IsOrdinalScale(m, ch) {
				groupby = append(groupby, fd.Ref(model.RefOption{BinSuffix: model.BinRange}))
			}
		case model.RoleTimeUnit, model.RolePlain:
			groupby = append(groupby, fd.Ref(model.RefOption{}))
		}
	}

	if measures.Len() == 0 {
		return nil
	}
	return &dataset.Dataset{
		Name:   dataset.Summary,
		Source: dataset.Source,
		Transform: []dataset.Transform{
			&dataset.Aggregate{Groupby: lo.Uniq(groupby), Summarize: measures},
		},
	}
}
