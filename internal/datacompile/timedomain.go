package datacompile

import (
	"github.com/samber/lo"
	"github.com/vk/vizpipe/internal/dataset"
	"github.com/vk/vizpipe/internal/model"
	"github.com/vk/vizpipe/internal/timeunit"
)

// TimeDomainField is the field each synthesized time-unit row is written to.
const TimeDomainField = "date"

// TimeDomains builds one dataset per bounded time unit used on the chart,
// enumerating every value of the unit so scales include calendar buckets the
// data never hits. A unit used on several channels is emitted once, for its
// first channel.
func TimeDomains(m model.Model) []*dataset.Dataset {
	var out []*dataset.Dataset
	var seen []timeunit.Unit
	for _, ch := range m.Channels() {
		unit := m.FieldDef(ch).TimeUnit
		if unit == "" || lo.Contains(seen, unit) {
			continue
		}
		domain := rawDomain(unit, ch)
		if domain == nil {
			continue
		}
		seen = append(seen, unit)
		out = append(out, &dataset.Dataset{
			Name:   string(unit),
			Values: lo.Map(domain, func(v int, _ int) any { return v }),
			Transform: []dataset.Transform{
				&dataset.Formula{Field: TimeDomainField, Expr: unit.EnumExpression("datum.data")},
			},
		})
	}
	return out
}
