package datacompile

import (
	"github.com/vk/vizpipe/internal/dataset"
	"github.com/vk/vizpipe/internal/model"
)

// RankPrefix names the field holding an ordinal color's numeric rank.
const RankPrefix = "rank_"

// RankTransforms sorts by an ordinal color field and ranks it, giving the
// continuous color ramp a numeric stand-in for the ordinal domain. It
// returns nil unless color is bound to an ordinal field.
func RankTransforms(m model.Model) []dataset.Transform {
	fd := m.FieldDef(model.Color)
	if fd == nil || fd.Type != model.Ordinal {
		return nil
	}
	field := fd.Ref(model.RefOption{})
	return []dataset.Transform{
		&dataset.Sort{Field: field},
		&dataset.Rank{
			Field:  field,
			Output: dataset.RankOutput{Rank: fd.Ref(model.RefOption{Prefix: RankPrefix})},
		},
	}
}

// LogFilterTransforms drops non-positive values on every channel with a log
// scale; the log of zero or a negative number is undefined.
func LogFilterTransforms(m model.Model) []dataset.Transform {
	var out []dataset.Transform
	for _, ch := range m.Channels() {
		s := model.ScaleOf(m, ch)
		if s == nil || s.Type != model.ScaleLog {
			continue
		}
		out = append(out, &dataset.Filter{
			Test: model.Field(m, ch, model.RefOption{Datum: true}) + " > 0",
		})
	}
	return out
}
