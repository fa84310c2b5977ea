package datacompile

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/vizpipe/internal/config"
	"github.com/vk/vizpipe/internal/dataset"
	"github.com/vk/vizpipe/internal/model"
)

func ptr[T any](v T) *T { return &v }

// newUnit builds a model from an encoding map and optional document tweaks.
func newUnit(t *testing.T, mark string, enc map[string]*config.FieldDecl, opts ...func(*config.Document)) *model.Unit {
	t.Helper()
	doc := &config.Document{Mark: mark, Encoding: enc}
	for _, opt := range opts {
		opt(doc)
	}
	u, err := model.New(doc)
	require.NoError(t, err)
	return u
}

func withTransform(tr *config.Transform) func(*config.Document) {
	return func(d *config.Document) { d.Transform = tr }
}

func withData(data *config.Data) func(*config.Document) {
	return func(d *config.Document) { d.Data = data }
}

func withResolve(r map[string]string) func(*config.Document) {
	return func(d *config.Document) { d.Resolve = r }
}

// scaleOverride replaces the scale on one channel, producing states the
// document loader cannot.
type scaleOverride struct {
	model.Model
	channel model.Channel
	scale   *model.Scale
}

func (s scaleOverride) FieldDef(ch model.Channel) *model.FieldDef {
	fd := s.Model.FieldDef(ch)
	if fd == nil || ch != s.channel {
		return fd
	}
	cp := *fd
	cp.Scale = s.scale
	return &cp
}

// stackOverride reports the given stack properties regardless of the chart.
type stackOverride struct {
	model.Model
	stack *model.StackProperties
}

func (s stackOverride) Stack() *model.StackProperties { return s.stack }

func transformTypes(d *dataset.Dataset) []dataset.TransformType {
	out := make([]dataset.TransformType, 0, len(d.Transform))
	for _, tr := range d.Transform {
		out = append(out, tr.TransformType())
	}
	return out
}

func summarize(pairs ...[]string) *dataset.Summarize {
	s := dataset.NewSummarize()
	for _, p := range pairs {
		s.Add(p[0], p[1:]...)
	}
	return s
}
