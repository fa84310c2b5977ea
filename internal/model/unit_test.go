// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/vizpipe/internal/config"
	"github.com/vk/vizpipe/internal/dataset"
	"github.com/vk/vizpipe/internal/timeunit"
)

func ptr[T any](v T) *T { return &v }

func TestNewOrdersChannelsCanonically(t *testing.T) {
	u, err := New(&config.Document{
		Mark: "point",
		Encoding: map[string]*config.FieldDecl{
			"color": {Field: "origin", Type: "nominal"},
			"y":     {Field: "mpg", Type: "Q"},
			"X":     {Field: "hp", Type: "quantitative"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []Channel{X, Y, Color}, u.Channels())
	assert.True(t, u.Has(X))
	assert.False(t, u.Has(Row))
	assert.Nil(t, u.FieldDef(Row))
	assert.Equal(t, dataset.Source, u.DataTable())
}

func TestScaleInference(t *testing.T) {
	testCases := []struct {
		name    string
		mark    string
		channel string
		decl    *config.FieldDecl
		want    ScaleType
	}{
		{"nominal x", "point", "x", &config.FieldDecl{Field: "a", Type: "nominal"}, ScaleOrdinal},
		{"ordinal color ramps", "point", "color", &config.FieldDecl{Field: "a", Type: "ordinal"}, ScaleLinear},
		{"quantitative y", "point", "y", &config.FieldDecl{Field: "a", Type: "quantitative"}, ScaleLinear},
		{"binned size", "point", "size", &config.FieldDecl{Field: "a", Type: "quantitative", Bin: &config.BinDecl{}}, ScaleOrdinal},
		{"binned x", "point", "x", &config.FieldDecl{Field: "a", Type: "quantitative", Bin: &config.BinDecl{}}, ScaleLinear},
		{"month x", "point", "x", &config.FieldDecl{Field: "d", Type: "temporal", TimeUnit: "month"}, ScaleOrdinal},
		{"yearmonth x", "point", "x", &config.FieldDecl{Field: "d", Type: "temporal", TimeUnit: "yearmonth"}, ScaleTime},
		{"row is ordinal", "point", "row", &config.FieldDecl{Field: "a", Type: "quantitative"}, ScaleOrdinal},
		{"explicit log", "point", "y", &config.FieldDecl{Field: "a", Type: "quantitative", Scale: &config.ScaleDecl{Type: "log"}}, ScaleLog},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := New(&config.Document{Mark: tc.mark, Encoding: map[string]*config.FieldDecl{tc.channel: tc.decl}})
			require.NoError(t, err)
			ch := Channel(tc.channel)
			require.NotNil(t, ScaleOf(u, ch))
			assert.Equal(t, tc.want, ScaleOf(u, ch).Type)
		})
	}
}

func TestScaleSizes(t *testing.T) {
	u, err := New(&config.Document{
		Mark: "text",
		Encoding: map[string]*config.FieldDecl{
			"x":    {Field: "a", Type: "nominal"},
			"y":    {Field: "b", Type: "nominal", Scale: &config.ScaleDecl{BandWidth: ptr(30.0), Domain: []any{"p", "q"}}},
			"text": {Field: "c", Type: "quantitative"},
		},
	})
	require.NoError(t, err)

	x := ScaleOf(u, X)
	assert.Equal(t, 90.0, x.BandWidth)
	assert.Equal(t, 1.0, x.Padding)
	assert.False(t, x.HasDomainValues())

	y := ScaleOf(u, Y)
	assert.Equal(t, 30.0, y.BandWidth)
	assert.True(t, y.HasDomainValues())

	assert.Nil(t, ScaleOf(u, Text))
}

func TestCountDefaults(t *testing.T) {
	u, err := New(&config.Document{
		Mark: "bar",
		Encoding: map[string]*config.FieldDecl{
			"x": {Field: "origin", Type: "nominal"},
			"y": {Aggregate: "count"},
		},
	})
	require.NoError(t, err)

	fd := u.FieldDef(Y)
	assert.Equal(t, Wildcard, fd.Field)
	assert.Equal(t, Quantitative, fd.Type)
	assert.Equal(t, RoleCount, fd.Role())
	assert.Equal(t, "count", fd.Ref(RefOption{}))
	assert.Equal(t, dataset.Summary, u.DataTable())
}

func TestFieldRef(t *testing.T) {
	agg := &FieldDef{Field: "price", Type: Quantitative, Aggregate: "sum"}
	assert.Equal(t, "sum_price", agg.Ref(RefOption{}))
	assert.Equal(t, "datum.sum_price", agg.Ref(RefOption{Datum: true}))
	assert.Equal(t, "price", agg.Ref(RefOption{NoFn: true}))

	bin := &FieldDef{Field: "age", Type: Quantitative, Bin: &Bin{}}
	assert.Equal(t, RoleBinned, bin.Role())
	assert.Equal(t, "age_start", bin.Ref(RefOption{}))
	assert.Equal(t, "age_range", bin.Ref(RefOption{BinSuffix: BinRange}))
	assert.Equal(t, "datum.distinct_age_start", bin.Ref(RefOption{Datum: true, Prefix: "distinct_"}))

	tu := &FieldDef{Field: "date", Type: Temporal, TimeUnit: timeunit.Month}
	assert.Equal(t, RoleTimeUnit, tu.Role())
	assert.Equal(t, "date", tu.Ref(RefOption{}))
}

func TestStackDerivation(t *testing.T) {
	base := func(mark string, stacked string) *config.Document {
		doc := &config.Document{
			Mark: mark,
			Encoding: map[string]*config.FieldDecl{
				"x":     {Field: "site", Type: "nominal"},
				"y":     {Field: "yield", Type: "quantitative", Aggregate: "sum"},
				"color": {Field: "variety", Type: "nominal"},
			},
		}
		if stacked != "" {
			doc.Config = &config.Config{Stacked: stacked}
		}
		return doc
	}

	t.Run("vertical bar stacks y", func(t *testing.T) {
		u, err := New(base("bar", ""))
		require.NoError(t, err)
		require.NotNil(t, u.Stack())
		assert.Equal(t, &StackProperties{
			GroupbyChannel: X,
			FieldChannel:   Y,
			StackFields:    []string{"variety"},
			Offset:         "zero",
		}, u.Stack())
	})

	t.Run("point marks never stack", func(t *testing.T) {
		u, err := New(base("point", ""))
		require.NoError(t, err)
		assert.Nil(t, u.Stack())
	})

	t.Run("stacking disabled", func(t *testing.T) {
		u, err := New(base("bar", "none"))
		require.NoError(t, err)
		assert.Nil(t, u.Stack())
	})
}

func TestNewErrors(t *testing.T) {
	testCases := []struct {
		name string
		doc  *config.Document
		want string
	}{
		{"bad mark", &config.Document{Mark: "pie"}, "unknown mark"},
		{"bad channel", &config.Document{Mark: "bar", Encoding: map[string]*config.FieldDecl{"z": {Field: "a", Type: "nominal"}}}, "unknown channel"},
		{"missing type", &config.Document{Mark: "bar", Encoding: map[string]*config.FieldDecl{"x": {Field: "a"}}}, "has no type"},
		{"bad time unit", &config.Document{Mark: "bar", Encoding: map[string]*config.FieldDecl{"x": {Field: "a", Type: "T", TimeUnit: "week"}}}, "unknown time unit"},
		{"bad scale", &config.Document{Mark: "bar", Encoding: map[string]*config.FieldDecl{"x": {Field: "a", Type: "Q", Scale: &config.ScaleDecl{Type: "radial"}}}}, "unknown scale type"},
		{"bad resolve", &config.Document{Mark: "bar", Resolve: map[string]string{"x": "split"}}, "unknown mode"},
		{"bad filter null", &config.Document{Mark: "bar", Transform: &config.Transform{FilterNull: map[string]bool{"geo": true}}}, "unknown field type"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.doc)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestResolveDefaultsToShared(t *testing.T) {
	u, err := New(&config.Document{Mark: "point", Resolve: map[string]string{"x": "independent"}})
	require.NoError(t, err)
	assert.Equal(t, ResolveIndependent, u.Resolve(X))
	assert.Equal(t, ResolveShared, u.Resolve(Y))
}
