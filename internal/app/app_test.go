package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const barHCL = `
chart "barley" {
  mark = "bar"
  data {
    url = "data/barley.json"
  }
  encoding "x" {
    field = "variety"
    type  = "nominal"
  }
  encoding "y" {
    field     = "yield"
    type      = "quantitative"
    aggregate = "sum"
  }
  encoding "color" {
    field = "site"
    type  = "nominal"
  }
}
`

const facetYAML = `
name: faceted
mark: point
data:
  url: data/cars.csv
encoding:
  column:
    field: Origin
    type: nominal
  x:
    field: Cylinders
    type: ordinal
  y:
    field: Horsepower
    type: quantitative
resolve:
  x: independent
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

type envelope struct {
	Data []struct {
		Name   string `json:"name"`
		Source string `json:"source"`
	} `json:"data"`
	Facet []struct {
		Name   string `json:"name"`
		Source string `json:"source"`
	} `json:"facet"`
}

func datasetNames(e envelope) []string {
	var out []string
	for _, d := range e.Data {
		out = append(out, d.Name)
	}
	return out
}

func TestRun_SingleFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bar.hcl")
	writeFile(t, path, barHCL)

	a, out, logs := SetupAppTest(t, &Config{SpecPath: path})
	require.NoError(t, a.Run(context.Background()))

	var got envelope
	require.NoError(t, json.Unmarshal([]byte(out.String()), &got))
	assert.Equal(t, []string{"source", "summary", "layout", "stacked_scale"}, datasetNames(got))
	assert.Empty(t, got.Facet)
	assert.Contains(t, logs.String(), "Chart compiled.")
}

func TestRun_FacetUsesDataTable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "facet.yaml")
	writeFile(t, path, facetYAML)

	a, out, _ := SetupAppTest(t, &Config{SpecPath: path})
	require.NoError(t, a.Run(context.Background()))

	var got envelope
	require.NoError(t, json.Unmarshal([]byte(out.String()), &got))
	require.Len(t, got.Facet, 1)
	assert.Equal(t, "column_domain", got.Facet[0].Name)
	assert.Equal(t, "source", got.Facet[0].Source)
}

func TestRun_FacetDataNameOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "facet.yaml")
	writeFile(t, path, facetYAML)

	a, _, _ := SetupAppTest(t, &Config{SpecPath: path, DataName: "table"})
	out, err := a.CompileFile(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, out.Facet, 1)
	assert.Equal(t, "table", out.Facet[0].Source)
}

func TestRun_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b", "facet.yml"), facetYAML)
	writeFile(t, filepath.Join(dir, "a.hcl"), barHCL)
	writeFile(t, filepath.Join(dir, "README.md"), "not a chart")

	outPath := filepath.Join(t.TempDir(), "out.json")
	a, stdout, _ := SetupAppTest(t, &Config{SpecPath: dir, OutPath: outPath, Pretty: true})
	require.NoError(t, a.Run(context.Background()))
	assert.Empty(t, stdout.String())

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var got map[string]envelope
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, 2)
	assert.Contains(t, got, "a.hcl")
	assert.Contains(t, got, "b/facet.yml")
	assert.Len(t, got["b/facet.yml"].Facet, 1)

	// Keys are written in lexical file order.
	assert.Less(t, strings.Index(string(raw), `"a.hcl"`), strings.Index(string(raw), `"b/facet.yml"`))
}

func TestRun_DirectoryCollectsEveryFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.hcl"), barHCL)
	writeFile(t, filepath.Join(dir, "broken.hcl"), `chart "x" {`)
	writeFile(t, filepath.Join(dir, "badmark.json"), `{"mark": "pie"}`)

	a, out, _ := SetupAppTest(t, &Config{SpecPath: dir})
	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 errors occurred")
	assert.Contains(t, err.Error(), "broken.hcl")
	assert.Contains(t, err.Error(), "badmark.json")
	assert.Empty(t, out.String())
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	a, _, _ := SetupAppTest(t, &Config{SpecPath: filepath.Join(t.TempDir(), "missing.hcl")})
	assert.ErrorContains(t, a.Run(context.Background()), "failed to access spec path")

	empty := t.TempDir()
	a, _, _ = SetupAppTest(t, &Config{SpecPath: empty})
	assert.ErrorContains(t, a.Run(context.Background()), "no chart files found")

	txt := filepath.Join(t.TempDir(), "chart.txt")
	writeFile(t, txt, "mark: bar")
	a, _, _ = SetupAppTest(t, &Config{SpecPath: txt})
	assert.ErrorContains(t, a.Run(context.Background()), "unsupported chart file extension")
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{SpecPath: "chart.hcl"})
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)

	_, err = NewConfig(Config{})
	assert.ErrorContains(t, err, "SpecPath is a required")

	_, err = NewConfig(Config{SpecPath: "a", LogFormat: "text"})
	assert.ErrorContains(t, err, "invalid log format")

	_, err = NewConfig(Config{SpecPath: "a", LogLevel: "trace"})
	assert.ErrorContains(t, err, "invalid log level")
}
