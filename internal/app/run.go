package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/vk/vizpipe/internal/datacompile"
	"github.com/vk/vizpipe/internal/dataset"
	"github.com/vk/vizpipe/internal/fsutil"
	"github.com/vk/vizpipe/internal/model"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"
)

// Output is the compiled result for one chart.
type Output struct {
	Data  []*dataset.Dataset `json:"data"`
	Facet []*dataset.Dataset `json:"facet,omitempty"`
}

// Run compiles the configured chart, or every chart under the configured
// directory, and writes the JSON result. A directory compiles its files
// concurrently; when any of them fails nothing is written and the returned
// error lists every failure.
func (a *App) Run(ctx context.Context) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Run method started.", zap.String("spec_path", a.config.SpecPath))

	info, err := os.Stat(a.config.SpecPath)
	if err != nil {
		return fmt.Errorf("failed to access spec path: %w", err)
	}

	var result any
	if info.IsDir() {
		charts, err := a.compileDir(ctx, a.config.SpecPath)
		if err != nil {
			return err
		}
		result = charts
	} else {
		out, err := a.CompileFile(ctx, a.config.SpecPath)
		if err != nil {
			return err
		}
		result = out
	}

	if err := a.write(result); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// CompileFile loads, models and compiles a single chart file.
func (a *App) CompileFile(ctx context.Context, path string) (*Output, error) {
	ctx = a.context(ctx)

	loader, ok := a.loaderFor(path)
	if !ok {
		return nil, fmt.Errorf("%s: unsupported chart file extension", path)
	}
	doc, err := loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	unit, err := model.New(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid chart: %w", path, err)
	}

	data, err := datacompile.Compile(ctx, unit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dataName := a.config.DataName
	if dataName == "" {
		dataName = unit.DataTable()
	}
	out := &Output{Data: data, Facet: datacompile.FacetDomains(unit, dataName)}

	a.logger.Info("Chart compiled.", zap.String("path", path), zap.Int("datasets", len(out.Data)), zap.Int("facet_datasets", len(out.Facet)))
	return out, nil
}

// compileDir compiles every chart file under dir, keyed by path relative to
// dir in lexical order.
func (a *App) compileDir(ctx context.Context, dir string) (*orderedmap.OrderedMap[string, *Output], error) {
	files, err := fsutil.FindFilesByExtension(dir, a.Extensions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to discover chart files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no chart files found under %s", dir)
	}
	a.logger.Debug("Discovered chart files.", zap.Int("count", len(files)))

	outputs := make([]*Output, len(files))
	errs := make([]error, len(files))
	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outputs[i], errs[i] = a.CompileFile(ctx, file)
		}()
	}
	wg.Wait()

	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	charts := orderedmap.New[string, *Output]()
	for i, file := range files {
		rel, err := filepath.Rel(dir, file)
		if err != nil {
			rel = file
		}
		charts.Set(filepath.ToSlash(rel), outputs[i])
	}
	return charts, nil
}

func (a *App) write(result any) (err error) {
	w := a.outW
	if p := a.config.OutPath; p != "" && p != "-" {
		f, err := os.Create(p)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	return encode(w, result, a.config.Pretty)
}

func encode(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
