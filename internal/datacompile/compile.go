package datacompile

import (
	"context"
	"fmt"

	"github.com/vk/vizpipe/internal/ctxlog"
	"github.com/vk/vizpipe/internal/dataset"
	"github.com/vk/vizpipe/internal/model"
	"go.uber.org/zap"
)

// Compile returns the ordered dataset definitions for m. It either returns
// the complete list or an error wrapping ErrInvalidModel; it never returns a
// partial list. Compile reads m only, so concurrent calls are safe.
func Compile(ctx context.Context, m model.Model) ([]*dataset.Dataset, error) {
	logger := ctxlog.FromContext(ctx)

	out := []*dataset.Dataset{Source(m)}
	if summary := Summary(m); summary != nil {
		out = append(out, summary)
	}

	// Rank and log filters must see aggregated values, so they go on the
	// trailing dataset, before anything else is appended.
	last := dataset.Last(out)
	last.Append(RankTransforms(m)...)
	last.Append(LogFilterTransforms(m)...)
	logger.Debug("Data table compiled.", zap.String("table", last.Name), zap.Int("transforms", len(last.Transform)))

	layout, err := Layout(m)
	if err != nil {
		return nil, fmt.Errorf("failed to compile layout: %w", err)
	}
	out = append(out, layout)

	if m.Stack() != nil {
		stacked, err := Stack(m)
		if err != nil {
			return nil, fmt.Errorf("failed to compile stack: %w", err)
		}
		out = append(out, stacked)
	}

	dates := TimeDomains(m)
	out = append(out, dates...)

	logger.Debug("Datasets compiled.", zap.Int("count", len(out)), zap.Int("time_domains", len(dates)))
	return out, nil
}
