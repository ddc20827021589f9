// Package stats aggregates independent count queries into a single metric
// snapshot. Every invocation fans its queries out concurrently and joins on
// all of them; a single failure fails the whole call with no partial result.
package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"techstore/internal/auth"
)

// ErrScopeRequired is returned when an owner-scoped metric is requested with
// an anonymous scope. This is a programming-contract violation, not a data
// error, so it fails fast instead of returning zero.
var ErrScopeRequired = errors.New("owner-scoped metric requires an identified scope")

// CountFunc runs one count query. subjectID is zero for unscoped metrics.
type CountFunc func(ctx context.Context, subjectID uint) (int64, error)

// MetricSpec names one independent count query
type MetricSpec struct {
	Name        string
	OwnerScoped bool
	Count       CountFunc
}

// MetricSet maps metric name to its aggregated count
type MetricSet map[string]int64

// Task is an extra fan-out unit joined with the same aggregate invocation,
// used for bounded recent-list fetches that accompany the counts.
type Task func(ctx context.Context) error

// Aggregator runs metric specs concurrently against the store
type Aggregator struct {
	logger *slog.Logger
}

// NewAggregator creates a new aggregator
func NewAggregator(logger *slog.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Aggregate runs every spec and extra task concurrently and waits for all of
// them. The first failure cancels the remaining queries and the call returns
// only the error — callers never observe a partial MetricSet.
func (a *Aggregator) Aggregate(ctx context.Context, scope auth.Scope, specs []MetricSpec, extras ...Task) (MetricSet, error) {
	for _, spec := range specs {
		if spec.OwnerScoped && scope.IsAnonymous() {
			return nil, fmt.Errorf("metric %q: %w", spec.Name, ErrScopeRequired)
		}
	}

	var (
		mu      sync.Mutex
		metrics = make(MetricSet, len(specs))
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, spec := range specs {
		spec := spec
		g.Go(func() error {
			count, err := spec.Count(ctx, scope.SubjectID)
			if err != nil {
				return fmt.Errorf("metric %q: %w", spec.Name, err)
			}
			mu.Lock()
			metrics[spec.Name] = count
			mu.Unlock()
			return nil
		})
	}
	for _, extra := range extras {
		extra := extra
		g.Go(func() error {
			return extra(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		a.logger.Error("metric aggregation failed", "error", err)
		return nil, err
	}

	return metrics, nil
}
