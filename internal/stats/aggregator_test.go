package stats

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techstore/internal/auth"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func fixedCount(n int64) CountFunc {
	return func(ctx context.Context, _ uint) (int64, error) {
		return n, nil
	}
}

func TestAggregateCollectsAllMetrics(t *testing.T) {
	agg := NewAggregator(testLogger())
	scope := auth.Identified(7, "customer")

	specs := []MetricSpec{
		{Name: "total_orders", OwnerScoped: true, Count: fixedCount(3)},
		{Name: "active_repairs", OwnerScoped: true, Count: fixedCount(1)},
		{Name: "pc_configs", OwnerScoped: true, Count: fixedCount(4)},
		{Name: "ps5_configs", OwnerScoped: true, Count: fixedCount(0)},
	}

	metrics, err := agg.Aggregate(context.Background(), scope, specs)
	require.NoError(t, err)

	assert.Equal(t, MetricSet{
		"total_orders":   3,
		"active_repairs": 1,
		"pc_configs":     4,
		"ps5_configs":    0,
	}, metrics)
}

func TestAggregateResultIndependentOfCompletionOrder(t *testing.T) {
	agg := NewAggregator(testLogger())

	// The slow query completes last; the result must be the same either way.
	specs := []MetricSpec{
		{Name: "fast", Count: fixedCount(1)},
		{Name: "slow", Count: func(ctx context.Context, _ uint) (int64, error) {
			time.Sleep(10 * time.Millisecond)
			return 2, nil
		}},
	}

	metrics, err := agg.Aggregate(context.Background(), auth.Identified(1, "customer"), specs)
	require.NoError(t, err)
	assert.Equal(t, MetricSet{"fast": 1, "slow": 2}, metrics)
}

func TestAggregateFailsWholeCallOnSingleFailure(t *testing.T) {
	agg := NewAggregator(testLogger())
	storeErr := errors.New("connection reset")

	specs := []MetricSpec{
		{Name: "ok", Count: fixedCount(5)},
		{Name: "broken", Count: func(ctx context.Context, _ uint) (int64, error) {
			return 0, storeErr
		}},
	}

	metrics, err := agg.Aggregate(context.Background(), auth.Identified(1, "customer"), specs)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, metrics, "no partial MetricSet may be observable")
}

func TestAggregateCancelsRemainingQueriesOnFailure(t *testing.T) {
	agg := NewAggregator(testLogger())

	specs := []MetricSpec{
		{Name: "failing", Count: func(ctx context.Context, _ uint) (int64, error) {
			return 0, errors.New("boom")
		}},
		{Name: "waiting", Count: func(ctx context.Context, _ uint) (int64, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		}},
	}

	_, err := agg.Aggregate(context.Background(), auth.Identified(1, "customer"), specs)
	require.Error(t, err)
}

func TestAggregateRejectsOwnerScopedSpecForAnonymousScope(t *testing.T) {
	agg := NewAggregator(testLogger())

	var calls atomic.Int32
	specs := []MetricSpec{
		{Name: "total_orders", OwnerScoped: true, Count: func(ctx context.Context, _ uint) (int64, error) {
			calls.Add(1)
			return 0, nil
		}},
	}

	_, err := agg.Aggregate(context.Background(), auth.Anonymous(), specs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScopeRequired)
	assert.Equal(t, int32(0), calls.Load(), "no query may run after a contract violation")
}

func TestAggregateRunsExtraTasksInSameJoin(t *testing.T) {
	agg := NewAggregator(testLogger())

	var fetched []string
	extra := func(ctx context.Context) error {
		fetched = []string{"order-1", "order-2"}
		return nil
	}

	metrics, err := agg.Aggregate(context.Background(), auth.Identified(1, "customer"),
		[]MetricSpec{{Name: "total_orders", OwnerScoped: true, Count: fixedCount(2)}}, extra)
	require.NoError(t, err)
	assert.Equal(t, int64(2), metrics["total_orders"])
	assert.Equal(t, []string{"order-1", "order-2"}, fetched)
}

func TestAggregateExtraTaskFailureFailsCall(t *testing.T) {
	agg := NewAggregator(testLogger())

	extra := func(ctx context.Context) error {
		return errors.New("list query failed")
	}

	metrics, err := agg.Aggregate(context.Background(), auth.Identified(1, "customer"),
		[]MetricSpec{{Name: "total_orders", OwnerScoped: true, Count: fixedCount(2)}}, extra)
	require.Error(t, err)
	assert.Nil(t, metrics)
}
