package stats

import (
	"context"

	"techstore/internal/database"
)

// Dashboard metric names
const (
	MetricTotalOrders   = "total_orders"
	MetricActiveRepairs = "active_repairs"
	MetricPCConfigs     = "pc_configs"
	MetricPS5Configs    = "ps5_configs"
	MetricProducts      = "products"
	MetricCustomers     = "customers"
	MetricPendingQuotes = "pending_quotes"
)

// DashboardSpecs are the owner-scoped metrics shown on the customer dashboard
func DashboardSpecs(store database.Store) []MetricSpec {
	return []MetricSpec{
		{Name: MetricTotalOrders, OwnerScoped: true, Count: store.CountOrdersByUser},
		{Name: MetricActiveRepairs, OwnerScoped: true, Count: store.CountActiveRepairsByUser},
		{Name: MetricPCConfigs, OwnerScoped: true, Count: store.CountPCConfigsByUser},
		{Name: MetricPS5Configs, OwnerScoped: true, Count: store.CountPS5ConfigsByUser},
	}
}

// PublicSpecs are the unscoped metrics exposed on the public stats endpoint
func PublicSpecs(store database.Store) []MetricSpec {
	return []MetricSpec{
		{Name: MetricProducts, Count: unscoped(store.CountProducts)},
		{Name: MetricTotalOrders, Count: unscoped(store.CountOrders)},
		{Name: MetricActiveRepairs, Count: unscoped(store.CountActiveRepairs)},
	}
}

// AdminSpecs are the global metrics shown on the admin dashboard
func AdminSpecs(store database.Store) []MetricSpec {
	return []MetricSpec{
		{Name: MetricTotalOrders, Count: unscoped(store.CountOrders)},
		{Name: MetricActiveRepairs, Count: unscoped(store.CountActiveRepairs)},
		{Name: MetricCustomers, Count: unscoped(store.CountUsers)},
		{Name: MetricProducts, Count: unscoped(store.CountProducts)},
		{Name: MetricPendingQuotes, Count: unscoped(store.CountPendingQuotes)},
	}
}

func unscoped(count func(ctx context.Context) (int64, error)) CountFunc {
	return func(ctx context.Context, _ uint) (int64, error) {
		return count(ctx)
	}
}
