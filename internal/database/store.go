package database

import (
	"context"
)

// Store is the data-access boundary used by handlers and the stats
// aggregator. It is constructor-injected everywhere so tests can substitute
// an in-memory fake.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *User) error
	UserByEmail(ctx context.Context, email string) (*User, error)
	UserByID(ctx context.Context, id uint) (*User, error)

	// Orders
	CreateOrder(ctx context.Context, order *Order) error
	OrdersByUser(ctx context.Context, userID uint) ([]Order, error)
	RecentOrderItemsByUser(ctx context.Context, userID uint, limit int) ([]OrderItem, error)
	CountOrdersByUser(ctx context.Context, userID uint) (int64, error)
	CountOrders(ctx context.Context) (int64, error)

	// Repairs
	CreateRepair(ctx context.Context, repair *Repair) error
	RepairsByUser(ctx context.Context, userID uint) ([]Repair, error)
	RepairByID(ctx context.Context, id uint) (*Repair, error)
	UpdateRepairStatus(ctx context.Context, id uint, status string) error
	CountActiveRepairsByUser(ctx context.Context, userID uint) (int64, error)
	CountActiveRepairs(ctx context.Context) (int64, error)

	// Configurations
	CreatePCConfiguration(ctx context.Context, cfg *PCConfiguration) error
	CreatePS5Configuration(ctx context.Context, cfg *PS5Configuration) error
	CountPCConfigsByUser(ctx context.Context, userID uint) (int64, error)
	CountPS5ConfigsByUser(ctx context.Context, userID uint) (int64, error)

	// Quotes
	CreateQuoteRequest(ctx context.Context, quote *QuoteRequest) error
	CountPendingQuotes(ctx context.Context) (int64, error)

	// Public catalog
	CountProducts(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
}
