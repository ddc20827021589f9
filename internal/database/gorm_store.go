package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("record not found")

// Users

func (s *GormStore) CreateUser(ctx context.Context, user *User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *GormStore) UserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}
	return &user, nil
}

func (s *GormStore) UserByID(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

// Orders

func (s *GormStore) CreateOrder(ctx context.Context, order *Order) error {
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (s *GormStore) OrdersByUser(ctx context.Context, userID uint) ([]Order, error) {
	var orders []Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.PCConfiguration").
		Preload("Items.PS5Configuration").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *GormStore) RecentOrderItemsByUser(ctx context.Context, userID uint, limit int) ([]OrderItem, error) {
	var items []OrderItem
	err := s.db.WithContext(ctx).
		Preload("Order").
		Preload("Product").
		Preload("PCConfiguration").
		Preload("PS5Configuration").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ?", userID).
		Order("order_items.id DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent order items: %w", err)
	}
	return items, nil
}

func (s *GormStore) CountOrdersByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Order{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (s *GormStore) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// Repairs

func (s *GormStore) CreateRepair(ctx context.Context, repair *Repair) error {
	if err := s.db.WithContext(ctx).Create(repair).Error; err != nil {
		return fmt.Errorf("failed to create repair: %w", err)
	}
	return nil
}

func (s *GormStore) RepairsByUser(ctx context.Context, userID uint) ([]Repair, error) {
	var repairs []Repair
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&repairs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list repairs: %w", err)
	}
	return repairs, nil
}

func (s *GormStore) RepairByID(ctx context.Context, id uint) (*Repair, error) {
	var repair Repair
	if err := s.db.WithContext(ctx).First(&repair, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up repair: %w", err)
	}
	return &repair, nil
}

func (s *GormStore) UpdateRepairStatus(ctx context.Context, id uint, status string) error {
	result := s.db.WithContext(ctx).Model(&Repair{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update repair status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CountActiveRepairsByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Repair{}).
		Where("user_id = ? AND status NOT IN ?", userID, []string{RepairCompleted, RepairCollected}).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active repairs: %w", err)
	}
	return count, nil
}

func (s *GormStore) CountActiveRepairs(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Repair{}).
		Where("status NOT IN ?", []string{RepairCompleted, RepairCollected}).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active repairs: %w", err)
	}
	return count, nil
}

// Configurations

func (s *GormStore) CreatePCConfiguration(ctx context.Context, cfg *PCConfiguration) error {
	if err := s.db.WithContext(ctx).Create(cfg).Error; err != nil {
		return fmt.Errorf("failed to create PC configuration: %w", err)
	}
	return nil
}

func (s *GormStore) CreatePS5Configuration(ctx context.Context, cfg *PS5Configuration) error {
	if err := s.db.WithContext(ctx).Create(cfg).Error; err != nil {
		return fmt.Errorf("failed to create PS5 configuration: %w", err)
	}
	return nil
}

func (s *GormStore) CountPCConfigsByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&PCConfiguration{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count PC configurations: %w", err)
	}
	return count, nil
}

func (s *GormStore) CountPS5ConfigsByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&PS5Configuration{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count PS5 configurations: %w", err)
	}
	return count, nil
}

// Quotes

func (s *GormStore) CreateQuoteRequest(ctx context.Context, quote *QuoteRequest) error {
	if err := s.db.WithContext(ctx).Create(quote).Error; err != nil {
		return fmt.Errorf("failed to create quote request: %w", err)
	}
	return nil
}

func (s *GormStore) CountPendingQuotes(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&QuoteRequest{}).Where("status = ?", "pending").Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pending quotes: %w", err)
	}
	return count, nil
}

// Public catalog

func (s *GormStore) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (s *GormStore) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
