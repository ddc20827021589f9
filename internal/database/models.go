package database

import (
	"time"
)

// User roles
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Repair status lifecycle
const (
	RepairReceived   = "received"
	RepairDiagnosing = "diagnosing"
	RepairInProgress = "in_progress"
	RepairCompleted  = "completed"
	RepairCollected  = "collected"
)

// User represents a registered customer or administrator
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null;default:'customer'"`
	Language     string    `json:"language" gorm:"default:'sq'"` // sq, en
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Product represents a catalog item (components, peripherals, consoles)
type Product struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	NameSq     string    `json:"name_sq"` // localized name, may be empty
	Category   string    `json:"category"`
	PriceCents int64     `json:"price_cents" gorm:"not null"`
	InStock    bool      `json:"in_stock" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PCConfiguration represents a custom PC build saved by a user
type PCConfiguration struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	Name       string    `json:"name"`
	NameSq     string    `json:"name_sq"`
	CPU        string    `json:"cpu"`
	GPU        string    `json:"gpu"`
	RAMGB      int       `json:"ram_gb"`
	StorageGB  int       `json:"storage_gb"`
	PriceCents int64     `json:"price_cents"`
	Status     string    `json:"status" gorm:"default:'draft'"` // draft, ordered
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PS5Configuration represents a PS5 bundle saved by a user
type PS5Configuration struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Edition     string    `json:"edition"` // standard, digital, pro
	NameSq      string    `json:"name_sq"`
	StorageGB   int       `json:"storage_gb"`
	Accessories string    `json:"accessories"`
	PriceCents  int64     `json:"price_cents"`
	Status      string    `json:"status" gorm:"default:'draft'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Order represents a customer order
type Order struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	Reference  string      `json:"reference" gorm:"uniqueIndex;not null"`
	UserID     uint        `json:"user_id" gorm:"index;not null"`
	Status     string      `json:"status" gorm:"default:'pending'"` // pending, confirmed, shipped, delivered, cancelled
	TotalCents int64       `json:"total_cents"`
	Items      []OrderItem `json:"items"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// OrderItem is one order line referencing exactly one of a catalog product,
// a PC configuration or a PS5 configuration.
type OrderItem struct {
	ID                 uint  `json:"id" gorm:"primaryKey"`
	OrderID            uint  `json:"order_id" gorm:"index;not null"`
	ProductID          *uint `json:"product_id"`
	PCConfigurationID  *uint `json:"pc_configuration_id"`
	PS5ConfigurationID *uint `json:"ps5_configuration_id"`
	Quantity           int   `json:"quantity" gorm:"default:1"`
	PriceCents         int64 `json:"price_cents"`

	Order            *Order            `json:"-"`
	Product          *Product          `json:"product,omitempty"`
	PCConfiguration  *PCConfiguration  `json:"pc_configuration,omitempty"`
	PS5Configuration *PS5Configuration `json:"ps5_configuration,omitempty"`
}

// Repair represents a device repair tracked through its lifecycle
type Repair struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Reference  string    `json:"reference" gorm:"uniqueIndex;not null"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	DeviceType string    `json:"device_type"` // pc, laptop, console
	Issue      string    `json:"issue"`
	Status     string    `json:"status" gorm:"default:'received'"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Active reports whether the repair is still in the shop
func (r *Repair) Active() bool {
	return r.Status != RepairCompleted && r.Status != RepairCollected
}

// QuoteRequest represents an inbound quote request from the public site
type QuoteRequest struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Message   string    `json:"message"`
	Status    string    `json:"status" gorm:"default:'pending'"` // pending, answered
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
