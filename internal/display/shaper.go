// Package display normalizes heterogeneous order lines into uniform display
// records for the dashboard and order views.
package display

import (
	"time"

	"techstore/internal/database"
)

// UnknownItemLabel is the sentinel used when no candidate source is present
const UnknownItemLabel = "Unknown Item"

// JoinedRecord is one already-fetched order line together with its optional
// source references. At most one reference is authoritative; the fixed
// precedence is product, then PC configuration, then PS5 configuration.
type JoinedRecord struct {
	ID        uint
	Status    string
	Timestamp time.Time

	Product          *database.Product
	PCConfiguration  *database.PCConfiguration
	PS5Configuration *database.PS5Configuration
}

// DisplayRecord is the normalized projection of one joined record
type DisplayRecord struct {
	ID        uint      `json:"id"`
	Label     string    `json:"label"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// FromOrderItem builds a joined record from a fetched order line and the
// status and creation time of its order.
func FromOrderItem(item database.OrderItem, status string, timestamp time.Time) JoinedRecord {
	return JoinedRecord{
		ID:               item.ID,
		Status:           status,
		Timestamp:        timestamp,
		Product:          item.Product,
		PCConfiguration:  item.PCConfiguration,
		PS5Configuration: item.PS5Configuration,
	}
}

// Shape projects joined records into display records. It is pure and
// order-preserving: output index i corresponds to input index i, and the same
// input always yields the same output. It never fails; a record with no
// source reference degrades to the sentinel label.
func Shape(records []JoinedRecord) []DisplayRecord {
	out := make([]DisplayRecord, len(records))
	for i, rec := range records {
		out[i] = DisplayRecord{
			ID:        rec.ID,
			Label:     resolveLabel(rec),
			Status:    rec.Status,
			Timestamp: rec.Timestamp,
		}
	}
	return out
}

// resolveLabel picks the first present source in precedence order; later
// sources are ignored even when also present. Within the winning source the
// localized name wins over the fallback name.
func resolveLabel(rec JoinedRecord) string {
	if rec.Product != nil {
		return pickName(rec.Product.NameSq, rec.Product.Name)
	}
	if rec.PCConfiguration != nil {
		return pickName(rec.PCConfiguration.NameSq, rec.PCConfiguration.Name)
	}
	if rec.PS5Configuration != nil {
		return pickName(rec.PS5Configuration.NameSq, rec.PS5Configuration.Edition)
	}
	return UnknownItemLabel
}

func pickName(localized, fallback string) string {
	if localized != "" {
		return localized
	}
	if fallback != "" {
		return fallback
	}
	return UnknownItemLabel
}
