package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"techstore/internal/database"
)

func TestResolveLabelPrecedence(t *testing.T) {
	t.Run("product wins over pc configuration", func(t *testing.T) {
		rec := JoinedRecord{
			Product:         &database.Product{NameSq: "Kompjuter", Name: "Computer"},
			PCConfiguration: &database.PCConfiguration{NameSq: "Konfigurim", Name: "Build"},
		}

		out := Shape([]JoinedRecord{rec})
		assert.Len(t, out, 1)
		assert.Equal(t, "Kompjuter", out[0].Label)
	})

	t.Run("fallback name used when localized empty", func(t *testing.T) {
		rec := JoinedRecord{
			Product: &database.Product{Name: "Computer"},
		}

		out := Shape([]JoinedRecord{rec})
		assert.Equal(t, "Computer", out[0].Label)
	})

	t.Run("pc configuration used when no product", func(t *testing.T) {
		rec := JoinedRecord{
			PCConfiguration:  &database.PCConfiguration{Name: "Gaming Build"},
			PS5Configuration: &database.PS5Configuration{Edition: "pro"},
		}

		out := Shape([]JoinedRecord{rec})
		assert.Equal(t, "Gaming Build", out[0].Label)
	})

	t.Run("sentinel when no source present", func(t *testing.T) {
		out := Shape([]JoinedRecord{{}})
		assert.Equal(t, "Unknown Item", out[0].Label)
	})

	t.Run("sentinel when winning source has no names", func(t *testing.T) {
		rec := JoinedRecord{Product: &database.Product{}}

		out := Shape([]JoinedRecord{rec})
		assert.Equal(t, UnknownItemLabel, out[0].Label)
	})
}

func TestShapeIsPureAndOrderPreserving(t *testing.T) {
	now := time.Now()
	records := []JoinedRecord{
		{ID: 3, Status: "pending", Timestamp: now, Product: &database.Product{Name: "Mouse"}},
		{ID: 1, Status: "shipped", Timestamp: now, PS5Configuration: &database.PS5Configuration{Edition: "digital"}},
		{ID: 2, Status: "pending", Timestamp: now},
	}

	first := Shape(records)
	second := Shape(records)

	assert.Equal(t, first, second, "identical input must yield identical output")

	// Output order matches input order, no re-sorting.
	assert.Equal(t, uint(3), first[0].ID)
	assert.Equal(t, uint(1), first[1].ID)
	assert.Equal(t, uint(2), first[2].ID)
	assert.Equal(t, "Mouse", first[0].Label)
	assert.Equal(t, "digital", first[1].Label)
	assert.Equal(t, UnknownItemLabel, first[2].Label)
}

func TestFromOrderItem(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	productID := uint(7)
	item := database.OrderItem{
		ID:        42,
		ProductID: &productID,
		Product:   &database.Product{NameSq: "Tastierë", Name: "Keyboard"},
	}

	rec := FromOrderItem(item, "confirmed", created)

	assert.Equal(t, uint(42), rec.ID)
	assert.Equal(t, "confirmed", rec.Status)
	assert.Equal(t, created, rec.Timestamp)

	out := Shape([]JoinedRecord{rec})
	assert.Equal(t, "Tastierë", out[0].Label)
}
