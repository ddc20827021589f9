package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"techstore/internal/auth"
	"techstore/internal/database"
	"techstore/internal/notification"
	"techstore/internal/realtime"
	"techstore/internal/stats"
)

// OrderItemRequest is one requested order line. Exactly one of the three
// source references must be set.
type OrderItemRequest struct {
	ProductID          *uint `json:"product_id"`
	PCConfigurationID  *uint `json:"pc_configuration_id"`
	PS5ConfigurationID *uint `json:"ps5_configuration_id"`
	Quantity           int   `json:"quantity" binding:"required,min=1"`
	PriceCents         int64 `json:"price_cents" binding:"required,min=1"`
}

// CreateOrderRequest is the order creation input
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r OrderItemRequest) sourceCount() int {
	count := 0
	if r.ProductID != nil {
		count++
	}
	if r.PCConfigurationID != nil {
		count++
	}
	if r.PS5ConfigurationID != nil {
		count++
	}
	return count
}

// CreateOrder validates and stores a new order, then schedules confirmation
// notifications. Notification failures never affect the reported outcome.
func (h *Handler) CreateOrder(c *gin.Context) {
	scope := auth.ScopeFrom(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	// Cross-field constraint: every line references exactly one source.
	// Collect every violation before rejecting.
	var details []FieldViolation
	for i, item := range req.Items {
		if item.sourceCount() != 1 {
			details = append(details, FieldViolation{
				Field: fmt.Sprintf("items[%d]", i),
				Rule:  "exactly_one_source",
			})
		}
	}
	if len(details) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": details,
		})
		return
	}

	order := database.Order{
		Reference: uuid.NewString(),
		UserID:    scope.SubjectID,
		Status:    "pending",
	}
	for _, item := range req.Items {
		order.TotalCents += item.PriceCents * int64(item.Quantity)
		order.Items = append(order.Items, database.OrderItem{
			ProductID:          item.ProductID,
			PCConfigurationID:  item.PCConfigurationID,
			PS5ConfigurationID: item.PS5ConfigurationID,
			Quantity:           item.Quantity,
			PriceCents:         item.PriceCents,
		})
	}

	if err := h.store.CreateOrder(c.Request.Context(), &order); err != nil {
		respondInternal(c, h.logger, "create order", err)
		return
	}

	total := fmt.Sprintf("%.2f EUR", float64(order.TotalCents)/100)
	if user, err := h.store.UserByID(c.Request.Context(), scope.SubjectID); err == nil {
		h.notifier.Dispatch(notification.Event{
			Template:  notification.TemplateOrderConfirmation,
			Channel:   notification.ChannelEmail,
			Recipient: user.Email,
			Language:  user.Language,
			Params:    map[string]string{"reference": order.Reference, "total": total},
		})
	} else {
		h.logger.Warn("order confirmation email skipped", "order", order.Reference, "error", err)
	}
	h.notifier.Dispatch(notification.Event{
		Template: notification.TemplateOrderConfirmation,
		Channel:  notification.ChannelTelegram,
		Params:   map[string]string{"reference": order.Reference, "total": total},
	})

	h.hub.Broadcast(realtime.StatsUpdate{
		Kind:    "order_created",
		Metrics: map[string]int64{stats.MetricTotalOrders: 1},
	})

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// ListOrders returns the caller's orders with line items preloaded
func (h *Handler) ListOrders(c *gin.Context) {
	scope := auth.ScopeFrom(c)

	orders, err := h.store.OrdersByUser(c.Request.Context(), scope.SubjectID)
	if err != nil {
		respondInternal(c, h.logger, "list orders", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
