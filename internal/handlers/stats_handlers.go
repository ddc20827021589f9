package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"techstore/internal/auth"
	"techstore/internal/database"
	"techstore/internal/display"
	"techstore/internal/stats"
)

const recentItemsLimit = 5

// Dashboard returns the caller's aggregated stats together with their most
// recent order lines shaped into display records. All underlying queries run
// concurrently; a single failure fails the whole request.
func (h *Handler) Dashboard(c *gin.Context) {
	scope := auth.ScopeFrom(c)

	var recent []database.OrderItem
	fetchRecent := func(ctx context.Context) error {
		items, err := h.store.RecentOrderItemsByUser(ctx, scope.SubjectID, recentItemsLimit)
		if err != nil {
			return err
		}
		recent = items
		return nil
	}

	metrics, err := h.aggregator.Aggregate(c.Request.Context(), scope,
		stats.DashboardSpecs(h.store), fetchRecent)
	if err != nil {
		respondInternal(c, h.logger, "dashboard", err)
		return
	}

	joined := make([]display.JoinedRecord, 0, len(recent))
	for _, item := range recent {
		var status string
		var timestamp time.Time
		if item.Order != nil {
			status = item.Order.Status
			timestamp = item.Order.CreatedAt
		}
		joined = append(joined, display.FromOrderItem(item, status, timestamp))
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":         metrics,
		"recent_orders": display.Shape(joined),
	})
}

// PublicStats returns the unscoped shop counters. No identity is required
// and no owner-scoped metric is ever run here.
func (h *Handler) PublicStats(c *gin.Context) {
	metrics, err := h.aggregator.Aggregate(c.Request.Context(), auth.ScopeFrom(c),
		stats.PublicSpecs(h.store))
	if err != nil {
		respondInternal(c, h.logger, "public stats", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": metrics})
}

// AdminStats returns global counters for the admin dashboard
func (h *Handler) AdminStats(c *gin.Context) {
	metrics, err := h.aggregator.Aggregate(c.Request.Context(), auth.ScopeFrom(c),
		stats.AdminSpecs(h.store))
	if err != nil {
		respondInternal(c, h.logger, "admin stats", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":            metrics,
		"realtime_clients": h.hub.ClientCount(),
	})
}
