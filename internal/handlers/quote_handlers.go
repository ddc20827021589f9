package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techstore/internal/database"
	"techstore/internal/notification"
	"techstore/internal/realtime"
)

// CreateQuoteRequestInput is the public quote request input
type CreateQuoteRequestInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=10"`
}

// CreateQuoteRequest stores an inbound quote request. A failed store write is
// reported as a failure; the shop channel is only notified after the row is
// actually persisted.
func (h *Handler) CreateQuoteRequest(c *gin.Context) {
	var req CreateQuoteRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	quote := database.QuoteRequest{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Status:  "pending",
	}
	if err := h.store.CreateQuoteRequest(c.Request.Context(), &quote); err != nil {
		respondInternal(c, h.logger, "create quote request", err)
		return
	}

	h.notifier.Dispatch(notification.Event{
		Template: notification.TemplateQuoteReceived,
		Channel:  notification.ChannelTelegram,
		Params:   map[string]string{"name": quote.Name},
	})

	h.hub.Broadcast(realtime.StatsUpdate{Kind: "quote_received"})

	c.JSON(http.StatusCreated, gin.H{"quote": quote})
}
