package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"techstore/internal/auth"
	"techstore/internal/database"
	"techstore/internal/notification"
	"techstore/internal/realtime"
)

// CreateRepairRequest is the repair intake input
type CreateRepairRequest struct {
	DeviceType string `json:"device_type" binding:"required,oneof=pc laptop console"`
	Issue      string `json:"issue" binding:"required,min=10"`
}

// UpdateRepairStatusRequest is the admin status transition input
type UpdateRepairStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=received diagnosing in_progress completed collected"`
}

// CreateRepair registers a device for repair
func (h *Handler) CreateRepair(c *gin.Context) {
	scope := auth.ScopeFrom(c)

	var req CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	repair := database.Repair{
		Reference:  uuid.NewString(),
		UserID:     scope.SubjectID,
		DeviceType: req.DeviceType,
		Issue:      req.Issue,
		Status:     database.RepairReceived,
	}
	if err := h.store.CreateRepair(c.Request.Context(), &repair); err != nil {
		respondInternal(c, h.logger, "create repair", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"repair": repair})
}

// ListRepairs returns the caller's repairs
func (h *Handler) ListRepairs(c *gin.Context) {
	scope := auth.ScopeFrom(c)

	repairs, err := h.store.RepairsByUser(c.Request.Context(), scope.SubjectID)
	if err != nil {
		respondInternal(c, h.logger, "list repairs", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"repairs": repairs})
}

// UpdateRepairStatus transitions a repair and notifies its owner by email.
// The mutation and the notification are not transactional together: a failed
// notification leaves the status change reported as success.
func (h *Handler) UpdateRepairStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid repair id"})
		return
	}

	var req UpdateRepairStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	if err := h.store.UpdateRepairStatus(c.Request.Context(), uint(id), req.Status); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "repair not found")
			return
		}
		respondInternal(c, h.logger, "update repair status", err)
		return
	}

	repair, err := h.store.RepairByID(c.Request.Context(), uint(id))
	if err == nil {
		if owner, err := h.store.UserByID(c.Request.Context(), repair.UserID); err == nil {
			h.notifier.Dispatch(notification.Event{
				Template:  notification.TemplateRepairStatus,
				Channel:   notification.ChannelEmail,
				Recipient: owner.Email,
				Language:  owner.Language,
				Params: map[string]string{
					"reference": repair.Reference,
					"status":    repair.Status,
				},
			})
		}
	}

	h.hub.Broadcast(realtime.StatsUpdate{Kind: "repair_updated"})

	if repair != nil {
		c.JSON(http.StatusOK, gin.H{"repair": repair})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
