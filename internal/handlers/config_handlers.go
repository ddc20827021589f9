package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techstore/internal/auth"
	"techstore/internal/database"
)

// CreatePCConfigurationRequest is the custom PC build input
type CreatePCConfigurationRequest struct {
	Name       string `json:"name" binding:"required"`
	CPU        string `json:"cpu" binding:"required"`
	GPU        string `json:"gpu" binding:"required"`
	RAMGB      int    `json:"ram_gb" binding:"required,min=4,max=256"`
	StorageGB  int    `json:"storage_gb" binding:"required,min=128"`
	PriceCents int64  `json:"price_cents" binding:"required,min=1"`
}

// CreatePS5ConfigurationRequest is the PS5 bundle input
type CreatePS5ConfigurationRequest struct {
	Edition     string `json:"edition" binding:"required,oneof=standard digital pro"`
	StorageGB   int    `json:"storage_gb" binding:"required,min=825"`
	Accessories string `json:"accessories"`
	PriceCents  int64  `json:"price_cents" binding:"required,min=1"`
}

// CreatePCConfiguration saves a custom PC build for the caller
func (h *Handler) CreatePCConfiguration(c *gin.Context) {
	scope := auth.ScopeFrom(c)

	var req CreatePCConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	cfg := database.PCConfiguration{
		UserID:     scope.SubjectID,
		Name:       req.Name,
		CPU:        req.CPU,
		GPU:        req.GPU,
		RAMGB:      req.RAMGB,
		StorageGB:  req.StorageGB,
		PriceCents: req.PriceCents,
		Status:     "draft",
	}
	if err := h.store.CreatePCConfiguration(c.Request.Context(), &cfg); err != nil {
		respondInternal(c, h.logger, "create pc configuration", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"configuration": cfg})
}

// CreatePS5Configuration saves a PS5 bundle for the caller
func (h *Handler) CreatePS5Configuration(c *gin.Context) {
	scope := auth.ScopeFrom(c)

	var req CreatePS5ConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	cfg := database.PS5Configuration{
		UserID:      scope.SubjectID,
		Edition:     req.Edition,
		StorageGB:   req.StorageGB,
		Accessories: req.Accessories,
		PriceCents:  req.PriceCents,
		Status:      "draft",
	}
	if err := h.store.CreatePS5Configuration(c.Request.Context(), &cfg); err != nil {
		respondInternal(c, h.logger, "create ps5 configuration", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"configuration": cfg})
}
