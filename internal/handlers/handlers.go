// Package handlers wires HTTP requests through the authorization gate, the
// stats aggregator and the display shaper, and fires best-effort
// notifications after successful writes.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"

	"techstore/internal/auth"
	"techstore/internal/config"
	"techstore/internal/database"
	"techstore/internal/notification"
	"techstore/internal/realtime"
	"techstore/internal/stats"
)

// Dispatcher is the fire-and-forget notification boundary. Its outcome is
// never awaited by a handler.
type Dispatcher interface {
	Dispatch(event notification.Event)
}

// Handler handles all HTTP endpoints
type Handler struct {
	config     config.Config
	logger     *slog.Logger
	store      database.Store
	auth       *auth.Service
	sessions   auth.SessionStore
	aggregator *stats.Aggregator
	notifier   Dispatcher
	hub        *realtime.Hub
}

// NewHandler creates a new HTTP handler
func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	store database.Store,
	authService *auth.Service,
	sessions auth.SessionStore,
	aggregator *stats.Aggregator,
	notifier Dispatcher,
	hub *realtime.Hub,
) *Handler {
	return &Handler{
		config:     cfg,
		logger:     logger,
		store:      store,
		auth:       authService,
		sessions:   sessions,
		aggregator: aggregator,
		notifier:   notifier,
		hub:        hub,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(RequestMetrics())
	router.Use(auth.ResolveScope(h.auth, h.sessions))

	router.GET("/health", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Register)
			authGroup.POST("/login", h.Login)
			authGroup.POST("/logout",
				auth.RequireRole(database.RoleCustomer, database.RoleAdmin), h.Logout)
		}

		api.GET("/stats/public", h.PublicStats)
		api.POST("/quotes", h.CreateQuoteRequest)

		user := api.Group("", auth.RequireRole(database.RoleCustomer, database.RoleAdmin))
		{
			user.GET("/dashboard", h.Dashboard)
			user.GET("/orders", h.ListOrders)
			user.POST("/orders", h.CreateOrder)
			user.GET("/repairs", h.ListRepairs)
			user.POST("/repairs", h.CreateRepair)
			user.POST("/configurations/pc", h.CreatePCConfiguration)
			user.POST("/configurations/ps5", h.CreatePS5Configuration)
		}

		admin := api.Group("/admin", auth.RequireRole(database.RoleAdmin))
		{
			admin.GET("/stats", h.AdminStats)
			admin.PUT("/repairs/:id/status", h.UpdateRepairStatus)
			admin.GET("/realtime/ws", h.hub.HandleWebSocket)
		}
	}
}

// HealthCheck reports service liveness
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "techstore",
		"timestamp": time.Now().UTC(),
	})
}
