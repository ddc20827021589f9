package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"techstore/internal/auth"
	"techstore/internal/database"
	"techstore/internal/notification"
)

// RegisterRequest is the registration input
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Language string `json:"language" binding:"omitempty,oneof=sq en"`
}

// LoginRequest is the login input
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated user
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      database.User `json:"user"`
}

// Register creates a new customer account. On success exactly one welcome
// notification is scheduled; on any failure none is.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	_, err := h.store.UserByEmail(c.Request.Context(), req.Email)
	if err == nil {
		respondConflict(c, "email already registered")
		return
	}
	if !errors.Is(err, database.ErrNotFound) {
		respondInternal(c, h.logger, "register", err)
		return
	}

	passwordHash, err := h.auth.HashPassword(req.Password)
	if err != nil {
		respondInternal(c, h.logger, "register", err)
		return
	}

	language := req.Language
	if language == "" {
		language = "sq"
	}
	user := database.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         database.RoleCustomer,
		Language:     language,
		IsActive:     true,
	}
	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		respondInternal(c, h.logger, "register", err)
		return
	}

	h.notifier.Dispatch(notification.Event{
		Template:  notification.TemplateWelcome,
		Channel:   notification.ChannelEmail,
		Recipient: user.Email,
		Language:  user.Language,
		Params:    map[string]string{"name": user.Name},
	})

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login authenticates a user and issues a revocable session token
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	user, err := h.store.UserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		respondInternal(c, h.logger, "login", err)
		return
	}

	if !user.IsActive || !h.auth.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, expiresAt, err := h.auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		respondInternal(c, h.logger, "login", err)
		return
	}

	if err := h.sessions.Save(c.Request.Context(), token, user.ID, time.Until(expiresAt)); err != nil {
		respondInternal(c, h.logger, "login", err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *user,
	})
}

// Logout revokes the current session token
func (h *Handler) Logout(c *gin.Context) {
	token := auth.TokenFrom(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.sessions.Revoke(c.Request.Context(), token); err != nil {
		respondInternal(c, h.logger, "logout", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
