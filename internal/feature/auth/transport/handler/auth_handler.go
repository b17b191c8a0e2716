// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/auth/transport/http/dto"
	"shop_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations used by the handler.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and issues a token pair.
	Register(ctx context.Context, email, password string) (*usecase.AuthResult, error)
	// Login authenticates a user and issues a fresh token pair.
	Login(ctx context.Context, email, password string) (*usecase.AuthResult, error)
	// RefreshTokens exchanges a valid refresh token for a new pair.
	RefreshTokens(ctx context.Context, refreshToken string) (*usecase.AuthResult, error)
}

// AuthHandler processes HTTP requests for the auth endpoints.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler with the injected usecase.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/auth/register.
// - binds the request JSON into RegisterReq
// - 400 on validation failure or duplicate email
// - 201 with the reduced user projection and token pair on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	res, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: usecase.ErrUserAlreadyExists.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "registration failed"})
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewAuthRes(res))
}

// Login handles POST /api/auth/login.
// - binds the request JSON into LoginReq
// - 404 when no user matches the email
// - 401 when the password does not verify
// - 200 with the reduced user projection and token pair on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: usecase.ErrUserNotFound.Error()})
		case errors.Is(err, usecase.ErrPasswordMismatch):
			c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: usecase.ErrPasswordMismatch.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "login failed"})
		}
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.NewAuthRes(res))
}

// GetNewToken handles POST /api/auth/login/access-token.
// - binds the request JSON into RefreshReq
// - 401 when the refresh token is invalid or expired, or when the user
//   it references no longer exists
// - 200 with a brand-new token pair on success; the presented refresh
//   token is not invalidated and stays usable until its own expiry
func (h *AuthHandler) GetNewToken(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("refresh validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	res, err := h.auth.RefreshTokens(c.Request.Context(), req.RefreshToken)
	if err != nil {
		slog.Warn("token refresh failed", "error", err, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrInvalidRefreshToken) || errors.Is(err, usecase.ErrUserNotFound) {
			// A vanished user is indistinguishable from a bad token on
			// purpose; a token holder learns nothing about account state.
			c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: usecase.ErrInvalidRefreshToken.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "token refresh failed"})
		return
	}

	slog.Info("tokens refreshed", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.NewAuthRes(res))
}
