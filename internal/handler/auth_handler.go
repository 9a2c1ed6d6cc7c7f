package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/natureshield/natureshield-backend/internal/domain"
	"github.com/natureshield/natureshield-backend/internal/middleware"
	"github.com/natureshield/natureshield-backend/internal/service"
)

// AuthHandler handles signup, login, and the authenticated "me" lookup
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest is the POST /signup body
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the POST /login body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return statusError(c, http.StatusBadRequest, "Invalid request body")
	}

	err := h.authService.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return statusError(c, http.StatusBadRequest, "Email and password are required")
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return statusError(c, http.StatusConflict, "User already exists")
	case err != nil:
		log.Error().Err(err).Msg("Signup failed")
		return statusError(c, http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusCreated, statusBody{Status: "Ok", Data: "User Created"})
}

// Login handles POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return statusError(c, http.StatusBadRequest, "Invalid request body")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return statusError(c, http.StatusNotFound, "User does not exist")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return statusError(c, http.StatusUnauthorized, "Invalid credentials")
	case err != nil:
		log.Error().Err(err).Msg("Login failed")
		return statusError(c, http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, statusBody{Status: "Ok", Token: token})
}

// Me handles POST /profile (token-authenticated account lookup)
func (h *AuthHandler) Me(c echo.Context) error {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		return statusError(c, http.StatusUnauthorized, "Token is missing")
	}

	user, err := h.authService.GetUserByEmail(c.Request().Context(), identity.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return statusError(c, http.StatusNotFound, "User not found")
		}
		log.Error().Err(err).Str("email", identity.Email).Msg("User lookup failed")
		return statusError(c, http.StatusInternalServerError, "Internal server error")
	}

	return statusOK(c, user)
}
