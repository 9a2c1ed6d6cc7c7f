package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// errorResponse is the JSON error body shared by all middleware failures
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func missingTokenError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{
		Status:  "Error",
		Message: "Token is missing",
	})
}

func invalidTokenError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{
		Status:  "Error",
		Message: "Invalid or expired token",
	})
}
