package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// statusBody is the envelope used by the auth endpoints
type statusBody struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Token   string      `json:"token,omitempty"`
}

// errorBody is the error envelope used by the resource endpoints. Every
// failure carries an error field with a generic message; upstream detail
// is logged server-side only.
type errorBody struct {
	Error string `json:"error"`
}

func statusOK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, statusBody{Status: "Ok", Data: data})
}

func statusError(c echo.Context, status int, message string) error {
	return c.JSON(status, statusBody{Status: "Error", Message: message})
}

func validationError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorBody{Error: message})
}

func notFoundError(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, errorBody{Error: message})
}

func internalError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, errorBody{Error: message})
}
