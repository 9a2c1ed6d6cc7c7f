package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/natureshield/natureshield-backend/internal/middleware"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, authHandler *AuthHandler, profileHandler *ProfileHandler, reportHandler *ReportHandler, identifyHandler *IdentifyHandler, wikiHandler *WikiHandler) {
	// Liveness probe used by the mobile client on startup
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "Started"})
	})

	// Auth routes
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// Authenticated routes
	e.POST("/profile", authHandler.Me, authMiddleware.Authenticate())
	e.POST("/upload", identifyHandler.Upload, authMiddleware.Authenticate())

	// Identification routes
	e.POST("/analyze", identifyHandler.Analyze)
	e.POST("/extract", wikiHandler.Extract)

	// Profile routes
	e.POST("/profile/:userId", profileHandler.Update)
	e.GET("/profile/:userId", profileHandler.Get)

	// Report routes
	e.POST("/report/:userId", reportHandler.Create)
	e.GET("/report/:userId", reportHandler.List)
}
