package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/natureshield/natureshield-backend/internal/service"
)

// WikiHandler serves plant description snippets from Wikipedia.
type WikiHandler struct {
	wikiService *service.WikiService
}

// NewWikiHandler creates a new WikiHandler
func NewWikiHandler(wikiService *service.WikiService) *WikiHandler {
	return &WikiHandler{wikiService: wikiService}
}

// Extract handles POST /extract
func (h *WikiHandler) Extract(c echo.Context) error {
	var req struct {
		ScientificName string `json:"scientificName"`
	}
	if err := c.Bind(&req); err != nil || req.ScientificName == "" {
		return validationError(c, "Missing scientificName in request body")
	}

	snippet, err := h.wikiService.Snippet(c.Request().Context(), req.ScientificName)
	if err != nil {
		log.Error().Err(err).Str("scientificName", req.ScientificName).Msg("Failed to fetch Wikipedia extract")
		return internalError(c, "Failed to fetch Wikipedia extract")
	}

	return c.JSON(http.StatusOK, map[string]string{"snippet": snippet})
}
