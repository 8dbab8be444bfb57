package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hawkar/hawkar-web/internal/api"
)

// DirectoryHandler exposes the public, unauthenticated directory data the
// map view polls: stalls and hawker centers.  These routes sit outside the
// guarded matcher set and in front of the response cache.
type DirectoryHandler struct {
	Stalls *api.StallAPI
}

func NewDirectoryHandler(stalls *api.StallAPI) *DirectoryHandler {
	return &DirectoryHandler{Stalls: stalls}
}

// ListStalls returns the full stall directory.
func (h *DirectoryHandler) ListStalls(c echo.Context) error {
	stalls, err := h.Stalls.Stalls(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "stall directory unavailable"})
	}
	return c.JSON(http.StatusOK, stalls)
}

// ListHawkerCenters returns every hawker center with map coordinates.
func (h *DirectoryHandler) ListHawkerCenters(c echo.Context) error {
	centers, err := h.Stalls.HawkerCenters(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "hawker centers unavailable"})
	}
	return c.JSON(http.StatusOK, centers)
}
