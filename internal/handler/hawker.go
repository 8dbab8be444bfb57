package handler

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/hawkar/hawkar-web/internal/api"
	"github.com/hawkar/hawkar-web/internal/model"
)

// HawkerHandler serves the hawker dashboard area and the pending-approval
// page.  The guard has already enforced the verification gate by the time a
// dashboard handler runs.
type HawkerHandler struct {
	Guard  *PageGuard
	Stalls *api.StallAPI
}

func NewHawkerHandler(guard *PageGuard, stalls *api.StallAPI) *HawkerHandler {
	return &HawkerHandler{Guard: guard, Stalls: stalls}
}

// Dashboard serves the hawker's stall management page: their own stalls plus
// the hawker centers needed by the add-stall form.
func (h *HawkerHandler) Dashboard(c echo.Context) error {
	id, err := h.Guard.Require(c)
	if id == nil {
		return err
	}
	ctx := c.Request().Context()

	var (
		wg         sync.WaitGroup
		stalls     []model.Stall
		stallsErr  error
		centers    []model.HawkerCenter
		centersErr error
	)
	wg.Add(2)
	go func() { defer wg.Done(); stalls, stallsErr = h.Stalls.StallsByHawker(ctx, id.Session.UserID) }()
	go func() { defer wg.Done(); centers, centersErr = h.Stalls.HawkerCenters(ctx) }()
	wg.Wait()

	if stallsErr != nil || centersErr != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "stall data unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"page":          "hawker-dashboard",
		"profile":       id.Profile,
		"stalls":        stalls,
		"hawkerCenters": centers,
	})
}

// StallPage serves one of the hawker's own stalls with its menu.  Ownership
// of the stall is enforced by the data API, not here.
func (h *HawkerHandler) StallPage(c echo.Context) error {
	id, err := h.Guard.Require(c)
	if id == nil {
		return err
	}
	ctx := c.Request().Context()
	stallID := c.Param("id")

	stall, err := h.Stalls.StallByID(ctx, stallID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "stall not found"})
	}
	dishes, err := h.Stalls.DishesByStall(ctx, stallID)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "stall data unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"page":    "hawker-stall",
		"profile": id.Profile,
		"stall":   stall,
		"dishes":  dishes,
	})
}

// PendingApproval serves the one page an unverified hawker may see.  Verified
// hawkers are bounced to their dashboard by the policy before this runs.
func (h *HawkerHandler) PendingApproval(c echo.Context) error {
	id, err := h.Guard.Require(c)
	if id == nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"page":    "pending-approval",
		"profile": id.Profile,
	})
}
