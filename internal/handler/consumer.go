package handler

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/hawkar/hawkar-web/internal/api"
	"github.com/hawkar/hawkar-web/internal/model"
)

// ConsumerHandler serves the consumer-facing pages: the home directory and
// individual stall pages.  Rendering is out of scope; each handler returns
// the page payload the view layer would consume.
type ConsumerHandler struct {
	Guard  *PageGuard
	Stalls *api.StallAPI
}

func NewConsumerHandler(guard *PageGuard, stalls *api.StallAPI) *ConsumerHandler {
	return &ConsumerHandler{Guard: guard, Stalls: stalls}
}

// Home serves the consumer home page: the full stall directory plus the
// hawker centers for the map view.  The directory fetches are started before
// the guard resolves so the profile refresh overlaps them; if the guard
// redirects, the results are simply discarded.
func (h *ConsumerHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		wg         sync.WaitGroup
		stalls     []model.Stall
		stallsErr  error
		centers    []model.HawkerCenter
		centersErr error
	)
	wg.Add(2)
	go func() { defer wg.Done(); stalls, stallsErr = h.Stalls.Stalls(ctx) }()
	go func() { defer wg.Done(); centers, centersErr = h.Stalls.HawkerCenters(ctx) }()

	id, err := h.Guard.Require(c)
	if id == nil {
		return err
	}
	wg.Wait()

	if stallsErr != nil || centersErr != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "stall directory unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"page":          "home",
		"profile":       id.Profile,
		"stalls":        stalls,
		"hawkerCenters": centers,
	})
}

// StallDetails serves a single stall page with its menu and reviews.  The
// route is neutral: any authenticated role may view it.
func (h *ConsumerHandler) StallDetails(c echo.Context) error {
	ctx := c.Request().Context()
	stallID := c.Param("id")

	var (
		wg         sync.WaitGroup
		stall      model.Stall
		stallErr   error
		dishes     []model.Dish
		dishesErr  error
		reviews    []model.Review
		reviewsErr error
	)
	wg.Add(3)
	go func() { defer wg.Done(); stall, stallErr = h.Stalls.StallByID(ctx, stallID) }()
	go func() { defer wg.Done(); dishes, dishesErr = h.Stalls.DishesByStall(ctx, stallID) }()
	go func() { defer wg.Done(); reviews, reviewsErr = h.Stalls.ReviewsByStall(ctx, stallID) }()

	id, err := h.Guard.Require(c)
	if id == nil {
		return err
	}
	wg.Wait()

	if stallErr != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "stall not found"})
	}
	if dishesErr != nil || reviewsErr != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "stall data unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"page":    "stall",
		"profile": id.Profile,
		"stall":   stall,
		"dishes":  dishes,
		"reviews": reviews,
	})
}
