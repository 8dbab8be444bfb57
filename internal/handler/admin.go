package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/hawkar/hawkar-web/internal/api"
	"github.com/hawkar/hawkar-web/internal/model"
	"github.com/hawkar/hawkar-web/internal/queue"
	queue_publisher "github.com/hawkar/hawkar-web/internal/service"
)

// AdminHandler serves the admin dashboard pages and the moderation actions
// behind them.  Every route here is in the admin area, so both guards have
// vetted the role before any handler runs; the Require call inside each
// handler is the defense-in-depth layer, not the only check.
type AdminHandler struct {
	Guard *PageGuard
	Admin *api.AdminAPI
}

func NewAdminHandler(guard *PageGuard, admin *api.AdminAPI) *AdminHandler {
	return &AdminHandler{Guard: guard, Admin: admin}
}

// fetchQueues loads the two moderation queues concurrently.
func (h *AdminHandler) fetchQueues(ctx context.Context) ([]model.Hawker, []model.Review, error) {
	var (
		wg         sync.WaitGroup
		hawkers    []model.Hawker
		hawkersErr error
		reviews    []model.Review
		reviewsErr error
	)
	wg.Add(2)
	go func() { defer wg.Done(); hawkers, hawkersErr = h.Admin.Hawkers(ctx) }()
	go func() { defer wg.Done(); reviews, reviewsErr = h.Admin.ReportedReviews(ctx) }()
	wg.Wait()

	if hawkersErr != nil {
		return nil, nil, hawkersErr
	}
	if reviewsErr != nil {
		return nil, nil, reviewsErr
	}
	return hawkers, reviews, nil
}

// Dashboard serves the admin landing page with the sizes of both moderation
// queues.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	id, err := h.Guard.Require(c)
	if id == nil {
		return err
	}
	hawkers, reviews, err := h.fetchQueues(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "admin data unavailable"})
	}

	pending := 0
	for _, hk := range hawkers {
		if !hk.VerifyStatus {
			pending++
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"page":             "admin-dashboard",
		"profile":          id.Profile,
		"pendingApprovals": pending,
		"reportedReviews":  len(reviews),
	})
}

// Approvals serves the hawker approval queue.
func (h *AdminHandler) Approvals(c echo.Context) error {
	id, err := h.Guard.Require(c)
	if id == nil {
		return err
	}
	hawkers, err := h.Admin.Hawkers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "admin data unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"page":    "admin-approvals",
		"profile": id.Profile,
		"hawkers": hawkers,
	})
}

// ReportedReviews serves the review moderation queue.
func (h *AdminHandler) ReportedReviews(c echo.Context) error {
	id, err := h.Guard.Require(c)
	if id == nil {
		return err
	}
	reviews, err := h.Admin.ReportedReviews(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "admin data unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"page":    "admin-reported-reviews",
		"profile": id.Profile,
		"reviews": reviews,
	})
}

// VerifyHawker approves a pending hawker.  The flag flips in the data API;
// the hawker's next guarded request picks it up through the profile refresh
// and routes them to their dashboard instead of the pending page.
func (h *AdminHandler) VerifyHawker(c echo.Context) error {
	id, err := h.Guard.Require(c)
	if id == nil {
		return err
	}
	hawkerID := c.Param("id")
	if err := h.Admin.VerifyHawker(c.Request().Context(), hawkerID); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "verify failed"})
	}

	go func() {
		_ = queue_publisher.PublishSessionEvent(context.Background(), queue.SessionEvent{
			Type:   queue.EventVerified,
			UserID: hawkerID,
			Role:   string(model.RoleHawker),
		})
	}()
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// IgnoreReport dismisses a review report without deleting the review.
func (h *AdminHandler) IgnoreReport(c echo.Context) error {
	id, err := h.Guard.Require(c)
	if id == nil {
		return err
	}
	if err := h.Admin.IgnoreReport(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "ignore failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
