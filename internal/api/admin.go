package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hawkar/hawkar-web/internal/model"
)

// AdminAPI wraps the endpoints behind the admin dashboard: the hawker
// approval queue and the reported-review moderation queue.
type AdminAPI struct {
	C *Client
}

func NewAdminAPI(c *Client) *AdminAPI { return &AdminAPI{C: c} }

// Hawkers lists every hawker account with its verification flag; the
// dashboard filters the pending ones client-side.
func (a *AdminAPI) Hawkers(ctx context.Context) ([]model.Hawker, error) {
	var out []model.Hawker
	err := a.C.getJSON(ctx, "/hawkers", &out)
	return out, err
}

// ReportedReviews lists reviews flagged by hawkers.
func (a *AdminAPI) ReportedReviews(ctx context.Context) ([]model.Review, error) {
	var out []model.Review
	err := a.C.getJSON(ctx, "/admin/reported_reviews", &out)
	return out, err
}

// VerifyHawker flips a hawker's verification flag to true.  This is the
// external action that makes a pending Hawker's next guarded request resolve
// to their dashboard instead of the pending page.
func (a *AdminAPI) VerifyHawker(ctx context.Context, hawkerID string) error {
	return a.C.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/admin/verify-hawker/%s", hawkerID), nil, nil)
}

// IgnoreReport dismisses a review report without deleting the review.
func (a *AdminAPI) IgnoreReport(ctx context.Context, reviewID string) error {
	return a.C.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/admin/reports/%s/ignore", reviewID), nil, nil)
}
