package api

import (
	"context"
	"fmt"

	"github.com/hawkar/hawkar-web/internal/model"
)

// StallAPI wraps the stall directory endpoints consumed by the consumer and
// hawker pages.
type StallAPI struct {
	C *Client
}

func NewStallAPI(c *Client) *StallAPI { return &StallAPI{C: c} }

// Stalls lists every stall in the directory.
func (a *StallAPI) Stalls(ctx context.Context) ([]model.Stall, error) {
	var out []model.Stall
	err := a.C.getJSON(ctx, "/stalls", &out)
	return out, err
}

// StallByID fetches a single stall.
func (a *StallAPI) StallByID(ctx context.Context, stallID string) (model.Stall, error) {
	var out model.Stall
	err := a.C.getJSON(ctx, fmt.Sprintf("/stall/%s", stallID), &out)
	return out, err
}

// StallsByHawker lists the stalls owned by a hawker's user id.
func (a *StallAPI) StallsByHawker(ctx context.Context, userID string) ([]model.Stall, error) {
	var out []model.Stall
	err := a.C.getJSON(ctx, fmt.Sprintf("/stall/hawkerid/%s", userID), &out)
	return out, err
}

// HawkerCenters lists every hawker center, used by the map view and the
// stall forms.
func (a *StallAPI) HawkerCenters(ctx context.Context) ([]model.HawkerCenter, error) {
	var out []model.HawkerCenter
	err := a.C.getJSON(ctx, "/hawker-centers", &out)
	return out, err
}

// DishesByStall lists a stall's menu.
func (a *StallAPI) DishesByStall(ctx context.Context, stallID string) ([]model.Dish, error) {
	var out []model.Dish
	err := a.C.getJSON(ctx, fmt.Sprintf("/stall/%s/dishes", stallID), &out)
	return out, err
}

// ReviewsByStall lists a stall's reviews.
func (a *StallAPI) ReviewsByStall(ctx context.Context, stallID string) ([]model.Review, error) {
	var out []model.Review
	err := a.C.getJSON(ctx, fmt.Sprintf("/stall/%s/reviews", stallID), &out)
	return out, err
}
