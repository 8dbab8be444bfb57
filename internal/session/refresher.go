package session

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/hawkar/hawkar-web/internal/api"
	"github.com/hawkar/hawkar-web/internal/model"
)

// Refresher reconciles the cookie's profile snapshot with the authoritative
// record behind the data API.  Page handlers enforce access on the profile it
// returns, so a Hawker approved mid-session is picked up on their next page
// load even though the cookie still says pending.
type Refresher struct {
	Reader *Reader
	Users  *api.UserAPI
}

// NewRefresher returns a Refresher over the given reader and user API.
func NewRefresher(reader *Reader, users *api.UserAPI) *Refresher {
	return &Refresher{Reader: reader, Users: users}
}

// CurrentProfile returns the freshest profile available for the request's
// session and whether a session exists at all.  On a remote failure it falls
// back to the cookie snapshot rather than failing the request: a remote
// outage is not the user's fault, and the snapshot can only ever understate
// privileges it was minted with, never invent new ones.  With no session
// there is nothing to fall back to and the caller is unauthenticated.
func (f *Refresher) CurrentProfile(ctx context.Context, c echo.Context) (model.Profile, bool) {
	s := f.Reader.Session(c)
	if s == nil {
		return model.Profile{}, false
	}
	fresh, err := f.Users.ProfileByID(ctx, s.UserID)
	if err != nil {
		log.Printf("session: profile refresh for user %s failed, using cookie snapshot: %v", s.UserID, err)
		return s.Profile, true
	}
	return fresh, true
}
