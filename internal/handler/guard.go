package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hawkar/hawkar-web/internal/model"
	"github.com/hawkar/hawkar-web/internal/policy"
	"github.com/hawkar/hawkar-web/internal/session"
)

// PageGuard is the second enforcement point, run while a page is being
// prepared.  The edge middleware already vetted the request against the
// cookie snapshot; this guard re-decides against the refreshed profile, so a
// verification or role change made since the cookie was minted takes effect
// on the very next page load.  Both points call the same policy.Decide and
// policy.HomeForRole; the guard adds no rules of its own.
type PageGuard struct {
	Reader    *session.Reader
	Refresher *session.Refresher
}

// NewPageGuard returns a PageGuard over the given reader and refresher.
func NewPageGuard(reader *session.Reader, refresher *session.Refresher) *PageGuard {
	return &PageGuard{Reader: reader, Refresher: refresher}
}

// PageIdentity is the resolved actor a page renders for: the cookie session
// and the freshest profile available.
type PageIdentity struct {
	Session *session.Session
	Profile model.Profile
}

// Require resolves the access decision for the current request.  A non-nil
// identity means the page may render.  A nil identity means the redirect has
// already been written and the handler must return the accompanying error
// value immediately.
func (g *PageGuard) Require(c echo.Context) (*PageIdentity, error) {
	s := g.Reader.Session(c)

	var actor policy.Actor
	var profile model.Profile
	if s != nil {
		p, ok := g.Refresher.CurrentProfile(c.Request().Context(), c)
		if ok {
			profile = p
			actor = policy.Actor{Authenticated: true, Role: p.Role, Verified: p.Verified()}
		}
	}

	switch d := policy.Decide(c.Request().URL.Path, actor); d.Outcome {
	case policy.OutcomeAllow:
		return &PageIdentity{Session: s, Profile: profile}, nil
	case policy.OutcomeRedirect:
		return nil, c.Redirect(http.StatusFound, d.Target)
	default:
		return nil, c.Redirect(http.StatusFound, policy.PathLogin)
	}
}
