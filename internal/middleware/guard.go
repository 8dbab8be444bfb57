package middleware // middleware provides shared request processing for handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hawkar/hawkar-web/internal/policy"
	"github.com/hawkar/hawkar-web/internal/session"
)

// guardedPatterns is the static set of path patterns the edge guard
// intercepts, mirroring the route table the access policy classifies.  A
// trailing "/*" matches the prefix and everything under it; bare entries
// match exactly.  Paths outside the set (health checks, public directory
// data, sign-out) pass through untouched.
var guardedPatterns = []string{
	"/",
	"/login",
	"/sign-up",
	"/pending-approval",
	"/hawker", "/hawker/*",
	"/admin", "/admin/*",
	"/stall/*",
}

// guarded reports whether the edge guard applies to path.
func guarded(path string) bool {
	for _, pat := range guardedPatterns {
		if prefix, ok := strings.CutSuffix(pat, "/*"); ok {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
			continue
		}
		if path == pat {
			return true
		}
	}
	return false
}

// Guard returns the edge enforcement middleware.  It runs before any page
// logic, reading the session cookies straight off the request and applying
// the shared access policy.  Anything other than Allow becomes an HTTP
// redirect and the chain stops there; the middleware never mutates the
// session and never lets a cookie parse failure escalate past
// "unauthenticated".
func Guard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if !guarded(path) {
				return next(c)
			}
			switch d := policy.Decide(path, actorFromCookies(c)); d.Outcome {
			case policy.OutcomeRedirect:
				return c.Redirect(http.StatusFound, d.Target)
			case policy.OutcomeUnauthenticated:
				return c.Redirect(http.StatusFound, policy.PathLogin)
			default:
				return next(c)
			}
		}
	}
}

// actorFromCookies builds the policy actor from the raw request cookies.  Any
// missing or malformed cookie yields the unauthenticated actor: the guard
// fails closed, never open.
func actorFromCookies(c echo.Context) policy.Actor {
	id, err := c.Cookie(session.CookieID)
	if err != nil || id.Value == "" {
		return policy.Actor{}
	}
	raw, err := c.Cookie(session.CookieProfile)
	if err != nil || raw.Value == "" {
		return policy.Actor{}
	}
	profile, err := session.DecodeProfile(raw.Value)
	if err != nil {
		return policy.Actor{}
	}
	return policy.Actor{
		Authenticated: true,
		Role:          profile.Role,
		Verified:      profile.Verified(),
	}
}
