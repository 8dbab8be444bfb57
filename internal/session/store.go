// Package session owns the browser-facing session: two cookies holding an
// opaque user id and a snapshot of the user's profile.  Nothing else in the
// codebase reads or writes these cookies; every other component goes through
// the Store, the Reader or the Refresher.
package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hawkar/hawkar-web/internal/model"
)

// Cookie names and the fixed session lifetime.  Both cookies are always set
// and cleared together; a session is absent unless both are present.
const (
	CookieID      = "session-id"
	CookieProfile = "session-profile"
	TTL           = time.Hour
)

// Session is the authenticated actor derived from the cookies: the opaque
// account id plus the profile snapshot cached at login or last refresh.  The
// snapshot may be stale; the Refresher reconciles it with the data API.
type Session struct {
	UserID  string
	Profile model.Profile
}

// Store performs all cookie I/O for the session.  It holds no state of its
// own: every operation reads or writes the cookies of the request at hand, so
// concurrent tabs converge on whatever the browser last stored.
type Store struct{}

// NewStore returns a cookie session store.
func NewStore() *Store { return &Store{} }

// Write sets both session cookies: the opaque id and the serialized profile
// snapshot.  Both are HttpOnly, origin-wide, expire after one hour and use
// SameSite=Lax so top-level navigation keeps working while cross-site POSTs
// do not carry the session.
func (s *Store) Write(c echo.Context, userID string, profile model.Profile) error {
	encoded, err := EncodeProfile(profile)
	if err != nil {
		return err
	}
	c.SetCookie(sessionCookie(CookieID, userID, int(TTL.Seconds())))
	c.SetCookie(sessionCookie(CookieProfile, encoded, int(TTL.Seconds())))
	return nil
}

// Read returns the session derived from the request cookies, or nil when
// either cookie is missing or the profile snapshot fails to decode.  A
// corrupted cookie is not an error: it degrades to "no session" so that
// routing never crashes on bad client state.
func (s *Store) Read(c echo.Context) *Session {
	id, err := c.Cookie(CookieID)
	if err != nil || id.Value == "" {
		return nil
	}
	raw, err := c.Cookie(CookieProfile)
	if err != nil || raw.Value == "" {
		return nil
	}
	profile, err := DecodeProfile(raw.Value)
	if err != nil {
		return nil
	}
	return &Session{UserID: id.Value, Profile: profile}
}

// Clear deletes both cookies.  It is idempotent: clearing an absent session
// writes the same expired cookies again and is a harmless no-op for the
// browser.
func (s *Store) Clear(c echo.Context) {
	c.SetCookie(sessionCookie(CookieID, "", -1))
	c.SetCookie(sessionCookie(CookieProfile, "", -1))
}

// sessionCookie builds a cookie with the flags shared by both entries.
func sessionCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// EncodeProfile serializes a profile snapshot for cookie transport.  The JSON
// is base64url-wrapped because raw JSON is not a legal cookie value.
func EncodeProfile(p model.Profile) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// DecodeProfile reverses EncodeProfile.  The edge middleware uses it to parse
// the profile cookie straight off the request, so both enforcement points
// share one notion of what a well-formed snapshot is.
func DecodeProfile(raw string) (model.Profile, error) {
	var p model.Profile
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return model.Profile{}, err
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}
