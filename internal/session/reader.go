package session

import "github.com/labstack/echo/v4"

// Reader is the typed accessor over the Store and the sole authority for
// whether a request is authenticated.  It performs no network I/O; the
// profile it hands back is the cookie snapshot, which page handlers refresh
// through the Refresher before enforcing anything on it.
type Reader struct {
	Store *Store
}

// NewReader returns a Reader over the given store.
func NewReader(store *Store) *Reader { return &Reader{Store: store} }

// Session returns the request's session, or nil exactly when the store reads
// an absent or undecodable session.
func (r *Reader) Session(c echo.Context) *Session {
	return r.Store.Read(c)
}
