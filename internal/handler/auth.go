package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hawkar/hawkar-web/internal/api"
	"github.com/hawkar/hawkar-web/internal/model"
	"github.com/hawkar/hawkar-web/internal/policy"
	"github.com/hawkar/hawkar-web/internal/queue"
	queue_publisher "github.com/hawkar/hawkar-web/internal/service"
	"github.com/hawkar/hawkar-web/internal/session"
)

// AuthHandler bundles dependencies for the auth endpoints.  It proxies the
// credential check to the data API, since verifying passwords is the API's job,
// and on success its sole responsibilities are writing the session cookies
// and computing the initial redirect target.
type AuthHandler struct {
	Store *session.Store
	Users *api.UserAPI
}

func NewAuthHandler(store *session.Store, users *api.UserAPI) *AuthHandler {
	return &AuthHandler{Store: store, Users: users}
}

// ----- DTOs -----

type loginReq struct {
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

type googleLoginReq struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type loginResp struct {
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirectUrl"`
}

// Login verifies credentials against the data API, mints the session cookies
// and answers with the landing page for the user's role.  An unverified
// Hawker lands on the pending-approval page instead of their dashboard.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.EmailAddress = strings.ToLower(strings.TrimSpace(req.EmailAddress))
	if req.EmailAddress == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	res, err := h.Users.Login(c.Request().Context(), req.EmailAddress, req.Password)
	if err != nil {
		return authFailure(c, err)
	}
	return h.establish(c, res, res.Profile(false))
}

// LoginGoogle signs in a federated identity; the data API creates the account
// on first sight.
func (h *AuthHandler) LoginGoogle(c echo.Context) error {
	var req googleLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Email) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}

	res, err := h.Users.LoginGoogle(c.Request().Context(), api.GoogleLogin{
		Email:   req.Email,
		Name:    req.Name,
		Picture: req.Picture,
	})
	if err != nil {
		return authFailure(c, err)
	}
	return h.establish(c, res, res.Profile(true))
}

// establish writes the session cookies and answers with the redirect target.
func (h *AuthHandler) establish(c echo.Context, res api.LoginResult, profile model.Profile) error {
	userID := strconv.FormatInt(res.UserID, 10)
	if err := h.Store.Write(c, userID, profile); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session write failed"})
	}

	// Broker failures are logged inside the publisher and must not block the
	// login response.
	go func() {
		_ = queue_publisher.PublishSessionEvent(context.Background(), queue.SessionEvent{
			Type:   queue.EventSignedIn,
			UserID: userID,
			Role:   string(profile.Role),
			Email:  profile.EmailAddress,
		})
	}()

	return c.JSON(http.StatusOK, loginResp{
		Success:     true,
		RedirectURL: policy.LoginTarget(profile.Role, profile.Verified()),
	})
}

// SignUp registers a new account.  No session is created: the user signs in
// afterwards, and a new Hawker additionally waits for admin approval.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req api.SignUpData
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.EmailAddress == "" || req.Password == "" || !req.Role.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email, password and role required"})
	}

	if err := h.Users.SignUp(c.Request().Context(), req); err != nil {
		var se *api.StatusError
		if errors.As(err, &se) && se.Code == http.StatusBadRequest {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "signup failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}

// Logout clears both session cookies and always lands on the login page,
// whatever role the session had.  Clearing an already-absent session is a
// no-op, so repeating the request is harmless.
func (h *AuthHandler) Logout(c echo.Context) error {
	s := h.Store.Read(c)
	h.Store.Clear(c)

	if s != nil {
		userID, role := s.UserID, string(s.Profile.Role)
		go func() {
			_ = queue_publisher.PublishSessionEvent(context.Background(), queue.SessionEvent{
				Type:   queue.EventSignedOut,
				UserID: userID,
				Role:   role,
			})
		}()
	}
	return c.Redirect(http.StatusFound, policy.PathLogin)
}

// LoginPage and SignUpPage are the public page payloads.  The edge guard has
// already bounced authenticated visitors to their landing page, so there is
// no identity to resolve here.

func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"page": "login"})
}

func (h *AuthHandler) SignUpPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"page": "sign-up"})
}

// authFailure maps a remote auth error onto the client response: any 4xx from
// the API means the credentials were rejected, anything else means the auth
// service itself was unreachable.
func authFailure(c echo.Context, err error) error {
	var se *api.StatusError
	if errors.As(err, &se) && se.Code >= 400 && se.Code < 500 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	return c.JSON(http.StatusBadGateway, echo.Map{"error": "authentication service unavailable"})
}
