package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hawkar/hawkar-web/internal/api"
	"github.com/hawkar/hawkar-web/internal/model"
	"github.com/hawkar/hawkar-web/internal/session"
)

// newAuthHandler wires an AuthHandler against a fake auth backend.
func newAuthHandler(t *testing.T, remote http.HandlerFunc) *AuthHandler {
	t.Helper()
	srv := httptest.NewServer(remote)
	t.Cleanup(srv.Close)
	return NewAuthHandler(session.NewStore(), api.NewUserAPI(api.New(srv.URL)))
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func loginBackend(role model.Role, verifyStatus string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"userID": 42,
			"user": {"userID": 42, "name": "Tan", "emailAddress": "tan@example.com", "contactNumber": "91234567", "role": "` + string(role) + `"},
			"verifyStatus": ` + verifyStatus + `
		}`))
	}
}

func readSession(t *testing.T, rec *httptest.ResponseRecorder) *session.Session {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	c := echo.New().NewContext(req, httptest.NewRecorder())
	return session.NewStore().Read(c)
}

func TestLoginWritesSessionAndRedirectsByRole(t *testing.T) {
	tests := []struct {
		name         string
		role         model.Role
		verifyStatus string
		wantTarget   string
	}{
		{"consumer", model.RoleConsumer, "null", "/"},
		{"admin", model.RoleAdmin, "null", "/admin"},
		{"verified hawker", model.RoleHawker, "true", "/hawker"},
		{"pending hawker", model.RoleHawker, "false", "/pending-approval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthHandler(t, loginBackend(tt.role, tt.verifyStatus))
			e := echo.New()
			e.POST("/login", h.Login)

			rec := postJSON(e, "/login", `{"emailAddress":"tan@example.com","password":"secret"}`)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp loginResp
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Equal(t, tt.wantTarget, resp.RedirectURL)

			s := readSession(t, rec)
			require.NotNil(t, s, "login must mint a readable session")
			assert.Equal(t, "42", s.UserID)
			assert.Equal(t, tt.role, s.Profile.Role)
			assert.False(t, s.Profile.IsGoogleUser)
		})
	}
}

func TestLoginRejectsBadCredentialsWithoutSession(t *testing.T) {
	h := newAuthHandler(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Invalid login credentials"}`, http.StatusBadRequest)
	})
	e := echo.New()
	e.POST("/login", h.Login)

	rec := postJSON(e, "/login", `{"emailAddress":"tan@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies(), "no cookies on a failed login")
}

func TestLoginAnswersBadGatewayWhenBackendIsDown(t *testing.T) {
	h := newAuthHandler(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	e := echo.New()
	e.POST("/login", h.Login)

	rec := postJSON(e, "/login", `{"emailAddress":"tan@example.com","password":"secret"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestLoginValidatesBody(t *testing.T) {
	h := newAuthHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called for an empty form")
	})
	e := echo.New()
	e.POST("/login", h.Login)

	rec := postJSON(e, "/login", `{"emailAddress":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginGoogleMarksFederatedSessions(t *testing.T) {
	h := newAuthHandler(t, loginBackend(model.RoleConsumer, "null"))
	e := echo.New()
	e.POST("/login/google", h.LoginGoogle)

	rec := postJSON(e, "/login/google", `{"email":"tan@example.com","name":"Tan","picture":"p.jpg"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	s := readSession(t, rec)
	require.NotNil(t, s)
	assert.True(t, s.Profile.IsGoogleUser)
}

func TestLogoutClearsSessionAndLandsOnLogin(t *testing.T) {
	h := newAuthHandler(t, loginBackend(model.RoleConsumer, "null"))
	e := echo.New()
	e.POST("/login", h.Login)
	e.POST("/logout", h.Logout)

	login := postJSON(e, "/login", `{"emailAddress":"tan@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, login.Code)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	for _, ck := range login.Result().Cookies() {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	for _, ck := range rec.Result().Cookies() {
		assert.Empty(t, ck.Value)
		assert.Equal(t, -1, ck.MaxAge)
	}
}

// Sign-out with no session behaves identically: same cleared cookies, same
// landing page.
func TestLogoutIsIdempotent(t *testing.T) {
	h := newAuthHandler(t, func(w http.ResponseWriter, r *http.Request) {})
	e := echo.New()
	e.POST("/logout", h.Logout)

	first := postJSON(e, "/logout", "")
	second := postJSON(e, "/logout", "")
	for _, rec := range []*httptest.ResponseRecorder{first, second} {
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
		require.Len(t, rec.Result().Cookies(), 2)
	}
}

func TestSignUpConflictsOnRegisteredEmail(t *testing.T) {
	h := newAuthHandler(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Email is already registered!"}`, http.StatusBadRequest)
	})
	e := echo.New()
	e.POST("/sign-up", h.SignUp)

	rec := postJSON(e, "/sign-up", `{"name":"Tan","emailAddress":"tan@example.com","password":"secret","role":"Consumer"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
