package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/hawkar/hawkar-web/internal/model"
)

// UserAPI wraps the account endpoints: login, federated login, signup and
// profile lookup.
type UserAPI struct {
	C *Client
}

func NewUserAPI(c *Client) *UserAPI { return &UserAPI{C: c} }

// LoginResult is the auth endpoints' success payload.  VerifyStatus sits
// beside the user object, not inside it, and is only populated for Hawkers.
type LoginResult struct {
	UserID       int64      `json:"userID"`
	User         model.User `json:"user"`
	VerifyStatus *bool      `json:"verifyStatus"`
	IsNewUser    bool       `json:"isNewUser,omitempty"`
}

// Profile assembles the cookie snapshot from a login result.
func (r LoginResult) Profile(google bool) model.Profile {
	return model.Profile{
		Name:          r.User.Name,
		EmailAddress:  r.User.EmailAddress,
		ProfilePhoto:  r.User.ProfilePhoto,
		ContactNumber: r.User.ContactNumber,
		Role:          r.User.Role,
		VerifyStatus:  r.VerifyStatus,
		IsGoogleUser:  google,
	}
}

// GoogleLogin carries the identity fields the federated flow hands over.
type GoogleLogin struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// SignUpData is the registration form forwarded verbatim to the API.  Only
// the fields relevant to the chosen role are populated.
type SignUpData struct {
	Name             string     `json:"name"`
	EmailAddress     string     `json:"emailAddress"`
	Password         string     `json:"password"`
	Role             model.Role `json:"role"`
	Address          string     `json:"address,omitempty"`
	ContactNumber    string     `json:"contactNumber,omitempty"`
	ProfilePhoto     string     `json:"profilePhoto,omitempty"`
	License          string     `json:"license,omitempty"`
	SFALicenseNumber string     `json:"sfaLicenseNumber,omitempty"`
}

// Login authenticates with email and password.
func (a *UserAPI) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var res LoginResult
	err := a.C.sendJSON(ctx, http.MethodPost, "/auth/login", map[string]string{
		"emailAddress": email,
		"password":     password,
	}, &res)
	return res, err
}

// LoginGoogle authenticates a federated identity, creating the account on
// first sight.
func (a *UserAPI) LoginGoogle(ctx context.Context, g GoogleLogin) (LoginResult, error) {
	var res LoginResult
	err := a.C.sendJSON(ctx, http.MethodPost, "/auth/login-google", g, &res)
	return res, err
}

// SignUp registers a new account.  The API expects the role doubled up as a
// lower-cased userType discriminator beside the form data.
func (a *UserAPI) SignUp(ctx context.Context, data SignUpData) error {
	return a.C.sendJSON(ctx, http.MethodPost, "/auth/signup", map[string]any{
		"userType": strings.ToLower(string(data.Role)),
		"data":     data,
	}, nil)
}

// ProfileByID fetches the authoritative profile for a user id.  This is the
// call the refresher uses to catch role and verification changes made after
// the session cookie was minted.
func (a *UserAPI) ProfileByID(ctx context.Context, userID string) (model.Profile, error) {
	var p model.Profile
	err := a.C.getJSON(ctx, fmt.Sprintf("/user/%s", userID), &p)
	return p, err
}
