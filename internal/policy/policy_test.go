package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hawkar/hawkar-web/internal/model"
)

// samplePaths covers every route class plus representative sub-paths and a
// path outside the guarded matcher set.
var samplePaths = []string{
	"/", "/login", "/sign-up", "/logout",
	"/hawker", "/hawker/stall/7",
	"/admin", "/admin/hawker-approvals", "/admin/reported-reviews",
	"/stall/42", "/pending-approval", "/healthz",
}

// sampleActors enumerates authenticated/unauthenticated actors across all
// roles, both verification flags, and an unknown role value.
var sampleActors = []Actor{
	{},
	{Authenticated: true, Role: model.RoleConsumer},
	{Authenticated: true, Role: model.RoleHawker, Verified: false},
	{Authenticated: true, Role: model.RoleHawker, Verified: true},
	{Authenticated: true, Role: model.RoleAdmin},
	{Authenticated: true, Role: model.Role("Superuser")},
	{Authenticated: true, Role: model.Role("")},
}

func TestDecideIsTotal(t *testing.T) {
	for _, p := range samplePaths {
		for _, a := range sampleActors {
			d := Decide(p, a)
			switch d.Outcome {
			case OutcomeAllow, OutcomeUnauthenticated:
				assert.Empty(t, d.Target, "path=%s actor=%+v", p, a)
			case OutcomeRedirect:
				assert.NotEmpty(t, d.Target, "path=%s actor=%+v", p, a)
			default:
				t.Fatalf("unexpected outcome %v for path=%s actor=%+v", d.Outcome, p, a)
			}
		}
	}
}

// Every redirect must land on a page the same actor is allowed to see, in one
// hop.  A violation here is a browser redirect loop in production.
func TestDecideRedirectsResolveInOneHop(t *testing.T) {
	for _, p := range samplePaths {
		for _, a := range sampleActors {
			d := Decide(p, a)
			if d.Outcome != OutcomeRedirect {
				continue
			}
			next := Decide(d.Target, a)
			assert.Equal(t, OutcomeAllow, next.Outcome,
				"path=%s actor=%+v redirected to %s which resolved to %v", p, a, d.Target, next.Outcome)
		}
	}
}

func TestDecideTable(t *testing.T) {
	consumer := Actor{Authenticated: true, Role: model.RoleConsumer}
	pendingHawker := Actor{Authenticated: true, Role: model.RoleHawker}
	hawker := Actor{Authenticated: true, Role: model.RoleHawker, Verified: true}
	admin := Actor{Authenticated: true, Role: model.RoleAdmin}

	tests := []struct {
		name  string
		path  string
		actor Actor
		want  Decision
	}{
		{"anonymous on login", "/login", Actor{}, Allow},
		{"anonymous on sign-up", "/sign-up", Actor{}, Allow},
		{"anonymous on stall page", "/stall/42", Actor{}, Unauthenticated},
		{"anonymous on root", "/", Actor{}, Unauthenticated},

		{"consumer on root", "/", consumer, Allow},
		{"consumer on login", "/login", consumer, Redirect("/")},
		{"consumer on hawker area", "/hawker", consumer, Redirect("/")},
		{"consumer on admin area", "/admin/hawker-approvals", consumer, Redirect("/")},
		{"consumer on stall page", "/stall/42", consumer, Allow},
		{"consumer on pending page", "/pending-approval", consumer, Allow},

		{"pending hawker on dashboard", "/hawker", pendingHawker, Redirect("/pending-approval")},
		{"pending hawker on stall sub-page", "/hawker/stall/7", pendingHawker, Redirect("/pending-approval")},
		{"pending hawker on root", "/", pendingHawker, Redirect("/pending-approval")},
		{"pending hawker on admin area", "/admin", pendingHawker, Redirect("/pending-approval")},
		{"pending hawker on pending page", "/pending-approval", pendingHawker, Allow},
		{"pending hawker signing out", "/logout", pendingHawker, Allow},
		{"pending hawker on login", "/login", pendingHawker, Redirect("/pending-approval")},

		{"verified hawker on dashboard", "/hawker", hawker, Allow},
		{"verified hawker on pending page", "/pending-approval", hawker, Redirect("/hawker")},
		{"verified hawker on root", "/", hawker, Redirect("/hawker")},
		{"verified hawker on login", "/login", hawker, Redirect("/hawker")},
		{"verified hawker on admin area", "/admin", hawker, Redirect("/hawker")},

		{"admin on dashboard", "/admin", admin, Allow},
		{"admin on approvals", "/admin/hawker-approvals", admin, Allow},
		{"admin on login", "/login", admin, Redirect("/admin")},
		{"admin on root", "/", admin, Redirect("/admin")},
		{"admin on hawker area", "/hawker", admin, Redirect("/admin")},

		{"unknown role on root", "/", Actor{Authenticated: true, Role: "Superuser"}, Unauthenticated},
		{"unknown role on login", "/login", Actor{Authenticated: true, Role: "Superuser"}, Allow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.path, tt.actor))
		})
	}
}

// A consumer must never be allowed into a role-gated area, whatever the path.
func TestRoleIsolation(t *testing.T) {
	consumer := Actor{Authenticated: true, Role: model.RoleConsumer}
	for _, p := range []string{"/hawker", "/hawker/stall/1", "/admin", "/admin/reported-reviews"} {
		d := Decide(p, consumer)
		require.Equal(t, OutcomeRedirect, d.Outcome, "path=%s", p)
		require.Equal(t, "/", d.Target, "path=%s", p)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want RouteClass
	}{
		{"/", RouteConsumer},
		{"/login", RoutePublic},
		{"/sign-up", RoutePublic},
		{"/hawker", RouteHawker},
		{"/hawker/stall/3", RouteHawker},
		{"/hawkerville", RouteNeutral}, // prefix match requires a path boundary
		{"/admin", RouteAdmin},
		{"/admin/hawker-approvals", RouteAdmin},
		{"/administrator", RouteNeutral},
		{"/stall/42", RouteNeutral},
		{"/pending-approval", RouteNeutral},
		{"/logout", RouteNeutral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.path), "path=%s", tt.path)
	}
}

func TestHomeForRole(t *testing.T) {
	assert.Equal(t, "/", HomeForRole(model.RoleConsumer))
	assert.Equal(t, "/hawker", HomeForRole(model.RoleHawker))
	assert.Equal(t, "/admin", HomeForRole(model.RoleAdmin))
	assert.Equal(t, "/login", HomeForRole(model.Role("nope")))
}

func TestLoginTarget(t *testing.T) {
	assert.Equal(t, "/pending-approval", LoginTarget(model.RoleHawker, false))
	assert.Equal(t, "/hawker", LoginTarget(model.RoleHawker, true))
	assert.Equal(t, "/", LoginTarget(model.RoleConsumer, false))
	assert.Equal(t, "/admin", LoginTarget(model.RoleAdmin, false))
}
