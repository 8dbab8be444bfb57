// Package policy implements the pure access-control decision shared by the
// edge middleware and the page handlers.  Both enforcement points must agree
// bit-for-bit on every decision, so all routing rules (route classification,
// the per-role home targets and the verification gate) live here and nowhere
// else.
package policy

import (
	"strings"

	"github.com/hawkar/hawkar-web/internal/model"
)

// Well-known paths referenced by the decision rules.  These are the only
// paths the policy names explicitly; everything else is matched by prefix.
const (
	PathLogin           = "/login"
	PathSignUp          = "/sign-up"
	PathLogout          = "/logout"
	PathPendingApproval = "/pending-approval"
	PathConsumerHome    = "/"
	PathHawkerHome      = "/hawker"
	PathAdminHome       = "/admin"
)

// RouteClass is the derived access area of a requested path.  It is computed
// from static prefix rules and never stored.
type RouteClass int

const (
	RoutePublic   RouteClass = iota // login and sign-up, reachable without a session
	RouteConsumer                   // consumer home
	RouteHawker                     // hawker dashboard and sub-pages
	RouteAdmin                      // admin dashboard and sub-pages
	RouteNeutral                    // any authenticated role, no extra role check
)

// Classify maps a request path onto its RouteClass.  Paths the route table
// does not name (stall pages, sign-out, anything unguarded) fall into the
// neutral class: they require a session but no particular role.
func Classify(path string) RouteClass {
	switch {
	case path == PathLogin || path == PathSignUp:
		return RoutePublic
	case path == PathConsumerHome:
		return RouteConsumer
	case path == PathHawkerHome || strings.HasPrefix(path, PathHawkerHome+"/"):
		return RouteHawker
	case path == PathAdminHome || strings.HasPrefix(path, PathAdminHome+"/"):
		return RouteAdmin
	default:
		return RouteNeutral
	}
}

// Actor is the policy-relevant view of a request's session: whether one is
// present at all, and the role and verification flag it carries.  Callers
// build it from cookies (edge) or from the refreshed profile (pages); the
// policy itself never touches I/O.
type Actor struct {
	Authenticated bool
	Role          model.Role
	Verified      bool
}

// Outcome is the three-valued result of a decision.
type Outcome int

const (
	OutcomeAllow           Outcome = iota // let the request proceed
	OutcomeRedirect                       // send the browser to Decision.Target
	OutcomeUnauthenticated                // no usable session; caller redirects to login
)

// Decision is what Decide returns.  Target is set only for redirects.
type Decision struct {
	Outcome Outcome
	Target  string
}

// Allow and Unauthenticated are the two fixed decisions; redirects carry a
// target and are built with Redirect.
var (
	Allow           = Decision{Outcome: OutcomeAllow}
	Unauthenticated = Decision{Outcome: OutcomeUnauthenticated}
)

// Redirect builds a redirect decision towards target.
func Redirect(target string) Decision {
	return Decision{Outcome: OutcomeRedirect, Target: target}
}

// HomeForRole maps a role to its landing page.  This is the single source of
// truth for both enforcement points; a second copy anywhere is a defect that
// manifests as redirect loops.  Unrecognized roles fall back to the login
// page, though Decide strips such roles before they can reach here.
func HomeForRole(r model.Role) string {
	switch r {
	case model.RoleConsumer:
		return PathConsumerHome
	case model.RoleHawker:
		return PathHawkerHome
	case model.RoleAdmin:
		return PathAdminHome
	}
	return PathLogin
}

// LoginTarget is where a fresh login lands: the role's home page, except that
// a Hawker still awaiting approval goes to the pending-approval page instead.
// Decide uses the same mapping when bouncing authenticated users off the
// public pages, which keeps every redirect one hop away from an Allow.
func LoginTarget(r model.Role, verified bool) string {
	if r == model.RoleHawker && !verified {
		return PathPendingApproval
	}
	return HomeForRole(r)
}

// Decide classifies a request into exactly one of the three outcomes.  It is
// total: every combination of path, role (including unknown values) and
// verification flag resolves without error, and every redirect target it
// emits resolves to Allow for the same actor on re-evaluation.
//
// The rules are evaluated in a fixed order; ties resolve to the first match:
//
//  1. no session on a non-public path        -> Unauthenticated
//  2. session on a public path               -> redirect to the actor's landing page
//  3. unverified Hawker anywhere but the
//     pending page or sign-out               -> redirect to pending-approval
//  4. verified Hawker on the pending page    -> redirect to the hawker dashboard
//  5. role does not match the route class    -> redirect to the actor's home
//  6. otherwise                              -> Allow
func Decide(path string, a Actor) Decision {
	// A session carrying a role outside the closed set grants nothing: the
	// actor is treated as unauthenticated so it can always reach the login
	// page instead of bouncing forever.
	if a.Authenticated && !a.Role.Valid() {
		a = Actor{}
	}

	class := Classify(path)

	if !a.Authenticated {
		if class == RoutePublic {
			return Allow
		}
		return Unauthenticated
	}

	if class == RoutePublic {
		return Redirect(LoginTarget(a.Role, a.Verified))
	}

	if a.Role == model.RoleHawker && !a.Verified {
		if path != PathPendingApproval && path != PathLogout {
			return Redirect(PathPendingApproval)
		}
		return Allow
	}

	if a.Role == model.RoleHawker && a.Verified && path == PathPendingApproval {
		return Redirect(PathHawkerHome)
	}

	switch class {
	case RouteConsumer:
		if a.Role != model.RoleConsumer {
			return Redirect(HomeForRole(a.Role))
		}
	case RouteHawker:
		if a.Role != model.RoleHawker {
			return Redirect(HomeForRole(a.Role))
		}
	case RouteAdmin:
		if a.Role != model.RoleAdmin {
			return Redirect(HomeForRole(a.Role))
		}
	}
	return Allow
}
