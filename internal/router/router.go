package router // package router defines how HTTP routes are registered for the gateway

import (
	"github.com/labstack/echo/v4"

	"github.com/hawkar/hawkar-web/internal/handler"
)

// RegisterRoutes registers routes that sit outside both guards.  Currently
// that is only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the credential endpoints and sign-out.  The supplied
// limiter middleware fronts everything that accepts credentials; sign-out is
// neither guarded nor limited: it must stay reachable for every state a
// session can be in, including pending hawkers and corrupted cookies.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limiter echo.MiddlewareFunc) {
	e.GET("/login", a.LoginPage)
	e.GET("/sign-up", a.SignUpPage)

	e.POST("/login", a.Login, limiter)
	e.POST("/login/google", a.LoginGoogle, limiter)
	e.POST("/sign-up", a.SignUp, limiter)

	e.POST("/logout", a.Logout)
}

// RegisterPages registers every guarded page and admin action.  The edge
// guard is installed globally in main; each handler additionally runs the
// page guard before rendering.
func RegisterPages(e *echo.Echo, co *handler.ConsumerHandler, hk *handler.HawkerHandler, ad *handler.AdminHandler) {
	e.GET("/", co.Home)
	e.GET("/stall/:id", co.StallDetails)

	e.GET("/hawker", hk.Dashboard)
	e.GET("/hawker/stall/:id", hk.StallPage)
	e.GET("/pending-approval", hk.PendingApproval)

	e.GET("/admin", ad.Dashboard)
	e.GET("/admin/hawker-approvals", ad.Approvals)
	e.GET("/admin/reported-reviews", ad.ReportedReviews)
	e.PUT("/admin/verify-hawker/:id", ad.VerifyHawker)
	e.PUT("/admin/reports/:id/ignore", ad.IgnoreReport)
}

// RegisterPublic registers the unauthenticated directory endpoints behind the
// response cache.  These feed the map view and need no session.
func RegisterPublic(e *echo.Echo, d *handler.DirectoryHandler, cache echo.MiddlewareFunc) {
	e.GET("/api/stalls", d.ListStalls, cache)
	e.GET("/api/hawker-centers", d.ListHawkerCenters, cache)
}
