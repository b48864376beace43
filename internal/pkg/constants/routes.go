package constants

// Static route constants
const (
	PublicRoute       = "/"
	LoginRoute        = "/login"
	RegisterRoute     = "/register"
	VerifyEmailRoute  = "/verify-email"
	SetupAccountRoute = "/setup-account"
	LogoutRoute       = "/logout"

	DashboardRoute = "/dashboard"
	TenantsRoute   = "/tenants"
	CouponsRoute   = "/coupons"
	PlansRoute     = "/plans"
	LogsRoute      = "/logs"
	ProfileRoute   = "/profile"
)

// PublicPathPrefixes are the page paths reachable without a session
// cookie. Invitation setup and e-mail verification are public: their
// visitors do not have an account session yet.
var PublicPathPrefixes = []string{
	LoginRoute,
	RegisterRoute,
	VerifyEmailRoute,
	SetupAccountRoute,
}
