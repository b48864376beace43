package usercontext

// Shared Locals key used across controllers and middlewares
const KeyUserContext = "USER_CONTEXT"

// Role slugs as issued by the backend. Open set - unknown values pass
// through untouched.
const (
	RoleSuperAdmin   = "super_admin"
	RolePlatformUser = "platform_user"
	RoleTenantAdmin  = "tenant_admin"
	RoleSubAdmin     = "sub_admin"
	RoleViewer       = "viewer"
)
