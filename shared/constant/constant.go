package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID   contextKey = "user_id"
	ContextKeyUserName contextKey = "user_name"
	ContextKeyUserRole contextKey = "user_role"
)

const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleManager    = "MANAGER"
	RoleStaff      = "STAFF"
)

const (
	RequestParamID     = "id"
	RequestParamSearch = "search"
	RequestParamDate   = "date"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	// DateFormat is the fixed-width business date used for check-in,
	// check-out and payment dates. Comparisons on it are lexicographic.
	DateFormat = "2006-01-02"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
