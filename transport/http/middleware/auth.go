package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hus/infras/jwt"
	"hus/permissions"
	"hus/shared/constant"
	"hus/shared/failure"
	"hus/transport/http/response"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	permission *permissions.PermissionData
}

// NewAuthRoleMiddleware creates a new middleware instance
func NewAuthRoleMiddleware(jwtService jwt.JWT, permissions *permissions.PermissionData) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		permission: permissions,
	}
}

// Auth validates the session token and installs the actor in the request
// context. Endpoints marked Skip in the permissions table pass through
// untouched.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		if m.permission != nil {
			endpoint := m.permission.Find(routePattern(ctx, request), request.Method)
			if endpoint.Skip {
				next.ServeHTTP(writer, request)

				return
			}
		}

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			response.WithError(writer, failure.Unauthorized("Missing authorization header"))

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			response.WithError(writer, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "Invalid token"
			default:
				message = "Token validation failed"
			}

			response.WithError(writer, failure.Unauthorized(message))

			return
		}

		if claims.UserID == "" {
			log.Error().Msg("JWT claims: UserID is empty")

			response.WithError(writer, failure.Unauthorized("Invalid token claims"))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserName, claims.UserName)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the actor's role against the permissions table.
// Requires prior authentication via Auth middleware.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		if m.permission == nil {
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		endpoint := m.permission.Find(routePattern(ctx, request), request.Method)
		if endpoint.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if len(endpoint.Roles) > 0 && !slices.Contains(endpoint.Roles, userRole) {
			log.Warn().
				Str("role", userRole).
				Str("path", request.URL.Path).
				Str("method", request.Method).
				Msg("role not allowed for endpoint")

			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// routePattern resolves the chi routing pattern for the request so the
// lookup matches the table's parameterized paths.
func routePattern(ctx context.Context, request *http.Request) string {
	rctx := chi.RouteContext(ctx)

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}
