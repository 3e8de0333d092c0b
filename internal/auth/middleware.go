// internal/auth/middleware.go
// Bearer token authentication for the matching API

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/imadgeboyega/kiekky-matcher/internal/common/utils"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenValidator verifies an access token and returns its claims
type TokenValidator func(token string) (*utils.JWTClaims, error)

// Middleware provides authentication middleware
type Middleware struct {
	validate TokenValidator
}

// NewMiddleware creates a middleware that verifies HS256 tokens signed with secret
func NewMiddleware(secret string) *Middleware {
	return NewMiddlewareWithValidator(func(token string) (*utils.JWTClaims, error) {
		return utils.ValidateJWT(token, secret)
	})
}

// NewMiddlewareWithValidator creates a middleware around a custom validator
func NewMiddlewareWithValidator(v TokenValidator) *Middleware {
	return &Middleware{validate: v}
}

// Authenticate is the main middleware function that protects routes
// It verifies the JWT token and adds the user id to the request context
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid authorization header")
			return
		}

		claims, err := m.validate(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
	})
}

// extractToken extracts the JWT token from the Authorization header
// Supports "Bearer <token>" format
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// WithUserID returns a copy of ctx carrying userID
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext extracts user ID from request context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
