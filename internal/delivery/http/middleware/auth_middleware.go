package middleware

import (
	"context"
	"net/http"
	"strings"

	"patient-portal/pkg/response"
	"patient-portal/pkg/token"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	TokenKey  contextKey = "token"
)

type AuthMiddleware struct {
	registry *token.Registry
}

func NewAuthMiddleware(registry *token.Registry) *AuthMiddleware {
	return &AuthMiddleware{registry: registry}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		tok := parts[1]

		// The token is opaque; validity means "present in the registry".
		userID, ok, err := m.registry.Lookup(r.Context(), tok)
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !ok {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		ctx = context.WithValue(ctx, TokenKey, tok)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts the authenticated user id from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetTokenFromContext extracts the session token from context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(TokenKey).(string)
	return tok, ok
}
