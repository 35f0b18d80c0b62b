// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// callerKey is the context key for the authenticated caller identity.
const callerKey ContextKey = "caller"

// TokenValidator validates a bearer token and returns the caller identity
// (the token subject). Implemented by the server's TokenService.
type TokenValidator interface {
	ValidateToken(tokenString string) (string, error)
}

// AuthMiddleware validates Bearer tokens and stores the caller identity in
// the request context. The scoring engine itself needs no authentication;
// this gate exists for deployments that front the API publicly.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Case-insensitive "Bearer" prefix.
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			caller, err := validator.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), callerKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCaller extracts the authenticated caller identity from the request context.
func GetCaller(r *http.Request) (string, error) {
	caller, ok := r.Context().Value(callerKey).(string)
	if !ok {
		return "", fmt.Errorf("caller not found in request context")
	}
	return caller, nil
}
