package middleware

import (
	"context"
	"net/http"
	"strings"

	helper "github.com/MRAMACHANDRAMOORTHI/everbowl/helper"
	"github.com/MRAMACHANDRAMOORTHI/everbowl/models"
)

// Context keys to store user information
type contextKey string

const (
	EmailKey contextKey = "email"
	NameKey  contextKey = "name"
	UidKey   contextKey = "uid"
	RoleKey  contextKey = "role"
)

// Authentication middleware for Gorilla Mux
func Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientToken := r.Header.Get("Authorization")
		if clientToken == "" {
			http.Error(w, "No Authorization header provided", http.StatusUnauthorized)
			return
		}

		// Token format should be "Bearer <token>"
		tokenParts := strings.Split(clientToken, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			http.Error(w, "Invalid Authorization format", http.StatusUnauthorized)
			return
		}

		tokenString := tokenParts[1]
		claims, err := helper.ValidateToken(tokenString)
		if err != "" {
			http.Error(w, err, http.StatusUnauthorized)
			return
		}

		// Store user details in the request context
		ctx := context.WithValue(r.Context(), EmailKey, claims.Email)
		ctx = context.WithValue(ctx, NameKey, claims.Name)
		ctx = context.WithValue(ctx, UidKey, claims.Uid)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)

		// Pass modified request with context to the next handler
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly gates routes on the role claim. Customers never reach the
// back-office handlers, whatever token they carry.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(RoleKey).(string)
		if role != models.RoleAdmin {
			http.Error(w, "Admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext retrieves user data from the request context
func GetUserFromContext(r *http.Request) (email, name, uid, role string) {
	email, _ = r.Context().Value(EmailKey).(string)
	name, _ = r.Context().Value(NameKey).(string)
	uid, _ = r.Context().Value(UidKey).(string)
	role, _ = r.Context().Value(RoleKey).(string)
	return
}
