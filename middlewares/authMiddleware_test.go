package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRAMACHANDRAMOORTHI/everbowl/helper"
	"github.com/MRAMACHANDRAMOORTHI/everbowl/models"
)

func issueToken(t *testing.T, role string) string {
	t.Helper()
	helper.SECRET_KEY = "test-secret"

	token, _, err := helper.GenerateAllTokens("asha@example.com", "Asha", "u1", role)
	require.NoError(t, err)
	return token
}

func TestAuthenticationRejectsMissingHeader(t *testing.T) {
	nextCalled := false
	handler := Authentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cart/checkout", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled, "an unauthenticated request must never reach the handler")
}

func TestAuthenticationRejectsMalformedHeader(t *testing.T) {
	token := issueToken(t, models.RoleUser)

	for _, header := range []string{token, "Basic " + token, "Bearer"} {
		nextCalled := false
		handler := Authentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
		}))

		req := httptest.NewRequest(http.MethodPost, "/cart/checkout", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
		assert.False(t, nextCalled, header)
	}
}

func TestAuthenticationRejectsGarbageToken(t *testing.T) {
	helper.SECRET_KEY = "test-secret"

	handler := Authentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for an invalid token")
	}))

	req := httptest.NewRequest(http.MethodPost, "/cart/checkout", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticationInjectsClaimsIntoContext(t *testing.T) {
	token := issueToken(t, models.RoleUser)

	var email, name, uid, role string
	handler := Authentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, name, uid, role = GetUserFromContext(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "asha@example.com", email)
	assert.Equal(t, "Asha", name)
	assert.Equal(t, "u1", uid)
	assert.Equal(t, models.RoleUser, role)
}

func TestAdminOnlyRejectsRegularUser(t *testing.T) {
	token := issueToken(t, models.RoleUser)

	handler := Authentication(AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("a user-role token must not reach admin handlers")
	})))

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnlyAdmitsAdmin(t *testing.T) {
	token := issueToken(t, models.RoleAdmin)

	nextCalled := false
	handler := Authentication(AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})))

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
}
