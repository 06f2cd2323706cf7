package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cardforge/cardforge-api/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoUserID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserID(r)
		if !ok {
			http.Error(w, "no user", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(id))
	})
}

func TestLocalToken_ValidTokenSetsUserID(t *testing.T) {
	t.Setenv("AUTH0_DOMAIN", "")
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	mw, err := EnsureValidToken()
	require.NoError(t, err)

	token, err := auth.CreateToken("user-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw(echoUserID()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", rec.Body.String())
}

func TestLocalToken_MissingHeader(t *testing.T) {
	t.Setenv("AUTH0_DOMAIN", "")
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	mw, err := EnsureValidToken()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mw(echoUserID()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLocalToken_BadToken(t *testing.T) {
	t.Setenv("AUTH0_DOMAIN", "")
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	mw, err := EnsureValidToken()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	mw(echoUserID()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
