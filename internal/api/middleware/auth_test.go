package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func callWithToken(t *testing.T, configured, provided string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/services", nil)
	if provided != "" {
		req.Header.Set(AdminTokenHeader, provided)
	}
	rec := httptest.NewRecorder()

	AdminAuth(configured)(next).ServeHTTP(rec, req)
	return rec, called
}

func TestAdminAuth_ValidToken(t *testing.T) {
	rec, called := callWithToken(t, "secret", "secret")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAdminAuth_WrongToken(t *testing.T) {
	rec, called := callWithToken(t, "secret", "wrong")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAdminAuth_MissingToken(t *testing.T) {
	rec, called := callWithToken(t, "secret", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAdminAuth_EmptyConfiguredToken(t *testing.T) {
	// пустой настроенный токен не превращается в открытый доступ
	rec, called := callWithToken(t, "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}
