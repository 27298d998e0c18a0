package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authProbe(t *testing.T) (http.Handler, *int64, *bool) {
	t.Helper()
	var gotID int64
	var called bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotID, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return h, &gotID, &called
}

func TestAuth_ValidHeader(t *testing.T) {
	next, gotID, called := authProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "55")
	rec := httptest.NewRecorder()

	Auth(next).ServeHTTP(rec, req)

	require.True(t, *called)
	assert.Equal(t, int64(55), *gotID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	next, _, called := authProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	Auth(next).ServeHTTP(rec, req)

	assert.False(t, *called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidHeader(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-5"} {
		next, _, called := authProbe(t)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderUserID, raw)
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)

		assert.False(t, *called, "header %q", raw)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", raw)
	}
}

func TestOptionalAuth_NoHeaderPassesAsGuest(t *testing.T) {
	var hasID bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasID = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	OptionalAuth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, hasID)
}

func TestOptionalAuth_ValidHeader(t *testing.T) {
	next, gotID, called := authProbe(t)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(HeaderUserID, "7")
	rec := httptest.NewRecorder()

	OptionalAuth(next).ServeHTTP(rec, req)

	require.True(t, *called)
	assert.Equal(t, int64(7), *gotID)
}

func TestOptionalAuth_InvalidHeaderRejected(t *testing.T) {
	next, _, called := authProbe(t)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(HeaderUserID, "not-a-number")
	rec := httptest.NewRecorder()

	OptionalAuth(next).ServeHTTP(rec, req)

	assert.False(t, *called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
