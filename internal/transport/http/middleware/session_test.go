package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMintsCookieForNewVisitors(t *testing.T) {
	t.Parallel()

	var captured string
	handler := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = SessionID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	_, err := uuid.Parse(captured)
	assert.NoError(t, err, "session id should be a uuid")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Equal(t, SessionCookie, c.Name)
	assert.Equal(t, captured, c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
}

func TestSessionReusesExistingCookie(t *testing.T) {
	t.Parallel()

	var captured string
	handler := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = SessionID(r.Context())
	}))

	existing := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: existing})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, existing, captured)
	assert.Empty(t, rec.Result().Cookies(), "no new cookie for a returning visitor")
}

func TestSessionIDWithoutMiddleware(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, SessionID(req.Context()))
}
