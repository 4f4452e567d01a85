package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the opaque cart-scoping token.
const SessionCookie = "storefront_session"

type sessionKey struct{}

// Session mints an opaque session id for first-time visitors and makes
// it available on the request context. The id is the sole cart
// isolation mechanism; there is no login.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string

		if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
			sessionID = c.Value
		} else {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID extracts the session id set by Session. The empty string
// means the middleware did not run.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
