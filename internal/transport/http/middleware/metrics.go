package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/observability"
)

// Metrics records a request counter and duration histogram per chi
// route pattern, so /api/products/{id} stays one series regardless of
// the concrete id.
func Metrics(m *observability.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}

			m.RequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
			m.RequestDurationSeconds.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}
