package middlewarectx

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "curio_http_requests_total",
	Help: "Количество HTTP запросов по пути и коду ответа.",
}, []string{"path", "code"})

// MetricsMiddleware считает запросы по пути и коду ответа.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			requestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(ww.Status())).Inc()
		})
	}
}
