// Package curiobackend предоставляет маршруты и жизненный цикл основного приложения.
package curiobackend

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/curioapp/curio-backend/internal/config"
	"github.com/curioapp/curio-backend/internal/http/handlers/auth/login"
	"github.com/curioapp/curio-backend/internal/http/handlers/auth/register"
	"github.com/curioapp/curio-backend/internal/http/handlers/contact"
	"github.com/curioapp/curio-backend/internal/http/middlewarectx"
	"github.com/curioapp/curio-backend/internal/http/response"
	authservice "github.com/curioapp/curio-backend/internal/services/auth"
	contactservice "github.com/curioapp/curio-backend/internal/services/contact"
)

// RegisterRoutes регистрирует все маршруты приложения.
//
// Сопоставление строгое по паре (метод, путь): поддерживаются только
// POST /contact, /register и /login, всё остальное получает 404.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, contactService *contactservice.ContactService, authService *authservice.AuthService) {
	// Глобальные middleware: ингест тела и проверка JSON идут до маршрутизации
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.CORSMiddleware(),
		middlewarectx.MetricsMiddleware(),
		middlewarectx.BodyLimitMiddleware(logger, cfg.MaxBodyBytes),
		middlewarectx.JSONGuardMiddleware(logger),
	)

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Post("/contact", contact.New(logger, contactService).ServeHTTP)
	r.Post("/register", register.New(logger, authService).ServeHTTP)

	loginLimiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, loginLimiter))
		r.Post("/login", login.New(logger, authService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, response.Error("Not found"))
}
