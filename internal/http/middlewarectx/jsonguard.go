package middlewarectx

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/curioapp/curio-backend/internal/http/response"
)

// JSONGuardMiddleware проверяет до маршрутизации, что непустое тело запроса
// является корректным JSON. Некорректное тело получает 400 для любого пути,
// включая неизвестные. Пустое тело пропускается: обязательность тела
// проверяет сам обработчик.
func JSONGuardMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JSONGuardMiddleware"

			body, err := io.ReadAll(r.Body)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Invalid JSON"))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if len(bytes.TrimSpace(body)) > 0 && !json.Valid(body) {
				log.Error("request body is not valid json",
					slog.String("op", op), slog.String("path", r.URL.Path))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Invalid JSON"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
