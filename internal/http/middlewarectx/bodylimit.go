package middlewarectx

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/curioapp/curio-backend/internal/http/response"
	"github.com/curioapp/curio-backend/internal/lib/sl"
)

// BodyLimitMiddleware накапливает тело запроса в буфер, ограничивая его maxBodyBytes.
// При превышении лимита возвращает 413 и закрывает соединение, не передавая запрос
// обработчику. Полностью прочитанное тело подставляется обратно в запрос.
func BodyLimitMiddleware(log *slog.Logger, maxBodyBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.BodyLimitMiddleware"

			limited := http.MaxBytesReader(w, r.Body, maxBodyBytes)
			body, err := io.ReadAll(limited)
			if err != nil {
				var maxBytesErr *http.MaxBytesError
				if errors.As(err, &maxBytesErr) {
					log.Error("request body exceeds limit",
						slog.String("op", op), slog.Int64("limit", maxBodyBytes))
					w.Header().Set("Connection", "close")
					render.Status(r, http.StatusRequestEntityTooLarge)
					render.JSON(w, r, response.Error("Payload too large"))
					return
				}
				log.Error("failed to read request body", slog.String("op", op), sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Invalid JSON"))
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r)
		})
	}
}
