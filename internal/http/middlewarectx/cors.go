// Package middlewarectx содержит middleware HTTP‑сервера: CORS, ограничение
// размера тела запроса, проверку JSON до маршрутизации и ограничение частоты запросов.
package middlewarectx

import "net/http"

// CORSMiddleware выставляет разрешающие кросс‑доменные заголовки на каждый ответ
// и отвечает 204 на любой preflight‑запрос OPTIONS до маршрутизации.
func CORSMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
