package middlewarectx

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestBodyLimitMiddleware(t *testing.T) {
	const limit = 64

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
		wantNextCalled bool
	}{
		{
			name:           "body under limit passes through",
			body:           `{"name":"alice"}`,
			wantStatusCode: http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:           "empty body passes through",
			body:           "",
			wantStatusCode: http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:           "body over limit is rejected before the handler",
			body:           strings.Repeat("x", limit+1),
			wantStatusCode: http.StatusRequestEntityTooLarge,
			wantNextCalled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var seenBody []byte
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				seenBody, _ = io.ReadAll(r.Body)
				w.WriteHeader(http.StatusOK)
			})

			handler := BodyLimitMiddleware(newNoopLogger(), limit)(next)

			req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader([]byte(tt.body)))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)

			if tt.wantNextCalled {
				// обработчик получает тело целиком после буферизации
				assert.Equal(t, tt.body, string(seenBody))
			} else {
				assert.Equal(t, "close", rec.Header().Get("Connection"))

				var got map[string]any
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, "Payload too large", got["error"])
			}
		})
	}
}

func TestBodyLimitMiddleware_RejectsOnAnyPath(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := BodyLimitMiddleware(newNoopLogger(), 8)(next)

	for _, path := range []string{"/contact", "/register", "/login", "/unknown"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(strings.Repeat("x", 100)))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code, path)
	}
}
