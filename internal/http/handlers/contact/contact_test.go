package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ContactServiceMock struct {
	mock.Mock
}

func (m *ContactServiceMock) Submit(ctx context.Context, name, email, message *string) error {
	args := m.Called(ctx, name, email, message)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func strptr(s string) *string { return &s }

func TestContactHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(s *ContactServiceMock)
		wantStatusCode int
		wantBody       map[string]any
	}{
		{
			name:        "valid contact message",
			requestBody: Request{Name: strptr("alice"), Email: strptr("a@x.com"), Message: strptr("hello")},
			setupMocks: func(s *ContactServiceMock) {
				s.On("Submit", mock.Anything, strptr("alice"), strptr("a@x.com"), strptr("hello")).Return(nil).Once()
			},
			wantStatusCode: http.StatusCreated,
			wantBody:       map[string]any{"status": "ok"},
		},
		{
			name:        "username substitutes missing name",
			requestBody: Request{Username: strptr("alice"), Email: strptr("a@x.com"), Text: strptr("hello")},
			setupMocks: func(s *ContactServiceMock) {
				s.On("Submit", mock.Anything, strptr("alice"), strptr("a@x.com"), strptr("hello")).Return(nil).Once()
			},
			wantStatusCode: http.StatusCreated,
			wantBody:       map[string]any{"status": "ok"},
		},
		{
			name:        "empty name falls back to username",
			requestBody: Request{Name: strptr(""), Username: strptr("bob"), Email: strptr("b@x.com"), Message: strptr("hi")},
			setupMocks: func(s *ContactServiceMock) {
				s.On("Submit", mock.Anything, strptr("bob"), strptr("b@x.com"), strptr("hi")).Return(nil).Once()
			},
			wantStatusCode: http.StatusCreated,
			wantBody:       map[string]any{"status": "ok"},
		},
		{
			name:        "absent fields stay absent",
			requestBody: map[string]any{"email": "a@x.com"},
			setupMocks: func(s *ContactServiceMock) {
				s.On("Submit", mock.Anything, (*string)(nil), strptr("a@x.com"), (*string)(nil)).Return(nil).Once()
			},
			wantStatusCode: http.StatusCreated,
			wantBody:       map[string]any{"status": "ok"},
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			setupMocks:     func(_ *ContactServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       map[string]any{"error": "Invalid JSON"},
		},
		{
			name:        "storage failure",
			requestBody: Request{Name: strptr("alice"), Email: strptr("a@x.com"), Message: strptr("hello")},
			setupMocks: func(s *ContactServiceMock) {
				s.On("Submit", mock.Anything, strptr("alice"), strptr("a@x.com"), strptr("hello")).
					Return(errors.New("db error")).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       map[string]any{"status": "error"},
		},
		{
			name:        "storage timeout",
			requestBody: Request{Name: strptr("alice"), Email: strptr("a@x.com"), Message: strptr("hello")},
			setupMocks: func(s *ContactServiceMock) {
				s.On("Submit", mock.Anything, strptr("alice"), strptr("a@x.com"), strptr("hello")).
					Return(context.DeadlineExceeded).Once()
			},
			wantStatusCode: http.StatusGatewayTimeout,
			wantBody:       map[string]any{"error": "request timed out"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcMock := new(ContactServiceMock)
			tt.setupMocks(svcMock)
			handler := New(newNoopLogger(), svcMock)

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			for k, v := range tt.wantBody {
				assert.Equal(t, v, got[k])
			}
			svcMock.AssertExpectations(t)
		})
	}
}
