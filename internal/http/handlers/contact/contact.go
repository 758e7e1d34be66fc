// Package contact реализует HTTP-обработчик формы обратной связи.
//
// Поля запроса не валидируются: отсутствующие значения сохраняются как NULL,
// name подменяется username, а message — text, если основное поле не задано.
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/curioapp/curio-backend/internal/http/response"
	"github.com/curioapp/curio-backend/internal/lib/sl"
)

// Request — входные данные формы обратной связи.
// Указатели различают отсутствующее поле и явную пустую строку.
type Request struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Message  *string `json:"message"`
	Text     *string `json:"text"`
}

// Service описывает интерфейс бизнес-логики сообщений обратной связи.
type Service interface {
	Submit(ctx context.Context, name, email, message *string) error
}

// Handler обрабатывает HTTP-запросы формы обратной связи.
type Handler struct {
	log            *slog.Logger
	contactService Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, contactService Service) *Handler {
	return &Handler{
		log:            log,
		contactService: contactService,
	}
}

// ServeHTTP godoc
// @Summary Отправка сообщения обратной связи
// @Description Сохраняет сообщение формы обратной связи с серверной датой создания.
// @Tags Contact
// @Accept  json
// @Produce  json
// @Param request body Request true "Сообщение обратной связи"
// @Success 201 {object} response.Response "Сообщение сохранено"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 500 {object} response.Response "Ошибка хранилища"
// @Router /contact [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid JSON"))
		return
	}
	log.Info("request body decoded")

	name := req.Name
	if name == nil || *name == "" {
		name = req.Username
	}
	message := req.Message
	if message == nil || *message == "" {
		message = req.Text
	}

	if err := h.contactService.Submit(r.Context(), name, req.Email, message); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Error("contact submit timed out", sl.Err(err))
			render.Status(r, http.StatusGatewayTimeout)
			render.JSON(w, r, response.Error("request timed out"))
			return
		}
		log.Error("failed to save contact message", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Failed())
		return
	}

	log.Info("contact message saved")
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OK())
}
