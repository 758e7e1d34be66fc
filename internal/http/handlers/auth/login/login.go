// Package login реализует HTTP-обработчик для запросов аутентификации пользователей.
//
// В нём определяется структура Request для входных данных, выполняется декодирование JSON,
// проверка и валидация полей, а также делегирование операции входа сервису аутентификации.
// При успешной аутентификации возвращается JSON с username и JWT сессии;
// в случае ошибок формируются соответствующие HTTP-ответы.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/curioapp/curio-backend/internal/http/response"
	"github.com/curioapp/curio-backend/internal/lib/sl"
	services "github.com/curioapp/curio-backend/internal/services/auth"
)

// Request — структура входных данных для авторизации.
type Request struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response — структура успешного ответа с токеном сессии.
type Response struct {
	Status   string `json:"status"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, email, password string) (username, token string, err error)
}

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log         *slog.Logger        // Логгер для записи операций и ошибок
	authService Service             // Сервис аутентификации
	validate    *validator.Validate // Валидатор для проверки входных данных
}

// New создает новый экземпляр Handler с указанными логгером и сервисом аутентификации.
func New(log *slog.Logger, authService Service) *Handler {
	return &Handler{
		log:         log,
		authService: authService,
		validate:    validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Авторизация пользователя
// @Description Аутентифицирует пользователя по email и паролю. Возвращает JWT сессии.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} Response "Успешная авторизация"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 401 {object} response.Response "Неверные учетные данные"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Failure 500 {object} response.Response "Внутренняя ошибка сервера"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

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
	log.Info("request body decoded", slog.String("email", req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	username, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			log.Error("invalid credentials", slog.String("email", req.Email))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Invalid email or password"))
		case errors.Is(err, context.DeadlineExceeded):
			log.Error("login timed out", sl.Err(err))
			render.Status(r, http.StatusGatewayTimeout)
			render.JSON(w, r, response.Error("request timed out"))
		default:
			log.Error("login failed", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(err.Error()))
		}
		return
	}

	log.Info("login success", slog.String("username", username))
	render.JSON(w, r, Response{
		Status:   response.StatusOK,
		Username: username,
		Token:    token,
	})
}
