// Package register реализует HTTP-обработчик регистрации пользователей.
//
// Декодирует JSON, валидирует обязательные поля и делегирует создание
// учётной записи сервису аутентификации. Занятый username или email
// возвращается как конфликт, а не как вторая успешная регистрация.
package register

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

// Request — входные данные для регистрации.
type Request struct {
	Fullname string `json:"fullname"`
	Username string `json:"username" validate:"required"`
	DOB      string `json:"dob"`
	Gender   string `json:"gender"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, data services.RegisterData) (string, error)
}

// Handler обрабатывает HTTP-запросы регистрации.
type Handler struct {
	log         *slog.Logger
	authService Service
	validate    *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, authService Service) *Handler {
	return &Handler{
		log:         log,
		authService: authService,
		validate:    validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Description Создает новую учётную запись с bcrypt-хэшем пароля.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные нового пользователя"
// @Success 201 {object} response.Response "Пользователь создан"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 409 {object} response.Response "Username или email уже заняты"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Failure 500 {object} response.Response "Внутренняя ошибка сервера"
// @Router /register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

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
	log.Info("request body decoded", slog.String("username", req.Username))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	_, err := h.authService.Register(r.Context(), services.RegisterData{
		Fullname: req.Fullname,
		Username: req.Username,
		DOB:      req.DOB,
		Gender:   req.Gender,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserExists):
			log.Error("user already exists", slog.String("username", req.Username))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("user already exists"))
		case errors.Is(err, context.DeadlineExceeded):
			log.Error("registration timed out", sl.Err(err))
			render.Status(r, http.StatusGatewayTimeout)
			render.JSON(w, r, response.Error("request timed out"))
		default:
			log.Error("registration failed", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(err.Error()))
		}
		return
	}

	log.Info("user registered", slog.String("username", req.Username))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithMessage("Registered successfully"))
}
