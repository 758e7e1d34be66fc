// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/curioapp/curio-backend/internal/lib/jwt"
	"github.com/curioapp/curio-backend/internal/lib/password"
	"github.com/curioapp/curio-backend/internal/models"
	"github.com/curioapp/curio-backend/internal/storage/repository"
)

// ErrUserExists возвращается при регистрации с занятым username или email.
var ErrUserExists = errors.New("user already exists")

// ErrInvalidCredentials возвращается при неверной паре email/пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или repository.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// RegisterData — данные регистрации нового пользователя.
// Обязательны только Username, Email и Password, остальные поля опциональны.
type RegisterData struct {
	Fullname string
	Username string
	DOB      string
	Gender   string
	Email    string
	Password string
}

// AuthService отвечает за регистрацию и аутентификацию пользователей.
type AuthService struct {
	users          UserRepository
	jwtMaker       jwt.Maker
	storageTimeout time.Duration
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, storageTimeout time.Duration) *AuthService {
	return &AuthService{
		users:          users,
		jwtMaker:       jwtMaker,
		storageTimeout: storageTimeout,
	}
}

// Register создает нового пользователя с хэшированием пароля и дефолтными полями.
//
// Занятый username или email возвращается как ErrUserExists.
func (s *AuthService) Register(ctx context.Context, data RegisterData) (string, error) {
	hashed, err := password.GetHash(data.Password)
	if err != nil {
		return "", err
	}

	fullname := data.Fullname
	if fullname == "" {
		fullname = "Anonymous" // дефолтное имя при регистрации
	}
	gender := data.Gender
	if gender == "" {
		gender = "unspecified"
	}
	var dob *time.Time
	if parsed, err := time.Parse("2006-01-02", data.DOB); err == nil {
		dob = &parsed
	}

	now := time.Now().UTC()
	user := models.User{
		UID:          uuid.NewString(),
		Fullname:     fullname,
		Username:     data.Username,
		DOB:          dob,
		Gender:       gender,
		Email:        data.Email,
		PasswordHash: hashed,
		IsAdmin:      false,
		AccStatus:    0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()

	uid, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return "", ErrUserExists
		}
		return "", err
	}
	return uid, nil
}

// Login проверяет пароль пользователя и выпускает JWT сессии.
//
// Пользователь ищется только по email, пароль сверяется с bcrypt‑хэшем в процессе.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (username, token string, err error) {
	ctx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", ErrInvalidCredentials
	}
	token, err = s.jwtMaker.GenerateToken(user.UID, user.Username)
	if err != nil {
		return "", "", err
	}
	return user.Username, token, nil
}
