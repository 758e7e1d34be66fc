package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/curioapp/curio-backend/internal/models"
)

// CreateUser сохраняет нового пользователя в базу данных и возвращает его UID.
//
// Нарушение уникальности username или email возвращается как ErrAlreadyExists.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (uid, fullname, username, dob, gender, email,
			      password_hash, is_admin, acc_status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.UID, user.Fullname, user.Username, user.DOB, user.Gender, user.Email,
		user.PasswordHash, user.IsAdmin, user.AccStatus, user.CreatedAt,
		user.UpdatedAt).Scan(&newUID); err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetUserByEmail возвращает пользователя по его email.
//
// Отсутствие пользователя возвращается как ErrNotFound.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, fullname, username, dob, gender, email, password_hash,
			      is_admin, acc_status, created_at, updated_at
			  FROM users
			  WHERE email = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, email)

	var dob sql.NullTime
	if err := row.Scan(&u.UID, &u.Fullname, &u.Username, &dob, &u.Gender, &u.Email,
		&u.PasswordHash, &u.IsAdmin, &u.AccStatus, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if dob.Valid {
		u.DOB = &dob.Time
	}
	return u, nil
}
