// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями и сообщениями обратной связи. Предоставляет
// методы создания и чтения записей поверх общего пула соединений.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotFound возвращается, когда запрошенная запись отсутствует в базе.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists возвращается при нарушении ограничения уникальности.
var ErrAlreadyExists = errors.New("already exists")

// Storage инкапсулирует пул соединений с базой данных PostgreSQL
// и реализует методы работы с пользователями и сообщениями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// isUniqueViolation определяет, вызвана ли ошибка нарушением UNIQUE‑ограничения.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
