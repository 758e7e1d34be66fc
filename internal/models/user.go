// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и служебные флаги.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string     // Уникальный идентификатор пользователя
	Fullname     string     // Полное имя, по умолчанию "Anonymous"
	Username     string     // Имя пользователя (уникальное)
	DOB          *time.Time // Дата рождения, может отсутствовать
	Gender       string     // Пол, по умолчанию "unspecified"
	Email        string     // Электронная почта (уникальная)
	PasswordHash string     // Хэш пароля пользователя
	IsAdmin      bool       // Флаг администратора
	AccStatus    int        // Статус учётной записи
	CreatedAt    time.Time  // Дата создания записи
	UpdatedAt    time.Time  // Дата последнего обновления записи
}
