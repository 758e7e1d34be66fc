// Package jwt реализует генерацию и парсинг JWT токенов сессий.
//
// Maker определяет интерфейс для выпуска и проверки токенов с идентификатором
// пользователя и username. MakerImpl — конкретная реализация с использованием
// секретного ключа и срока жизни токена.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken выпускает токен для пользователя с указанными uid и username
	GenerateToken(useruid, username string) (string, error)
	// ParseToken возвращает *CustomClaims с данными сессии
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
