// Package services содержит логику бизнес-уровня для сообщений обратной связи.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/curioapp/curio-backend/internal/lib/sl"
	"github.com/curioapp/curio-backend/internal/models"
)

// ContactRepository описывает контракт для сохранения сообщений обратной связи.
type ContactRepository interface {
	CreateContactMessage(ctx context.Context, msg models.ContactMessage) error
}

// Publisher описывает публикацию событий о новых сообщениях.
type Publisher interface {
	Publish(routingkey string, message any) error
}

// ContactService сохраняет сообщения обратной связи и рассылает уведомления о них.
type ContactService struct {
	contacts       ContactRepository
	publisher      Publisher
	log            *slog.Logger
	storageTimeout time.Duration
}

// NewContactService создает новый экземпляр ContactService.
// publisher может быть nil, тогда уведомления не отправляются.
func NewContactService(contacts ContactRepository, publisher Publisher, log *slog.Logger, storageTimeout time.Duration) *ContactService {
	return &ContactService{
		contacts:       contacts,
		publisher:      publisher,
		log:            log,
		storageTimeout: storageTimeout,
	}
}

// Submit сохраняет сообщение с серверной датой создания.
//
// Дата создания всегда назначается сервером, значение клиента не используется.
// Отсутствующие поля передаются как nil и сохраняются как NULL.
// Неудачная публикация уведомления не считается ошибкой запроса.
func (s *ContactService) Submit(ctx context.Context, name, email, message *string) error {
	msg := models.ContactMessage{
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()

	if err := s.contacts.CreateContactMessage(ctx, msg); err != nil {
		return err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish("contact.created", msg); err != nil {
			s.log.Error("failed to publish contact notification", sl.Err(err))
		}
	}
	return nil
}
