package repository

import (
	"context"
	"fmt"

	"github.com/curioapp/curio-backend/internal/models"
)

// CreateContactMessage сохраняет сообщение обратной связи в базу данных.
func (s *Storage) CreateContactMessage(ctx context.Context, msg models.ContactMessage) error {
	const op = "storage.CreateContactMessage"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO contact_messages (name, email, message, created_at)
			  VALUES ($1, $2, $3, $4)`
	if _, err := s.DB.ExecContext(ctx, query,
		msg.Name, msg.Email, msg.Message, msg.CreatedAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
