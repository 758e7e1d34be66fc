package models

import "time"

// ContactMessage представляет сообщение из формы обратной связи.
// Записи неизменяемы после сохранения: ни обновление, ни удаление не предусмотрены.
// Отсутствующие в запросе поля сохраняются как NULL, а не как пустые строки.
type ContactMessage struct {
	Name      *string   // Имя отправителя, может отсутствовать
	Email     *string   // Электронная почта отправителя, может отсутствовать
	Message   *string   // Текст сообщения, может отсутствовать
	CreatedAt time.Time // Дата получения, назначается сервером
}
