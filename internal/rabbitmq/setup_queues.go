package rabbitmq

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetNotificationQueues возвращает очереди уведомлений о новых сообщениях.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "notification.contact", RoutingKey: "contact.created"},
	}
}
