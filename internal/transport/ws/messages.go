package ws

import "github.com/cwrk-planet/classroom-scheduler/internal/service"

// Служебный тип: первое сообщение после подключения.
// Остальные типы совпадают с событиями сервисов (room.created, user.deleted, ...).
const TypeSubscribed = "subscribed"

type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type SubscribedPayload struct {
	Topic string `json:"topic"`
}

var topics = map[string]struct{}{
	service.TopicRooms:        {},
	service.TopicUsers:        {},
	service.TopicReservations: {},
}

func knownTopic(topic string) bool {
	_, ok := topics[topic]
	return ok
}
