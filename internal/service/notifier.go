package service

const (
	TopicRooms        = "rooms"
	TopicUsers        = "users"
	TopicReservations = "reservations"
)

const (
	EventRoomCreated          = "room.created"
	EventRoomUpdated          = "room.updated"
	EventRoomDeleted          = "room.deleted"
	EventUserCreated          = "user.created"
	EventUserUpdated          = "user.updated"
	EventUserDeleted          = "user.deleted"
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
)

type Event struct {
	Topic   string
	Type    string
	Payload any
}

// Notifier получает события после успешного commit. Доставка best-effort.
type Notifier interface {
	Publish(ev Event)
}

type nopNotifier struct{}

func (nopNotifier) Publish(Event) {}

func notifierOrNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}
