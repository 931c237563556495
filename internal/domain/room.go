package domain

import "time"

type Room struct {
	ID        int64
	Number    int
	Capacity  int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRoom создаёт активную комнату. Проверки выполняются цепочкой правил до сохранения.
func NewRoom(number, capacity int, now time.Time) *Room {
	return &Room{
		Number:    number,
		Capacity:  capacity,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *Room) SetNumber(number int, now time.Time) {
	r.Number = number
	r.UpdatedAt = now
}

func (r *Room) SetCapacity(capacity int, now time.Time) {
	r.Capacity = capacity
	r.UpdatedAt = now
}

// Deactivate: мягкое удаление: запись остаётся для истории бронирований.
func (r *Room) Deactivate(now time.Time) {
	r.Active = false
	r.UpdatedAt = now
}
