package service

import (
	"time"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
)

type RoomDTO struct {
	ID       int64 `json:"id"`
	Number   int   `json:"number"`
	Capacity int   `json:"capacity"`
	Active   bool  `json:"active"`
}

type CreateRoomInput struct {
	Number   int `json:"number"`
	Capacity int `json:"capacity"`
}

// EditRoomInput: частичное обновление: nil-поля не меняются и не проверяются.
type EditRoomInput struct {
	ID       int64 `json:"id"`
	Number   *int  `json:"number,omitempty"`
	Capacity *int  `json:"capacity,omitempty"`
}

type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type EditUserInput struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ReservationDTO struct {
	ID         int64                    `json:"id"`
	StartAt    time.Time                `json:"start_at"`
	EndAt      time.Time                `json:"end_at"`
	UserName   string                   `json:"user_name"`
	RoomNumber int                      `json:"room_number"`
	Status     domain.ReservationStatus `json:"status"`
}

type CreateReservationInput struct {
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	UserName   string    `json:"user_name"`
	RoomNumber int       `json:"room_number"`
}

type ReservationFilter struct {
	RoomNumber *int
	UserName   string
	Limit      int
	Cursor     string
}

type ReservationPage struct {
	Items      []ReservationDTO `json:"items"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

func toRoomDTO(r *domain.Room) RoomDTO {
	return RoomDTO{
		ID:       r.ID,
		Number:   r.Number,
		Capacity: r.Capacity,
		Active:   r.Active,
	}
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func toReservationDTO(v *domain.ReservationView) ReservationDTO {
	return ReservationDTO{
		ID:         v.ID,
		StartAt:    v.StartAt,
		EndAt:      v.EndAt,
		UserName:   v.UserName,
		RoomNumber: v.RoomNumber,
		Status:     v.Status,
	}
}
