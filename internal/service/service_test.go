package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cwrk-planet/classroom-scheduler/internal/repository/memory"
)

var fixedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type recordingNotifier struct {
	mu     sync.Mutex
	events []Event
}

func (n *recordingNotifier) Publish(ev Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.events))
	for _, ev := range n.events {
		out = append(out, ev.Type)
	}
	return out
}

type fixture struct {
	store        *memory.Store
	events       *recordingNotifier
	rooms        *RoomService
	users        *UserService
	reservations *ReservationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repositories()
	events := &recordingNotifier{}
	return &fixture{
		store:        store,
		events:       events,
		rooms:        NewRoomService(repos.Rooms, store, events, clock),
		users:        NewUserService(repos.Users, store, events, clock),
		reservations: NewReservationService(repos.Reservations, store, events, clock),
	}
}

func intPtr(v int) *int { return &v }

var bg = context.Background()
