package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cwrk-planet/classroom-scheduler/internal/service"
	"github.com/cwrk-planet/classroom-scheduler/pkg/errs"
	"github.com/cwrk-planet/classroom-scheduler/pkg/httputil"
)

type Handler struct {
	roomSvc        *service.RoomService
	userSvc        *service.UserService
	reservationSvc *service.ReservationService
}

func NewHandler(room *service.RoomService, user *service.UserService, reservation *service.ReservationService) *Handler {
	return &Handler{
		roomSvc:        room,
		userSvc:        user,
		reservationSvc: reservation,
	}
}

// writeError: 4xx отдаёт текст ошибки клиенту, для 5xx только название операции.
func writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := errs.ToHTTP(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = op + " failed"
	}
	httputil.Error(r.Context(), w, status, msg, errs.Meta(err))
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", errs.ErrInvalidInput)
	}
	return nil
}

func int64Param(r *http.Request, name string) (int64, error) {
	s := strings.TrimSpace(chi.URLParam(r, name))
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer: %w", name, errs.ErrInvalidInput)
	}
	return id, nil
}

func intParam(r *http.Request, name string) (int, error) {
	s := strings.TrimSpace(chi.URLParam(r, name))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, errs.ErrInvalidInput)
	}
	return n, nil
}
