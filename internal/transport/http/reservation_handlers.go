package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/cwrk-planet/classroom-scheduler/internal/report"
	"github.com/cwrk-planet/classroom-scheduler/internal/service"
	"github.com/cwrk-planet/classroom-scheduler/pkg/errs"
	"github.com/cwrk-planet/classroom-scheduler/pkg/httputil"
)

// POST /reservations
func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var in service.CreateReservationInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, "create reservation", err)
		return
	}

	out, err := h.reservationSvc.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, "create reservation", err)
		return
	}

	httputil.JSON(w, http.StatusCreated, out)
}

// GET /reservations?room=&user=&limit=&cursor=
func (h *Handler) ListReservations(w http.ResponseWriter, r *http.Request) {
	f, err := reservationFilter(r)
	if err != nil {
		writeError(w, r, "list reservations", err)
		return
	}

	out, err := h.reservationSvc.List(r.Context(), f)
	if err != nil {
		writeError(w, r, "list reservations", err)
		return
	}

	httputil.JSON(w, http.StatusOK, out)
}

// GET /reservations/export?room=&user=
func (h *Handler) ExportReservations(w http.ResponseWriter, r *http.Request) {
	f, err := reservationFilter(r)
	if err != nil {
		writeError(w, r, "export reservations", err)
		return
	}

	data, err := h.reservationSvc.Export(r.Context(), f)
	if err != nil {
		writeError(w, r, "export reservations", err)
		return
	}

	httputil.Blob(w, report.ContentTypeXLSX, "reservations.xlsx", data)
}

// GET /reservations/{id}
func (h *Handler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		writeError(w, r, "get reservation", err)
		return
	}

	out, err := h.reservationSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "get reservation", err)
		return
	}

	httputil.JSON(w, http.StatusOK, out)
}

// POST /reservations/{id}/cancel
func (h *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		writeError(w, r, "cancel reservation", err)
		return
	}

	out, err := h.reservationSvc.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, r, "cancel reservation", err)
		return
	}

	httputil.JSON(w, http.StatusAccepted, out)
}

func reservationFilter(r *http.Request) (service.ReservationFilter, error) {
	q := r.URL.Query()
	f := service.ReservationFilter{
		UserName: strings.TrimSpace(q.Get("user")),
		Cursor:   q.Get("cursor"),
	}
	if s := q.Get("room"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return f, fmt.Errorf("room must be an integer: %w", errs.ErrInvalidInput)
		}
		f.RoomNumber = &n
	}
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return f, fmt.Errorf("limit must be a non-negative integer: %w", errs.ErrInvalidInput)
		}
		f.Limit = n
	}
	return f, nil
}
