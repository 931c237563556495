package http

import (
	"net/http"

	"github.com/cwrk-planet/classroom-scheduler/internal/service"
	"github.com/cwrk-planet/classroom-scheduler/pkg/httputil"
)

// POST /rooms
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var in service.CreateRoomInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, "create room", err)
		return
	}

	out, err := h.roomSvc.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, "create room", err)
		return
	}

	httputil.JSON(w, http.StatusCreated, out)
}

// GET /rooms
func (h *Handler) ListActiveRooms(w http.ResponseWriter, r *http.Request) {
	out, err := h.roomSvc.ListActive(r.Context())
	if err != nil {
		writeError(w, r, "list rooms", err)
		return
	}

	httputil.JSON(w, http.StatusOK, out)
}

// GET /rooms/number/{number}
func (h *Handler) GetRoomByNumber(w http.ResponseWriter, r *http.Request) {
	number, err := intParam(r, "number")
	if err != nil {
		writeError(w, r, "get room", err)
		return
	}

	out, err := h.roomSvc.GetByNumber(r.Context(), number)
	if err != nil {
		writeError(w, r, "get room", err)
		return
	}

	httputil.JSON(w, http.StatusOK, out)
}

// PUT /rooms
func (h *Handler) EditRoom(w http.ResponseWriter, r *http.Request) {
	var in service.EditRoomInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, "edit room", err)
		return
	}

	out, err := h.roomSvc.Edit(r.Context(), in)
	if err != nil {
		writeError(w, r, "edit room", err)
		return
	}

	httputil.JSON(w, http.StatusAccepted, out)
}

// DELETE /rooms/{id}
func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		writeError(w, r, "delete room", err)
		return
	}

	msg, err := h.roomSvc.SoftDelete(r.Context(), id)
	if err != nil {
		writeError(w, r, "delete room", err)
		return
	}

	httputil.Text(w, http.StatusOK, msg)
}
