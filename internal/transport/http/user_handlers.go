package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cwrk-planet/classroom-scheduler/internal/service"
	"github.com/cwrk-planet/classroom-scheduler/pkg/httputil"
)

// POST /users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in service.CreateUserInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, "create user", err)
		return
	}

	out, err := h.userSvc.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, "create user", err)
		return
	}

	httputil.JSON(w, http.StatusCreated, out)
}

// GET /users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	out, err := h.userSvc.ListAll(r.Context())
	if err != nil {
		writeError(w, r, "list users", err)
		return
	}

	httputil.JSON(w, http.StatusOK, out)
}

// GET /users/{user}, где user: имя или email
func (h *Handler) FindUser(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(chi.URLParam(r, "user"))

	out, err := h.userSvc.FindByNameOrEmail(r.Context(), query)
	if err != nil {
		writeError(w, r, "find user", err)
		return
	}

	httputil.JSON(w, http.StatusOK, out)
}

// PUT /users
func (h *Handler) EditUser(w http.ResponseWriter, r *http.Request) {
	var in service.EditUserInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, "edit user", err)
		return
	}

	out, err := h.userSvc.Edit(r.Context(), in)
	if err != nil {
		writeError(w, r, "edit user", err)
		return
	}

	httputil.JSON(w, http.StatusAccepted, out)
}

// DELETE /users/{user}
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "user")
	if err != nil {
		writeError(w, r, "delete user", err)
		return
	}

	msg, err := h.userSvc.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, "delete user", err)
		return
	}

	httputil.Text(w, http.StatusOK, msg)
}
