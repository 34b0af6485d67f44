package http

import (
	"net/http"

	"github.com/mbraun/identity/internal/identity/service"
	"github.com/mbraun/identity/pkg/httpx"
)

// UsersHandler exposes the user management endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleList returns every user with their role sets.
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponses(users))
}

// HandleGet returns a single user looked up by email.
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetUserByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleCreate creates an account from a full payload.
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.UserService.CreateUser(r.Context(), service.CreateUserParams{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

// HandleUpdate replaces the record keyed by the payload's email. Fields
// omitted from the payload are dropped from the stored record.
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.UserService.UpdateUser(r.Context(), service.CreateUserParams{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleDelete removes a user by email.
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.DeleteUserByEmail(r.Context(), r.PathValue("email")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteAll removes every user.
func (h *UsersHandler) HandleDeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.DeleteAllUsers(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAddRole assigns a named role to a user.
func (h *UsersHandler) HandleAddRole(w http.ResponseWriter, r *http.Request) {
	var req RoleToUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.UserService.AddRoleToUser(r.Context(), req.Email, req.RoleName)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

// HandleRemoveRole removes a named role from a user.
func (h *UsersHandler) HandleRemoveRole(w http.ResponseWriter, r *http.Request) {
	var req RoleToUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.UserService.RemoveRoleFromUser(r.Context(), req.Email, req.RoleName)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
