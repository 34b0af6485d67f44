package http

import (
	"net/http"

	"github.com/mbraun/identity/internal/identity/service"
	"github.com/mbraun/identity/pkg/httpx"
)

// SignUpRoleName is the role every self-registered account receives.
const SignUpRoleName = "USER"

// AuthHandler exposes the self-service signUp/signIn endpoints.
type AuthHandler struct {
	UserService *service.UserService
}

// HandleSignUp registers a new account with the default USER role.
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.UserService.CreateUser(r.Context(), service.CreateUserParams{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Roles:    []string{SignUpRoleName},
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

// HandleSignIn authenticates by email and password. An unknown email is a
// 404; a wrong password is a 400 carrying the credential failure reason.
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.UserService.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.UserService.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
