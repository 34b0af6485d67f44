package http

import (
	"time"

	"github.com/mbraun/identity/internal/identity/domain"
)

type RoleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserResponse is the wire shape of an account. The password hash never
// leaves the service.
type UserResponse struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	FullName  string         `json:"fullName"`
	CreatedAt time.Time      `json:"createdAt"`
	Roles     []RoleResponse `json:"roles"`
}

type CreateUserRequest struct {
	Email    string   `json:"email"`
	FullName string   `json:"fullName"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

type CreateRoleRequest struct {
	Name string `json:"name"`
}

type RoleToUserRequest struct {
	Email    string `json:"email"`
	RoleName string `json:"roleName"`
}

type SignUpRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func toRoleResponse(r domain.Role) RoleResponse {
	return RoleResponse{ID: r.ID, Name: r.Name}
}

func toUserResponse(u domain.User) UserResponse {
	roles := make([]RoleResponse, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = toRoleResponse(r)
	}
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		Roles:     roles,
	}
}

func toUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}
