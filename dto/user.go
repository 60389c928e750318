package dto

import "reservas/models"

// RegisterRequest es el cuerpo del registro público
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=150,username"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	Password string `json:"password" validate:"required,min=8,notnumeric"`
}

// UserRequest es el cuerpo de creación y PUT de usuarios (solo admin)
type UserRequest struct {
	Username  string `json:"username" validate:"required,max=150,username"`
	Email     string `json:"email" validate:"omitempty,email,max=254"`
	Password  string `json:"password" validate:"required,min=8,notnumeric"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	RoleWrite string `json:"role_write" validate:"omitempty,oneof=admin cajero usuario"`
}

type UserPatch struct {
	Username  *string `json:"username" validate:"omitempty,max=150,username"`
	Email     *string `json:"email" validate:"omitempty,email,max=254"`
	Password  *string `json:"password" validate:"omitempty,min=8,notnumeric"`
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
	RoleWrite *string `json:"role_write" validate:"omitempty,oneof=admin cajero usuario"`
}

type UserResponse struct {
	ID        uint        `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	IsStaff   bool        `json:"is_staff"`
	IsActive  bool        `json:"is_active"`
	Role      models.Role `json:"role"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
		IsActive:  u.IsActive,
		Role:      u.Role(),
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

// ToPatch convierte un PUT en un PATCH que reemplaza todos los campos
func (r UserRequest) ToPatch() UserPatch {
	p := UserPatch{
		Username:  &r.Username,
		Email:     &r.Email,
		Password:  &r.Password,
		FirstName: &r.FirstName,
		LastName:  &r.LastName,
	}
	if r.RoleWrite != "" {
		p.RoleWrite = &r.RoleWrite
	}
	return p
}
