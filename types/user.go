package types

import "reservas/models"

// UserInfoResponse es la respuesta de /user-info
type UserInfoResponse struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	Nombre   string      `json:"nombre"`
}

func NewUserInfoResponse(u *models.User) UserInfoResponse {
	return UserInfoResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role(),
		Nombre:   u.DisplayName(),
	}
}
