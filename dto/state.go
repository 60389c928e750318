package dto

type StateRequest struct {
	Name string `json:"nombre" validate:"required,max=50"`
}
