package dto

import (
	"time"

	"reservas/models"
)

// ReservationRequest es el cuerpo de creación y de PUT
type ReservationRequest struct {
	RoomID         uint      `json:"sala" validate:"required"`
	UserID         *uint     `json:"usuario"`
	StateID        *uint     `json:"estado"`
	StartsAt       *DateTime `json:"fecha_inicio" validate:"required"`
	EndsAt         *DateTime `json:"fecha_fin" validate:"required"`
	RequesterName  string    `json:"solicitante_nombre" validate:"max=100"`
	RequesterEmail string    `json:"solicitante_email" validate:"omitempty,email,max=254"`
	RequesterPhone string    `json:"solicitante_telefono" validate:"max=20"`
}

// ReservationPatch es el cuerpo de PATCH; los campos nil no se tocan
type ReservationPatch struct {
	RoomID         *uint     `json:"sala" validate:"omitempty,min=1"`
	UserID         *uint     `json:"usuario"`
	StateID        *uint     `json:"estado"`
	StartsAt       *DateTime `json:"fecha_inicio"`
	EndsAt         *DateTime `json:"fecha_fin"`
	RequesterName  *string   `json:"solicitante_nombre" validate:"omitempty,max=100"`
	RequesterEmail *string   `json:"solicitante_email" validate:"omitempty,email,max=254"`
	RequesterPhone *string   `json:"solicitante_telefono" validate:"omitempty,max=20"`
}

// ToPatch convierte un PUT en un PATCH que reemplaza todos los campos
func (r ReservationRequest) ToPatch() ReservationPatch {
	return ReservationPatch{
		RoomID:         &r.RoomID,
		UserID:         r.UserID,
		StateID:        r.StateID,
		StartsAt:       r.StartsAt,
		EndsAt:         r.EndsAt,
		RequesterName:  &r.RequesterName,
		RequesterEmail: &r.RequesterEmail,
		RequesterPhone: &r.RequesterPhone,
	}
}

// ReservationQuery son los filtros del listado de reservas
type ReservationQuery struct {
	ListQuery
	RoomID  uint   `form:"sala"`
	StateID uint   `form:"estado"`
	UserID  uint   `form:"usuario"`
	From    string `form:"desde"`
	To      string `form:"hasta"`
}

type ReservationResponse struct {
	ID             uint      `json:"id"`
	UserID         *uint     `json:"usuario"`
	RoomID         uint      `json:"sala"`
	RoomName       string    `json:"sala_nombre,omitempty"`
	StartsAt       time.Time `json:"fecha_inicio"`
	EndsAt         time.Time `json:"fecha_fin"`
	StateID        *uint     `json:"estado"`
	StateDisplay   *string   `json:"estado_display"`
	RequesterName  string    `json:"solicitante_nombre"`
	RequesterEmail string    `json:"solicitante_email"`
	RequesterPhone string    `json:"solicitante_telefono"`
	CreatedAt      time.Time `json:"creada_en"`
}

func NewReservationResponse(r *models.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		RoomID:         r.RoomID,
		RoomName:       r.RoomName(),
		StartsAt:       r.StartsAt,
		EndsAt:         r.EndsAt,
		StateID:        r.StateID,
		RequesterName:  r.RequesterName,
		RequesterEmail: r.RequesterEmail,
		RequesterPhone: r.RequesterPhone,
		CreatedAt:      r.CreatedAt,
	}
	if r.State != nil {
		name := r.State.Name
		resp.StateDisplay = &name
	}
	return resp
}

func NewReservationResponses(list []models.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(list))
	for i := range list {
		out = append(out, NewReservationResponse(&list[i]))
	}
	return out
}

// ConfirmResponse es la respuesta de la acción confirmar
type ConfirmResponse struct {
	Status string `json:"status"`
}

// CancelResponse es la respuesta de la acción cancelar
type CancelResponse struct {
	Status string `json:"status"`
	Msg    string `json:"msg"`
}
