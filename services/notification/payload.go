package notification

import (
	"reservas/models"
	"reservas/utils"
)

// UnknownRoom se usa cuando la reserva no trae la sala cargada
const UnknownRoom = "Sala Desconocida"

// Payload es el cuerpo enviado a los destinos externos
type Payload struct {
	ReservationID uint   `json:"id_reserva"`
	Room          string `json:"sala"`
	ClientName    string `json:"cliente_nombre"`
	ClientEmail   string `json:"cliente_email"`
	ClientPhone   string `json:"cliente_telefono"`
	StartsAt      string `json:"fecha_inicio"`
	EndsAt        string `json:"fecha_fin"`
	Status        Status `json:"estado"`
	Message       string `json:"mensaje"`
}

func NewPayload(res *models.Reservation, status Status) Payload {
	room := res.RoomName()
	if room == "" {
		room = UnknownRoom
	}
	return Payload{
		ReservationID: res.ID,
		Room:          room,
		ClientName:    res.RequesterName,
		ClientEmail:   res.RequesterEmail,
		ClientPhone:   res.RequesterPhone,
		StartsAt:      utils.WebhookTimestamp(res.StartsAt),
		EndsAt:        utils.WebhookTimestamp(res.EndsAt),
		Status:        status,
		Message:       status.Message(),
	}
}
