package builders

import (
	"time"

	"reservas/models"
)

// ReservationBuilder arma una reserva paso a paso
type ReservationBuilder struct {
	reservation *models.Reservation
}

// NewReservationBuilder crea una instancia vacía
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{},
	}
}

// WithUser asigna el usuario dueño
func (b *ReservationBuilder) WithUser(userID uint) *ReservationBuilder {
	b.reservation.UserID = &userID
	return b
}

// WithRoom asigna la sala
func (b *ReservationBuilder) WithRoom(roomID uint) *ReservationBuilder {
	b.reservation.RoomID = roomID
	return b
}

// WithState asigna el estado
func (b *ReservationBuilder) WithState(stateID uint) *ReservationBuilder {
	b.reservation.StateID = &stateID
	return b
}

// WithRequester asigna los datos de contacto del solicitante
func (b *ReservationBuilder) WithRequester(name, email, phone string) *ReservationBuilder {
	b.reservation.RequesterName = name
	b.reservation.RequesterEmail = email
	b.reservation.RequesterPhone = phone
	return b
}

// WithInterval asigna inicio y fin
func (b *ReservationBuilder) WithInterval(start, end time.Time) *ReservationBuilder {
	b.reservation.StartsAt = start
	b.reservation.EndsAt = end
	return b
}

func (b *ReservationBuilder) Build() *models.Reservation {
	return b.reservation
}
