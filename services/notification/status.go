package notification

import (
	"fmt"
	"strings"

	"reservas/utils"
)

// Status es el estado que se comunica al cliente por el webhook
type Status string

const (
	StatusReceived  Status = "RECIBIDA"
	StatusConfirmed Status = "CONFIRMADA"
	StatusCancelled Status = "CANCELADA"
)

// DeriveStatus decide qué comunicar tras guardar una reserva.
// ok es false cuando no hay nada que enviar.
func DeriveStatus(created bool, stateName string) (Status, bool) {
	if created {
		return StatusReceived, true
	}
	switch Status(utils.UpperASCII(stateName)) {
	case StatusConfirmed:
		return StatusConfirmed, true
	case StatusCancelled:
		return StatusCancelled, true
	}
	return "", false
}

// Message es el texto que acompaña al estado
func (s Status) Message() string {
	if s == StatusReceived {
		return "Hemos recibido tu solicitud de reserva."
	}
	return fmt.Sprintf("Tu reserva ha sido %s.", strings.ToLower(string(s)))
}
