package models

import "reservas/utils"

// ReservationState es un estado de reserva con nombre libre
type ReservationState struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"nombre" gorm:"size:50;not null"`
}

// Is compara el nombre sin distinguir mayúsculas ni acentos
func (s *ReservationState) Is(name string) bool {
	if s == nil {
		return false
	}
	return utils.NormalizeText(s.Name) == utils.NormalizeText(name)
}
