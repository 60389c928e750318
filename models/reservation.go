package models

import "time"

type Reservation struct {
	ID             uint              `json:"id" gorm:"primaryKey"`
	RoomID         uint              `json:"sala" gorm:"not null;index:idx_reservation_room_interval"`
	Room           *Room             `json:"-" gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	UserID         *uint             `json:"usuario" gorm:"index"`
	User           *User             `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	StateID        *uint             `json:"estado"`
	State          *ReservationState `json:"-" gorm:"foreignKey:StateID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	StartsAt       time.Time         `json:"fecha_inicio" gorm:"not null;index:idx_reservation_room_interval"`
	EndsAt         time.Time         `json:"fecha_fin" gorm:"not null;index:idx_reservation_room_interval;index"`
	RequesterName  string            `json:"solicitante_nombre" gorm:"size:100"`
	RequesterEmail string            `json:"solicitante_email" gorm:"size:254"`
	RequesterPhone string            `json:"solicitante_telefono" gorm:"size:20"`
	CreatedAt      time.Time         `json:"creada_en" gorm:"autoCreateTime;index"`
}

// StateName devuelve el nombre del estado cargado o "" si no tiene
func (r *Reservation) StateName() string {
	if r.State == nil {
		return ""
	}
	return r.State.Name
}

// RoomName devuelve el nombre de la sala cargada o "" si no se precargó
func (r *Reservation) RoomName() string {
	if r.Room == nil {
		return ""
	}
	return r.Room.Name
}
