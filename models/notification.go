package models

import "time"

// NotificationKind distingue el origen de la notificación
type NotificationKind string

const (
	NotificationGeneral    NotificationKind = "general"
	NotificationEndingSoon NotificationKind = "aviso_fin"
	NotificationExtended   NotificationKind = "extension"
)

func (k NotificationKind) Valid() bool {
	switch k {
	case NotificationGeneral, NotificationEndingSoon, NotificationExtended:
		return true
	}
	return false
}

type Notification struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	ReservationID uint             `json:"reserva" gorm:"not null;index:idx_notification_reservation_kind"`
	Reservation   *Reservation     `json:"-" gorm:"foreignKey:ReservationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	UserID        *uint            `json:"usuario" gorm:"index"`
	User          *User            `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Kind          NotificationKind `json:"tipo" gorm:"size:20;not null;default:general;index:idx_notification_reservation_kind"`
	Message       string           `json:"mensaje" gorm:"type:text;not null"`
	Read          bool             `json:"leida" gorm:"not null;default:false"`
	CreatedAt     time.Time        `json:"creada_en" gorm:"autoCreateTime;index"`
}
