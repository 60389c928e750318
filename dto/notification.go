package dto

import "reservas/models"

type NotificationRequest struct {
	ReservationID uint                    `json:"reserva" validate:"required"`
	UserID        *uint                   `json:"usuario"`
	Kind          models.NotificationKind `json:"tipo" validate:"omitempty,notification_kind"`
	Message       string                  `json:"mensaje" validate:"required"`
	Read          bool                    `json:"leida"`
}

type NotificationPatch struct {
	Message *string `json:"mensaje" validate:"omitempty,min=1"`
	Read    *bool   `json:"leida"`
}

type NotificationQuery struct {
	ListQuery
	ReservationID uint `form:"reserva"`
	Unread        bool `form:"sin_leer"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"actualizadas"`
}
