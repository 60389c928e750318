package models

import (
	"fmt"
	"time"
)

// Room es una sala reservable
type Room struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"nombre" gorm:"size:100;not null"`
	Description string    `json:"descripcion" gorm:"type:text"`
	Capacity    int       `json:"capacidad" gorm:"not null"`
	Location    string    `json:"ubicacion" gorm:"size:100"`
	Available   bool      `json:"disponible" gorm:"not null;index"`
	Featured    bool      `json:"destacada" gorm:"not null"`
	ImageURL    string    `json:"imagen_url"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"-"`
}

// ValidateCapacity exige al menos una persona por sala
func (r *Room) ValidateCapacity() error {
	if r.Capacity < 1 {
		return fmt.Errorf("Asegúrese de que este valor sea mayor o igual a 1.")
	}
	return nil
}

// CatalogLine es la línea que describe la sala al asistente
func (r *Room) CatalogLine() string {
	return fmt.Sprintf("- ID %d: %s (Capacidad %d). %s", r.ID, r.Name, r.Capacity, r.Description)
}
