package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email       string         `gorm:"size:254" json:"email"`
	FirstName   string         `gorm:"size:150" json:"first_name"`
	LastName    string         `gorm:"size:150" json:"last_name"`
	Password    string         `gorm:"not null" json:"-"`
	IsStaff     bool           `gorm:"not null" json:"is_staff"`
	IsSuperuser bool           `gorm:"not null" json:"-"`
	IsActive    bool           `gorm:"not null" json:"is_active"`
	Groups      pq.StringArray `gorm:"type:text[]" json:"groups"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"date_joined"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"-"`
}

// Role se calcula en cada lectura, nunca se guarda
func (u *User) Role() Role {
	return DeriveRole(u.IsStaff, u.Groups)
}

// InGroup comprueba la pertenencia a un grupo sin distinguir mayúsculas
func (u *User) InGroup(name string) bool {
	for _, g := range u.Groups {
		if strings.EqualFold(g, name) {
			return true
		}
	}
	return false
}

// AddGroup añade el grupo si el usuario aún no pertenece a él
func (u *User) AddGroup(name string) {
	if !u.InGroup(name) {
		u.Groups = append(u.Groups, name)
	}
}

// RemoveGroup quita el grupo, ignorando mayúsculas
func (u *User) RemoveGroup(name string) {
	kept := u.Groups[:0]
	for _, g := range u.Groups {
		if !strings.EqualFold(g, name) {
			kept = append(kept, g)
		}
	}
	u.Groups = kept
}

// DisplayName es "nombre apellido" o el username si ambos están vacíos
func (u *User) DisplayName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}
	return full
}
