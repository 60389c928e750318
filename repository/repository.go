// Package repository encapsula el acceso a postgres mediante gorm.
// Los errores de "no encontrado" se traducen a errors.ErrRecordNotFound
// para que los servicios no dependan de gorm.
package repository

import (
	"errors"

	apperrors "reservas/errors"

	"gorm.io/gorm"
)

// Page define el desplazamiento de un listado; Limit 0 significa sin límite
type Page struct {
	Offset int
	Limit  int
}

func (p Page) apply(q *gorm.DB) *gorm.DB {
	if p.Offset > 0 {
		q = q.Offset(p.Offset)
	}
	if p.Limit > 0 {
		q = q.Limit(p.Limit)
	}
	return q
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrRecordNotFound
	}
	return err
}

// IsNotFound indica si err proviene de un registro inexistente
func IsNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrRecordNotFound)
}
