package dto

import (
	"bytes"
	"fmt"
	"time"

	"reservas/constants"
	"reservas/response"
	"reservas/utils"

	"github.com/goccy/go-json"
)

// PaginatedResponse es la estructura común para respuestas paginadas
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// ListQuery son los parámetros de paginación de los listados
type ListQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize aplica los valores por defecto y los topes
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = constants.DefaultPageSize
	}
	if q.Limit > constants.MaxPageSize {
		q.Limit = constants.MaxPageSize
	}
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// DateTime acepta RFC3339 y los formatos de los formularios datetime-local
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("la fecha debe ser un texto: %w", err)
	}
	t, err := utils.ParseDateTime(raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}
