package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos aceptados para fechas con hora; los que no llevan zona se
// interpretan en la zona local del servidor.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDateTime interpreta una fecha con hora en cualquiera de los formatos aceptados
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("fecha vacía")
	}
	for _, layout := range dateTimeLayouts {
		var (
			t   time.Time
			err error
		)
		if strings.Contains(layout, "Z07") {
			t, err = time.Parse(layout, value)
		} else {
			t, err = time.ParseInLocation(layout, value, time.Local)
		}
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("formato de fecha inválido: %q", value)
}

// WebhookTimestamp da el formato "2006-01-02 15:04:05-07:00" usado en el payload
func WebhookTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05-07:00")
}
