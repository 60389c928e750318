package notification

import (
	"fmt"
	"time"

	"reservas/models"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Claves guardadas en la sesión de melody
const (
	SessionRole   = "role"
	SessionUserID = "user_id"
)

// MelodyService empuja mensajes a los websockets abiertos
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

// Publish envía la notificación al personal conectado y a su destinatario
func (s *MelodyService) Publish(n models.Notification) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	data, err := json.Marshal(struct {
		Type         string              `json:"type"`
		Notification models.Notification `json:"notificacion"`
	}{Type: "notificacion", Notification: n})
	if err != nil {
		return err
	}
	return s.m.BroadcastFilter(data, func(sess *melody.Session) bool {
		return ShouldDeliver(sess.Keys, n)
	})
}

// ShouldDeliver decide si una sesión recibe la notificación
func ShouldDeliver(keys map[string]interface{}, n models.Notification) bool {
	if role, ok := keys[SessionRole].(models.Role); ok && role.IsStaffSide() {
		return true
	}
	if n.UserID == nil {
		return false
	}
	id, ok := keys[SessionUserID].(uint)
	return ok && id == *n.UserID
}

// MessageBuilder arma los textos de las notificaciones de fin de reserva
type MessageBuilder struct {
	roomName string
}

func NewMessageBuilder(roomName string) *MessageBuilder {
	return &MessageBuilder{roomName: roomName}
}

func (b *MessageBuilder) EndingSoon(lookahead time.Duration) string {
	return fmt.Sprintf("Tu reserva en la sala %s está por terminar en menos de %d minutos.", b.roomName, int(lookahead.Minutes()))
}

func (b *MessageBuilder) Extended(step time.Duration) string {
	return fmt.Sprintf("Tu reserva en la sala %s se ha extendido automáticamente por %d minutos porque la sala estaba libre.", b.roomName, int(step.Minutes()))
}
