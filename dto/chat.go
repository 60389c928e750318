package dto

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ChatRequest es el cuerpo de /chatbot
type ChatRequest struct {
	Message string            `json:"message"`
	History []ChatHistoryItem `json:"history"`
}

// ChatHistoryItem acepta "role" o "sender", y "parts" (lista o texto) o "text"
type ChatHistoryItem struct {
	Role   string          `json:"role"`
	Sender string          `json:"sender"`
	Parts  json.RawMessage `json:"parts"`
	Text   string          `json:"text"`
}

// IsBot indica si el turno lo escribió el asistente
func (h ChatHistoryItem) IsBot() bool {
	for _, r := range []string{h.Role, h.Sender} {
		switch strings.ToLower(strings.TrimSpace(r)) {
		case "bot", "model", "assistant":
			return true
		}
	}
	return false
}

// Content devuelve el primer texto del turno
func (h ChatHistoryItem) Content() string {
	if len(h.Parts) > 0 {
		var list []json.RawMessage
		if err := json.Unmarshal(h.Parts, &list); err == nil {
			if len(list) == 0 {
				return strings.TrimSpace(h.Text)
			}
			return rawText(list[0])
		}
		if text := rawText(h.Parts); text != "" {
			return text
		}
	}
	return strings.TrimSpace(h.Text)
}

func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return strings.TrimSpace(obj.Text)
	}
	if string(raw) == "null" {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

// Intenciones válidas del asistente
const (
	IntentQuery   = "CONSULTA"
	IntentReserve = "RESERVAR"
)

// ChatReply es la respuesta del asistente
type ChatReply struct {
	Respuesta string `json:"respuesta"`
	Intencion string `json:"intencion"`
	IDSala    *int64 `json:"id_sala"`
}

// FallbackReply es la respuesta cuando falla el modelo
func FallbackReply() ChatReply {
	return ChatReply{
		Respuesta: "Lo siento, perdí la conexión con mi cerebro digital. ¿Podrías repetirlo?",
		Intencion: IntentQuery,
		IDSala:    nil,
	}
}

// ParseRoomRef acepta un número, un texto numérico o null
func ParseRoomRef(raw json.RawMessage) (*int64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if v, err := n.Int64(); err == nil {
			return &v, true
		}
		return nil, false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, true
		}
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return &v, true
		}
	}
	return nil, false
}
