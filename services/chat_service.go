package services

import (
	"context"
	"fmt"
	"strings"

	"reservas/dto"
	"reservas/models"
	"reservas/services/logger"

	"github.com/goccy/go-json"
)

// Roles de los turnos enviados al modelo
const (
	TurnUser  = "user"
	TurnModel = "model"
)

const (
	noRoomsText = "No hay salas disponibles."
	readyAck    = `{"respuesta": "Entendido, sistema listo.", "intencion": "CONSULTA", "id_sala": null}`
)

type ChatTurn struct {
	Role string
	Text string
}

// Completer envía la conversación al modelo y devuelve su texto
type Completer interface {
	Complete(ctx context.Context, turns []ChatTurn) (string, error)
}

// RoomCatalog lista las salas que el asistente puede ofrecer
type RoomCatalog interface {
	AvailableRooms(ctx context.Context) ([]models.Room, error)
}

// Assistant es el agente de reservas conversacional
type Assistant struct {
	rooms     RoomCatalog
	completer Completer
	logger    logger.Logger
}

func NewAssistant(rooms RoomCatalog, completer Completer, log logger.Logger) *Assistant {
	if log == nil {
		log = logger.Nop()
	}
	return &Assistant{rooms: rooms, completer: completer, logger: log}
}

// Reply nunca falla: cualquier error se reemplaza por la respuesta de respaldo
func (a *Assistant) Reply(ctx context.Context, req dto.ChatRequest) dto.ChatReply {
	reply, err := a.reply(ctx, req)
	if err != nil {
		a.logger.Error("Error del asistente: %v", err)
		return dto.FallbackReply()
	}
	return reply
}

func (a *Assistant) reply(ctx context.Context, req dto.ChatRequest) (dto.ChatReply, error) {
	if a.completer == nil {
		return dto.ChatReply{}, fmt.Errorf("asistente sin modelo configurado")
	}
	rooms, err := a.rooms.AvailableRooms(ctx)
	if err != nil {
		return dto.ChatReply{}, fmt.Errorf("cargando salas: %w", err)
	}

	turns := BuildTurns(SystemPrompt(rooms), req.History, req.Message)
	text, err := a.completer.Complete(ctx, turns)
	if err != nil {
		return dto.ChatReply{}, err
	}
	return ParseReply(text)
}

// SystemPrompt describe al modelo su papel, las salas y el formato de salida
func SystemPrompt(rooms []models.Room) string {
	var catalog strings.Builder
	for i := range rooms {
		catalog.WriteString(rooms[i].CatalogLine())
		catalog.WriteString("\n")
	}
	info := catalog.String()
	if info == "" {
		info = noRoomsText
	}

	return fmt.Sprintf(`Eres 'ChrisBot', el agente de reservas inteligente.

TUS DATOS (SALAS):
%s

FORMATO JSON OBLIGATORIO (NO MARKDOWN):
{
    "respuesta": "Texto aquí...",
    "intencion": "CONSULTA" o "RESERVAR",
    "id_sala": null o el ID numérico
}

REGLAS:
1. Mantén el hilo de la conversación usando el historial.
2. Si el usuario dice "esa misma" o "la que dijiste", revisa el historial para saber cuál es.
3. Si detectas intención de reservar, devuelve "RESERVAR" y el ID correcto.
4. Responde en español.
`, info)
}

// BuildTurns arma la conversación: prompt, acuse del modelo, historial y mensaje nuevo
func BuildTurns(system string, history []dto.ChatHistoryItem, message string) []ChatTurn {
	turns := make([]ChatTurn, 0, len(history)+3)
	turns = append(turns,
		ChatTurn{Role: TurnUser, Text: system},
		ChatTurn{Role: TurnModel, Text: readyAck},
	)
	for _, h := range history {
		text := h.Content()
		if text == "" {
			continue
		}
		role := TurnUser
		if h.IsBot() {
			role = TurnModel
		}
		turns = append(turns, ChatTurn{Role: role, Text: text})
	}
	return append(turns, ChatTurn{Role: TurnUser, Text: message})
}

// ParseReply interpreta el JSON del modelo, tolerando cercos de markdown
func ParseReply(text string) (dto.ChatReply, error) {
	text = stripFences(text)

	var raw struct {
		Respuesta string          `json:"respuesta"`
		Intencion string          `json:"intencion"`
		IDSala    json.RawMessage `json:"id_sala"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return dto.ChatReply{}, fmt.Errorf("respuesta del modelo no es JSON: %w", err)
	}

	intent := strings.ToUpper(strings.TrimSpace(raw.Intencion))
	if intent != dto.IntentQuery && intent != dto.IntentReserve {
		return dto.ChatReply{}, fmt.Errorf("intención desconocida %q", raw.Intencion)
	}
	room, ok := dto.ParseRoomRef(raw.IDSala)
	if !ok {
		return dto.ChatReply{}, fmt.Errorf("id_sala inválido: %s", string(raw.IDSala))
	}
	return dto.ChatReply{Respuesta: raw.Respuesta, Intencion: intent, IDSala: room}, nil
}

func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
