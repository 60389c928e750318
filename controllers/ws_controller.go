package controllers

import (
	"reservas/middleware"
	"reservas/services/logger"
	"reservas/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// WebSocketController abre el canal de notificaciones en vivo. Los anónimos
// se conectan pero no reciben nada.
type WebSocketController struct {
	m      *melody.Melody
	logger logger.Logger
}

func NewWebSocketController(m *melody.Melody, log logger.Logger) *WebSocketController {
	if log == nil {
		log = logger.Nop()
	}
	wc := &WebSocketController{m: m, logger: log}
	m.HandleConnect(func(s *melody.Session) {
		wc.logger.Debug("Websocket conectado: %v", s.Keys[notification.SessionUserID])
	})
	m.HandleDisconnect(func(s *melody.Session) {
		wc.logger.Debug("Websocket desconectado: %v", s.Keys[notification.SessionUserID])
	})
	return wc
}

func (wc *WebSocketController) Connect(c *gin.Context) {
	keys := map[string]interface{}{}
	if user := middleware.CurrentUser(c); user != nil {
		keys[notification.SessionRole] = user.Role()
		keys[notification.SessionUserID] = user.ID
	}
	if err := wc.m.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
		wc.logger.Error("Error al abrir el websocket: %v", err)
	}
}
