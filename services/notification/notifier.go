package notification

import (
	"context"

	"reservas/models"
	"reservas/services/logger"
)

// Sink es un destino externo de los cambios de estado
type Sink interface {
	Name() string
	Send(ctx context.Context, p Payload) error
}

// StateChangeNotifier reacciona a cada reserva guardada. Los fallos de los
// destinos se registran y nunca se devuelven al llamador.
type StateChangeNotifier struct {
	sinks  []Sink
	logger logger.Logger
}

func NewStateChangeNotifier(log logger.Logger, sinks ...Sink) *StateChangeNotifier {
	return &StateChangeNotifier{sinks: sinks, logger: log}
}

// ReservationSaved se invoca después de confirmar la escritura
func (n *StateChangeNotifier) ReservationSaved(ctx context.Context, res *models.Reservation, created bool) {
	status, ok := DeriveStatus(created, res.StateName())
	if !ok {
		return
	}

	payload := NewPayload(res, status)
	n.logger.Info("Notificando %s de la reserva %d", status, res.ID)

	for _, sink := range n.sinks {
		if err := sink.Send(ctx, payload); err != nil {
			n.logger.Error("Error enviando reserva %d a %s: %v", res.ID, sink.Name(), err)
			continue
		}
		n.logger.Debug("Reserva %d enviada a %s", res.ID, sink.Name())
	}
}
