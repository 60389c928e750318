package services

import (
	"context"
	"fmt"
	"time"

	"reservas/constants"
	"reservas/models"
	"reservas/services/logger"
	"reservas/services/notification"
)

// NotificationStore guarda las notificaciones del job
type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	ExistsForReservation(ctx context.Context, reservationID uint, kind models.NotificationKind) (bool, error)
}

// ReservationSaver es la vía única de escritura de reservas
type ReservationSaver interface {
	Save(ctx context.Context, res *models.Reservation) error
}

// NotificationPublisher empuja notificaciones en vivo (websocket)
type NotificationPublisher interface {
	Publish(n models.Notification) error
}

// ExtendReport resume una ejecución del job
type ExtendReport struct {
	Checked  int
	Warned   int
	Extended int
}

type AutoExtendOptions struct {
	Reservations ReservationStore
	Saver        ReservationSaver
	Notices      NotificationStore
	Publisher    NotificationPublisher
	Logger       logger.Logger
	Lookahead    time.Duration
	Step         time.Duration
}

// AutoExtendService avisa de las reservas que terminan pronto y las
// alarga si la sala sigue libre.
type AutoExtendService struct {
	reservations ReservationStore
	saver        ReservationSaver
	notices      NotificationStore
	publisher    NotificationPublisher
	checker      *ConflictChecker
	logger       logger.Logger
	lookahead    time.Duration
	step         time.Duration
}

func NewAutoExtendService(opts AutoExtendOptions) *AutoExtendService {
	if opts.Lookahead <= 0 {
		opts.Lookahead = constants.DefaultLookahead
	}
	if opts.Step <= 0 {
		opts.Step = constants.DefaultExtension
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &AutoExtendService{
		reservations: opts.Reservations,
		saver:        opts.Saver,
		notices:      opts.Notices,
		publisher:    opts.Publisher,
		checker:      NewConflictChecker(opts.Reservations),
		logger:       opts.Logger,
		lookahead:    opts.Lookahead,
		step:         opts.Step,
	}
}

// Run ejecuta una pasada. Los errores de persistencia cortan la pasada.
func (s *AutoExtendService) Run(ctx context.Context, now time.Time) (ExtendReport, error) {
	var report ExtendReport

	ending, err := s.reservations.EndingBetween(ctx, now, now.Add(s.lookahead))
	if err != nil {
		return report, fmt.Errorf("buscando reservas por terminar: %w", err)
	}

	for i := range ending {
		res := &ending[i]
		report.Checked++
		messages := notification.NewMessageBuilder(res.RoomName())

		warned, err := s.warnOnce(ctx, res, messages)
		if err != nil {
			return report, err
		}
		if warned {
			report.Warned++
		}

		currentEnd := res.EndsAt
		candidate := currentEnd.Add(s.step)
		free, err := s.checker.Available(ctx, res.RoomID, currentEnd, candidate, res.ID)
		if err != nil {
			return report, fmt.Errorf("revisando conflictos de la reserva %d: %w", res.ID, err)
		}
		if !free {
			s.logger.Debug("Reserva %d no se extiende: sala %d ocupada", res.ID, res.RoomID)
			continue
		}

		res.EndsAt = candidate
		if err := s.saver.Save(ctx, res); err != nil {
			return report, fmt.Errorf("extendiendo la reserva %d: %w", res.ID, err)
		}
		if err := s.notify(ctx, res, models.NotificationExtended, messages.Extended(s.step)); err != nil {
			return report, err
		}
		report.Extended++
		s.logger.Info("Reserva %d extendida hasta %s", res.ID, candidate.Format(time.RFC3339))
	}

	return report, nil
}

func (s *AutoExtendService) warnOnce(ctx context.Context, res *models.Reservation, messages *notification.MessageBuilder) (bool, error) {
	exists, err := s.notices.ExistsForReservation(ctx, res.ID, models.NotificationEndingSoon)
	if err != nil {
		return false, fmt.Errorf("buscando avisos de la reserva %d: %w", res.ID, err)
	}
	if exists {
		return false, nil
	}
	if err := s.notify(ctx, res, models.NotificationEndingSoon, messages.EndingSoon(s.lookahead)); err != nil {
		return false, err
	}
	return true, nil
}

func (s *AutoExtendService) notify(ctx context.Context, res *models.Reservation, kind models.NotificationKind, msg string) error {
	n := &models.Notification{
		ReservationID: res.ID,
		UserID:        res.UserID,
		Kind:          kind,
		Message:       msg,
	}
	if err := s.notices.Create(ctx, n); err != nil {
		return fmt.Errorf("creando notificación %s de la reserva %d: %w", kind, res.ID, err)
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(*n); err != nil {
			s.logger.Debug("Notificación %d no publicada: %v", n.ID, err)
		}
	}
	return nil
}
