package services

import (
	"context"

	"reservas/dto"
	apperrors "reservas/errors"
	"reservas/models"
	"reservas/repository"
	"reservas/services/logger"
	"reservas/validator"
)

type NotificationRepo interface {
	NotificationStore
	Save(ctx context.Context, n *models.Notification) error
	FindByID(ctx context.Context, id uint) (*models.Notification, error)
	List(ctx context.Context, f repository.NotificationFilter) ([]models.Notification, int64, error)
	CountUnread(ctx context.Context, userID *uint) (int64, error)
	MarkAllRead(ctx context.Context, userID *uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type ReservationFinder interface {
	FindByID(ctx context.Context, id uint) (*models.Reservation, error)
}

type NotificationServiceOptions struct {
	Notifications NotificationRepo
	Reservations  ReservationFinder
	Publisher     NotificationPublisher
	Logger        logger.Logger
}

// NotificationService expone las notificaciones: el personal ve todas,
// el resto solo las propias.
type NotificationService struct {
	notifications NotificationRepo
	reservations  ReservationFinder
	publisher     NotificationPublisher
	logger        logger.Logger
}

func NewNotificationService(opts NotificationServiceOptions) *NotificationService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &NotificationService{
		notifications: opts.Notifications,
		reservations:  opts.Reservations,
		publisher:     opts.Publisher,
		logger:        opts.Logger,
	}
}

// scope devuelve nil para el personal o el id del usuario
func scope(actor *models.User) *uint {
	if actor == nil || actor.Role().IsStaffSide() {
		return nil
	}
	id := actor.ID
	return &id
}

func (s *NotificationService) List(ctx context.Context, actor *models.User, q dto.NotificationQuery) ([]models.Notification, int64, error) {
	q.Normalize()
	list, total, err := s.notifications.List(ctx, repository.NotificationFilter{
		UserID:        scope(actor),
		ReservationID: q.ReservationID,
		Unread:        q.Unread,
		Page:          repository.Page{Offset: q.Offset(), Limit: q.Limit},
	})
	if err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al listar notificaciones", err)
	}
	return list, total, nil
}

func (s *NotificationService) Get(ctx context.Context, actor *models.User, id uint) (*models.Notification, error) {
	n, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, notificationNotFound()
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al obtener la notificación", err)
	}
	if owner := scope(actor); owner != nil && (n.UserID == nil || *n.UserID != *owner) {
		return nil, notificationNotFound()
	}
	return n, nil
}

func (s *NotificationService) Create(ctx context.Context, req dto.NotificationRequest) (*models.Notification, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	res, err := s.reservations.FindByID(ctx, req.ReservationID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, validator.Field("reserva", invalidPK(req.ReservationID))
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al buscar la reserva", err)
	}

	n := &models.Notification{
		ReservationID: res.ID,
		UserID:        req.UserID,
		Kind:          req.Kind,
		Message:       req.Message,
		Read:          req.Read,
	}
	if n.UserID == nil {
		n.UserID = res.UserID
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al crear la notificación", err)
	}
	s.publish(*n)
	return n, nil
}

func (s *NotificationService) Update(ctx context.Context, id uint, patch dto.NotificationPatch) (*models.Notification, error) {
	if err := validator.Struct(patch); err != nil {
		return nil, err
	}
	n, err := s.Get(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if patch.Message != nil {
		n.Message = *patch.Message
	}
	if patch.Read != nil {
		n.Read = *patch.Read
	}
	if err := s.notifications.Save(ctx, n); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al actualizar la notificación", err)
	}
	return n, nil
}

func (s *NotificationService) Delete(ctx context.Context, id uint) error {
	if err := s.notifications.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return notificationNotFound()
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al eliminar la notificación", err)
	}
	return nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, actor *models.User) (int64, error) {
	count, err := s.notifications.CountUnread(ctx, scope(actor))
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al contar notificaciones", err)
	}
	return count, nil
}

// MarkRead marca una notificación visible para el actor como leída
func (s *NotificationService) MarkRead(ctx context.Context, actor *models.User, id uint) (*models.Notification, error) {
	n, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if n.Read {
		return n, nil
	}
	n.Read = true
	if err := s.notifications.Save(ctx, n); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al actualizar la notificación", err)
	}
	return n, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, actor *models.User) (int64, error) {
	updated, err := s.notifications.MarkAllRead(ctx, scope(actor))
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al actualizar notificaciones", err)
	}
	return updated, nil
}

func (s *NotificationService) publish(n models.Notification) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(n); err != nil {
		s.logger.Debug("Notificación %d no publicada: %v", n.ID, err)
	}
}

func notificationNotFound() error {
	return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Notificación no encontrada", apperrors.ErrRecordNotFound)
}
