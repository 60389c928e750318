package services

import (
	"context"
	"fmt"
	"time"

	"reservas/builders"
	"reservas/constants"
	"reservas/dto"
	apperrors "reservas/errors"
	"reservas/models"
	"reservas/repository"
	"reservas/services/logger"
	"reservas/utils"
	"reservas/validator"
)

// ReservationStore es la persistencia de reservas que usan los servicios
type ReservationStore interface {
	OverlapFinder
	Create(ctx context.Context, res *models.Reservation) error
	Save(ctx context.Context, res *models.Reservation) error
	FindByID(ctx context.Context, id uint) (*models.Reservation, error)
	List(ctx context.Context, f repository.ReservationFilter) ([]models.Reservation, int64, error)
	Delete(ctx context.Context, id uint) error
	EndingBetween(ctx context.Context, from, to time.Time) ([]models.Reservation, error)
}

type StateFinder interface {
	FindByID(ctx context.Context, id uint) (*models.ReservationState, error)
	FindByName(ctx context.Context, name string) (*models.ReservationState, error)
}

type RoomFinder interface {
	FindByID(ctx context.Context, id uint) (*models.Room, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// ReservationListener recibe cada reserva ya guardada
type ReservationListener interface {
	ReservationSaved(ctx context.Context, res *models.Reservation, created bool)
}

type ReservationServiceOptions struct {
	Store     ReservationStore
	States    StateFinder
	Rooms     RoomFinder
	Users     UserFinder
	Listeners []ReservationListener
	Logger    logger.Logger
	// RequireOrderedInterval rechaza reservas cuyo fin no sea posterior al inicio
	RequireOrderedInterval bool
}

// ReservationService concentra todas las escrituras de reservas. Cada
// escritura confirmada se anuncia a los listeners registrados.
type ReservationService struct {
	store          ReservationStore
	states         StateFinder
	rooms          RoomFinder
	users          UserFinder
	listeners      []ReservationListener
	logger         logger.Logger
	requireOrdered bool
}

func NewReservationService(opts ReservationServiceOptions) *ReservationService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &ReservationService{
		store:          opts.Store,
		states:         opts.States,
		rooms:          opts.Rooms,
		users:          opts.Users,
		listeners:      opts.Listeners,
		logger:         opts.Logger,
		requireOrdered: opts.RequireOrderedInterval,
	}
}

// Create registra una solicitud de reserva. actor puede ser nil (solicitud pública).
func (s *ReservationService) Create(ctx context.Context, req dto.ReservationRequest, actor *models.User) (*models.Reservation, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if s.requireOrdered {
		if err := validator.Interval(req.StartsAt.Time, req.EndsAt.Time); err != nil {
			return nil, err
		}
	}

	if err := s.checkRoom(ctx, req.RoomID); err != nil {
		return nil, err
	}

	builder := builders.NewReservationBuilder().
		WithRoom(req.RoomID).
		WithInterval(req.StartsAt.Time, req.EndsAt.Time).
		WithRequester(req.RequesterName, req.RequesterEmail, req.RequesterPhone)

	switch {
	case req.UserID != nil:
		if err := s.checkUser(ctx, *req.UserID); err != nil {
			return nil, err
		}
		builder.WithUser(*req.UserID)
	case actor != nil:
		builder.WithUser(actor.ID)
	}

	if req.StateID != nil {
		if err := s.checkState(ctx, *req.StateID); err != nil {
			return nil, err
		}
		builder.WithState(*req.StateID)
	} else if pending, err := s.states.FindByName(ctx, constants.StatePending); err == nil {
		builder.WithState(pending.ID)
	} else if !repository.IsNotFound(err) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al buscar el estado inicial", err)
	}

	res := builder.Build()
	if err := s.persist(ctx, res, true); err != nil {
		return nil, err
	}
	return res, nil
}

// Update aplica un PATCH (o un PUT convertido con ToPatch)
func (s *ReservationService) Update(ctx context.Context, id uint, patch dto.ReservationPatch) (*models.Reservation, error) {
	if err := validator.Struct(patch); err != nil {
		return nil, err
	}

	res, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.RoomID != nil && *patch.RoomID != res.RoomID {
		if err := s.checkRoom(ctx, *patch.RoomID); err != nil {
			return nil, err
		}
		res.RoomID = *patch.RoomID
		res.Room = nil
	}
	if patch.UserID != nil {
		if err := s.checkUser(ctx, *patch.UserID); err != nil {
			return nil, err
		}
		res.UserID = patch.UserID
		res.User = nil
	}
	if patch.StateID != nil {
		if err := s.checkState(ctx, *patch.StateID); err != nil {
			return nil, err
		}
		res.StateID = patch.StateID
		res.State = nil
	}
	if patch.StartsAt != nil {
		res.StartsAt = patch.StartsAt.Time
	}
	if patch.EndsAt != nil {
		res.EndsAt = patch.EndsAt.Time
	}
	if patch.RequesterName != nil {
		res.RequesterName = *patch.RequesterName
	}
	if patch.RequesterEmail != nil {
		res.RequesterEmail = *patch.RequesterEmail
	}
	if patch.RequesterPhone != nil {
		res.RequesterPhone = *patch.RequesterPhone
	}

	if s.requireOrdered {
		if err := validator.Interval(res.StartsAt, res.EndsAt); err != nil {
			return nil, err
		}
	}

	if err := s.persist(ctx, res, false); err != nil {
		return nil, err
	}
	return res, nil
}

// Confirm pasa la reserva al estado "confirmada"
func (s *ReservationService) Confirm(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.transition(ctx, id, constants.StateConfirmed)
}

// Cancel pasa la reserva al estado "cancelada"
func (s *ReservationService) Cancel(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.transition(ctx, id, constants.StateCancelled)
}

func (s *ReservationService) transition(ctx context.Context, id uint, stateName string) (*models.Reservation, error) {
	res, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	state, err := s.states.FindByName(ctx, stateName)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeMissingState,
				fmt.Sprintf("EstadoReserva %q no existe", stateName), err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al buscar el estado", err)
	}

	res.StateID = &state.ID
	res.State = state
	if err := s.persist(ctx, res, false); err != nil {
		return nil, err
	}
	return res, nil
}

// Save guarda una reserva existente por la misma vía que el resto de escrituras
func (s *ReservationService) Save(ctx context.Context, res *models.Reservation) error {
	return s.persist(ctx, res, res.ID == 0)
}

func (s *ReservationService) Get(ctx context.Context, id uint) (*models.Reservation, error) {
	res, err := s.store.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeReservationNotFound, "Reserva no encontrada", apperrors.ErrReservationNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al obtener la reserva", err)
	}
	return res, nil
}

func (s *ReservationService) List(ctx context.Context, q dto.ReservationQuery) ([]models.Reservation, int64, error) {
	q.Normalize()
	filter := repository.ReservationFilter{
		RoomID:  q.RoomID,
		StateID: q.StateID,
		UserID:  q.UserID,
		Page:    repository.Page{Offset: q.Offset(), Limit: q.Limit},
	}
	if q.From != "" {
		t, err := parseQueryTime("desde", q.From)
		if err != nil {
			return nil, 0, err
		}
		filter.From = &t
	}
	if q.To != "" {
		t, err := parseQueryTime("hasta", q.To)
		if err != nil {
			return nil, 0, err
		}
		filter.To = &t
	}

	list, total, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al listar reservas", err)
	}
	return list, total, nil
}

func (s *ReservationService) Delete(ctx context.Context, id uint) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NewAppError(apperrors.ErrCodeReservationNotFound, "Reserva no encontrada", apperrors.ErrReservationNotFound)
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al eliminar la reserva", err)
	}
	return nil
}

// persist escribe la reserva, la recarga con sala y estado, y avisa a los listeners
func (s *ReservationService) persist(ctx context.Context, res *models.Reservation, created bool) error {
	var err error
	if created {
		err = s.store.Create(ctx, res)
	} else {
		err = s.store.Save(ctx, res)
	}
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al guardar la reserva", err)
	}

	if fresh, err := s.store.FindByID(ctx, res.ID); err == nil {
		*res = *fresh
	} else {
		s.logger.Error("No se pudo recargar la reserva %d: %v", res.ID, err)
	}

	for _, l := range s.listeners {
		l.ReservationSaved(ctx, res, created)
	}
	return nil
}

func (s *ReservationService) checkRoom(ctx context.Context, id uint) error {
	if _, err := s.rooms.FindByID(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return validator.Field("sala", invalidPK(id))
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al buscar la sala", err)
	}
	return nil
}

func (s *ReservationService) checkState(ctx context.Context, id uint) error {
	if _, err := s.states.FindByID(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return validator.Field("estado", invalidPK(id))
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al buscar el estado", err)
	}
	return nil
}

func (s *ReservationService) checkUser(ctx context.Context, id uint) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return validator.Field("usuario", invalidPK(id))
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al buscar el usuario", err)
	}
	return nil
}

func invalidPK(id uint) string {
	return fmt.Sprintf("Clave primaria \"%d\" inválida - objeto no existe.", id)
}

func parseQueryTime(field, raw string) (time.Time, error) {
	t, err := utils.ParseDateTime(raw)
	if err != nil {
		return time.Time{}, validator.Field(field, "Formato de fecha inválido.")
	}
	return t, nil
}
