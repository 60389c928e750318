package services

import (
	"context"

	"reservas/dto"
	apperrors "reservas/errors"
	"reservas/models"
	"reservas/repository"
	"reservas/validator"
)

type StateStore interface {
	StateFinder
	Create(ctx context.Context, s *models.ReservationState) error
	Save(ctx context.Context, s *models.ReservationState) error
	List(ctx context.Context) ([]models.ReservationState, error)
	Delete(ctx context.Context, id uint) error
}

// StateService administra el catálogo de estados de reserva
type StateService struct {
	states StateStore
}

func NewStateService(states StateStore) *StateService {
	return &StateService{states: states}
}

func (s *StateService) Create(ctx context.Context, req dto.StateRequest) (*models.ReservationState, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	state := &models.ReservationState{Name: req.Name}
	if err := s.states.Create(ctx, state); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al crear el estado", err)
	}
	return state, nil
}

func (s *StateService) Update(ctx context.Context, id uint, req dto.StateRequest) (*models.ReservationState, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	state, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	state.Name = req.Name
	if err := s.states.Save(ctx, state); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al actualizar el estado", err)
	}
	return state, nil
}

func (s *StateService) Get(ctx context.Context, id uint) (*models.ReservationState, error) {
	state, err := s.states.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeStateNotFound, "Estado no encontrado", apperrors.ErrStateNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al obtener el estado", err)
	}
	return state, nil
}

func (s *StateService) List(ctx context.Context) ([]models.ReservationState, error) {
	list, err := s.states.List(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al listar estados", err)
	}
	return list, nil
}

// Delete deja las reservas del estado sin estado (ON DELETE SET NULL)
func (s *StateService) Delete(ctx context.Context, id uint) error {
	if err := s.states.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NewAppError(apperrors.ErrCodeStateNotFound, "Estado no encontrado", apperrors.ErrStateNotFound)
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al eliminar el estado", err)
	}
	return nil
}
