package repository

import (
	"context"

	apperrors "reservas/errors"
	"reservas/models"

	"gorm.io/gorm"
)

type StateRepository struct {
	db *gorm.DB
}

func NewStateRepository(db *gorm.DB) *StateRepository {
	return &StateRepository{db: db}
}

func (r *StateRepository) Create(ctx context.Context, s *models.ReservationState) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StateRepository) Save(ctx context.Context, s *models.ReservationState) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *StateRepository) FindByID(ctx context.Context, id uint) (*models.ReservationState, error) {
	var s models.ReservationState
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

// FindByName busca el estado sin distinguir mayúsculas ni acentos; si hay
// varios gana el de menor id
func (r *StateRepository) FindByName(ctx context.Context, name string) (*models.ReservationState, error) {
	var states []models.ReservationState
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&states).Error; err != nil {
		return nil, err
	}
	for i := range states {
		if states[i].Is(name) {
			return &states[i], nil
		}
	}
	return nil, apperrors.ErrRecordNotFound
}

// FirstOrCreate devuelve el estado con ese nombre, creándolo si falta
func (r *StateRepository) FirstOrCreate(ctx context.Context, name string) (*models.ReservationState, error) {
	s, err := r.FindByName(ctx, name)
	if err == nil {
		return s, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}
	s = &models.ReservationState{Name: name}
	if err := r.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *StateRepository) List(ctx context.Context) ([]models.ReservationState, error) {
	var list []models.ReservationState
	err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *StateRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ReservationState{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *StateRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ReservationState{})
	return result.RowsAffected, result.Error
}
