package repository

import (
	"context"
	"time"

	"reservas/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationFilter filtra el listado de reservas
type ReservationFilter struct {
	RoomID  uint
	StateID uint
	UserID  uint
	From    *time.Time
	To      *time.Time
	Page
}

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *models.Reservation) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(res).Error
}

// Save actualiza todas las columnas sin tocar las asociaciones precargadas
func (r *ReservationRepository) Save(ctx context.Context, res *models.Reservation) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(res).Error
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var res models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("State").
		Preload("User").
		First(&res, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

func (r *ReservationRepository) List(ctx context.Context, f ReservationFilter) ([]models.Reservation, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Reservation{})
	if f.RoomID != 0 {
		q = q.Where("room_id = ?", f.RoomID)
	}
	if f.StateID != 0 {
		q = q.Where("state_id = ?", f.StateID)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.From != nil {
		q = q.Where("ends_at > ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("starts_at < ?", *f.To)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []models.Reservation
	err := f.Page.apply(q).
		Preload("Room").
		Preload("State").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

// EndingBetween devuelve las reservas con from < fecha_fin <= to
func (r *ReservationRepository) EndingBetween(ctx context.Context, from, to time.Time) ([]models.Reservation, error) {
	var list []models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("State").
		Where("ends_at > ? AND ends_at <= ?", from, to).
		Order("ends_at ASC").
		Find(&list).Error
	return list, err
}

// Overlaps indica si alguna reserva de la sala cumple inicio < end y fin > start.
// excludeID 0 no excluye nada.
func (r *ReservationRepository) Overlaps(ctx context.Context, roomID uint, start, end time.Time, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("room_id = ? AND starts_at < ? AND ends_at > ?", roomID, end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReservationRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Reservation{})
	return result.RowsAffected, result.Error
}
