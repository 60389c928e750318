package repository

import (
	"context"

	"reservas/models"

	"gorm.io/gorm"
)

// RoomFilter filtra el listado de salas; nil significa sin filtro
type RoomFilter struct {
	Available *bool
	Featured  *bool
	Page
}

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) Save(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *RoomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context, f RoomFilter) ([]models.Room, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Room{})
	if f.Available != nil {
		q = q.Where("available = ?", *f.Available)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rooms []models.Room
	if err := f.Page.apply(q).Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, 0, err
	}
	return rooms, total, nil
}

// Available devuelve las salas marcadas como disponibles
func (r *RoomRepository) Available(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).Where("available = ?", true).Order("id ASC").Find(&rooms).Error
	return rooms, err
}

func (r *RoomRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Room{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *RoomRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Room{})
	return result.RowsAffected, result.Error
}

// FirstOrCreateByName busca la sala por nombre exacto y la crea si no existe
func (r *RoomRepository) FirstOrCreateByName(ctx context.Context, name string, capacity int) (*models.Room, bool, error) {
	room := models.Room{Name: name, Capacity: capacity, Available: true}
	result := r.db.WithContext(ctx).Where(models.Room{Name: name}).Attrs(room).FirstOrCreate(&room)
	if result.Error != nil {
		return nil, false, result.Error
	}
	return &room, result.RowsAffected > 0, nil
}
