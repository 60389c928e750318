package repository

import (
	"context"

	"reservas/models"

	"gorm.io/gorm"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// FindByKey devuelve el token con su usuario precargado
func (r *TokenRepository) FindByKey(ctx context.Context, key string) (*models.APIToken, error) {
	var t models.APIToken
	if err := r.db.WithContext(ctx).Preload("User").Where("key = ?", key).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *TokenRepository) FindByUser(ctx context.Context, userID uint) (*models.APIToken, error) {
	var t models.APIToken
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *TokenRepository) Create(ctx context.Context, t *models.APIToken) error {
	return r.db.WithContext(ctx).Omit("User").Create(t).Error
}
