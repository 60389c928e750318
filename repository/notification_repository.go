package repository

import (
	"context"

	"reservas/models"

	"gorm.io/gorm"
)

// NotificationFilter filtra el listado de notificaciones
type NotificationFilter struct {
	UserID        *uint
	ReservationID uint
	Unread        bool
	Page
}

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	if n.Kind == "" {
		n.Kind = models.NotificationGeneral
	}
	return r.db.WithContext(ctx).Omit("Reservation", "User").Create(n).Error
}

func (r *NotificationRepository) Save(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Omit("Reservation", "User").Save(n).Error
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uint) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

func (r *NotificationRepository) List(ctx context.Context, f NotificationFilter) ([]models.Notification, int64, error) {
	q := r.scoped(ctx, f)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []models.Notification
	if err := f.Page.apply(q).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ExistsForReservation indica si la reserva ya tiene una notificación de ese tipo
func (r *NotificationRepository) ExistsForReservation(ctx context.Context, reservationID uint, kind models.NotificationKind) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("reservation_id = ? AND kind = ?", reservationID, kind).
		Count(&count).Error
	return count > 0, err
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID *uint) (int64, error) {
	var count int64
	err := r.scoped(ctx, NotificationFilter{UserID: userID, Unread: true}).Count(&count).Error
	return count, err
}

// MarkAllRead marca como leídas las notificaciones del usuario (todas si userID es nil)
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID *uint) (int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Notification{}).Where("read = ?", false)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	result := q.Update("read", true)
	return result.RowsAffected, result.Error
}

func (r *NotificationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Notification{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *NotificationRepository) scoped(ctx context.Context, f NotificationFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Notification{})
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.ReservationID != 0 {
		q = q.Where("reservation_id = ?", f.ReservationID)
	}
	if f.Unread {
		q = q.Where("read = ?", false)
	}
	return q
}
