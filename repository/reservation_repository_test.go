package repository

import (
	"context"
	"testing"
	"time"

	"reservas/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestOverlapsQueriesHalfOpenInterval(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepository(db)

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "reservations" WHERE .*room_id = \$1 AND starts_at < \$2 AND ends_at > \$3.*id <> \$4`).
		WithArgs(3, end, start, 9).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	busy, err := repo.Overlaps(context.Background(), 3, start, end, 9)
	require.NoError(t, err)
	assert.True(t, busy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOverlapsWithoutExclusion(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepository(db)

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "reservations" WHERE room_id = \$1 AND starts_at < \$2 AND ends_at > \$3$`).
		WithArgs(1, end, start).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	busy, err := repo.Overlaps(context.Background(), 1, start, end, 0)
	require.NoError(t, err)
	assert.False(t, busy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEndingBetweenUsesExclusiveLowerBound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepository(db)

	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	limit := now.Add(15 * time.Minute)

	mock.ExpectQuery(`SELECT \* FROM "reservations" WHERE ends_at > \$1 AND ends_at <= \$2 ORDER BY ends_at ASC`).
		WithArgs(now, limit).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "starts_at", "ends_at"}))

	list, err := repo.EndingBetween(context.Background(), now, limit)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDTranslatesNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "reservations" WHERE "reservations"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), 42)
	assert.True(t, IsNotFound(err))
}

func TestExistsForReservationFiltersByKind(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE reservation_id = \$1 AND kind = \$2`).
		WithArgs(5, string(models.NotificationEndingSoon)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.ExistsForReservation(context.Background(), 5, models.NotificationEndingSoon)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
