package services

import (
	"context"
	"testing"
	"time"

	"reservas/dto"
	apperrors "reservas/errors"
	"reservas/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(roomID uint, start time.Time, d time.Duration) dto.ReservationRequest {
	return dto.ReservationRequest{
		RoomID:         roomID,
		StartsAt:       &dto.DateTime{Time: start},
		EndsAt:         &dto.DateTime{Time: start.Add(d)},
		RequesterName:  "Cliente 1",
		RequesterEmail: "cliente1@example.com",
	}
}

func TestCreateDefaultsToPendingAndEmitsCreated(t *testing.T) {
	f := newFixture()
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	res, err := f.service.Create(context.Background(), newRequest(1, start, 2*time.Hour), nil)
	require.NoError(t, err)

	assert.NotZero(t, res.ID)
	assert.Nil(t, res.UserID)
	assert.Equal(t, "pendiente", res.StateName())
	assert.Equal(t, "Sala 1", res.RoomName())
	require.Len(t, f.listener.events, 1)
	assert.True(t, f.listener.events[0].created)
}

func TestCreateWithoutPendingStateLeavesStateEmpty(t *testing.T) {
	f := newFixture("confirmada", "cancelada")

	res, err := f.service.Create(context.Background(), newRequest(1, time.Now(), time.Hour), nil)
	require.NoError(t, err)
	assert.Nil(t, res.StateID)
	assert.Equal(t, "", res.StateName())
}

func TestCreateFindsPendingStateIgnoringAccentsAndCase(t *testing.T) {
	f := newFixture("Pendiénte", "confirmada")

	res, err := f.service.Create(context.Background(), newRequest(1, time.Now(), time.Hour), nil)
	require.NoError(t, err)
	require.NotNil(t, res.StateID)
	assert.Equal(t, uint(1), *res.StateID)
}

func TestCreateAssignsAuthenticatedCaller(t *testing.T) {
	f := newFixture()
	actor := f.users[7]

	res, err := f.service.Create(context.Background(), newRequest(1, time.Now(), time.Hour), actor)
	require.NoError(t, err)
	require.NotNil(t, res.UserID)
	assert.Equal(t, uint(7), *res.UserID)
}

func TestCreateRejectsUnknownRoom(t *testing.T) {
	f := newFixture()

	_, err := f.service.Create(context.Background(), newRequest(99, time.Now(), time.Hour), nil)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	assert.Contains(t, appErr.Fields, "sala")
	assert.Empty(t, f.listener.events)
}

func TestCreateRejectsMissingDates(t *testing.T) {
	f := newFixture()
	req := newRequest(1, time.Now(), time.Hour)
	req.EndsAt = nil

	_, err := f.service.Create(context.Background(), req, nil)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Fields, "fecha_fin")
}

func TestCreateAcceptsReversedIntervalUnlessOrdered(t *testing.T) {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	req := newRequest(1, start, -time.Hour)

	f := newFixture()
	_, err := f.service.Create(context.Background(), req, nil)
	assert.NoError(t, err)

	strict := newFixture()
	strict.service.requireOrdered = true
	_, err = strict.service.Create(context.Background(), req, nil)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Fields, "fecha_fin")
}

func TestConfirmAndCancel(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res, err := f.service.Create(ctx, newRequest(1, time.Now(), time.Hour), nil)
	require.NoError(t, err)

	confirmed, err := f.service.Confirm(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmada", confirmed.StateName())

	cancelled, err := f.service.Cancel(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelada", cancelled.StateName())

	require.Len(t, f.listener.events, 3)
	assert.False(t, f.listener.events[1].created)
	assert.Equal(t, "confirmada", f.listener.events[1].state)
	assert.Equal(t, "cancelada", f.listener.events[2].state)
}

func TestConfirmFailsWhenStateRowIsMissing(t *testing.T) {
	f := newFixture("pendiente", "cancelada")
	ctx := context.Background()
	res, err := f.service.Create(ctx, newRequest(1, time.Now(), time.Hour), nil)
	require.NoError(t, err)

	_, err = f.service.Confirm(ctx, res.ID)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeMissingState))

	stored := f.reservations.get(res.ID)
	require.NotNil(t, stored.StateID)
	assert.Equal(t, uint(1), *stored.StateID, "state stays unchanged")
	assert.Len(t, f.listener.events, 1)
}

func TestConfirmUnknownReservation(t *testing.T) {
	f := newFixture()
	_, err := f.service.Confirm(context.Background(), 404)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeReservationNotFound))
}

func TestUpdatePatchesOnlyGivenFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res, err := f.service.Create(ctx, newRequest(1, time.Now(), time.Hour), nil)
	require.NoError(t, err)

	phone := "+56911111111"
	room := uint(2)
	updated, err := f.service.Update(ctx, res.ID, dto.ReservationPatch{RoomID: &room, RequesterPhone: &phone})
	require.NoError(t, err)

	assert.Equal(t, uint(2), updated.RoomID)
	assert.Equal(t, "Sala 2", updated.RoomName())
	assert.Equal(t, phone, updated.RequesterPhone)
	assert.Equal(t, "Cliente 1", updated.RequesterName)
}

func TestUpdateRejectsUnknownState(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res, err := f.service.Create(ctx, newRequest(1, time.Now(), time.Hour), nil)
	require.NoError(t, err)

	state := uint(42)
	_, err = f.service.Update(ctx, res.ID, dto.ReservationPatch{StateID: &state})
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Fields, "estado")
}

func TestDeleteUnknownReservation(t *testing.T) {
	f := newFixture()
	err := f.service.Delete(context.Background(), 9)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeReservationNotFound))
}

func TestListRejectsBadDate(t *testing.T) {
	f := newFixture()
	_, _, err := f.service.List(context.Background(), dto.ReservationQuery{From: "mañana"})
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Fields, "desde")
}

func TestSaveRunsListeners(t *testing.T) {
	f := newFixture()
	res := f.seed(1, time.Now(), time.Now().Add(time.Hour))
	res.EndsAt = res.EndsAt.Add(30 * time.Minute)

	require.NoError(t, f.service.Save(context.Background(), res))
	require.Len(t, f.listener.events, 1)
	assert.False(t, f.listener.events[0].created)
	assert.Equal(t, &models.Room{ID: 1, Name: "Sala 1", Capacity: 4, Available: true}, res.Room)
}
