package controllers

import (
	"context"
	"io"

	"reservas/dto"
	"reservas/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type mockReservations struct{ mock.Mock }

func (m *mockReservations) Create(ctx context.Context, req dto.ReservationRequest, actor *models.User) (*models.Reservation, error) {
	args := m.Called(ctx, req, actor)
	res, _ := args.Get(0).(*models.Reservation)
	return res, args.Error(1)
}

func (m *mockReservations) Update(ctx context.Context, id uint, patch dto.ReservationPatch) (*models.Reservation, error) {
	args := m.Called(ctx, id, patch)
	res, _ := args.Get(0).(*models.Reservation)
	return res, args.Error(1)
}

func (m *mockReservations) Confirm(ctx context.Context, id uint) (*models.Reservation, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*models.Reservation)
	return res, args.Error(1)
}

func (m *mockReservations) Cancel(ctx context.Context, id uint) (*models.Reservation, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*models.Reservation)
	return res, args.Error(1)
}

func (m *mockReservations) Get(ctx context.Context, id uint) (*models.Reservation, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*models.Reservation)
	return res, args.Error(1)
}

func (m *mockReservations) List(ctx context.Context, q dto.ReservationQuery) ([]models.Reservation, int64, error) {
	args := m.Called(ctx, q)
	list, _ := args.Get(0).([]models.Reservation)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockReservations) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockRooms struct{ mock.Mock }

func (m *mockRooms) Create(ctx context.Context, req dto.RoomRequest) (*models.Room, error) {
	args := m.Called(ctx, req)
	room, _ := args.Get(0).(*models.Room)
	return room, args.Error(1)
}

func (m *mockRooms) Update(ctx context.Context, id uint, patch dto.RoomPatch) (*models.Room, error) {
	args := m.Called(ctx, id, patch)
	room, _ := args.Get(0).(*models.Room)
	return room, args.Error(1)
}

func (m *mockRooms) Get(ctx context.Context, id uint) (*models.Room, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*models.Room)
	return room, args.Error(1)
}

func (m *mockRooms) List(ctx context.Context, q dto.RoomQuery) ([]models.Room, int64, error) {
	args := m.Called(ctx, q)
	list, _ := args.Get(0).([]models.Room)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockRooms) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRooms) Availability(ctx context.Context, id uint, q dto.AvailabilityQuery) (dto.AvailabilityResponse, error) {
	args := m.Called(ctx, id, q)
	return args.Get(0).(dto.AvailabilityResponse), args.Error(1)
}

func (m *mockRooms) UploadImage(ctx context.Context, id uint, file io.Reader) (*models.Room, error) {
	args := m.Called(ctx, id, file)
	room, _ := args.Get(0).(*models.Room)
	return room, args.Error(1)
}

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Login(ctx context.Context, req dto.LoginRequest) (dto.TokenPair, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.TokenPair), args.Error(1)
}

func (m *mockAuth) Refresh(ctx context.Context, req dto.RefreshRequest) (dto.AccessToken, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.AccessToken), args.Error(1)
}

func (m *mockAuth) SetTokenCookies(c *gin.Context, accessToken string) {
	m.Called(c, accessToken)
	c.SetCookie("access_token", accessToken, 60, "/", "", false, true)
}

type mockRegistrar struct{ mock.Mock }

func (m *mockRegistrar) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type stubAssistant struct {
	reply dto.ChatReply
	calls int
	last  dto.ChatRequest
}

func (s *stubAssistant) Reply(_ context.Context, req dto.ChatRequest) dto.ChatReply {
	s.calls++
	s.last = req
	return s.reply
}
