package services

import (
	"context"
	"sort"
	"sync"
	"time"

	apperrors "reservas/errors"
	"reservas/models"
	"reservas/repository"
)

type memReservations struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]models.Reservation
	rooms  map[uint]*models.Room
	states map[uint]*models.ReservationState
	saves  int
}

func newMemReservations() *memReservations {
	return &memReservations{
		rows:   map[uint]models.Reservation{},
		rooms:  map[uint]*models.Room{},
		states: map[uint]*models.ReservationState{},
	}
}

func (m *memReservations) hydrate(r models.Reservation) models.Reservation {
	r.Room = m.rooms[r.RoomID]
	r.State = nil
	if r.StateID != nil {
		r.State = m.states[*r.StateID]
	}
	return r
}

func (m *memReservations) Create(_ context.Context, res *models.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	res.ID = m.nextID
	res.CreatedAt = time.Now()
	m.rows[res.ID] = *res
	return nil
}

func (m *memReservations) Save(_ context.Context, res *models.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	m.rows[res.ID] = *res
	return nil
}

func (m *memReservations) FindByID(_ context.Context, id uint) (*models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	r = m.hydrate(r)
	return &r, nil
}

func (m *memReservations) List(_ context.Context, f repository.ReservationFilter) ([]models.Reservation, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Reservation
	for _, r := range m.rows {
		if f.RoomID != 0 && r.RoomID != f.RoomID {
			continue
		}
		out = append(out, m.hydrate(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (m *memReservations) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return apperrors.ErrRecordNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memReservations) EndingBetween(_ context.Context, from, to time.Time) ([]models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Reservation
	for _, r := range m.rows {
		if r.EndsAt.After(from) && !r.EndsAt.After(to) {
			out = append(out, m.hydrate(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndsAt.Before(out[j].EndsAt) })
	return out, nil
}

func (m *memReservations) Overlaps(_ context.Context, roomID uint, start, end time.Time, excludeID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.RoomID != roomID || (excludeID != 0 && r.ID == excludeID) {
			continue
		}
		if IntervalsOverlap(r.StartsAt, r.EndsAt, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memReservations) get(id uint) models.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[id]
}

type memStates struct {
	byID map[uint]*models.ReservationState
}

func (m *memStates) FindByID(_ context.Context, id uint) (*models.ReservationState, error) {
	if s, ok := m.byID[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrRecordNotFound
}

// FindByName recorre por id ascendente, igual que StateRepository
func (m *memStates) FindByName(_ context.Context, name string) (*models.ReservationState, error) {
	ids := make([]uint, 0, len(m.byID))
	for id := range m.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if m.byID[id].Is(name) {
			return m.byID[id], nil
		}
	}
	return nil, apperrors.ErrRecordNotFound
}

type memRooms map[uint]*models.Room

func (m memRooms) FindByID(_ context.Context, id uint) (*models.Room, error) {
	if r, ok := m[id]; ok {
		return r, nil
	}
	return nil, apperrors.ErrRecordNotFound
}

type memUsers map[uint]*models.User

func (m memUsers) FindByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := m[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrRecordNotFound
}

type memNotices struct {
	nextID uint
	rows   []models.Notification
}

func (m *memNotices) Create(_ context.Context, n *models.Notification) error {
	m.nextID++
	n.ID = m.nextID
	m.rows = append(m.rows, *n)
	return nil
}

func (m *memNotices) ExistsForReservation(_ context.Context, reservationID uint, kind models.NotificationKind) (bool, error) {
	for _, n := range m.rows {
		if n.ReservationID == reservationID && n.Kind == kind {
			return true, nil
		}
	}
	return false, nil
}

func (m *memNotices) ofKind(kind models.NotificationKind) []models.Notification {
	var out []models.Notification
	for _, n := range m.rows {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

type savedEvent struct {
	id      uint
	state   string
	created bool
}

type recordingListener struct {
	events []savedEvent
}

func (l *recordingListener) ReservationSaved(_ context.Context, res *models.Reservation, created bool) {
	l.events = append(l.events, savedEvent{id: res.ID, state: res.StateName(), created: created})
}

// fixture arma los repositorios en memoria con tres estados y dos salas
type fixture struct {
	reservations *memReservations
	states       *memStates
	rooms        memRooms
	users        memUsers
	notices      *memNotices
	listener     *recordingListener
	service      *ReservationService
}

func newFixture(withStates ...string) *fixture {
	if len(withStates) == 0 {
		withStates = []string{"pendiente", "confirmada", "cancelada"}
	}
	states := &memStates{byID: map[uint]*models.ReservationState{}}
	for i, name := range withStates {
		id := uint(i + 1)
		states.byID[id] = &models.ReservationState{ID: id, Name: name}
	}
	rooms := memRooms{
		1: {ID: 1, Name: "Sala 1", Capacity: 4, Available: true},
		2: {ID: 2, Name: "Sala 2", Capacity: 8, Available: true},
	}
	users := memUsers{
		7: {ID: 7, Username: "cajero1", Groups: []string{models.CashierGroup}, IsActive: true},
	}

	store := newMemReservations()
	store.rooms = rooms
	store.states = states.byID

	listener := &recordingListener{}
	f := &fixture{
		reservations: store,
		states:       states,
		rooms:        rooms,
		users:        users,
		notices:      &memNotices{},
		listener:     listener,
	}
	f.service = NewReservationService(ReservationServiceOptions{
		Store:     store,
		States:    states,
		Rooms:     rooms,
		Users:     users,
		Listeners: []ReservationListener{listener},
	})
	return f
}

func (f *fixture) seed(roomID uint, start, end time.Time) *models.Reservation {
	res := &models.Reservation{RoomID: roomID, StartsAt: start, EndsAt: end}
	_ = f.reservations.Create(context.Background(), res)
	return res
}
