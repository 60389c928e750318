package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "reservas/errors"
	"reservas/models"
	"reservas/repository"
	"reservas/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDeleter struct {
	calls *[]string
	name  string
}

func (d countingDeleter) DeleteAll(context.Context) (int64, error) {
	*d.calls = append(*d.calls, d.name)
	return 1, nil
}

func (d countingDeleter) DeleteNonSuperusers(context.Context) (int64, error) {
	*d.calls = append(*d.calls, d.name)
	return 4, nil
}

func newClear(input string, yes bool) (*ClearCommand, *[]string, *bytes.Buffer) {
	calls := &[]string{}
	out := &bytes.Buffer{}
	return &ClearCommand{
		Reservations: countingDeleter{calls, "reservas"},
		Rooms:        countingDeleter{calls, "salas"},
		States:       countingDeleter{calls, "estados"},
		Users:        countingDeleter{calls, "usuarios"},
		Yes:          yes,
		In:           strings.NewReader(input),
		Out:          out,
	}, calls, out
}

func TestClearAsksForConfirmation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		yes     bool
		cleared bool
	}{
		{"acepta s", "s\n", false, true},
		{"acepta S sin salto", "S", false, true},
		{"rechaza n", "n\n", false, false},
		{"rechaza vacío", "", false, false},
		{"rechaza si", "si\n", false, false},
		{"--yes no pregunta", "", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, calls, out := newClear(tt.input, tt.yes)
			require.NoError(t, cmd.Execute(context.Background()))
			if tt.cleared {
				assert.Equal(t, []string{"reservas", "salas", "estados", "usuarios"}, *calls)
				assert.Contains(t, out.String(), "Usuarios normales eliminados: 4")
			} else {
				assert.Empty(t, *calls)
				assert.Contains(t, out.String(), "Operación cancelada.")
			}
			if tt.yes {
				assert.NotContains(t, out.String(), "(s/n)")
			}
		})
	}
}

type fakeEnsurer struct {
	created bool
}

func (f fakeEnsurer) EnsureUser(_ context.Context, username string) (*models.User, bool, error) {
	return &models.User{ID: 3, Username: username}, f.created, nil
}

type fakeTokens struct{}

func (fakeTokens) APITokenFor(_ context.Context, u *models.User) (*models.APIToken, error) {
	return &models.APIToken{Key: "abc123", UserID: u.ID}, nil
}

func TestCreateTokenPrintsKey(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := &CreateTokenCommand{Username: "whatsapp_bot", Users: fakeEnsurer{created: true}, Tokens: fakeTokens{}, Out: out}

	require.NoError(t, cmd.Execute(context.Background()))
	assert.Contains(t, out.String(), "Usuario 'whatsapp_bot' creado.")
	assert.Contains(t, out.String(), "TOKEN: abc123")

	cmd.Username = "  "
	assert.Error(t, cmd.Execute(context.Background()))
}

type fakeRunner struct {
	at  time.Time
	err error
}

func (f *fakeRunner) Run(_ context.Context, now time.Time) (services.ExtendReport, error) {
	f.at = now
	return services.ExtendReport{Checked: 3, Warned: 2, Extended: 1}, f.err
}

func TestCheckReservationsReports(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	runner := &fakeRunner{}
	out := &bytes.Buffer{}
	cmd := &CheckReservationsCommand{Job: runner, Out: out, Now: func() time.Time { return now }}

	require.NoError(t, cmd.Execute(context.Background()))
	assert.Equal(t, now, runner.at)
	assert.Equal(t, "Reservas revisadas: 3, avisos: 2, extendidas: 1\n", out.String())

	runner.err = errors.New("db caída")
	assert.Error(t, cmd.Execute(context.Background()))
}

type seedStore struct {
	users        map[string]*models.User
	rooms        map[string]*models.Room
	states       map[string]*models.ReservationState
	reservations []models.Reservation
}

func newSeedStore() *seedStore {
	return &seedStore{
		users:  map[string]*models.User{},
		rooms:  map[string]*models.Room{},
		states: map[string]*models.ReservationState{},
	}
}

func (s *seedStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := s.users[username]; ok {
		return u, nil
	}
	return nil, apperrors.ErrRecordNotFound
}

func (s *seedStore) Create(_ context.Context, u *models.User) error {
	u.ID = uint(len(s.users) + 1)
	s.users[u.Username] = u
	return nil
}

func (s *seedStore) FirstOrCreateByName(_ context.Context, name string, capacity int) (*models.Room, bool, error) {
	if r, ok := s.rooms[name]; ok {
		return r, false, nil
	}
	r := &models.Room{ID: uint(len(s.rooms) + 1), Name: name, Capacity: capacity, Available: true}
	s.rooms[name] = r
	return r, true, nil
}

func (s *seedStore) FirstOrCreate(_ context.Context, name string) (*models.ReservationState, error) {
	if st, ok := s.states[name]; ok {
		return st, nil
	}
	st := &models.ReservationState{ID: uint(len(s.states) + 1), Name: name}
	s.states[name] = st
	return st, nil
}

func (s *seedStore) List(context.Context, repository.ReservationFilter) ([]models.Reservation, int64, error) {
	return nil, int64(len(s.reservations)), nil
}

func (s *seedStore) Save(_ context.Context, res *models.Reservation) error {
	res.ID = uint(len(s.reservations) + 1)
	s.reservations = append(s.reservations, *res)
	return nil
}

func TestSeedIsIdempotent(t *testing.T) {
	store := newSeedStore()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	out := &bytes.Buffer{}
	cmd := &SeedCommand{
		Users:         store,
		Rooms:         store,
		States:        store,
		Reservations:  store,
		Writer:        store,
		AdminPassword: "clave-admin",
		Out:           out,
		Now:           func() time.Time { return now },
	}

	require.NoError(t, cmd.Execute(context.Background()))
	require.Len(t, store.reservations, 5)
	assert.Len(t, store.rooms, 3)
	assert.Len(t, store.states, 3)

	admin := store.users["admin"]
	require.NotNil(t, admin)
	assert.Equal(t, models.RoleAdmin, admin.Role())
	assert.True(t, services.CheckPassword(admin.Password, "clave-admin"))
	assert.False(t, services.CheckPassword(store.users["vendedor"].Password, ""))

	first := store.reservations[0]
	assert.Equal(t, store.rooms["Sala 1"].ID, first.RoomID)
	assert.Equal(t, now, first.StartsAt)
	assert.Equal(t, now.Add(2*time.Hour), first.EndsAt)
	assert.Equal(t, "cliente1@example.com", first.RequesterEmail)
	assert.Equal(t, store.states["pendiente"].ID, *first.StateID)

	out.Reset()
	require.NoError(t, cmd.Execute(context.Background()))
	assert.Len(t, store.reservations, 5)
	assert.Contains(t, out.String(), "Reservas ya existen, omitido.")
}
