package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"reservas/constants"
	"reservas/models"
	"reservas/repository"
	"reservas/services"
)

type SeedUserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}

type SeedRoomStore interface {
	FirstOrCreateByName(ctx context.Context, name string, capacity int) (*models.Room, bool, error)
}

type SeedStateStore interface {
	FirstOrCreate(ctx context.Context, name string) (*models.ReservationState, error)
}

type SeedReservationStore interface {
	List(ctx context.Context, f repository.ReservationFilter) ([]models.Reservation, int64, error)
}

// SeedCommand crea datos de ejemplo; es idempotente
type SeedCommand struct {
	Users         SeedUserStore
	Rooms         SeedRoomStore
	States        SeedStateStore
	Reservations  SeedReservationStore
	Writer        services.ReservationSaver
	AdminPassword string
	Out           io.Writer
	Now           func() time.Time
}

var seedRooms = []struct {
	name     string
	capacity int
}{
	{"Sala 1", 10},
	{"Sala 2", 15},
	{"Sala 3", 20},
}

func (c *SeedCommand) Execute(ctx context.Context) error {
	if c.Now == nil {
		c.Now = time.Now
	}

	if _, err := c.ensureUser(ctx, &models.User{
		Username:    "admin",
		Email:       "admin@reserva.com",
		IsStaff:     true,
		IsSuperuser: true,
	}, c.AdminPassword); err != nil {
		return err
	}
	seller, err := c.ensureUser(ctx, &models.User{Username: "vendedor", Email: "vendedor@reserva.com"}, "")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.Out, "Usuarios creados o existentes.")

	var first *models.Room
	for _, r := range seedRooms {
		room, _, err := c.Rooms.FirstOrCreateByName(ctx, r.name, r.capacity)
		if err != nil {
			return fmt.Errorf("creando sala %s: %w", r.name, err)
		}
		if first == nil {
			first = room
		}
	}
	fmt.Fprintln(c.Out, "Salas creadas o existentes.")

	var pending *models.ReservationState
	for _, name := range []string{constants.StatePending, constants.StateConfirmed, constants.StateCancelled} {
		state, err := c.States.FirstOrCreate(ctx, name)
		if err != nil {
			return fmt.Errorf("creando estado %s: %w", name, err)
		}
		if name == constants.StatePending {
			pending = state
		}
	}
	fmt.Fprintln(c.Out, "Estados creados o existentes.")

	_, total, err := c.Reservations.List(ctx, repository.ReservationFilter{Page: repository.Page{Limit: 1}})
	if err != nil {
		return fmt.Errorf("contando reservas: %w", err)
	}
	if total > 0 {
		fmt.Fprintln(c.Out, "Reservas ya existen, omitido.")
		return nil
	}

	now := c.Now()
	for i := 0; i < 5; i++ {
		start := now.AddDate(0, 0, i)
		userID, stateID := seller.ID, pending.ID
		res := &models.Reservation{
			RoomID:         first.ID,
			UserID:         &userID,
			StateID:        &stateID,
			StartsAt:       start,
			EndsAt:         start.Add(2 * time.Hour),
			RequesterName:  fmt.Sprintf("Cliente %d", i+1),
			RequesterEmail: fmt.Sprintf("cliente%d@example.com", i+1),
			RequesterPhone: fmt.Sprintf("+5691234567%d", i),
		}
		if err := c.Writer.Save(ctx, res); err != nil {
			return fmt.Errorf("creando reserva de ejemplo %d: %w", i+1, err)
		}
	}
	fmt.Fprintln(c.Out, "Reservas de ejemplo creadas correctamente.")
	return nil
}

func (c *SeedCommand) ensureUser(ctx context.Context, u *models.User, password string) (*models.User, error) {
	existing, err := c.Users.FindByUsername(ctx, u.Username)
	if err == nil {
		return existing, nil
	}
	if !repository.IsNotFound(err) {
		return nil, fmt.Errorf("buscando usuario %s: %w", u.Username, err)
	}

	u.IsActive = true
	u.Password = services.UnusablePassword()
	if password != "" {
		hash, err := services.HashPassword(password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	if err := c.Users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("creando usuario %s: %w", u.Username, err)
	}
	return u, nil
}
