package commands

import (
	"context"
	"fmt"
	"io"
)

type bulkDeleter interface {
	DeleteAll(ctx context.Context) (int64, error)
}

type userPurger interface {
	DeleteNonSuperusers(ctx context.Context) (int64, error)
}

// ClearCommand borra reservas, salas, estados y usuarios no superusuarios
type ClearCommand struct {
	Reservations bulkDeleter
	Rooms        bulkDeleter
	States       bulkDeleter
	Users        userPurger
	Yes          bool
	In           io.Reader
	Out          io.Writer
}

func (c *ClearCommand) Execute(ctx context.Context) error {
	if !c.Yes && !confirm(c.In, c.Out, "Esto eliminará todos los datos del sistema. ¿Deseas continuar?") {
		fmt.Fprintln(c.Out, "Operación cancelada.")
		return nil
	}

	// las reservas primero: salas y estados las referencian
	if _, err := c.Reservations.DeleteAll(ctx); err != nil {
		return fmt.Errorf("eliminando reservas: %w", err)
	}
	fmt.Fprintln(c.Out, "Todas las reservas eliminadas.")

	if _, err := c.Rooms.DeleteAll(ctx); err != nil {
		return fmt.Errorf("eliminando salas: %w", err)
	}
	fmt.Fprintln(c.Out, "Todas las salas eliminadas.")

	if _, err := c.States.DeleteAll(ctx); err != nil {
		return fmt.Errorf("eliminando estados: %w", err)
	}
	fmt.Fprintln(c.Out, "Todos los estados eliminados.")

	n, err := c.Users.DeleteNonSuperusers(ctx)
	if err != nil {
		return fmt.Errorf("eliminando usuarios: %w", err)
	}
	fmt.Fprintf(c.Out, "Usuarios normales eliminados: %d\n", n)
	fmt.Fprintln(c.Out, "Base de datos limpia y lista para nuevos datos.")
	return nil
}
