package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"reservas/services"
)

type ExtendRunner interface {
	Run(ctx context.Context, now time.Time) (services.ExtendReport, error)
}

// CheckReservationsCommand ejecuta una pasada del job de auto-extensión
type CheckReservationsCommand struct {
	Job ExtendRunner
	Out io.Writer
	Now func() time.Time
}

func (c *CheckReservationsCommand) Execute(ctx context.Context) error {
	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}
	report, err := c.Job.Run(ctx, now)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Reservas revisadas: %d, avisos: %d, extendidas: %d\n", report.Checked, report.Warned, report.Extended)
	return nil
}
