package jobs

import (
	"context"
	"time"

	"reservas/constants"
	"reservas/services"
	"reservas/services/logger"

	"github.com/robfig/cron/v3"
)

const releaseTimeout = 5 * time.Second

// ExtendRunner ejecuta una pasada de auto-extensión
type ExtendRunner interface {
	Run(ctx context.Context, now time.Time) (services.ExtendReport, error)
}

// JobLock evita que dos instancias ejecuten la misma pasada
type JobLock interface {
	Acquire(ctx context.Context) (token string, ok bool, err error)
	Release(ctx context.Context, token string) error
}

// InitCronJobs programa el job de auto-extensión y arranca el cron
func InitCronJobs(c *cron.Cron, schedule string, job ExtendRunner, lock JobLock, log logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), constants.LockTTLJob)
		defer cancel()
		RunAutoExtend(ctx, job, lock, log, time.Now())
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("Cron de auto-extensión programado: %s", schedule)
	return nil
}

// RunAutoExtend ejecuta el job si consigue el candado y lo suelta al terminar.
// Sin candado se ejecuta siempre. Devuelve false si otra instancia lo tiene.
func RunAutoExtend(ctx context.Context, job ExtendRunner, lock JobLock, log logger.Logger, now time.Time) bool {
	if lock != nil {
		token, ok, err := lock.Acquire(ctx)
		switch {
		case err != nil:
			log.Error("No se pudo tomar el candado del job: %v", err)
		case !ok:
			log.Debug("Auto-extensión en curso en otra instancia")
			return false
		default:
			defer func() {
				releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
				defer cancel()
				if err := lock.Release(releaseCtx, token); err != nil {
					log.Error("No se pudo soltar el candado del job: %v", err)
				}
			}()
		}
	}

	report, err := job.Run(ctx, now)
	if err != nil {
		log.Error("Auto-extensión falló: %v", err)
		return true
	}
	log.Info("Auto-extensión: %d revisadas, %d avisos, %d extendidas", report.Checked, report.Warned, report.Extended)
	return true
}
