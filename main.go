package main

import (
	"context"
	"log"
	"os"

	"reservas/commands"
	"reservas/config"
	"reservas/constants"
	"reservas/jobs"
	"reservas/middleware"
	"reservas/routes"
	"reservas/services"

	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:   "reservas",
		Usage:  "backend de reservas de salas",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "levanta la API HTTP, el websocket y el cron",
				Action: serve,
			},
			{
				Name:  "seed",
				Usage: "crea usuarios, salas, estados y reservas de ejemplo",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "admin-password", EnvVars: []string{"SEED_ADMIN_PASSWORD"}, Usage: "contraseña del usuario admin"},
				},
				Action: func(c *cli.Context) error {
					return runCommand(c, func(a *app) commands.Command {
						return &commands.SeedCommand{
							Users:         a.users,
							Rooms:         a.rooms,
							States:        a.states,
							Reservations:  a.reservations,
							Writer:        a.reservationSvc,
							AdminPassword: c.String("admin-password"),
							Out:           os.Stdout,
						}
					})
				},
			},
			{
				Name:  "clear",
				Usage: "elimina reservas, salas, estados y usuarios no superusuarios",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "no pedir confirmación"},
				},
				Action: func(c *cli.Context) error {
					return runCommand(c, func(a *app) commands.Command {
						return &commands.ClearCommand{
							Reservations: a.reservations,
							Rooms:        a.rooms,
							States:       a.states,
							Users:        a.users,
							Yes:          c.Bool("yes"),
							In:           os.Stdin,
							Out:          os.Stdout,
						}
					})
				},
			},
			{
				Name:  "check-reservas",
				Usage: "avisa de las reservas por terminar y las extiende si la sala está libre",
				Action: func(c *cli.Context) error {
					return runCommand(c, func(a *app) commands.Command {
						return &commands.CheckReservationsCommand{Job: a.autoExtend, Out: os.Stdout}
					})
				},
			},
			{
				Name:      "create-token",
				Usage:     "crea (si falta) el usuario e imprime su token de API",
				ArgsUsage: "<username>",
				Action: func(c *cli.Context) error {
					return runCommand(c, func(a *app) commands.Command {
						return &commands.CreateTokenCommand{
							Username: c.Args().First(),
							Users:    a.userService,
							Tokens:   a.authService,
							Out:      os.Stdout,
						}
					})
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serve(c *cli.Context) error {
	s, err := config.Load()
	if err != nil {
		return err
	}

	router, m, cr, err := config.InitApp(s)
	if err != nil {
		return err
	}

	a := newApp(s, config.DB, m)

	if s.AutoExtendEnabled {
		var lock jobs.JobLock
		if config.RedisClient != nil {
			lock = services.NewRedisLock(config.RedisClient, constants.LockKeyAutoExtend, constants.LockTTLJob)
		}
		if err := jobs.InitCronJobs(cr, s.AutoExtendSchedule, a.autoExtend, lock, a.logger); err != nil {
			return err
		}
		defer cr.Stop()
	}

	chatLimiter := middleware.RateLimit(s.RateLimit, config.RedisClient, a.logger)
	routes.SetupRoutes(router, a.handlers(m), a.authService, chatLimiter)

	a.logger.Info("Servidor escuchando en el puerto %s", s.Port)
	return router.Run(":" + s.Port)
}

// runCommand conecta solo la base de datos y ejecuta el comando de consola
func runCommand(c *cli.Context, build func(a *app) commands.Command) error {
	s, err := config.Load()
	if err != nil {
		return err
	}
	if err := config.InitStore(s); err != nil {
		return err
	}
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return build(newApp(s, config.DB, nil)).Execute(ctx)
}
