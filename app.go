package main

import (
	"os"

	"reservas/config"
	"reservas/controllers"
	"reservas/repository"
	"reservas/routes"
	"reservas/services"
	"reservas/services/logger"
	"reservas/services/notification"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// app reúne repositorios y servicios construidos a partir de la configuración
type app struct {
	settings config.Settings
	logger   *logger.DefaultLogger

	users         *repository.UserRepository
	tokens        *repository.TokenRepository
	rooms         *repository.RoomRepository
	states        *repository.StateRepository
	reservations  *repository.ReservationRepository
	notifications *repository.NotificationRepository

	issuer          *services.TokenIssuer
	authService     *services.AuthService
	userService     *services.UserService
	roomService     *services.RoomService
	stateService    *services.StateService
	reservationSvc  *services.ReservationService
	notificationSvc *services.NotificationService
	autoExtend      *services.AutoExtendService
	assistant       *services.Assistant
}

func newLogger(s config.Settings) *logger.DefaultLogger {
	return logger.New(os.Stdout, logger.ParseLevel(s.LogLevel), s.IsDev())
}

// newApp arma los servicios. m puede ser nil (comandos de consola): entonces
// no hay publicación por websocket.
func newApp(s config.Settings, db *gorm.DB, m *melody.Melody) *app {
	log := newLogger(s)
	a := &app{
		settings:      s,
		logger:        log,
		users:         repository.NewUserRepository(db),
		tokens:        repository.NewTokenRepository(db),
		rooms:         repository.NewRoomRepository(db),
		states:        repository.NewStateRepository(db),
		reservations:  repository.NewReservationRepository(db),
		notifications: repository.NewNotificationRepository(db),
	}

	var publisher services.NotificationPublisher
	if m != nil {
		publisher = notification.NewMelodyService(m)
	}

	var sinks []notification.Sink
	if s.WebhookURL != "" {
		sinks = append(sinks, notification.NewWebhookSink(s.WebhookURL, s.WebhookTimeout))
	} else {
		log.Info("WEBHOOK_URL vacío: no se enviarán cambios de estado por webhook")
	}
	if s.AMQPURL != "" {
		sinks = append(sinks, notification.NewAMQPSink(s.AMQPURL, s.AMQPQueue))
	}
	notifier := notification.NewStateChangeNotifier(log.With("component", "notifier"), sinks...)

	a.issuer = services.NewTokenIssuer(s.JWTSecret, s.AccessTTL, s.RefreshTTL)
	a.authService = services.NewAuthService(a.users, a.tokens, a.issuer, log)
	a.userService = services.NewUserService(services.UserServiceOptions{Users: a.users, Logger: log})
	a.stateService = services.NewStateService(a.states)

	var uploader services.ImageUploader
	if config.Cloudinary != nil {
		uploader = services.NewCloudinaryUploader(config.Cloudinary, s.CloudinaryFolder)
	}
	a.roomService = services.NewRoomService(services.RoomServiceOptions{
		Rooms:    a.rooms,
		Overlaps: a.reservations,
		Cache:    config.RedisClient,
		Uploader: uploader,
		Logger:   log,
	})

	a.reservationSvc = services.NewReservationService(services.ReservationServiceOptions{
		Store:                  a.reservations,
		States:                 a.states,
		Rooms:                  a.rooms,
		Users:                  a.users,
		Listeners:              []services.ReservationListener{notifier},
		Logger:                 log,
		RequireOrderedInterval: s.RequireOrderedInterval,
	})

	a.notificationSvc = services.NewNotificationService(services.NotificationServiceOptions{
		Notifications: a.notifications,
		Reservations:  a.reservations,
		Publisher:     publisher,
		Logger:        log,
	})

	a.autoExtend = services.NewAutoExtendService(services.AutoExtendOptions{
		Reservations: a.reservations,
		Saver:        a.reservationSvc,
		Notices:      a.notifications,
		Publisher:    publisher,
		Logger:       log.With("component", "auto-extend"),
		Lookahead:    s.AutoExtendLookahead,
		Step:         s.AutoExtendStep,
	})

	var completer services.Completer
	if gemini, err := services.NewGeminiCompleter(s.GeminiAPIKey, s.GeminiModel); err != nil {
		log.Info("Asistente sin modelo: %v", err)
	} else {
		completer = gemini
	}
	a.assistant = services.NewAssistant(a.roomService, completer, log.With("component", "chatbot"))

	return a
}

func (a *app) handlers(m *melody.Melody) routes.Handlers {
	return routes.Handlers{
		Auth:          controllers.NewAuthController(a.authService, a.userService),
		Users:         controllers.NewUserController(a.userService),
		Rooms:         controllers.NewRoomController(a.roomService),
		States:        controllers.NewStateController(a.stateService),
		Reservations:  controllers.NewReservationController(a.reservationSvc),
		Notifications: controllers.NewNotificationController(a.notificationSvc),
		Chat:          controllers.NewChatController(a.assistant),
		WebSocket:     controllers.NewWebSocketController(m, a.logger),
	}
}
