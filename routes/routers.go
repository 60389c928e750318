package routes

import (
	"net/http"

	"reservas/controllers"
	_ "reservas/docs"
	middlewares "reservas/middleware"
	"reservas/models"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers agrupa los controladores que expone la API
type Handlers struct {
	Auth          *controllers.AuthController
	Users         *controllers.UserController
	Rooms         *controllers.RoomController
	States        *controllers.StateController
	Reservations  *controllers.ReservationController
	Notifications *controllers.NotificationController
	Chat          *controllers.ChatController
	WebSocket     *controllers.WebSocketController
}

// handle registra la ruta con y sin barra final
func handle(g *gin.RouterGroup, method, path string, handlers ...gin.HandlerFunc) {
	g.Handle(method, path, handlers...)
	g.Handle(method, path+"/", handlers...)
}

func SetupRoutes(router *gin.Engine, h Handlers, auth middlewares.Authenticator, chatLimiter gin.HandlerFunc) {
	router.Use(middlewares.SessionMiddleware(), middlewares.ErrorHandler(), middlewares.Authenticate(auth))

	authenticated := middlewares.RequireAuth()
	staff := middlewares.RequireStaff()
	admin := middlewares.RequireAuth(models.RoleAdmin)

	api := router.Group("/api")

	handle(api, http.MethodPost, "/token", h.Auth.Login)
	handle(api, http.MethodPost, "/token/refresh", h.Auth.Refresh)
	handle(api, http.MethodPost, "/register", h.Auth.RegisterUser)
	handle(api, http.MethodGet, "/user-info", authenticated, h.Auth.UserInfo)

	handle(api, http.MethodGet, "/users", authenticated, h.Users.GetUsers)
	handle(api, http.MethodPost, "/users", admin, h.Users.CreateUser)
	handle(api, http.MethodGet, "/users/:id", authenticated, h.Users.GetUserByID)
	handle(api, http.MethodPut, "/users/:id", admin, h.Users.ReplaceUser)
	handle(api, http.MethodPatch, "/users/:id", admin, h.Users.UpdateUser)
	handle(api, http.MethodDelete, "/users/:id", admin, h.Users.DeleteUser)

	handle(api, http.MethodGet, "/salas", h.Rooms.GetAllRooms)
	handle(api, http.MethodPost, "/salas", staff, h.Rooms.CreateRoom)
	handle(api, http.MethodGet, "/salas/:id", h.Rooms.GetRoomDetail)
	handle(api, http.MethodPut, "/salas/:id", staff, h.Rooms.ReplaceRoom)
	handle(api, http.MethodPatch, "/salas/:id", staff, h.Rooms.UpdateRoom)
	handle(api, http.MethodDelete, "/salas/:id", staff, h.Rooms.DeleteRoom)
	handle(api, http.MethodPost, "/salas/:id/imagen", staff, h.Rooms.UploadImage)
	handle(api, http.MethodGet, "/salas/:id/disponibilidad", h.Rooms.CheckAvailability)

	handle(api, http.MethodGet, "/estados", h.States.GetAllStates)
	handle(api, http.MethodPost, "/estados", admin, h.States.CreateState)
	handle(api, http.MethodGet, "/estados/:id", h.States.GetStateDetail)
	handle(api, http.MethodPut, "/estados/:id", admin, h.States.UpdateState)
	handle(api, http.MethodPatch, "/estados/:id", admin, h.States.UpdateState)
	handle(api, http.MethodDelete, "/estados/:id", admin, h.States.DeleteState)

	handle(api, http.MethodPost, "/reservas", h.Reservations.CreateReservation)
	handle(api, http.MethodGet, "/reservas", staff, h.Reservations.GetAllReservations)
	handle(api, http.MethodGet, "/reservas/:id", staff, h.Reservations.GetReservationDetail)
	handle(api, http.MethodPut, "/reservas/:id", staff, h.Reservations.ReplaceReservation)
	handle(api, http.MethodPatch, "/reservas/:id", staff, h.Reservations.UpdateReservation)
	handle(api, http.MethodDelete, "/reservas/:id", staff, h.Reservations.DeleteReservation)
	handle(api, http.MethodPost, "/reservas/:id/confirmar", staff, h.Reservations.ConfirmReservation)
	handle(api, http.MethodPost, "/reservas/:id/cancelar", authenticated, h.Reservations.CancelReservation)

	handle(api, http.MethodGet, "/notificaciones", authenticated, h.Notifications.GetAllNotifications)
	handle(api, http.MethodPost, "/notificaciones", admin, h.Notifications.CreateNotification)
	handle(api, http.MethodGet, "/notificaciones/sin-leer", authenticated, h.Notifications.UnreadCount)
	handle(api, http.MethodPost, "/notificaciones/marcar-todas-leidas", authenticated, h.Notifications.MarkAllRead)
	handle(api, http.MethodGet, "/notificaciones/:id", authenticated, h.Notifications.GetNotificationDetail)
	handle(api, http.MethodPut, "/notificaciones/:id", admin, h.Notifications.UpdateNotification)
	handle(api, http.MethodPatch, "/notificaciones/:id", admin, h.Notifications.UpdateNotification)
	handle(api, http.MethodDelete, "/notificaciones/:id", admin, h.Notifications.DeleteNotification)
	handle(api, http.MethodPost, "/notificaciones/:id/leer", authenticated, h.Notifications.MarkRead)

	if chatLimiter == nil {
		chatLimiter = func(c *gin.Context) { c.Next() }
	}
	handle(api, http.MethodPost, "/chatbot", chatLimiter, h.Chat.Chat)

	router.GET("/ws", h.WebSocket.Connect)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}
