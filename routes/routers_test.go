package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"reservas/controllers"
	apperrors "reservas/errors"
	"reservas/models"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type tokenAuth map[string]*models.User

func (a tokenAuth) AuthenticateJWT(_ context.Context, token string) (*models.User, error) {
	if u, ok := a[token]; ok {
		return u, nil
	}
	return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token inválido o expirado", nil)
}

func (a tokenAuth) AuthenticateAPIKey(ctx context.Context, key string) (*models.User, error) {
	return a.AuthenticateJWT(ctx, key)
}

// newTestRouter usa controladores sin servicios: solo se prueban rutas que
// cortan antes de llegar al handler
func newTestRouter() *gin.Engine {
	r := gin.New()
	SetupRoutes(r, Handlers{
		Auth:          controllers.NewAuthController(nil, nil),
		Users:         controllers.NewUserController(nil),
		Rooms:         controllers.NewRoomController(nil),
		States:        controllers.NewStateController(nil),
		Reservations:  controllers.NewReservationController(nil),
		Notifications: controllers.NewNotificationController(nil),
		Chat:          controllers.NewChatController(nil),
		WebSocket:     controllers.NewWebSocketController(melody.New(), nil),
	}, tokenAuth{
		"cliente": {ID: 3, Username: "cliente", IsActive: true},
		"cajero":  {ID: 2, Username: "cajero", Groups: []string{models.CashierGroup}, IsActive: true},
	}, nil)
	return r
}

func call(r http.Handler, method, path, token string) int {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRoutesAcceptBothSlashForms(t *testing.T) {
	r := newTestRouter()
	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for _, path := range []string{"/api/salas", "/api/reservas/:id/confirmar", "/api/notificaciones/sin-leer", "/api/user-info"} {
		method := http.MethodGet
		if path == "/api/reservas/:id/confirmar" {
			method = http.MethodPost
		}
		assert.True(t, registered[method+" "+path], path)
		assert.True(t, registered[method+" "+path+"/"], path+"/")
	}
}

func TestRouteGuards(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		method, path, token string
		code                int
	}{
		{http.MethodGet, "/api/reservas/", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/reservas", "cliente", http.StatusForbidden},
		{http.MethodPost, "/api/reservas/1/confirmar/", "cliente", http.StatusForbidden},
		{http.MethodPost, "/api/reservas/1/cancelar/", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/salas/", "cliente", http.StatusForbidden},
		{http.MethodPost, "/api/estados/", "cajero", http.StatusForbidden},
		{http.MethodPost, "/api/users/", "cajero", http.StatusForbidden},
		{http.MethodGet, "/api/notificaciones/sin-leer/", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/user-info/", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/salas/", "basura", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, call(r, tt.method, tt.path, tt.token), "%s %s (%s)", tt.method, tt.path, tt.token)
	}
}

func TestPing(t *testing.T) {
	r := newTestRouter()
	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/ping", ""))
}
