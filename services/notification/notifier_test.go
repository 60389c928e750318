package notification

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reservas/models"
	"reservas/services/logger"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	payloads []Payload
	err      error
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Send(_ context.Context, p Payload) error {
	s.payloads = append(s.payloads, p)
	return s.err
}

func sampleReservation(state string) *models.Reservation {
	loc := time.FixedZone("CLT", -3*3600)
	res := &models.Reservation{
		ID:             12,
		RoomID:         1,
		Room:           &models.Room{ID: 1, Name: "Sala 1"},
		StartsAt:       time.Date(2025, 3, 10, 10, 0, 0, 0, loc),
		EndsAt:         time.Date(2025, 3, 10, 12, 0, 0, 0, loc),
		RequesterName:  "Cliente 1",
		RequesterEmail: "cliente1@example.com",
		RequesterPhone: "+56912345671",
	}
	if state != "" {
		res.State = &models.ReservationState{ID: 2, Name: state}
	}
	return res
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name    string
		created bool
		state   string
		want    Status
		ok      bool
	}{
		{"created ignores state", true, "confirmada", StatusReceived, true},
		{"created without state", true, "", StatusReceived, true},
		{"confirmed", false, "confirmada", StatusConfirmed, true},
		{"cancelled uppercase", false, "CANCELADA", StatusCancelled, true},
		{"pending is silent", false, "pendiente", "", false},
		{"no state is silent", false, "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DeriveStatus(tc.created, tc.state)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "Hemos recibido tu solicitud de reserva.", StatusReceived.Message())
	assert.Equal(t, "Tu reserva ha sido confirmada.", StatusConfirmed.Message())
	assert.Equal(t, "Tu reserva ha sido cancelada.", StatusCancelled.Message())
}

func TestNotifierSendsPayloadOnCreate(t *testing.T) {
	sink := &recordingSink{}
	n := NewStateChangeNotifier(logger.Nop(), sink)

	n.ReservationSaved(context.Background(), sampleReservation("pendiente"), true)

	require.Len(t, sink.payloads, 1)
	p := sink.payloads[0]
	assert.Equal(t, uint(12), p.ReservationID)
	assert.Equal(t, "Sala 1", p.Room)
	assert.Equal(t, StatusReceived, p.Status)
	assert.Equal(t, "2025-03-10 10:00:00-03:00", p.StartsAt)
	assert.Equal(t, "2025-03-10 12:00:00-03:00", p.EndsAt)
	assert.Equal(t, "Cliente 1", p.ClientName)
}

func TestNotifierSkipsNeutralUpdates(t *testing.T) {
	sink := &recordingSink{}
	n := NewStateChangeNotifier(logger.Nop(), sink)

	n.ReservationSaved(context.Background(), sampleReservation("pendiente"), false)
	n.ReservationSaved(context.Background(), sampleReservation(""), false)

	assert.Empty(t, sink.payloads)
}

func TestNotifierSwallowsSinkErrors(t *testing.T) {
	failing := &recordingSink{err: errors.New("down")}
	healthy := &recordingSink{}
	n := NewStateChangeNotifier(logger.Nop(), failing, healthy)

	assert.NotPanics(t, func() {
		n.ReservationSaved(context.Background(), sampleReservation("cancelada"), false)
	})
	assert.Len(t, failing.payloads, 1)
	require.Len(t, healthy.payloads, 1)
	assert.Equal(t, StatusCancelled, healthy.payloads[0].Status)
}

func TestPayloadFallsBackToUnknownRoom(t *testing.T) {
	res := sampleReservation("confirmada")
	res.Room = nil
	assert.Equal(t, UnknownRoom, NewPayload(res, StatusConfirmed).Room)
}

func TestWebhookSinkPostsJSON(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sink := NewWebhookSink(srv.URL, time.Second)
	err := sink.Send(context.Background(), NewPayload(sampleReservation("confirmada"), StatusConfirmed))
	require.NoError(t, err)

	assert.Equal(t, float64(12), got["id_reserva"])
	assert.Equal(t, "CONFIRMADA", got["estado"])
	assert.Equal(t, "Tu reserva ha sido confirmada.", got["mensaje"])
	for _, key := range []string{"sala", "cliente_nombre", "cliente_email", "cliente_telefono", "fecha_inicio", "fecha_fin"} {
		assert.Contains(t, got, key)
	}
}

func TestWebhookSinkTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	sink := NewWebhookSink(srv.URL, 50*time.Millisecond)
	err := sink.Send(context.Background(), NewPayload(sampleReservation(""), StatusReceived))
	assert.Error(t, err)
}

func TestWebhookSinkRejectsServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewWebhookSink(srv.URL, time.Second).Send(context.Background(), Payload{})
	assert.Error(t, err)
}

func TestShouldDeliver(t *testing.T) {
	owner := uint(7)
	n := models.Notification{UserID: &owner}

	assert.True(t, ShouldDeliver(map[string]interface{}{SessionRole: models.RoleCashier}, n))
	assert.True(t, ShouldDeliver(map[string]interface{}{SessionRole: models.RoleUser, SessionUserID: uint(7)}, n))
	assert.False(t, ShouldDeliver(map[string]interface{}{SessionRole: models.RoleUser, SessionUserID: uint(8)}, n))
	assert.False(t, ShouldDeliver(nil, models.Notification{}))
}

func TestMessageBuilder(t *testing.T) {
	b := NewMessageBuilder("Sala 2")
	assert.Equal(t, "Tu reserva en la sala Sala 2 está por terminar en menos de 15 minutos.", b.EndingSoon(15*time.Minute))
	assert.Equal(t, "Tu reserva en la sala Sala 2 se ha extendido automáticamente por 30 minutos porque la sala estaba libre.", b.Extended(30*time.Minute))
}
