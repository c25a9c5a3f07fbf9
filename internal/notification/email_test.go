package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waskull/hotelia/internal/domain"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func sampleReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:              "r1",
		RoomID:          5,
		UserID:          7,
		GuestEmail:      "guest@example.com",
		StartAt:         time.Date(2026, time.June, 10, 15, 0, 0, 0, time.UTC),
		EndAt:           time.Date(2026, time.June, 13, 11, 0, 0, 0, time.UTC),
		Status:          domain.StatusPending,
		TotalPriceCents: 30000,
	}
}

func TestEmailNotifier_NotifyReservationCreated(t *testing.T) {
	var got emailRequest
	var gotToken string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/emails/", r.URL.Path)
		gotToken = r.Header.Get(gatewayTokenHeader)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	n := NewEmailNotifier(srv.URL, "secret-token", time.Second, newTestLogger(t))

	n.NotifyReservationCreated(context.Background(), sampleReservation())

	assert.Equal(t, "secret-token", gotToken)
	assert.Equal(t, "Reserva recibida", got.Subject)
	assert.Equal(t, []string{"guest@example.com"}, got.Destinations)
	assert.Contains(t, got.Body, "300.00")
	assert.Contains(t, got.Body, "10/06/2026 15:00")
}

func TestEmailNotifier_NotifyRoomReady(t *testing.T) {
	var got emailRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	n := NewEmailNotifier(srv.URL, "", time.Second, newTestLogger(t))

	n.NotifyRoomReady(context.Background(), sampleReservation())

	assert.Equal(t, "Habitación lista", got.Subject)
}

func TestEmailNotifier_SkipsWithoutRecipient(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	n := NewEmailNotifier(srv.URL, "", time.Second, newTestLogger(t))

	r := sampleReservation()
	r.GuestEmail = ""
	n.NotifyReservationCancelled(context.Background(), r)

	assert.False(t, called)
}

func TestEmailNotifier_DisabledWithoutBaseURL(t *testing.T) {
	n := NewEmailNotifier("", "", time.Second, newTestLogger(t))

	// Must not panic or block with no endpoint configured.
	n.NotifyReservationCreated(context.Background(), sampleReservation())
}

func TestEmailNotifier_ServerErrorIsSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewEmailNotifier(srv.URL, "", time.Second, newTestLogger(t))

	n.NotifyReservationCancelled(context.Background(), sampleReservation())
}
