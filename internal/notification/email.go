package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/waskull/hotelia/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const gatewayTokenHeader = "X-Notification-Gateway-Token"

const dateLayout = "02/01/2006 15:04"

// EmailNotifier delivers guest emails through the notifications service.
// Delivery is best-effort: failures are logged and never surfaced.
type EmailNotifier struct {
	baseURL string
	token   string
	http    *http.Client
	logger  logger.Logger
}

func NewEmailNotifier(baseURL, token string, timeout time.Duration, logger logger.Logger) *EmailNotifier {
	if baseURL == "" {
		logger.Warn("notifications service url is empty, notifications disabled")
	}
	return &EmailNotifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (n *EmailNotifier) NotifyReservationCreated(ctx context.Context, r *domain.Reservation) {
	body := fmt.Sprintf(
		"Hemos recibido tu reserva para la habitación %d.\n"+
			"Entrada: %s\nSalida: %s\nTotal: %s",
		r.RoomID,
		r.StartAt.Format(dateLayout), r.EndAt.Format(dateLayout),
		domain.FormatPrice(r.TotalPriceCents),
	)
	n.send(ctx, r.GuestEmail, "Reserva recibida", body)
}

func (n *EmailNotifier) NotifyRoomReady(ctx context.Context, r *domain.Reservation) {
	body := fmt.Sprintf(
		"Tu habitación %d está lista. ¡Bienvenido!\nSalida: %s",
		r.RoomID, r.EndAt.Format(dateLayout),
	)
	n.send(ctx, r.GuestEmail, "Habitación lista", body)
}

func (n *EmailNotifier) NotifyReservationCancelled(ctx context.Context, r *domain.Reservation) {
	body := fmt.Sprintf(
		"Tu reserva para la habitación %d del %s al %s ha sido cancelada.",
		r.RoomID,
		r.StartAt.Format(dateLayout), r.EndAt.Format(dateLayout),
	)
	n.send(ctx, r.GuestEmail, "Reserva cancelada", body)
}

type emailRequest struct {
	Subject      string   `json:"subject"`
	Body         string   `json:"body"`
	Destinations []string `json:"destinations"`
}

func (n *EmailNotifier) send(ctx context.Context, email, subject, body string) {
	if n.baseURL == "" {
		n.logger.Debug("notification skipped (dispatch disabled)", logger.String("subject", subject))
		return
	}
	if email == "" {
		n.logger.Debug("notification skipped (no recipient)", logger.String("subject", subject))
		return
	}
	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)", logger.String("recipient", email))
		return
	}

	payload, err := json.Marshal(emailRequest{
		Subject:      subject,
		Body:         body,
		Destinations: []string{email},
	})
	if err != nil {
		n.logger.Error("failed to encode notification", logger.String("error", err.Error()))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/api/emails/", bytes.NewReader(payload))
	if err != nil {
		n.logger.Error("failed to build notification request", logger.String("error", err.Error()))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(gatewayTokenHeader, n.token)

	resp, err := n.http.Do(req)
	if err != nil {
		n.logger.Error("failed to send notification",
			logger.String("recipient", email),
			logger.String("error", err.Error()),
		)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		n.logger.Error("notifications service rejected email",
			logger.String("recipient", email),
			logger.Int("status", resp.StatusCode),
		)
	}
}
