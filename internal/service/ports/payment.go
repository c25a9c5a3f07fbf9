package ports

import (
	"context"

	"github.com/waskull/hotelia/internal/domain"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	ListByReservation(ctx context.Context, reservationID string) ([]*domain.Payment, error)
}
