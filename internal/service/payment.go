package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/waskull/hotelia/internal/domain"
	"github.com/waskull/hotelia/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const refCodeLength = 4

// PaymentService records payments against reservations. It is bookkeeping
// only; charging happens elsewhere.
type PaymentService struct {
	payments     ports.PaymentRepo
	reservations ports.ReservationRepo
	clock        ports.Clock
	logger       logger.Logger
}

func NewPaymentService(
	payments ports.PaymentRepo,
	reservations ports.ReservationRepo,
	clock ports.Clock,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		payments:     payments,
		reservations: reservations,
		clock:        clock,
		logger:       logger,
	}
}

func (s *PaymentService) Record(ctx context.Context, actor domain.Identity, reservationID string, input domain.RecordPaymentInput) (*domain.Payment, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if !actor.CanActFor(res.UserID) {
		return nil, domain.ErrForbidden
	}

	if input.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", domain.ErrValidation)
	}
	if !input.Method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, input.Method)
	}
	if input.Method.RequiresRefCode() {
		if input.RefCode == nil || *input.RefCode == "" {
			return nil, fmt.Errorf("%w: reference code is required for %s", domain.ErrValidation, input.Method)
		}
		if len(*input.RefCode) != refCodeLength {
			return nil, fmt.Errorf("%w: reference code must be %d characters", domain.ErrValidation, refCodeLength)
		}
	}

	now := s.clock.Now()
	payment := &domain.Payment{
		ID:            uuid.New().String(),
		ReservationID: reservationID,
		AmountCents:   input.AmountCents,
		Method:        input.Method,
		RefCode:       input.RefCode,
		PaidAt:        now,
		CreatedAt:     now,
	}
	if err = s.payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	s.logger.Info("payment recorded",
		logger.String("payment_id", payment.ID),
		logger.String("reservation_id", reservationID),
		logger.String("amount", domain.FormatPrice(payment.AmountCents)),
		logger.String("method", string(payment.Method)),
	)

	return payment, nil
}

func (s *PaymentService) ListByReservation(ctx context.Context, actor domain.Identity, reservationID string) ([]*domain.Payment, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if !actor.CanActFor(res.UserID) {
		return nil, domain.ErrForbidden
	}

	return s.payments.ListByReservation(ctx, reservationID)
}
