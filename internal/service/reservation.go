package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/waskull/hotelia/internal/domain"
	"github.com/waskull/hotelia/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ReservationService owns the reservation lifecycle: it is the only
// component that mutates reservation records. Room status and rate come
// from the hotels service, fetched before any transaction opens.
type ReservationService struct {
	repo     ports.ReservationRepo
	rooms    ports.RoomOracle
	notifier ports.ReservationNotifier
	clock    ports.Clock
	logger   logger.Logger
}

func NewReservationService(
	repo ports.ReservationRepo,
	rooms ports.RoomOracle,
	notifier ports.ReservationNotifier,
	clock ports.Clock,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		repo:     repo,
		rooms:    rooms,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

func (s *ReservationService) Create(ctx context.Context, actor domain.Identity, input domain.CreateReservationInput) (*domain.Reservation, error) {
	owner := actor.ID
	if input.UserID != nil {
		owner = *input.UserID
	}
	if !actor.CanActFor(owner) {
		return nil, domain.ErrForbidden
	}

	span, err := s.validatedSpan(input.StartAt, input.EndAt)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.GetRoom(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("room lookup: %w", err)
	}
	if !room.Bookable() {
		return nil, fmt.Errorf("%w: room is %s", domain.ErrRoomUnavailable, room.Status)
	}

	email := input.GuestEmail
	if email == "" {
		email = actor.Email
	}

	now := s.clock.Now()
	res := &domain.Reservation{
		ID:              uuid.New().String(),
		RoomID:          input.RoomID,
		UserID:          owner,
		GuestEmail:      email,
		StartAt:         span.Start,
		EndAt:           span.End,
		Status:          domain.StatusPending,
		TotalPriceCents: domain.TotalPriceCents(room.NightlyRateCents, span),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = s.repo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.Int64("room_id", res.RoomID),
		logger.Int64("user_id", res.UserID),
		logger.String("total_price", domain.FormatPrice(res.TotalPriceCents)),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), res)

	return res, nil
}

// Update edits room/dates of a pending reservation. Availability is
// rechecked (excluding self) and the price recomputed whenever a
// price-determining field changes.
func (s *ReservationService) Update(ctx context.Context, actor domain.Identity, id string, input domain.UpdateReservationInput) (*domain.Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if !actor.CanActFor(res.UserID) {
		return nil, domain.ErrForbidden
	}
	if res.Status != domain.StatusPending {
		return nil, domain.ErrNotEditable
	}

	if input.RoomID == res.RoomID && input.StartAt.Equal(res.StartAt) && input.EndAt.Equal(res.EndAt) {
		return res, nil
	}

	span, err := s.validatedSpan(input.StartAt, input.EndAt)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.GetRoom(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("room lookup: %w", err)
	}
	if !room.Bookable() {
		return nil, fmt.Errorf("%w: room is %s", domain.ErrRoomUnavailable, room.Status)
	}

	res.RoomID = input.RoomID
	res.StartAt = span.Start
	res.EndAt = span.End
	res.TotalPriceCents = domain.TotalPriceCents(room.NightlyRateCents, span)

	if err = s.repo.Reschedule(ctx, res); err != nil {
		return nil, fmt.Errorf("reschedule reservation: %w", err)
	}

	s.logger.Info("reservation rescheduled",
		logger.String("reservation_id", res.ID),
		logger.Int64("room_id", res.RoomID),
		logger.String("total_price", domain.FormatPrice(res.TotalPriceCents)),
	)

	return res, nil
}

// Extend pushes the checkout later. The rate is looked up again: the total
// for the widened span is priced at the room's current rate.
func (s *ReservationService) Extend(ctx context.Context, actor domain.Identity, id string, newEnd time.Time) (*domain.Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if !actor.CanActFor(res.UserID) {
		return nil, domain.ErrForbidden
	}
	if res.Status.IsTerminal() {
		return nil, domain.ErrNotExtendable
	}
	if !newEnd.After(res.EndAt) {
		return nil, fmt.Errorf("%w: new end date must be after the current end date", domain.ErrValidation)
	}

	room, err := s.rooms.GetRoom(ctx, res.RoomID)
	if err != nil {
		return nil, fmt.Errorf("room lookup: %w", err)
	}

	span := domain.Interval{Start: res.StartAt, End: newEnd}
	total := domain.TotalPriceCents(room.NightlyRateCents, span)

	if err = s.repo.ExtendSpan(ctx, id, newEnd, total); err != nil {
		return nil, fmt.Errorf("extend reservation: %w", err)
	}

	res.EndAt = newEnd
	res.TotalPriceCents = total

	s.logger.Info("reservation extended",
		logger.String("reservation_id", res.ID),
		logger.Int64("room_id", res.RoomID),
		logger.String("total_price", domain.FormatPrice(total)),
	)

	return res, nil
}

func (s *ReservationService) Cancel(ctx context.Context, actor domain.Identity, id string) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}
	if !actor.CanActFor(res.UserID) {
		return domain.ErrForbidden
	}

	// Status is checked atomically by the repository CAS, not here.
	if err = s.repo.Cancel(ctx, id); err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", res.ID),
		logger.Int64("user_id", res.UserID),
	)

	res.Status = domain.StatusCancelled
	go s.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), res)

	return nil
}

// Advance moves a reservation exactly one step along the operational chain.
// Reaching occupied notifies the guest that the room is ready.
func (s *ReservationService) Advance(ctx context.Context, actor domain.Identity, id string) (*domain.Reservation, error) {
	if !actor.Privileged() {
		return nil, domain.ErrForbidden
	}

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	next, err := res.Status.Next()
	if err != nil {
		return nil, err
	}

	if err = s.repo.Advance(ctx, id, res.Status, next); err != nil {
		return nil, fmt.Errorf("advance reservation: %w", err)
	}

	s.logger.Info("reservation advanced",
		logger.String("reservation_id", res.ID),
		logger.String("from", string(res.Status)),
		logger.String("to", string(next)),
	)

	res.Status = next
	if next == domain.StatusOccupied {
		go s.notifier.NotifyRoomReady(context.WithoutCancel(ctx), res)
	}

	return res, nil
}

func (s *ReservationService) Get(ctx context.Context, actor domain.Identity, id string) (*domain.Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if !actor.CanActFor(res.UserID) {
		return nil, domain.ErrForbidden
	}
	return res, nil
}

// List returns the caller's reservations, or a room's live reservations for
// privileged callers.
func (s *ReservationService) List(ctx context.Context, actor domain.Identity, roomID *int64) ([]*domain.Reservation, error) {
	if roomID != nil {
		if !actor.Privileged() {
			return nil, domain.ErrForbidden
		}
		return s.repo.ListByRoom(ctx, *roomID)
	}
	return s.repo.ListByUser(ctx, actor.ID)
}

// CheckAvailability reports whether the room is free over [start, end).
func (s *ReservationService) CheckAvailability(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	span, err := domain.NewInterval(start, end)
	if err != nil {
		return false, err
	}

	conflict, err := s.repo.HasOverlap(ctx, roomID, span, "")
	if err != nil {
		return false, fmt.Errorf("check availability: %w", err)
	}

	return !conflict, nil
}

// CancelNoShows cancels pending reservations whose start passed more than
// grace ago and notifies the guests.
func (s *ReservationService) CancelNoShows(ctx context.Context, grace time.Duration) ([]*domain.Reservation, error) {
	cutoff := s.clock.Now().Add(-grace)

	cancelled, err := s.repo.CancelNoShows(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("cancel no-shows: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("no-show reservations cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *ReservationService) notifyCancelled(ctx context.Context, cancelled []*domain.Reservation) {
	for _, res := range cancelled {
		s.notifier.NotifyReservationCancelled(ctx, res)
	}
}

func (s *ReservationService) validatedSpan(start, end time.Time) (domain.Interval, error) {
	span, err := domain.NewInterval(start, end)
	if err != nil {
		return domain.Interval{}, err
	}
	if span.Start.Before(s.clock.Now()) {
		return domain.Interval{}, fmt.Errorf("%w: start date is in the past", domain.ErrValidation)
	}
	return span, nil
}
