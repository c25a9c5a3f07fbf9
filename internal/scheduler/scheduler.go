package scheduler

import (
	"context"
	"time"

	"github.com/waskull/hotelia/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type noShowCanceller interface {
	CancelNoShows(ctx context.Context, grace time.Duration) ([]*domain.Reservation, error)
}

// Scheduler periodically cancels pending reservations whose check-in passed
// without the guest showing up, freeing the room for other bookings.
type Scheduler struct {
	reservationService noShowCanceller
	interval           time.Duration
	grace              time.Duration
	logger             logger.Logger
}

func New(
	reservationService noShowCanceller,
	interval time.Duration,
	grace time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		grace:              grace,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("no-show scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("grace", s.grace),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("no-show scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.reservationService.CancelNoShows(ctx, s.grace)
	if err != nil {
		s.logger.Error("failed to cancel no-show reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range cancelled {
		s.logger.Info("no-show reservation cancelled",
			logger.String("reservation_id", r.ID),
			logger.Int64("room_id", r.RoomID),
			logger.Int64("user_id", r.UserID),
		)
	}
}
