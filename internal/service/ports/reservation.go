package ports

import (
	"context"
	"time"

	"github.com/waskull/hotelia/internal/domain"
)

type ReservationRepo interface {
	// Create inserts the reservation, failing with domain.ErrRangeConflict
	// if a live reservation overlaps its span. The overlap check and the
	// insert run in one transaction serialized per room.
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	// HasOverlap reports whether any live reservation for the room overlaps
	// the half-open span. excludeID skips one reservation (self on edits).
	HasOverlap(ctx context.Context, roomID int64, span domain.Interval, excludeID string) (bool, error)
	// Reschedule moves a pending reservation to a new room/span/price,
	// rechecking overlap against all other live reservations.
	Reschedule(ctx context.Context, r *domain.Reservation) error
	// ExtendSpan pushes end_at later on a non-terminal reservation,
	// rechecking overlap for the widened span.
	ExtendSpan(ctx context.Context, id string, newEnd time.Time, totalPriceCents int64) error
	// Advance compare-and-swaps the status one step along the chain.
	Advance(ctx context.Context, id string, from, to domain.Status) error
	// Cancel compare-and-swaps pending → cancelled.
	Cancel(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error)
	ListByRoom(ctx context.Context, roomID int64) ([]*domain.Reservation, error)
	// CancelNoShows cancels pending reservations whose start passed before
	// the cutoff and returns them.
	CancelNoShows(ctx context.Context, cutoff time.Time) ([]*domain.Reservation, error)
}
