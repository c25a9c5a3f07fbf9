package ports

import (
	"context"

	"github.com/waskull/hotelia/internal/domain"
)

// ReservationNotifier delivers best-effort guest emails. Implementations
// log failures and never return them; a dropped notice must not affect the
// reservation.
type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, r *domain.Reservation)
	NotifyRoomReady(ctx context.Context, r *domain.Reservation)
	NotifyReservationCancelled(ctx context.Context, r *domain.Reservation)
}
