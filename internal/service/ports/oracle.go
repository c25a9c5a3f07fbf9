package ports

import (
	"context"

	"github.com/waskull/hotelia/internal/domain"
)

// RoomOracle is the hotels service: the authoritative source for a room's
// status and nightly rate. Reached over the network; calls have bounded
// timeouts and fail with domain.ErrRoomNotFound or domain.ErrHotelsUnavailable.
type RoomOracle interface {
	GetRoom(ctx context.Context, roomID int64) (*domain.Room, error)
}
