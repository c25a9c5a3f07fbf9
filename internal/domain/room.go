package domain

// Room is the hotels service's view of a room, fetched lazily at
// creation/extension time. Never persisted locally.

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusDisabled    RoomStatus = "disabled"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

type Room struct {
	ID               int64      `json:"id"`
	Status           RoomStatus `json:"status"`
	NightlyRateCents int64      `json:"nightly_rate_cents"`
}

func (r *Room) Bookable() bool {
	return r.Status == RoomStatusAvailable
}
