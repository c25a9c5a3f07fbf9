package domain

import "time"

type Reservation struct {
	ID              string    `json:"id"`
	RoomID          int64     `json:"room_id"`
	UserID          int64     `json:"user_id"`
	GuestEmail      string    `json:"guest_email"`
	StartAt         time.Time `json:"start_date"`
	EndAt           time.Time `json:"end_date"`
	Status          Status    `json:"status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Span returns the occupied interval [StartAt, EndAt).
func (r *Reservation) Span() Interval {
	return Interval{Start: r.StartAt, End: r.EndAt}
}

type CreateReservationInput struct {
	RoomID     int64
	UserID     *int64 // target user; nil attributes the reservation to the caller
	GuestEmail string
	StartAt    time.Time
	EndAt      time.Time
}

type UpdateReservationInput struct {
	RoomID  int64
	StartAt time.Time
	EndAt   time.Time
}
