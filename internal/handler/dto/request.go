package dto

import (
	"fmt"
	"time"
)

// Operational bands: check-in runs in the afternoon/evening, check-out in
// the morning. Enforced here, at submission, not by the lifecycle core.
const (
	checkInFromHour   = 14
	checkInUntilHour  = 23
	checkOutFromHour  = 6
	checkOutUntilHour = 12
)

type CreateReservationRequest struct {
	RoomID     int64  `json:"room_id" binding:"required,gt=0"`
	UserID     *int64 `json:"user_id"`
	GuestEmail string `json:"guest_email" binding:"omitempty,email"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

func (r CreateReservationRequest) Stay() (time.Time, time.Time, error) {
	return parseStay(r.StartDate, r.EndDate)
}

type UpdateReservationRequest struct {
	RoomID    int64  `json:"room_id" binding:"required,gt=0"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

func (r UpdateReservationRequest) Stay() (time.Time, time.Time, error) {
	return parseStay(r.StartDate, r.EndDate)
}

type ExtendReservationRequest struct {
	EndDate string `json:"end_date" binding:"required"`
}

func (r ExtendReservationRequest) End() (time.Time, error) {
	end, err := time.Parse(time.RFC3339, r.EndDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid end_date, expected RFC3339")
	}
	if !withinBand(end, checkOutFromHour, checkOutUntilHour) {
		return time.Time{}, fmt.Errorf("check-out must be between %02d:00 and %02d:00", checkOutFromHour, checkOutUntilHour)
	}
	return end, nil
}

type RecordPaymentRequest struct {
	Amount  string  `json:"amount" binding:"required"`
	Method  string  `json:"payment_method" binding:"required"`
	RefCode *string `json:"ref_code"`
}

func parseStay(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date, expected RFC3339")
	}
	end, err := time.Parse(time.RFC3339, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date, expected RFC3339")
	}

	if !withinBand(start, checkInFromHour, checkInUntilHour) {
		return time.Time{}, time.Time{}, fmt.Errorf("check-in must be between %02d:00 and %02d:00", checkInFromHour, checkInUntilHour)
	}
	if !withinBand(end, checkOutFromHour, checkOutUntilHour) {
		return time.Time{}, time.Time{}, fmt.Errorf("check-out must be between %02d:00 and %02d:00", checkOutFromHour, checkOutUntilHour)
	}

	return start, end, nil
}

// withinBand allows [from:00, until:00] with the upper bound at the top of
// the hour, so until=12 admits 12:00 sharp but not 12:01.
func withinBand(t time.Time, from, until int) bool {
	h := t.Hour()
	if h < from || h > until {
		return false
	}
	if h == until {
		return t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
	}
	return true
}
