package dto

import (
	"time"

	"github.com/waskull/hotelia/internal/domain"
)

type ReservationResponse struct {
	ID         string `json:"id"`
	RoomID     int64  `json:"room_id"`
	UserID     int64  `json:"user_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
	TotalPrice string `json:"total_price"`
	CreatedAt  string `json:"created_at"`
}

type AvailabilityResponse struct {
	RoomID    int64  `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Available bool   `json:"available"`
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	ReservationID string  `json:"reservation_id"`
	Amount        string  `json:"amount"`
	Method        string  `json:"payment_method"`
	RefCode       *string `json:"ref_code,omitempty"`
	PaymentDate   string  `json:"payment_date"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		RoomID:     r.RoomID,
		UserID:     r.UserID,
		StartDate:  r.StartAt.Format(time.RFC3339),
		EndDate:    r.EndAt.Format(time.RFC3339),
		Status:     string(r.Status),
		TotalPrice: domain.FormatPrice(r.TotalPriceCents),
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Amount:        domain.FormatPrice(p.AmountCents),
		Method:        string(p.Method),
		RefCode:       p.RefCode,
		PaymentDate:   p.PaidAt.Format(time.RFC3339),
	}
}
