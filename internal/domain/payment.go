package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "cash"
	PaymentMethodDebitCard     PaymentMethod = "debit_card"
	PaymentMethodCreditCard    PaymentMethod = "credit_card"
	PaymentMethodMobilePayment PaymentMethod = "mobile_payment"
	PaymentMethodTransfer      PaymentMethod = "transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodDebitCard, PaymentMethodCreditCard,
		PaymentMethodMobilePayment, PaymentMethodTransfer:
		return true
	}
	return false
}

// RequiresRefCode reports whether the method needs a bank reference code.
func (m PaymentMethod) RequiresRefCode() bool {
	return m == PaymentMethodMobilePayment || m == PaymentMethodTransfer
}

type Payment struct {
	ID            string        `json:"id"`
	ReservationID string        `json:"reservation_id"`
	AmountCents   int64         `json:"amount_cents"`
	Method        PaymentMethod `json:"payment_method"`
	RefCode       *string       `json:"ref_code,omitempty"`
	PaidAt        time.Time     `json:"payment_date"`
	CreatedAt     time.Time     `json:"created_at"`
}

type RecordPaymentInput struct {
	AmountCents int64
	Method      PaymentMethod
	RefCode     *string
}
