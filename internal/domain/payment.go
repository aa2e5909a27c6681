package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
)

// ValidPaymentMethod reports whether m is one of the accepted settlement channels.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPaid PaymentStatus = "PAID"
)

// Payment records one settlement of a completed job. At most one PAID
// payment may exist per job.
type Payment struct {
	ID            int64         `json:"id"`
	JobID         int64         `json:"job_id"`
	Amount        float64       `json:"amount"`
	PaymentDate   time.Time     `json:"payment_date"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}
