package domain

import "time"

type PaymentType string

const (
	PaymentTypeRental    PaymentType = "RENTAL"
	PaymentTypeDeposit   PaymentType = "DEPOSIT"
	PaymentTypeLateFee   PaymentType = "LATE_FEE"
	PaymentTypeDamageFee PaymentType = "DAMAGE_FEE"
)

type PaymentMethod string

const (
	PaymentMethodPayPal PaymentMethod = "PAYPAL"
	PaymentMethodStripe PaymentMethod = "STRIPE"
	PaymentMethodVenmo  PaymentMethod = "VENMO"
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodCheck  PaymentMethod = "CHECK"
	PaymentMethodOther  PaymentMethod = "OTHER"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// Payment is the aggregate-facing record of money received against a
// rental. Provider-specific transaction details live outside this system;
// the lifecycle engine only consumes amount and status.
type Payment struct {
	ID            int32         `json:"id"`
	RentalID      int32         `json:"rental_id"`
	AmountCents   int32         `json:"amount_cents"`
	Type          PaymentType   `json:"type"`
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	Notes         string        `json:"notes"`
	PaymentDate   time.Time     `json:"payment_date"`
}

// PaymentSummary is the balance view exposed for a rental.
type PaymentSummary struct {
	RentalID          int32 `json:"rental_id"`
	TotalPriceCents   int32 `json:"total_price_cents"`
	AmountPaidCents   int32 `json:"amount_paid_cents"`
	BalanceDueCents   int32 `json:"balance_due_cents"`
	DepositTotalCents int32 `json:"deposit_total_cents"`
	DepositPaid       bool  `json:"deposit_paid"`
}
