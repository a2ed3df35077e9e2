package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "PENDING"
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusOverdue   RentalStatus = "OVERDUE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

type DurationType string

const (
	DurationTypeDaily   DurationType = "DAILY"
	DurationTypeWeekly  DurationType = "WEEKLY"
	DurationTypeMonthly DurationType = "MONTHLY"
)

// ValidDurationType reports whether d selects one of the three price tiers.
func ValidDurationType(d DurationType) bool {
	switch d {
	case DurationTypeDaily, DurationTypeWeekly, DurationTypeMonthly:
		return true
	}
	return false
}

type Rental struct {
	ID                    int32        `json:"id"`
	CustomerID            int32        `json:"customer_id"`
	StartDate             time.Time    `json:"start_date"`
	EndDate               time.Time    `json:"end_date"`
	DurationType          DurationType `json:"duration_type"`
	Status                RentalStatus `json:"status"`
	TotalPriceCents       int32        `json:"total_price_cents"`
	DepositTotalCents     int32        `json:"deposit_total_cents"`
	DepositPaid           bool         `json:"deposit_paid"`
	ContractSigned        bool         `json:"contract_signed"`
	ContractSignedDate    *time.Time   `json:"contract_signed_date,omitempty"`
	ContractSignatureData string       `json:"contract_signature_data,omitempty"`
	Notes                 string       `json:"notes"`
	CreatedOn             time.Time    `json:"created_on"`
	UpdatedOn             time.Time    `json:"updated_on"`
}

// IsOverdue reports whether the rental is past due as of the given date.
// It is a derived predicate: a rental persisted as ACTIVE can already be
// overdue before the nightly sweep stamps it.
func (r *Rental) IsOverdue(asOf time.Time) bool {
	if r.Status != RentalStatusActive && r.Status != RentalStatusOverdue {
		return false
	}
	y1, m1, d1 := r.EndDate.Date()
	y2, m2, d2 := asOf.Date()
	end := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	day := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return end.Before(day)
}

// RentalItem is a line item: one equipment type rented at a given quantity.
// PriceCents and DepositCents are snapshots taken when the item is created;
// all rental totals are computed from these snapshots, not live equipment
// prices.
type RentalItem struct {
	ID                    int32           `json:"id"`
	RentalID              int32           `json:"rental_id"`
	EquipmentID           int32           `json:"equipment_id"`
	Quantity              int32           `json:"quantity"`
	PriceCents            int32           `json:"price_cents"`
	DepositCents          int32           `json:"deposit_cents"`
	ConditionNoteCheckout string          `json:"condition_note_checkout"`
	ConditionNoteReturn   string          `json:"condition_note_return"`
	ReturnCondition       ReturnCondition `json:"return_condition,omitempty"`
	Returned              bool            `json:"returned"`
	ReturnedDate          *time.Time      `json:"returned_date,omitempty"`
}
