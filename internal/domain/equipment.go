package domain

import "time"

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentStatusRented      EquipmentStatus = "RENTED"
	EquipmentStatusMaintenance EquipmentStatus = "MAINTENANCE"
	EquipmentStatusDamaged     EquipmentStatus = "DAMAGED"
	EquipmentStatusRetired     EquipmentStatus = "RETIRED"
)

// ValidEquipmentStatus reports whether s is one of the five enumerated
// equipment statuses.
func ValidEquipmentStatus(s EquipmentStatus) bool {
	switch s {
	case EquipmentStatusAvailable, EquipmentStatusRented, EquipmentStatusMaintenance,
		EquipmentStatusDamaged, EquipmentStatusRetired:
		return true
	}
	return false
}

// ReturnCondition is the condition reported for a rental item at return
// time. It drives the post-return equipment disposition.
type ReturnCondition string

const (
	ReturnConditionExcellent ReturnCondition = "EXCELLENT"
	ReturnConditionGood      ReturnCondition = "GOOD"
	ReturnConditionFair      ReturnCondition = "FAIR"
	ReturnConditionPoor      ReturnCondition = "POOR"
	ReturnConditionDamaged   ReturnCondition = "DAMAGED"
)

type Equipment struct {
	ID                int32           `json:"id"`
	CategoryID        int32           `json:"category_id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Brand             string          `json:"brand"`
	ModelNumber       string          `json:"model_number"`
	SerialNumber      string          `json:"serial_number"`
	QRUUID            string          `json:"qr_uuid"`
	Status            EquipmentStatus `json:"status"`
	Quantity          int32           `json:"quantity"`
	DailyPriceCents   int32           `json:"daily_price_cents"`
	WeeklyPriceCents  int32           `json:"weekly_price_cents"`
	MonthlyPriceCents int32           `json:"monthly_price_cents"`
	DepositCents      int32           `json:"deposit_cents"`
	Condition         string          `json:"condition"`
	Notes             string          `json:"notes"`
	CreatedOn         time.Time       `json:"created_on"`
	UpdatedOn         time.Time       `json:"updated_on"`
}

type Category struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type MaintenanceRecord struct {
	ID          int32     `json:"id"`
	EquipmentID int32     `json:"equipment_id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	CostCents   int32     `json:"cost_cents"`
	PerformedBy string    `json:"performed_by"`
}
