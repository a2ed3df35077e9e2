package service

import (
	"context"
	"time"

	"roknsound-backend/internal/domain"
)

// EquipmentService is the equipment registry: inventory records, staff
// status overrides and the availability count consumed by the rental
// lifecycle.
type EquipmentService interface {
	CreateEquipment(ctx context.Context, eq *domain.Equipment) error
	GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error)
	ListEquipment(ctx context.Context, status string, page, pageSize int32) ([]domain.Equipment, int32, error)
	// SetStatus validates the status value only; it does not enforce
	// transition legality. Rental-driven transitions go through
	// RentalService, staff overrides (e.g. marking DAMAGED) are always
	// legal here.
	SetStatus(ctx context.Context, id int32, status domain.EquipmentStatus) error
	// AvailableQuantity returns 0 unless the equipment is AVAILABLE,
	// otherwise owned quantity minus units out on open rentals.
	AvailableQuantity(ctx context.Context, id int32) (int32, error)
	RecordMaintenance(ctx context.Context, rec *domain.MaintenanceRecord) error
	ListMaintenanceRecords(ctx context.Context, equipmentID int32) ([]domain.MaintenanceRecord, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, cat *domain.Category) error
}

// AddItemRequest adds equipment to a pending rental. PriceOverrideCents is
// honored only when StaffOverride is set; regular customers never free-enter
// prices.
type AddItemRequest struct {
	RentalID           int32
	EquipmentID        int32
	Quantity           int32
	CheckoutNote       string
	PriceOverrideCents *int32
	StaffOverride      bool
}

// ItemReturn reports the condition of one rental item at return time.
type ItemReturn struct {
	ItemID     int32
	Condition  domain.ReturnCondition
	ReturnNote string
}

// RentalService owns the rental lifecycle state machine:
// PENDING -> ACTIVE -> OVERDUE -> COMPLETED, with CANCELLED reachable only
// from PENDING. Every multi-step mutation runs in a single transaction.
type RentalService interface {
	CreateRental(ctx context.Context, customerID int32, startDate, endDate time.Time, durationType domain.DurationType, notes string) (*domain.Rental, error)
	GetRental(ctx context.Context, id int32) (*domain.Rental, []domain.RentalItem, error)
	ListRentals(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	ListRentalsByCustomer(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)

	AddItem(ctx context.Context, req AddItemRequest) (*domain.RentalItem, error)
	RemoveItem(ctx context.Context, rentalID, itemID int32) error
	SignContract(ctx context.Context, rentalID int32, signatureData string) (*domain.Rental, error)
	Cancel(ctx context.Context, rentalID int32) (*domain.Rental, error)
	Extend(ctx context.Context, rentalID int32, newEndDate time.Time) (*domain.Rental, error)
	ReturnItems(ctx context.Context, rentalID int32, returns []ItemReturn) (*domain.Rental, error)
}

// PaymentService records inbound payments and exposes the aggregate balance
// view. Provider-specific transaction handling lives outside this system.
type PaymentService interface {
	RecordPayment(ctx context.Context, p *domain.Payment) error
	ListPayments(ctx context.Context, rentalID int32) ([]domain.Payment, error)
	Summary(ctx context.Context, rentalID int32) (*domain.PaymentSummary, error)
}

// CustomerService is the minimal customer registry rentals reference.
type CustomerService interface {
	CreateCustomer(ctx context.Context, c *domain.Customer) error
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	ListCustomers(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error)
}

type EmailService interface {
	SendOverdueReminder(ctx context.Context, email, name string, rentalID int32, daysLate int32, lateFeeCents int32) error
	SendReturnReceipt(ctx context.Context, email, name string, rentalID int32, totalCents, lateFeeCents int32) error
}
