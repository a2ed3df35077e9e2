package repository

import (
	"context"

	"roknsound-backend/internal/domain"
)

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id int32) (*domain.Equipment, error)
	// GetByIDForUpdate reads the equipment row with a row-level lock.
	// Only meaningful inside a transaction; availability checks and
	// status flips driven by the rental lifecycle must go through it.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	UpdateStatus(ctx context.Context, id int32, status domain.EquipmentStatus) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Equipment, int32, error)

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, cat *domain.Category) error

	CreateMaintenanceRecord(ctx context.Context, rec *domain.MaintenanceRecord) error
	ListMaintenanceRecords(ctx context.Context, equipmentID int32) ([]domain.MaintenanceRecord, error)
}

type RentalRepository interface {
	Create(ctx context.Context, r *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, r *domain.Rental) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	ListByCustomer(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
}

type RentalItemRepository interface {
	Create(ctx context.Context, item *domain.RentalItem) error
	GetByID(ctx context.Context, id int32) (*domain.RentalItem, error)
	Update(ctx context.Context, item *domain.RentalItem) error
	Delete(ctx context.Context, id int32) error
	ListByRental(ctx context.Context, rentalID int32) ([]domain.RentalItem, error)
	// OutstandingQuantity sums the quantities of non-returned items for an
	// equipment across PENDING, ACTIVE and OVERDUE rentals. It is the
	// "units out" side of the availability invariant.
	OutstandingQuantity(ctx context.Context, equipmentID int32) (int32, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	ListByRental(ctx context.Context, rentalID int32) ([]domain.Payment, error)
	// AmountPaidCents sums completed payments for a rental.
	AmountPaidCents(ctx context.Context, rentalID int32) (int32, error)
}

// Tx is the set of repositories bound to one database transaction.
type Tx interface {
	Equipment() EquipmentRepository
	Rentals() RentalRepository
	RentalItems() RentalItemRepository
	Payments() PaymentRepository
}

// TxManager runs a function inside a single all-or-nothing transaction.
// Implementations retry a bounded number of times on serialization or
// deadlock failures before surfacing domain.ErrConflict, so multi-step
// lifecycle mutations stay consistent under concurrent access.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}
