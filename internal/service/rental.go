package service

import (
	"context"
	"fmt"
	"time"

	"roknsound-backend/internal/domain"
	"roknsound-backend/internal/logger"
	"roknsound-backend/internal/pricing"
	"roknsound-backend/internal/repository"
)

// Policy holds the business constants the lifecycle engine is configured
// with. The daily rate covers both late fees and extension charges.
type Policy struct {
	DailyRateCents int32
}

type rentalService struct {
	tx           repository.TxManager
	rentalRepo   repository.RentalRepository
	itemRepo     repository.RentalItemRepository
	customerRepo repository.CustomerRepository
	emailSvc     EmailService
	policy       Policy

	// now is swappable in tests; everything date-sensitive goes through it.
	now func() time.Time
}

func NewRentalService(
	tx repository.TxManager,
	rentalRepo repository.RentalRepository,
	itemRepo repository.RentalItemRepository,
	customerRepo repository.CustomerRepository,
	emailSvc EmailService,
	policy Policy,
) RentalService {
	return &rentalService{
		tx:           tx,
		rentalRepo:   rentalRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		emailSvc:     emailSvc,
		policy:       policy,
		now:          time.Now,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, customerID int32, startDate, endDate time.Time, durationType domain.DurationType, notes string) (*domain.Rental, error) {
	if !domain.ValidDurationType(durationType) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDurationType, durationType)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: start %s, end %s", domain.ErrInvalidDateRange,
			startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	}
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		CustomerID:   customerID,
		StartDate:    startDate,
		EndDate:      endDate,
		DurationType: durationType,
		Status:       domain.RentalStatusPending,
		Notes:        notes,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}
	logger.Info("Rental created", "rental_id", rental.ID, "customer_id", customerID)
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, []domain.RentalItem, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.itemRepo.ListByRental(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return rental, items, nil
}

func (s *rentalService) ListRentals(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return s.rentalRepo.List(ctx, status, page, pageSize)
}

func (s *rentalService) ListRentalsByCustomer(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return s.rentalRepo.ListByCustomer(ctx, customerID, status, page, pageSize)
}

// AddItem adds equipment to a pending rental. The equipment row is locked
// for the duration of the transaction so two concurrent adds cannot both
// win the last unit.
func (s *rentalService) AddItem(ctx context.Context, req AddItemRequest) (*domain.RentalItem, error) {
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, req.Quantity)
	}
	if req.PriceOverrideCents != nil && !req.StaffOverride {
		return nil, fmt.Errorf("price override requires staff role")
	}

	var item *domain.RentalItem
	err := s.tx.WithinTx(ctx, func(tx repository.Tx) error {
		rental, err := tx.Rentals().GetByID(ctx, req.RentalID)
		if err != nil {
			return err
		}
		if rental.Status != domain.RentalStatusPending {
			return fmt.Errorf("%w: add_item on %s rental %d", domain.ErrInvalidTransition, rental.Status, rental.ID)
		}

		eq, err := tx.Equipment().GetByIDForUpdate(ctx, req.EquipmentID)
		if err != nil {
			return err
		}
		if eq.Status != domain.EquipmentStatusAvailable {
			return fmt.Errorf("%w: equipment %d is %s", domain.ErrInsufficientAvailability, eq.ID, eq.Status)
		}
		outstanding, err := tx.RentalItems().OutstandingQuantity(ctx, eq.ID)
		if err != nil {
			return err
		}
		if outstanding+req.Quantity > eq.Quantity {
			return fmt.Errorf("%w: equipment %d has %d of %d units free, requested %d",
				domain.ErrInsufficientAvailability, eq.ID, eq.Quantity-outstanding, eq.Quantity, req.Quantity)
		}

		priceCents, err := pricing.LineItemPriceCents(eq, rental.DurationType, req.Quantity)
		if err != nil {
			return err
		}
		if req.PriceOverrideCents != nil {
			priceCents = *req.PriceOverrideCents
		}

		item = &domain.RentalItem{
			RentalID:              rental.ID,
			EquipmentID:           eq.ID,
			Quantity:              req.Quantity,
			PriceCents:            priceCents,
			DepositCents:          eq.DepositCents * req.Quantity,
			ConditionNoteCheckout: req.CheckoutNote,
		}
		if err := tx.RentalItems().Create(ctx, item); err != nil {
			return err
		}
		return s.recomputeTotals(ctx, tx, rental)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Rental item added", "rental_id", req.RentalID, "equipment_id", req.EquipmentID, "quantity", req.Quantity)
	return item, nil
}

func (s *rentalService) RemoveItem(ctx context.Context, rentalID, itemID int32) error {
	return s.tx.WithinTx(ctx, func(tx repository.Tx) error {
		rental, err := tx.Rentals().GetByID(ctx, rentalID)
		if err != nil {
			return err
		}
		if rental.Status != domain.RentalStatusPending {
			return fmt.Errorf("%w: remove_item on %s rental %d", domain.ErrInvalidTransition, rental.Status, rental.ID)
		}

		item, err := tx.RentalItems().GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item.RentalID != rentalID {
			return fmt.Errorf("rental item %d does not belong to rental %d: %w", itemID, rentalID, domain.ErrNotFound)
		}
		if err := tx.RentalItems().Delete(ctx, itemID); err != nil {
			return err
		}
		if err := s.releaseIfIdle(ctx, tx, item.EquipmentID); err != nil {
			return err
		}
		return s.recomputeTotals(ctx, tx, rental)
	})
}

// SignContract activates a pending rental and flips each item's equipment
// to RENTED.
func (s *rentalService) SignContract(ctx context.Context, rentalID int32, signatureData string) (*domain.Rental, error) {
	var rental *domain.Rental
	err := s.tx.WithinTx(ctx, func(tx repository.Tx) error {
		var err error
		rental, err = tx.Rentals().GetByID(ctx, rentalID)
		if err != nil {
			return err
		}
		if rental.Status != domain.RentalStatusPending {
			return fmt.Errorf("%w: sign_contract on %s rental %d", domain.ErrInvalidTransition, rental.Status, rental.ID)
		}
		if signatureData == "" {
			return fmt.Errorf("%w: signature payload required", domain.ErrInvalidTransition)
		}

		items, err := tx.RentalItems().ListByRental(ctx, rentalID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return fmt.Errorf("%w: rental %d has no items", domain.ErrInvalidTransition, rentalID)
		}

		for _, it := range items {
			if _, err := tx.Equipment().GetByIDForUpdate(ctx, it.EquipmentID); err != nil {
				return err
			}
			if err := tx.Equipment().UpdateStatus(ctx, it.EquipmentID, domain.EquipmentStatusRented); err != nil {
				return err
			}
		}

		signedAt := s.now()
		rental.Status = domain.RentalStatusActive
		rental.ContractSigned = true
		rental.ContractSignedDate = &signedAt
		rental.ContractSignatureData = signatureData
		return tx.Rentals().Update(ctx, rental)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Rental contract signed", "rental_id", rentalID)
	return rental, nil
}

func (s *rentalService) Cancel(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	var rental *domain.Rental
	err := s.tx.WithinTx(ctx, func(tx repository.Tx) error {
		var err error
		rental, err = tx.Rentals().GetByID(ctx, rentalID)
		if err != nil {
			return err
		}
		if rental.Status != domain.RentalStatusPending {
			return fmt.Errorf("%w: cancel on %s rental %d", domain.ErrInvalidTransition, rental.Status, rental.ID)
		}

		items, err := tx.RentalItems().ListByRental(ctx, rentalID)
		if err != nil {
			return err
		}

		rental.Status = domain.RentalStatusCancelled
		if err := tx.Rentals().Update(ctx, rental); err != nil {
			return err
		}
		// Release equipment only tentatively held by this rental.
		for _, it := range items {
			if err := s.releaseIfIdle(ctx, tx, it.EquipmentID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Rental cancelled", "rental_id", rentalID)
	return rental, nil
}

// Extend pushes the end date out and charges extensionDays at the policy
// daily rate. An overdue rental becomes current again.
func (s *rentalService) Extend(ctx context.Context, rentalID int32, newEndDate time.Time) (*domain.Rental, error) {
	var rental *domain.Rental
	err := s.tx.WithinTx(ctx, func(tx repository.Tx) error {
		var err error
		rental, err = tx.Rentals().GetByID(ctx, rentalID)
		if err != nil {
			return err
		}
		if rental.Status != domain.RentalStatusActive && rental.Status != domain.RentalStatusOverdue {
			return fmt.Errorf("%w: extend on %s rental %d", domain.ErrInvalidTransition, rental.Status, rental.ID)
		}
		if !newEndDate.After(rental.EndDate) {
			return fmt.Errorf("%w: new end date %s is not after current end date %s",
				domain.ErrInvalidTransition, newEndDate.Format("2006-01-02"), rental.EndDate.Format("2006-01-02"))
		}

		charge := pricing.ExtensionChargeCents(rental.EndDate, newEndDate, s.policy.DailyRateCents)
		rental.EndDate = newEndDate
		rental.TotalPriceCents += charge
		rental.Status = domain.RentalStatusActive
		return tx.Rentals().Update(ctx, rental)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Rental extended", "rental_id", rentalID, "new_end_date", newEndDate.Format("2006-01-02"))
	return rental, nil
}

// ReturnItems processes per-item returns. Each item transitions
// independently; the rental completes only once every item is back, at
// which point the late fee (if any) is added to the total exactly once.
func (s *rentalService) ReturnItems(ctx context.Context, rentalID int32, returns []ItemReturn) (*domain.Rental, error) {
	if len(returns) == 0 {
		return nil, fmt.Errorf("no items to return")
	}

	var rental *domain.Rental
	var lateFee int32
	err := s.tx.WithinTx(ctx, func(tx repository.Tx) error {
		lateFee = 0
		var err error
		rental, err = tx.Rentals().GetByID(ctx, rentalID)
		if err != nil {
			return err
		}
		if rental.Status != domain.RentalStatusActive && rental.Status != domain.RentalStatusOverdue {
			return fmt.Errorf("%w: return on %s rental %d", domain.ErrInvalidTransition, rental.Status, rental.ID)
		}

		items, err := tx.RentalItems().ListByRental(ctx, rentalID)
		if err != nil {
			return err
		}
		byID := make(map[int32]*domain.RentalItem, len(items))
		for i := range items {
			byID[items[i].ID] = &items[i]
		}

		returnedAt := s.now()
		for _, ret := range returns {
			item, ok := byID[ret.ItemID]
			if !ok {
				return fmt.Errorf("rental item %d does not belong to rental %d: %w", ret.ItemID, rentalID, domain.ErrNotFound)
			}
			if item.Returned {
				return fmt.Errorf("%w: rental item %d already returned", domain.ErrInvalidTransition, item.ID)
			}
			disposition, err := pricing.DispositionForCondition(ret.Condition)
			if err != nil {
				return err
			}

			item.Returned = true
			item.ReturnedDate = &returnedAt
			item.ReturnCondition = ret.Condition
			item.ConditionNoteReturn = ret.ReturnNote
			if err := tx.RentalItems().Update(ctx, item); err != nil {
				return err
			}
			if err := s.disposeEquipment(ctx, tx, item.EquipmentID, disposition); err != nil {
				return err
			}
		}

		allReturned := true
		for i := range items {
			if !items[i].Returned {
				allReturned = false
				break
			}
		}
		if allReturned {
			lateFee = pricing.LateFeeCents(rental.EndDate, returnedAt, s.policy.DailyRateCents)
			if lateFee > 0 {
				rental.TotalPriceCents += lateFee
				logger.Info("Late fee applied", "rental_id", rentalID, "late_fee_cents", lateFee)
			}
			rental.Status = domain.RentalStatusCompleted
		}
		return tx.Rentals().Update(ctx, rental)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Rental items returned", "rental_id", rentalID, "count", len(returns), "status", rental.Status)

	// Receipt email is best-effort; the return itself has already committed.
	if rental.Status == domain.RentalStatusCompleted && s.emailSvc != nil {
		if customer, err := s.customerRepo.GetByID(ctx, rental.CustomerID); err == nil {
			_ = s.emailSvc.SendReturnReceipt(ctx, customer.Email, customer.FullName(), rental.ID, rental.TotalPriceCents, lateFee)
		}
	}
	return rental, nil
}

// recomputeTotals refreshes the rental's price and deposit totals from its
// items and persists the rental.
func (s *rentalService) recomputeTotals(ctx context.Context, tx repository.Tx, rental *domain.Rental) error {
	items, err := tx.RentalItems().ListByRental(ctx, rental.ID)
	if err != nil {
		return err
	}
	rental.TotalPriceCents = pricing.RentalTotalCents(items)
	rental.DepositTotalCents = pricing.DepositTotalCents(items)
	return tx.Rentals().Update(ctx, rental)
}

// releaseIfIdle reverts equipment marked RENTED back to AVAILABLE when no
// open rental holds any of its units.
func (s *rentalService) releaseIfIdle(ctx context.Context, tx repository.Tx, equipmentID int32) error {
	eq, err := tx.Equipment().GetByIDForUpdate(ctx, equipmentID)
	if err != nil {
		return err
	}
	if eq.Status != domain.EquipmentStatusRented {
		return nil
	}
	outstanding, err := tx.RentalItems().OutstandingQuantity(ctx, equipmentID)
	if err != nil {
		return err
	}
	if outstanding == 0 {
		return tx.Equipment().UpdateStatus(ctx, equipmentID, domain.EquipmentStatusAvailable)
	}
	return nil
}

// disposeEquipment applies the condition-driven status after a return.
// Maintenance always wins; a clean return only frees the equipment once no
// units remain outstanding.
func (s *rentalService) disposeEquipment(ctx context.Context, tx repository.Tx, equipmentID int32, disposition domain.EquipmentStatus) error {
	if _, err := tx.Equipment().GetByIDForUpdate(ctx, equipmentID); err != nil {
		return err
	}
	if disposition == domain.EquipmentStatusMaintenance {
		return tx.Equipment().UpdateStatus(ctx, equipmentID, domain.EquipmentStatusMaintenance)
	}
	outstanding, err := tx.RentalItems().OutstandingQuantity(ctx, equipmentID)
	if err != nil {
		return err
	}
	if outstanding > 0 {
		return nil
	}
	return tx.Equipment().UpdateStatus(ctx, equipmentID, disposition)
}
