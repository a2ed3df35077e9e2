package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"roknsound-backend/internal/domain"
	"roknsound-backend/internal/repository"
)

type rentalItemRepository struct {
	q querier
}

func NewRentalItemRepository(db *sql.DB) repository.RentalItemRepository {
	return &rentalItemRepository{q: db}
}

const rentalItemColumns = `id, rental_id, equipment_id, quantity, price_cents, deposit_cents, condition_note_checkout, condition_note_return, return_condition, returned, returned_date`

func (r *rentalItemRepository) Create(ctx context.Context, item *domain.RentalItem) error {
	query := `INSERT INTO rental_items (rental_id, equipment_id, quantity, price_cents, deposit_cents, condition_note_checkout, condition_note_return, return_condition, returned)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.q.QueryRowContext(ctx, query,
		item.RentalID, item.EquipmentID, item.Quantity, item.PriceCents, item.DepositCents,
		item.ConditionNoteCheckout, item.ConditionNoteReturn, item.ReturnCondition, item.Returned,
	).Scan(&item.ID)
}

func (r *rentalItemRepository) GetByID(ctx context.Context, id int32) (*domain.RentalItem, error) {
	item := &domain.RentalItem{}
	query := `SELECT ` + rentalItemColumns + ` FROM rental_items WHERE id = $1`
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.RentalID, &item.EquipmentID, &item.Quantity, &item.PriceCents,
		&item.DepositCents, &item.ConditionNoteCheckout, &item.ConditionNoteReturn,
		&item.ReturnCondition, &item.Returned, &item.ReturnedDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rental item %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting rental item %d: %w", id, err)
	}
	return item, nil
}

func (r *rentalItemRepository) Update(ctx context.Context, item *domain.RentalItem) error {
	query := `UPDATE rental_items SET quantity=$1, price_cents=$2, deposit_cents=$3, condition_note_checkout=$4, condition_note_return=$5, return_condition=$6, returned=$7, returned_date=$8 WHERE id=$9`
	res, err := r.q.ExecContext(ctx, query,
		item.Quantity, item.PriceCents, item.DepositCents, item.ConditionNoteCheckout,
		item.ConditionNoteReturn, item.ReturnCondition, item.Returned, item.ReturnedDate, item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating rental item %d: %w", item.ID, err)
	}
	return requireRow(res, item.ID)
}

func (r *rentalItemRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM rental_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting rental item %d: %w", id, err)
	}
	return requireRow(res, id)
}

func (r *rentalItemRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.RentalItem, error) {
	query := `SELECT ` + rentalItemColumns + ` FROM rental_items WHERE rental_id = $1 ORDER BY id`
	rows, err := r.q.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, fmt.Errorf("listing rental items: %w", err)
	}
	defer rows.Close()

	var items []domain.RentalItem
	for rows.Next() {
		var item domain.RentalItem
		if err := rows.Scan(
			&item.ID, &item.RentalID, &item.EquipmentID, &item.Quantity, &item.PriceCents,
			&item.DepositCents, &item.ConditionNoteCheckout, &item.ConditionNoteReturn,
			&item.ReturnCondition, &item.Returned, &item.ReturnedDate,
		); err != nil {
			return nil, fmt.Errorf("scanning rental item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *rentalItemRepository) OutstandingQuantity(ctx context.Context, equipmentID int32) (int32, error) {
	query := `SELECT COALESCE(SUM(ri.quantity), 0)
	          FROM rental_items ri
	          JOIN rentals rt ON rt.id = ri.rental_id
	          WHERE ri.equipment_id = $1
	            AND ri.returned = FALSE
	            AND rt.status IN ('PENDING', 'ACTIVE', 'OVERDUE')`
	var out int32
	if err := r.q.QueryRowContext(ctx, query, equipmentID).Scan(&out); err != nil {
		return 0, fmt.Errorf("summing outstanding quantity for equipment %d: %w", equipmentID, err)
	}
	return out, nil
}
