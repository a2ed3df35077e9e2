package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"roknsound-backend/internal/domain"
	"roknsound-backend/internal/repository"
)

type rentalRepository struct {
	q querier
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{q: db}
}

const rentalColumns = `id, customer_id, start_date, end_date, duration_type, status, total_price_cents, deposit_total_cents, deposit_paid, contract_signed, contract_signed_date, contract_signature_data, notes, created_on, updated_on`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (customer_id, start_date, end_date, duration_type, status, total_price_cents, deposit_total_cents, deposit_paid, contract_signed, contract_signature_data, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	now := time.Now()
	return r.q.QueryRowContext(ctx, query,
		rt.CustomerID, rt.StartDate, rt.EndDate, rt.DurationType, rt.Status,
		rt.TotalPriceCents, rt.DepositTotalCents, rt.DepositPaid, rt.ContractSigned,
		rt.ContractSignatureData, rt.Notes, now, now,
	).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.CustomerID, &rt.StartDate, &rt.EndDate, &rt.DurationType, &rt.Status,
		&rt.TotalPriceCents, &rt.DepositTotalCents, &rt.DepositPaid, &rt.ContractSigned,
		&rt.ContractSignedDate, &rt.ContractSignatureData, &rt.Notes, &rt.CreatedOn, &rt.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rental %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting rental %d: %w", id, err)
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET end_date=$1, status=$2, total_price_cents=$3, deposit_total_cents=$4, deposit_paid=$5, contract_signed=$6, contract_signed_date=$7, contract_signature_data=$8, notes=$9, updated_on=$10 WHERE id=$11`
	res, err := r.q.ExecContext(ctx, query,
		rt.EndDate, rt.Status, rt.TotalPriceCents, rt.DepositTotalCents, rt.DepositPaid,
		rt.ContractSigned, rt.ContractSignedDate, rt.ContractSignatureData, rt.Notes,
		time.Now(), rt.ID,
	)
	if err != nil {
		return fmt.Errorf("updating rental %d: %w", rt.ID, err)
	}
	return requireRow(res, rt.ID)
}

func (r *rentalRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return r.list(ctx, "", 0, status, page, pageSize)
}

func (r *rentalRepository) ListByCustomer(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return r.list(ctx, "customer_id", customerID, status, page, pageSize)
}

func (r *rentalRepository) list(ctx context.Context, filterCol string, filterVal int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals`
	var conds []string
	args := []interface{}{}
	if filterCol != "" {
		args = append(args, filterVal)
		conds = append(conds, fmt.Sprintf("%s = $%d", filterCol, len(args)))
	}
	if status != "" {
		args = append(args, status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.q.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("counting rentals: %w", err)
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing rentals: %w", err)
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(
			&rt.ID, &rt.CustomerID, &rt.StartDate, &rt.EndDate, &rt.DurationType, &rt.Status,
			&rt.TotalPriceCents, &rt.DepositTotalCents, &rt.DepositPaid, &rt.ContractSigned,
			&rt.ContractSignedDate, &rt.ContractSignatureData, &rt.Notes, &rt.CreatedOn, &rt.UpdatedOn,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning rental: %w", err)
		}
		rentals = append(rentals, rt)
	}
	return rentals, count, rows.Err()
}
