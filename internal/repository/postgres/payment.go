package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"roknsound-backend/internal/domain"
	"roknsound-backend/internal/repository"
)

type paymentRepository struct {
	q querier
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{q: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (rental_id, amount_cents, type, method, status, transaction_id, notes, payment_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}
	return r.q.QueryRowContext(ctx, query,
		p.RentalID, p.AmountCents, p.Type, p.Method, p.Status, p.TransactionID, p.Notes, p.PaymentDate,
	).Scan(&p.ID)
}

func (r *paymentRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.Payment, error) {
	query := `SELECT id, rental_id, amount_cents, type, method, status, transaction_id, notes, payment_date
	          FROM payments WHERE rental_id = $1 ORDER BY payment_date DESC`
	rows, err := r.q.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.RentalID, &p.AmountCents, &p.Type, &p.Method, &p.Status, &p.TransactionID, &p.Notes, &p.PaymentDate); err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) AmountPaidCents(ctx context.Context, rentalID int32) (int32, error) {
	var total int32
	err := r.q.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE rental_id = $1 AND status = $2`,
		rentalID, domain.PaymentStatusCompleted,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing payments for rental %d: %w", rentalID, err)
	}
	return total, nil
}
