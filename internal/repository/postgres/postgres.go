package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"roknsound-backend/internal/domain"
	"roknsound-backend/internal/logger"
	"roknsound-backend/internal/repository"
)

// querier is the subset of *sql.DB and *sql.Tx the repositories use, so the
// same repository code serves both plain and transactional access.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.EquipmentRepository
	repository.RentalRepository
	repository.RentalItemRepository
	repository.CustomerRepository
	repository.PaymentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		EquipmentRepository:  NewEquipmentRepository(db),
		RentalRepository:     NewRentalRepository(db),
		RentalItemRepository: NewRentalItemRepository(db),
		CustomerRepository:   NewCustomerRepository(db),
		PaymentRepository:    NewPaymentRepository(db),
	}
}

// maxTxAttempts bounds transparent retries of transactions that lose to
// concurrent writers.
const maxTxAttempts = 3

// WithinTx runs fn inside a single transaction, retrying on serialization
// and deadlock failures. After the retry budget is exhausted the last error
// surfaces wrapped in domain.ErrConflict.
func (s *Store) WithinTx(ctx context.Context, fn func(tx repository.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = s.runTx(ctx, fn)
		if err == nil || !retryable(err) {
			return err
		}
		logger.Warn("Transaction conflict, retrying", "attempt", attempt, "error", err)
	}
	return fmt.Errorf("%w: %v", domain.ErrConflict, err)
}

func (s *Store) runTx(ctx context.Context, fn func(tx repository.Tx) error) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if err := fn(&txRepos{q: dbTx}); err != nil {
		return err
	}
	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// retryable reports whether the error is a PostgreSQL serialization
// failure or deadlock, which a fresh attempt may win.
func retryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return true
		}
	}
	return false
}

// txRepos binds the repositories to one open transaction.
type txRepos struct {
	q querier
}

func (t *txRepos) Equipment() repository.EquipmentRepository {
	return &equipmentRepository{q: t.q}
}

func (t *txRepos) Rentals() repository.RentalRepository {
	return &rentalRepository{q: t.q}
}

func (t *txRepos) RentalItems() repository.RentalItemRepository {
	return &rentalItemRepository{q: t.q}
}

func (t *txRepos) Payments() repository.PaymentRepository {
	return &paymentRepository{q: t.q}
}
