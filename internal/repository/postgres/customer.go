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

type customerRepository struct {
	q querier
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{q: db}
}

const customerColumns = `id, first_name, last_name, email, phone, address, city, state, zip_code, id_type, id_number, notes, created_on, updated_on`

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (first_name, last_name, email, phone, address, city, state, zip_code, id_type, id_number, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	now := time.Now()
	return r.q.QueryRowContext(ctx, query,
		c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.City, c.State,
		c.ZipCode, c.IDType, c.IDNumber, c.Notes, now, now,
	).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address, &c.City,
		&c.State, &c.ZipCode, &c.IDType, &c.IDNumber, &c.Notes, &c.CreatedOn, &c.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting customer %d: %w", id, err)
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error) {
	var count int32
	if err := r.q.QueryRowContext(ctx, `SELECT count(*) FROM customers`).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("counting customers: %w", err)
	}

	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY last_name, first_name LIMIT $1 OFFSET $2`
	rows, err := r.q.QueryContext(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address, &c.City,
			&c.State, &c.ZipCode, &c.IDType, &c.IDNumber, &c.Notes, &c.CreatedOn, &c.UpdatedOn,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, count, rows.Err()
}
