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

type equipmentRepository struct {
	q querier
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{q: db}
}

const equipmentColumns = `id, category_id, name, description, brand, model_number, serial_number, qr_uuid, status, quantity, daily_price_cents, weekly_price_cents, monthly_price_cents, deposit_cents, condition, notes, created_on, updated_on`

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	query := `INSERT INTO equipment (category_id, name, description, brand, model_number, serial_number, qr_uuid, status, quantity, daily_price_cents, weekly_price_cents, monthly_price_cents, deposit_cents, condition, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17) RETURNING id`
	now := time.Now()
	return r.q.QueryRowContext(ctx, query,
		eq.CategoryID, eq.Name, eq.Description, eq.Brand, eq.ModelNumber, eq.SerialNumber,
		eq.QRUUID, eq.Status, eq.Quantity, eq.DailyPriceCents, eq.WeeklyPriceCents,
		eq.MonthlyPriceCents, eq.DepositCents, eq.Condition, eq.Notes, now, now,
	).Scan(&eq.ID)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	return r.get(ctx, id, false)
}

func (r *equipmentRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Equipment, error) {
	return r.get(ctx, id, true)
}

func (r *equipmentRepository) get(ctx context.Context, id int32, forUpdate bool) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	eq := &domain.Equipment{}
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&eq.ID, &eq.CategoryID, &eq.Name, &eq.Description, &eq.Brand, &eq.ModelNumber,
		&eq.SerialNumber, &eq.QRUUID, &eq.Status, &eq.Quantity, &eq.DailyPriceCents,
		&eq.WeeklyPriceCents, &eq.MonthlyPriceCents, &eq.DepositCents, &eq.Condition,
		&eq.Notes, &eq.CreatedOn, &eq.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("equipment %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting equipment %d: %w", id, err)
	}
	return eq, nil
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	query := `UPDATE equipment SET category_id=$1, name=$2, description=$3, brand=$4, model_number=$5, serial_number=$6, status=$7, quantity=$8, daily_price_cents=$9, weekly_price_cents=$10, monthly_price_cents=$11, deposit_cents=$12, condition=$13, notes=$14, updated_on=$15 WHERE id=$16`
	res, err := r.q.ExecContext(ctx, query,
		eq.CategoryID, eq.Name, eq.Description, eq.Brand, eq.ModelNumber, eq.SerialNumber,
		eq.Status, eq.Quantity, eq.DailyPriceCents, eq.WeeklyPriceCents, eq.MonthlyPriceCents,
		eq.DepositCents, eq.Condition, eq.Notes, time.Now(), eq.ID,
	)
	if err != nil {
		return fmt.Errorf("updating equipment %d: %w", eq.ID, err)
	}
	return requireRow(res, eq.ID)
}

func (r *equipmentRepository) UpdateStatus(ctx context.Context, id int32, status domain.EquipmentStatus) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE equipment SET status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("updating equipment %d status: %w", id, err)
	}
	return requireRow(res, id)
}

func (r *equipmentRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Equipment, int32, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment`
	args := []interface{}{}
	argIdx := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.q.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("counting equipment: %w", err)
	}

	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing equipment: %w", err)
	}
	defer rows.Close()

	var result []domain.Equipment
	for rows.Next() {
		var eq domain.Equipment
		if err := rows.Scan(
			&eq.ID, &eq.CategoryID, &eq.Name, &eq.Description, &eq.Brand, &eq.ModelNumber,
			&eq.SerialNumber, &eq.QRUUID, &eq.Status, &eq.Quantity, &eq.DailyPriceCents,
			&eq.WeeklyPriceCents, &eq.MonthlyPriceCents, &eq.DepositCents, &eq.Condition,
			&eq.Notes, &eq.CreatedOn, &eq.UpdatedOn,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning equipment: %w", err)
		}
		result = append(result, eq)
	}
	return result, count, rows.Err()
}

func (r *equipmentRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name, description FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *equipmentRepository) CreateCategory(ctx context.Context, cat *domain.Category) error {
	return r.q.QueryRowContext(ctx,
		`INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id`,
		cat.Name, cat.Description,
	).Scan(&cat.ID)
}

func (r *equipmentRepository) CreateMaintenanceRecord(ctx context.Context, rec *domain.MaintenanceRecord) error {
	return r.q.QueryRowContext(ctx,
		`INSERT INTO maintenance_records (equipment_id, date, description, cost_cents, performed_by) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		rec.EquipmentID, rec.Date, rec.Description, rec.CostCents, rec.PerformedBy,
	).Scan(&rec.ID)
}

func (r *equipmentRepository) ListMaintenanceRecords(ctx context.Context, equipmentID int32) ([]domain.MaintenanceRecord, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, equipment_id, date, description, cost_cents, performed_by FROM maintenance_records WHERE equipment_id = $1 ORDER BY date DESC`,
		equipmentID)
	if err != nil {
		return nil, fmt.Errorf("listing maintenance records: %w", err)
	}
	defer rows.Close()

	var recs []domain.MaintenanceRecord
	for rows.Next() {
		var rec domain.MaintenanceRecord
		if err := rows.Scan(&rec.ID, &rec.EquipmentID, &rec.Date, &rec.Description, &rec.CostCents, &rec.PerformedBy); err != nil {
			return nil, fmt.Errorf("scanning maintenance record: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// requireRow converts a zero-row update into ErrNotFound.
func requireRow(res sql.Result, id int32) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("id %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
