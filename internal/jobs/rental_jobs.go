package jobs

import (
	"context"
	"time"

	"roknsound-backend/internal/logger"
	"roknsound-backend/internal/pricing"
)

// MarkOverdueRentals persists the derived overdue state: ACTIVE rentals
// past their end date become OVERDUE in one sweep.
func (jr *JobRunner) MarkOverdueRentals() {
	jr.runWithRecovery("MarkOverdueRentals", func() {
		ctx := context.Background()

		query := `
			UPDATE rentals
			SET status = 'OVERDUE',
			    updated_on = NOW()
			WHERE status = 'ACTIVE'
			  AND end_date < $1
			RETURNING id, customer_id, end_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to mark overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var rentalID, customerID int32
			var endDate time.Time
			if err := rows.Scan(&rentalID, &customerID, &endDate); err != nil {
				logger.Error("Failed to scan overdue rental", "error", err)
				continue
			}
			count++
			logger.Debug("Marked rental as overdue",
				"rental_id", rentalID,
				"customer_id", customerID,
				"end_date", endDate.Format("2006-01-02"))
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue rentals", "error", err)
			return
		}

		logger.Info("Marked rentals as overdue", "count", count)
	})
}

// SendOverdueReminders emails every customer with an OVERDUE rental,
// including the late fee accrued so far.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		query := `
			SELECT r.id, r.end_date, c.email, c.first_name || ' ' || c.last_name
			FROM rentals r
			JOIN customers c ON c.id = r.customer_id
			WHERE r.status = 'OVERDUE'
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		now := time.Now()
		rate := jr.config.Policy.DailyRateCents
		sent := 0
		for rows.Next() {
			var rentalID int32
			var endDate time.Time
			var email, name string
			if err := rows.Scan(&rentalID, &endDate, &email, &name); err != nil {
				logger.Error("Failed to scan overdue rental", "error", err)
				continue
			}

			daysLate := pricing.DaysLate(endDate, now)
			fee := pricing.LateFeeCents(endDate, now, rate)
			if err := jr.emailSvc.SendOverdueReminder(ctx, email, name, rentalID, daysLate, fee); err != nil {
				logger.Error("Failed to send overdue reminder", "rental_id", rentalID, "error", err)
				continue
			}
			sent++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue rentals", "error", err)
			return
		}

		logger.Info("Sent overdue reminders", "count", sent)
	})
}
