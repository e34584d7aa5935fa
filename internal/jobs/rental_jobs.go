package jobs

import (
	"context"
	"fmt"
	"time"

	"aris-backend/internal/logger"
	"aris-backend/internal/utils"
)

// MarkOverdueRentals flips open rentals past their due date to overdue,
// across all tenants.
func (jr *JobRunner) MarkOverdueRentals() {
	jr.runWithRecovery("MarkOverdueRentals", func() {
		ctx := context.Background()
		today := utils.Day(time.Now())

		query := `
			UPDATE rentals
			SET status = 'overdue',
			    updated_on = $1
			WHERE return_date IS NULL
			  AND due_date < $2
			  AND status <> 'overdue'
			RETURNING id, tenant_id, customer_id, due_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format(time.RFC3339), today)
		if err != nil {
			logger.Error("Failed to mark overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, tenantID, customerID int32
			var dueDate time.Time
			if err := rows.Scan(&id, &tenantID, &customerID, &dueDate); err != nil {
				logger.Error("Failed to scan overdue rental", "error", err)
				continue
			}
			count++
			logger.Debug("Marked rental as overdue",
				"rental_id", id,
				"tenant_id", tenantID,
				"customer_id", customerID,
				"due_date", dueDate.Format(utils.DayFormat))
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue rentals", "error", err)
			return
		}

		logger.Info("Marked rentals as overdue", "count", count)
	})
}

// MarkDueSoonRentals flips active rentals entering the lookahead window to
// due_soon. Overdue rows are untouched; the overdue pass owns those.
func (jr *JobRunner) MarkDueSoonRentals() {
	jr.runWithRecovery("MarkDueSoonRentals", func() {
		ctx := context.Background()
		today := utils.Day(time.Now())
		horizon := today.AddDate(0, 0, jr.config.Rentals.DueSoonLookaheadDays)

		query := `
			UPDATE rentals
			SET status = 'due_soon',
			    updated_on = $1
			WHERE return_date IS NULL
			  AND status = 'active'
			  AND due_date >= $2
			  AND due_date <= $3
		`

		res, err := jr.db.ExecContext(ctx, query, time.Now().UTC().Format(time.RFC3339), today, horizon)
		if err != nil {
			logger.Error("Failed to mark due-soon rentals", "error", err)
			return
		}
		count, err := res.RowsAffected()
		if err != nil {
			logger.Error("Failed to count due-soon rentals", "error", err)
			return
		}
		logger.Info("Marked rentals as due soon", "count", count)
	})
}

// SendOverdueReminders emails each customer holding overdue equipment. A
// failed send is logged and skipped; the rest of the batch still goes out.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()
		today := utils.Day(time.Now())

		query := `
			SELECT r.id, r.tenant_id, r.equipment_name, r.due_date,
			       c.name, c.company, c.email
			FROM rentals r
			JOIN customers c ON c.tenant_id = r.tenant_id AND c.id = r.customer_id
			WHERE r.return_date IS NULL
			  AND r.due_date < $1
		`

		rows, err := jr.db.QueryContext(ctx, query, today)
		if err != nil {
			logger.Error("Failed to load overdue rentals for reminders", "error", err)
			return
		}
		defer rows.Close()

		sent, failed := 0, 0
		for rows.Next() {
			var id, tenantID int32
			var equipmentName, customerName, email string
			var company *string
			var dueDate time.Time
			if err := rows.Scan(&id, &tenantID, &equipmentName, &dueDate, &customerName, &company, &email); err != nil {
				logger.Error("Failed to scan overdue reminder row", "error", err)
				continue
			}
			displayName := customerName
			if company != nil && *company != "" {
				displayName = *company
			}
			code := fmt.Sprintf("RNT-%03d", id)
			if err := jr.emailSvc.SendOverdueReminder(ctx, email, displayName, equipmentName, code, dueDate); err != nil {
				failed++
				logger.Error("Failed to send overdue reminder",
					"rental_id", id, "tenant_id", tenantID, "error", err)
				continue
			}
			sent++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue reminders", "error", err)
		}
		logger.Info("Sent overdue reminders", "sent", sent, "failed", failed)
	})
}
