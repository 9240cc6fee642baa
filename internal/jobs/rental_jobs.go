package jobs

import (
	"context"
	"time"

	"carrental-backend/internal/logger"
)

// SendOverdueReminders emails every customer holding a rental past its
// planned end. Overdue is a read-time projection of ACTIVE rentals, so the
// job never mutates rental rows.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		overdue, err := jr.services.Rental.ListOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		sent := 0
		for i := range overdue {
			rental := &overdue[i]
			customer, err := jr.services.Customer.Get(ctx, rental.CustomerID)
			if err != nil {
				logger.Error("Failed to load customer for overdue reminder",
					"rental_id", rental.ID, "customer_id", rental.CustomerID, "error", err)
				continue
			}
			if err := jr.services.Email.SendOverdueReminder(ctx, customer.Email, customer.Name, rental); err != nil {
				logger.Error("Failed to send overdue reminder",
					"rental_id", rental.ID, "customer_id", customer.ID, "error", err)
				continue
			}
			logger.Debug("Sent overdue reminder",
				"rental_id", rental.ID,
				"customer_id", customer.ID,
				"planned_end_at", rental.PlannedEndAt)
			sent++
		}

		logger.Info("Overdue reminders processed", "overdue", len(overdue), "sent", sent)
	})
}
