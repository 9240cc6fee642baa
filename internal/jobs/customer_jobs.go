package jobs

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
)

// selectInactive filters the activity report down to customers whose most
// recent rental ended before the cutoff. Customers who never rented are
// skipped; there is nothing to win back.
func selectInactive(report []domain.CustomerActivity, cutoff time.Time) []domain.CustomerActivity {
	var inactive []domain.CustomerActivity
	for _, entry := range report {
		if entry.RentalCount == 0 || entry.LastRentalEnd == nil {
			continue
		}
		if entry.LastRentalEnd.Before(cutoff) {
			inactive = append(inactive, entry)
		}
	}
	return inactive
}

// SendInactivityReminders emails customers who have not rented for the
// configured number of days.
func (jr *JobRunner) SendInactivityReminders() {
	jr.runWithRecovery("SendInactivityReminders", func() {
		ctx := context.Background()

		report, err := jr.services.Customer.ActivityReport(ctx)
		if err != nil {
			logger.Error("Failed to build customer activity report", "error", err)
			return
		}

		cutoff := time.Now().AddDate(0, 0, -jr.config.Reminder.InactivityDays)
		inactive := selectInactive(report, cutoff)

		sent := 0
		for _, entry := range inactive {
			if err := jr.services.Email.SendInactivityReminder(ctx, entry.Customer.Email, entry.Customer.Name, entry.LastRentalEnd); err != nil {
				logger.Error("Failed to send inactivity reminder",
					"customer_id", entry.Customer.ID, "error", err)
				continue
			}
			logger.Debug("Sent inactivity reminder",
				"customer_id", entry.Customer.ID,
				"last_rental_end", entry.LastRentalEnd)
			sent++
		}

		logger.Info("Inactivity reminders processed", "inactive", len(inactive), "sent", sent)
	})
}
