package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
)

type sendgridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendgridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendgridEmailService) send(ctx context.Context, to, toName, subject, body string) error {
	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}

func (s *sendgridEmailService) SendBookingConfirmation(ctx context.Context, email, name string, rental *domain.Rental) error {
	body := fmt.Sprintf(`Hello %s,

Your rental booking #%d is confirmed.

Pickup:      %s
Planned end: %s
Rate type:   %s
Total price: %s

Thank you for renting with us.`,
		name, rental.ID,
		rental.StartAt.Format(time.RFC1123),
		rental.PlannedEndAt.Format(time.RFC1123),
		rental.RateType, rental.TotalPrice.StringFixed(2))
	return s.send(ctx, email, name, fmt.Sprintf("Booking confirmation #%d", rental.ID), body)
}

func (s *sendgridEmailService) SendReturnReceipt(ctx context.Context, email, name string, rental *domain.Rental) error {
	body := fmt.Sprintf(`Hello %s,

Your rental #%d has been closed.

Base price: %s
Late fee:   %s
Total:      %s

We hope to see you again soon.`,
		name, rental.ID,
		rental.BasePrice.StringFixed(2),
		rental.LateFee.StringFixed(2),
		rental.TotalPrice.StringFixed(2))
	return s.send(ctx, email, name, fmt.Sprintf("Return receipt for rental #%d", rental.ID), body)
}

func (s *sendgridEmailService) SendOverdueReminder(ctx context.Context, email, name string, rental *domain.Rental) error {
	body := fmt.Sprintf(`Hello %s,

Your rental #%d was due back on %s and is now overdue.

Please return the car as soon as possible. Late time is billed in whole
hours at the car's hourly rate.`,
		name, rental.ID, rental.PlannedEndAt.Format(time.RFC1123))
	return s.send(ctx, email, name, "Reminder: your rental is overdue", body)
}

func (s *sendgridEmailService) SendInactivityReminder(ctx context.Context, email, name string, lastRentalEnd *time.Time) error {
	var lastLine string
	if lastRentalEnd != nil {
		lastLine = fmt.Sprintf("Your last rental ended on %s.", lastRentalEnd.Format("2006-01-02"))
	} else {
		lastLine = "You have not rented with us yet."
	}
	body := fmt.Sprintf(`Hello %s,

It has been a while! %s

Check out the current fleet and book your next trip.`, name, lastLine)
	return s.send(ctx, email, name, "We miss you on the road", body)
}
