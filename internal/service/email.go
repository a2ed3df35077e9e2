package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{apiKey: apiKey, fromEmail: fromEmail, fromName: fromName}
}

func (s *emailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendOverdueReminder(ctx context.Context, email, name string, rentalID int32, daysLate, lateFeeCents int32) error {
	subject := fmt.Sprintf("ROKNSOUND rental #%d is overdue", rentalID)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental #%d is %d day(s) past its return date. "+
			"A late fee of $%.2f has accrued so far and will continue to grow until the equipment is returned.\n\n"+
			"Please return the equipment or contact us to extend your rental.\n\nROKNSOUND",
		name, rentalID, daysLate, float64(lateFeeCents)/100)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendReturnReceipt(ctx context.Context, email, name string, rentalID int32, totalCents, lateFeeCents int32) error {
	subject := fmt.Sprintf("ROKNSOUND rental #%d returned", rentalID)
	body := fmt.Sprintf("Hello %s,\n\nRental #%d is complete. Final total: $%.2f.",
		name, rentalID, float64(totalCents)/100)
	if lateFeeCents > 0 {
		body += fmt.Sprintf(" This includes a late fee of $%.2f.", float64(lateFeeCents)/100)
	}
	body += "\n\nThank you for renting with ROKNSOUND."
	return s.send(email, name, subject, body)
}
