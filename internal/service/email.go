package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"aris-backend/internal/utils"
)

type emailService struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		client:   sendgrid.NewSendClient(apiKey),
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) send(_ context.Context, toEmail, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected email: status %d", resp.StatusCode)
	}
	return nil
}

func (s *emailService) SendOverdueReminder(ctx context.Context, email, customerName, equipmentName, rentalCode string, dueDate time.Time) error {
	subject := fmt.Sprintf("Overdue rental reminder: %s", equipmentName)
	body := fmt.Sprintf(
		"Hello %s,\n\nOur records show that rental %s (%s) was due back on %s and has not been returned.\n\nPlease return the equipment or contact us to arrange an extension.\n\nThank you,\n%s",
		customerName, rentalCode, equipmentName, dueDate.Format(utils.DayFormat), s.fromName)
	return s.send(ctx, email, customerName, subject, body)
}

func (s *emailService) SendReturnReceipt(ctx context.Context, email, customerName, equipmentName, rentalCode string, totalCents int64) error {
	subject := fmt.Sprintf("Return confirmed: %s", equipmentName)
	body := fmt.Sprintf(
		"Hello %s,\n\nWe have recorded the return of %s for rental %s.\n\nRental total: $%d.%02d\n\nThank you,\n%s",
		customerName, equipmentName, rentalCode, totalCents/100, totalCents%100, s.fromName)
	return s.send(ctx, email, customerName, subject, body)
}
