package service

import (
	"context"
	"fmt"
	"strings"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridAlertService struct {
	apiKey    string
	fromEmail string
	fromName  string
	toEmails  []string
}

func NewSendgridAlertService(apiKey, fromEmail, fromName string, toEmails []string) AlertService {
	return &sendgridAlertService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmails:  toEmails,
	}
}

func (s *sendgridAlertService) SendReconciliationAlert(ctx context.Context, hotel *domain.Hotel, mismatches []AccountMismatch) error {
	if s.apiKey == "" || len(s.toEmails) == 0 {
		logger.Warn("alert mailer not configured, dropping reconciliation alert",
			"hotel", hotel.Name, "accounts", len(mismatches))
		return nil
	}

	subject := fmt.Sprintf("Ledger mismatch at %s", hotel.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "The cash register of %s disagrees with its movement log.\n\n", hotel.Name)
	for _, m := range mismatches {
		fmt.Fprintf(&b, "  %-8s stored %s, movements sum to %s (off by %s)\n",
			m.Account, m.Stored.StringFixed(2), m.Computed.StringFixed(2),
			m.Stored.Sub(m.Computed).StringFixed(2))
	}
	b.WriteString("\nNo balances were changed. Please investigate before posting corrections.\n")

	from := mail.NewEmail(s.fromName, s.fromEmail)
	client := sendgrid.NewSendClient(s.apiKey)

	for _, to := range s.toEmails {
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), b.String(), "")
		response, err := client.Send(message)
		if err != nil {
			return fmt.Errorf("failed to send reconciliation alert: %w", err)
		}
		if response.StatusCode >= 400 {
			return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		}
	}

	logger.Info("reconciliation alert sent",
		"hotel", hotel.Name, "recipients", len(s.toEmails), "accounts", len(mismatches))
	return nil
}
