package email

import (
	"context"
	"fmt"
	"net/smtp"

	"adboard-backend/pkg/logger"
)

// SuitableAdMatchData carries everything needed to notify a subscriber
// that a freshly published announcement matches their suitable ad.
type SuitableAdMatchData struct {
	Email          string
	AdTitle        string
	Category       string
	Price          string
	MatchedOnTitle string
}

type EmailService interface {
	SendSuitableAdMatch(ctx context.Context, data SuitableAdMatchData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

// NewDevEmailService talks to a local SMTP relay (mailhog in dev).
// Delivery guarantees are out of scope; failures are surfaced to the
// caller, which logs and relies on the task queue's retry policy.
func NewDevEmailService(smtpHost, smtpPort, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendSuitableAdMatch(ctx context.Context, data SuitableAdMatchData) error {
	subject := fmt.Sprintf("New announcement in %s matches your subscription", data.Category)
	body := fmt.Sprintf(`Hello,

An announcement matching your suitable ad was just published:

	Title:    %s
	Category: %s
	Price:    %s

You received this email because your subscription "%s" matched it.
Unsubscribe by deleting the suitable ad in your profile.`,
		data.AdTitle, data.Category, data.Price, data.MatchedOnTitle)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, data.Email, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{data.Email}, msg); err != nil {
		logger.Info("Failed to send email", map[string]interface{}{
			"error":     err.Error(),
			"to":        data.Email,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
