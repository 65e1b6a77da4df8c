package email

import (
	"context"
	"fmt"
	"html"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	"github.com/GraziArcH/domain-sales/internal/shared/config"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// CancellationMailer tells the billing mailbox about cancellation
// transitions.
type CancellationMailer struct {
	config config.EmailConfig
	sender Sender
	logger logger.Interface
}

func NewCancellationMailer(cfg config.EmailConfig, logger logger.Interface) *CancellationMailer {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return NewCancellationMailerWithSender(cfg, dialer, logger)
}

func NewCancellationMailerWithSender(cfg config.EmailConfig, sender Sender, logger logger.Interface) *CancellationMailer {
	return &CancellationMailer{
		config: cfg,
		sender: sender,
		logger: logger,
	}
}

func (s *CancellationMailer) CancellationRequested(_ context.Context, sub *plan.CompanySubscription, c *plan.Cancellation) error {
	subject := fmt.Sprintf("Cancellation requested for company %d", sub.CompanyID())
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Cancellation requested</h2>
			<p>Company <b>%d</b> asked to cancel subscription <b>%d</b>.</p>
			<p>Reason: %s</p>
			<p>Requested at %s by user %d. Confirm it to end the subscription.</p>
		</body>
		</html>
	`, sub.CompanyID(), sub.ID(), html.EscapeString(c.Reason()), c.RequestedAt().Format(time.RFC3339), c.RequestedBy())

	plainBody := fmt.Sprintf(`
Cancellation requested

Company %d asked to cancel subscription %d.
Reason: %s
Requested at %s by user %d. Confirm it to end the subscription.
	`, sub.CompanyID(), sub.ID(), c.Reason(), c.RequestedAt().Format(time.RFC3339), c.RequestedBy())

	return s.sendEmail(subject, htmlBody, plainBody)
}

func (s *CancellationMailer) CancellationConfirmed(_ context.Context, sub *plan.CompanySubscription, c *plan.Cancellation) error {
	confirmedAt := c.UpdatedAt()
	if c.CancelledAt() != nil {
		confirmedAt = *c.CancelledAt()
	}

	subject := fmt.Sprintf("Subscription %d cancelled", sub.ID())
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Subscription cancelled</h2>
			<p>Subscription <b>%d</b> of company <b>%d</b> is now cancelled.</p>
			<p>Reason: %s</p>
			<p>Confirmed at %s.</p>
		</body>
		</html>
	`, sub.ID(), sub.CompanyID(), html.EscapeString(c.Reason()), confirmedAt.Format(time.RFC3339))

	plainBody := fmt.Sprintf(`
Subscription cancelled

Subscription %d of company %d is now cancelled.
Reason: %s
Confirmed at %s.
	`, sub.ID(), sub.CompanyID(), c.Reason(), confirmedAt.Format(time.RFC3339))

	return s.sendEmail(subject, htmlBody, plainBody)
}

func (s *CancellationMailer) sendEmail(subject, htmlBody, plainBody string) error {
	if !s.config.Enabled {
		s.logger.Debugw("email disabled, notification skipped", "subject", subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", s.config.BillingAddress)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infow("notification email sent", "subject", subject, "to", s.config.BillingAddress)
	return nil
}
