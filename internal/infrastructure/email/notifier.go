// Package email sends transactional mail over SMTP.
package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/msmepassport/msme-passport-api/internal/application/auth"
	"github.com/msmepassport/msme-passport-api/pkg/config"
	"github.com/msmepassport/msme-passport-api/pkg/logger"
)

var _ auth.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier implements auth.Notifier with gomail. When no SMTP host is
// configured the message is logged instead of sent, which keeps local
// development working without a mail server.
type SMTPNotifier struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewSMTPNotifier builds the notifier.
func NewSMTPNotifier(cfg config.SMTPConfig, log *logger.Logger) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, log: log}
}

// SendVerificationEmail sends the signup verification link.
func (n *SMTPNotifier) SendVerificationEmail(toAddress, link string) error {
	if n.cfg.Host == "" {
		n.log.Info().
			Str("to", toAddress).
			Str("link", link).
			Msg("SMTP not configured, verification email logged only")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", toAddress)
	m.SetHeader("Subject", "Verify your email address")
	m.SetBody("text/html", fmt.Sprintf(
		`<p>Welcome to MSME Passport.</p>
<p>Please confirm your email address by clicking the link below. The link is valid for 24 hours.</p>
<p><a href="%s">Verify my email</a></p>
<p>If you did not create an account, you can ignore this message.</p>`, link))

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Username, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}
