package notifications

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/MEDWEDU/Lettera/domain"
)

// MailerServiceImpl implements domain.MailerService over SMTP.
type MailerServiceImpl struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailerService creates a new SMTP mailer.
func NewMailerService(host string, port int, username, password, from string) domain.MailerService {
	return &MailerServiceImpl{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendVerificationEmail implements domain.MailerService
func (m *MailerServiceImpl) SendVerificationEmail(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Verify your Lettera account")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Welcome to Lettera!\n\nYour verification code is: %s\n\nThe code is valid for 10 minutes.", code))
	msg.AddAlternative("text/html", fmt.Sprintf(
		"<p>Welcome to Lettera!</p><p>Your verification code is: <b>%s</b></p><p>The code is valid for 10 minutes.</p>", code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return domain.ErrEmailDispatchFailed.WithCause(err)
	}
	return nil
}
