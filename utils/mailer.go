package utils

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// Mailer sends operational emails through the configured SMTP relay.
type Mailer struct {
	dialer        *gomail.Dialer
	from          string
	alertReceiver string
}

// NewMailer builds a Mailer. alertReceiver is expected to already carry the
// EMAIL_USER fallback applied by config.Load.
func NewMailer(host string, port int, user, pass, alertReceiver string) *Mailer {
	return &Mailer{
		dialer:        gomail.NewDialer(host, port, user, pass),
		from:          user,
		alertReceiver: alertReceiver,
	}
}

// SendDispenserAlert notifies the configured receiver that a dispenser was
// added. Callers treat this as best-effort: failures are logged, never
// propagated into the request outcome.
func (m *Mailer) SendDispenserAlert(location, status string, createdAt time.Time) error {
	body := fmt.Sprintf(
		"A new dispenser has been added to the system.\n\n"+
			"Details:\nLocation: %s\nStatus: %s\nDate: %s\n\n"+
			"Please verify its condition or maintenance schedule.",
		location, status, createdAt.Format("1/2/2006, 3:04:05 PM"))

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.alertReceiver)
	msg.SetHeader("Subject", fmt.Sprintf("New Dispenser Added - %s", location))
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
