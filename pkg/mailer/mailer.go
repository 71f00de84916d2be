package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Sender delivers a plain-text message to a single recipient. Fire-and-forget
// from the caller's point of view: no retries, no queueing.
type Sender interface {
	Send(from, to, subject, body string) error
}

type SMTPSender struct {
	dialer *gomail.Dialer
}

// NewSMTPSender builds a sender from injected credentials; nothing in this
// package reads configuration or holds literals.
func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{dialer: gomail.NewDialer(host, port, username, password)}
}

func (s *SMTPSender) Send(from, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
