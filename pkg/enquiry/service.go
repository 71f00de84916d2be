package enquiry

import (
	"fmt"
	"log/slog"
	"time"

	"authportal/pkg/mailer"
)

type ServiceInterface interface {
	Submit(name, email, message string) error
}

// Service archives the enquiry and relays it to the configured recipient.
// Pure side-channel: this package never touches accounts or sessions.
type Service struct {
	Repo      Repository
	Mail      mailer.Sender
	Recipient string
	Logger    *slog.Logger
}

func NewService(repo Repository, mail mailer.Sender, recipient string, logger *slog.Logger) *Service {
	return &Service{Repo: repo, Mail: mail, Recipient: recipient, Logger: logger}
}

func (s *Service) Submit(name, email, message string) error {
	if name == "" || email == "" || message == "" {
		return ErrMissingFields
	}

	e := &Enquiry{
		Name:    name,
		Email:   email,
		Message: message,
		Created: time.Now().UTC(),
	}

	// Archive failure must not swallow the enquiry itself.
	if err := s.Repo.Create(e); err != nil {
		s.Logger.Error("enquiry archive", "error", err)
	}

	subject := fmt.Sprintf("Enquiry from %s", name)
	body := fmt.Sprintf("FROM : %s\n\n%s", email, message)

	if err := s.Mail.Send(email, s.Recipient, subject, body); err != nil {
		return fmt.Errorf("relay enquiry: %w", err)
	}

	return nil
}
