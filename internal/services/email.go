package services

import (
	"fmt"

	"github.com/devakalpa1/DeckOracle/internal/models"

	"go.uber.org/zap"
)

// EmailService is a placeholder for a real email sending service.
type EmailService struct {
	log *zap.Logger
}

func NewEmailService(log *zap.Logger) *EmailService {
	return &EmailService{log: log}
}

// SendReminderEmail simulates sending a study reminder email.
func (s *EmailService) SendReminderEmail(user models.User) {
	s.log.Info("Sending reminder email",
		zap.String("to", user.Email),
		zap.String("name", user.DisplayName),
	)
	// In a real application, you would use an SMTP client like go-mail
	// to send a templated HTML email here. // TODO
	fmt.Printf("--- SIMULATING EMAIL ---\nTo: %s\nSubject: Time to review your flashcards\nHi %s,\nThis is a friendly reminder to get your daily study session in.\n\n", user.Email, user.DisplayName)
}
