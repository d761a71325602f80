package services

import (
	"strings"

	"ambulance/internal/domain"
	"ambulance/internal/domain/models"
	"ambulance/internal/repositories"
	"ambulance/internal/utils"
)

// ContactService stores contact messages. Open to unauthenticated callers;
// presence checks only, no dedup or rate limiting.
type ContactService struct {
	Contacts  repositories.ContactRepository
	RequestID string
}

func (s ContactService) Submit(name, email, message string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return domain.ValidationError{Field: "name", Msg: "required"}
	case strings.TrimSpace(email) == "":
		return domain.ValidationError{Field: "email", Msg: "required"}
	case strings.TrimSpace(message) == "":
		return domain.ValidationError{Field: "message", Msg: "required"}
	}

	if _, err := s.Contacts.Create(models.ContactMessage{Name: name, Email: email, Message: message}); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "contact", "submit", "stored")
	return nil
}
