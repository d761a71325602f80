package services

import (
	"strings"

	"ambulance/internal/domain"
	"ambulance/internal/domain/models"
	"ambulance/internal/repositories"
	"ambulance/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService owns registration and credential verification. Passwords are
// stored as bcrypt hashes only; the raw value never reaches a repository.
type AuthService struct {
	Users     repositories.UserRepository
	RequestID string
}

// Register stores a new user with a hashed password. A duplicate email
// surfaces as ConflictError from the repository, not as a raw store error.
func (s AuthService) Register(username, email, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	switch {
	case username == "":
		return models.User{}, domain.ValidationError{Field: "username", Msg: "required"}
	case email == "":
		return models.User{}, domain.ValidationError{Field: "email", Msg: "required"}
	case password == "":
		return models.User{}, domain.ValidationError{Field: "password", Msg: "required"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	u := models.User{Username: username, Email: email, Password: string(hash)}
	id, err := s.Users.Create(u)
	if err != nil {
		return models.User{}, err
	}
	u.ID = id

	utils.LogEvent(s.RequestID, "auth", "register", "username="+username)
	return u, nil
}

// Login verifies credentials and returns the session principal (the stored
// username). The failure is deliberately uniform: an unknown email and a
// wrong password are indistinguishable to the caller.
func (s AuthService) Login(email, password string) (string, error) {
	u, err := s.Users.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		if domain.IsNotFound(err) {
			return "", domain.UnauthorizedError{Op: "login"}
		}
		return "", err
	}

	// bcrypt comparison is constant-time and covers the stored salt.
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", domain.UnauthorizedError{Op: "login"}
	}

	utils.LogEvent(s.RequestID, "auth", "login", "username="+u.Username)
	return u.Username, nil
}
