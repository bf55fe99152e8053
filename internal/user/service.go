package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxEmailLength    = 254
	minPasswordLength = 8
	maxNameLength     = 60
	bcryptCost        = 12
)

var (
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrEmailTooLong       = fmt.Errorf("email address is too long, max length: %d", maxEmailLength)
	ErrInvalidName        = errors.New("name must not be empty")
	ErrNameTooLong        = fmt.Errorf("name is too long, max length: %d", maxNameLength)
	ErrPasswordTooShort   = fmt.Errorf("password is too short, min length: %d", minPasswordLength)
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Service interface {
	Register(name, email, password string) (*User, error)
	Authenticate(email, password string) (*User, error)
	GetUserByID(userID string) (*User, error)
	UpdateProfile(userID, name, email string) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(name, email, password string) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.repo.FindByEmail(email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	newUser := User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Save(newUser); err != nil {
		return nil, err
	}
	return &newUser, nil
}

func (s *service) Authenticate(email, password string) (*User, error) {
	existing, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return existing, nil
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.FindByID(userID)
}

func (s *service) UpdateProfile(userID, name, email string) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(existing.Email, email) {
		if _, err := s.repo.FindByEmail(email); err == nil {
			return nil, ErrEmailAlreadyExists
		} else if !errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
	}

	existing.Name = strings.TrimSpace(name)
	existing.Email = email
	if err := s.repo.Update(*existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrInvalidName
	}
	if len(trimmed) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > maxEmailLength {
		return ErrEmailTooLong
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
