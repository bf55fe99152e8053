package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/Desai0Aryan/finance-tracker/internal/user"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternalError      = errors.New("internal server error")
)

type Service interface {
	Login(email, password string) (*user.User, string, string, error)
	Logout(sessionToken string)
	RefreshAccessToken(sessionToken string) (string, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService     user.Service
	sessionManager  SessionManagerInterface
	jwtManager      JWTManagerInterface
	accessDuration  time.Duration
	sessionDuration time.Duration
}

func NewAuthService(userService user.Service, sessionManager SessionManagerInterface, jwtManager JWTManagerInterface, sessionDuration time.Duration) Service {
	if sessionDuration <= 0 {
		sessionDuration = defaultSessionTokenDuration
	}
	return &service{
		userService:     userService,
		sessionManager:  sessionManager,
		jwtManager:      jwtManager,
		accessDuration:  defaultJWTDuration,
		sessionDuration: sessionDuration,
	}
}

// Login verifies credentials and returns the user, a short-lived access JWT
// and a long-lived opaque session token used to mint new access tokens.
func (s *service) Login(email, password string) (*user.User, string, string, error) {
	existing, err := s.userService.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", ErrInternalError
	}

	accessToken, err := s.jwtManager.GenerateAccessJWT(existing.ID, s.accessDuration)
	if err != nil {
		return nil, "", "", ErrInternalError
	}

	sessionToken, err := s.sessionManager.GenerateSessionToken(existing.ID, s.sessionDuration)
	if err != nil {
		return nil, "", "", ErrInternalError
	}

	return existing, accessToken, sessionToken, nil
}

func (s *service) Logout(sessionToken string) {
	s.sessionManager.DeleteSessionToken(sessionToken)
}

// RefreshAccessToken exchanges a valid session token for a fresh access JWT.
func (s *service) RefreshAccessToken(sessionToken string) (string, error) {
	userID, err := s.sessionManager.VerifySessionToken(sessionToken)
	if err != nil {
		return "", err
	}

	if _, err := s.userService.GetUserByID(userID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", ErrInternalError
	}

	accessToken, err := s.jwtManager.GenerateAccessJWT(userID, s.accessDuration)
	if err != nil {
		return "", ErrInternalError
	}
	return accessToken, nil
}
