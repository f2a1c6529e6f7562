package services

import (
	"errors"

	"refind/internal/domain"
	"refind/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("invalid email or password")

type AuthService struct {
	Users *repos.UserRepo
}

// LoginPhone binds a phone-number identity to the session. There is no
// password; the phone number is the contact surface the whole app exists to
// share, so presenting it is the login.
func (s *AuthService) LoginPhone(sid, phone string) (*domain.Reporter, error) {
	rep, err := s.Users.EnsureReporter(uuid.NewString(), phone)
	if err != nil {
		return nil, err
	}
	if err := s.Users.BindReporterSession(sid, rep.ID); err != nil {
		return nil, err
	}
	return rep, nil
}

// LoginAdmin authenticates a moderation account.
func (s *AuthService) LoginAdmin(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindAdminSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentReporter(sid string) (*domain.Reporter, error) {
	return s.Users.SessionReporter(sid)
}

func (s *AuthService) CurrentAdmin(sid string) (*domain.User, error) {
	return s.Users.SessionAdmin(sid)
}
