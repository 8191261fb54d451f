package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
	"github.com/jmjalil96/friendly-system-sub003/internal/infrastructure/auth"
	"github.com/jmjalil96/friendly-system-sub003/internal/ports"
)

type AuthService struct {
	sessions      ports.SessionRepository
	users         ports.UserRepository
	sessionExpiry time.Duration
	logger        ports.Logger
}

func NewAuthService(sessions ports.SessionRepository, users ports.UserRepository, sessionExpiry time.Duration, logger ports.Logger) *AuthService {
	return &AuthService{sessions: sessions, users: users, sessionExpiry: sessionExpiry, logger: logger}
}

// LoginResult carries the raw token exactly once, for the cookie. It is
// never persisted or logged.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if email == "" || password == "" {
		return LoginResult{}, domain.NewInvalidCredentials()
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return LoginResult{}, domain.NewInvalidCredentials()
		}
		return LoginResult{}, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return LoginResult{}, domain.NewInvalidCredentials()
	}
	if !user.IsActive {
		s.logger.Warn(ctx, "login rejected for deactivated account", "user_id", user.ID)
		return LoginResult{}, domain.NewAuthAccountDeactivated()
	}

	raw, hash, err := auth.GenerateToken()
	if err != nil {
		return LoginResult{}, err
	}
	now := time.Now().UTC()
	session := domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: now.Add(s.sessionExpiry),
		CreatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return LoginResult{}, err
	}
	s.logger.Info(ctx, "session created", "user_id", user.ID, "session_id", session.ID)
	return LoginResult{Token: raw, ExpiresAt: session.ExpiresAt, User: user}, nil
}

// Authenticate resolves a raw cookie token to the request's authenticated
// user. One joined datastore read; expiry and account state checked here.
func (s *AuthService) Authenticate(ctx context.Context, rawToken string) (domain.AuthenticatedUser, string, error) {
	hash := auth.HashToken(rawToken)
	su, err := s.sessions.FindByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn(ctx, "unknown session token presented", "token_hash", hash)
			return domain.AuthenticatedUser{}, "", domain.NewAuthSessionInvalid()
		}
		return domain.AuthenticatedUser{}, "", err
	}
	if !su.Session.ExpiresAt.After(time.Now().UTC()) {
		s.logger.Warn(ctx, "expired session token presented", "token_hash", hash, "session_id", su.Session.ID)
		return domain.AuthenticatedUser{}, "", domain.NewAuthSessionInvalid()
	}
	if !su.IsActive {
		s.logger.Warn(ctx, "session for deactivated account", "user_id", su.User.ID)
		return domain.AuthenticatedUser{}, "", domain.NewAuthAccountDeactivated()
	}
	return su.User, su.Session.ID, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.ErrInvalidInput
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Info(ctx, "session deleted", "session_id", sessionID)
	return nil
}
