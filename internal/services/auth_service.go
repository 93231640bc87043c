package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nebulanotes/internal/logger"
	"nebulanotes/internal/models"
	"nebulanotes/internal/repositories"
	"nebulanotes/internal/utils"
)

type UserStore interface {
	CreateWithProfile(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

type SessionStore interface {
	StoreSession(ctx context.Context, jti string, userID int64, ttl time.Duration) error
	SessionUser(ctx context.Context, jti string) (int64, bool, error)
	DeleteSession(ctx context.Context, jti string) error
}

type RegisterInput struct {
	Username        string
	Email           string
	FirstName       string
	LastName        string
	Password        string
	PasswordConfirm string
}

type AuthService struct {
	users    UserStore
	sessions SessionStore
	secret   []byte
	ttl      time.Duration
	log      *logger.Logger
	now      func() time.Time
}

func NewAuthService(users UserStore, sessions SessionStore, secret string, ttl time.Duration, log *logger.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		secret:   []byte(secret),
		ttl:      ttl,
		log:      log,
		now:      time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	user, err := s.users.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verify password: %w", err)
	}

	now := s.now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.log.Warn("Failed to record last login", "user_id", user.ID, "error", err)
	}
	return s.startSession(ctx, user.ID, now)
}

// Logout revokes the session behind token. Unknown, expired or malformed
// tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := utils.VerifySessionToken(token, s.secret)
	if err != nil {
		return nil
	}
	if err := s.sessions.DeleteSession(ctx, claims.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Register creates the user with an empty profile and logs it in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.Session, error) {
	ve := NewValidationError()
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if username == "" {
		ve.Add("username", MsgRequired)
	}
	if email == "" {
		ve.Add("email", MsgRequired)
	}
	if in.Password == "" {
		ve.Add("password", MsgRequired)
	}
	if in.PasswordConfirm == "" {
		ve.Add("password_confirm", MsgRequired)
	}
	if in.Password != "" && in.PasswordConfirm != "" && in.Password != in.PasswordConfirm {
		ve.Add("password_confirm", MsgPasswordsMismatch)
	}

	if username != "" {
		existing, err := s.users.FindUserByUsername(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("find user: %w", err)
		}
		if existing != nil {
			ve.Add("username", MsgUsernameTaken)
		}
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	hash, err := utils.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
	}
	if err := s.users.CreateWithProfile(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			ve.Add("username", MsgUsernameTaken)
			return nil, ve
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered", "user_id", user.ID, "username", user.Username)
	return s.startSession(ctx, user.ID, s.now())
}

// CurrentUser resolves a session token. It returns nil, nil for an absent,
// invalid, expired or revoked session.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	claims, err := utils.VerifySessionToken(token, s.secret)
	if err != nil {
		return nil, nil
	}
	sessionID, err := claims.SessionID()
	if err != nil {
		return nil, nil
	}

	userID, ok, err := s.sessions.SessionUser(ctx, sessionID.String())
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	if subject, err := claims.UserID(); err != nil || subject != userID {
		return nil, nil
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", userID, err)
	}
	return user, nil
}

func (s *AuthService) startSession(ctx context.Context, userID int64, now time.Time) (*models.Session, error) {
	session := &models.Session{UserID: userID, CreatedAt: now, ExpiresAt: now.Add(s.ttl)}
	session.Prepare()

	token, err := utils.GenerateSessionToken(s.secret, session.ID, userID, now, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}
	if err := s.sessions.StoreSession(ctx, session.ID.String(), userID, s.ttl); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	session.Token = token
	return session, nil
}

