package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/dailyneed/storefront-backend/pkg/errors"
	"github.com/dailyneed/storefront-backend/pkg/logger"
	"github.com/dailyneed/storefront-backend/pkg/redis"
)

// Service exposes the session state machine: LoggedOut and LoggedIn(user),
// with login, shallow user merge, and logout transitions.
type Service interface {
	Login(ctx context.Context, input LoginInput) (*SessionDTO, error)
	UpdateUser(ctx context.Context, input UpdateUserInput) (*SessionDTO, error)
	Logout(ctx context.Context) (*SessionDTO, error)
	Get(ctx context.Context) (*SessionDTO, error)
	Restore(ctx context.Context) error
}

// Mirror is the durable key-value store the session is mirrored to so a
// restart lands the user back where they were.
type Mirror interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	SessionFlagKey() string
	SessionUserKey() string
}

// ServiceParams wires the dependencies for the session service.
type ServiceParams struct {
	Mirror Mirror
	Logger *logger.Logger
}

type service struct {
	mirror Mirror
	logg   *logger.Logger

	mu   sync.Mutex
	user *User
}

// User is the current session record. It exists if and only if the session
// is logged in.
type User struct {
	Username  string
	Email     string
	Avatar    string
	AuthToken string
}

// mirrorUser is the serialized shape of the durable user record. The field
// names match the web client's historical localStorage payload.
type mirrorUser struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	AuthToken string `json:"authToken"`
}

// NewService constructs a session service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Mirror == nil {
		return nil, fmt.Errorf("session mirror required")
	}
	return &service{mirror: params.Mirror, logg: params.Logger}, nil
}

// Login transitions to LoggedIn with the provided identity. Avatar and auth
// token default to empty strings when not supplied.
func (s *service) Login(ctx context.Context, input LoginInput) (*SessionDTO, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	user := &User{
		Username:  input.Username,
		Email:     input.Email,
		Avatar:    input.Avatar,
		AuthToken: input.AuthToken,
	}

	s.mu.Lock()
	s.user = user
	dto := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, user)
	return dto, nil
}

// UpdateUser shallow-merges the provided fields into the current user. Only
// fields present in the input replace prior values. Calling it while logged
// out is a caller error and is rejected rather than silently ignored.
func (s *service) UpdateUser(ctx context.Context, input UpdateUserInput) (*SessionDTO, error) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "no active session")
	}

	if input.Username != nil {
		s.user.Username = *input.Username
	}
	if input.Email != nil {
		s.user.Email = *input.Email
	}
	if input.Avatar != nil {
		s.user.Avatar = *input.Avatar
	}
	if input.AuthToken != nil {
		s.user.AuthToken = *input.AuthToken
	}
	user := *s.user
	dto := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, &user)
	return dto, nil
}

// Logout transitions to LoggedOut and clears both mirror keys together.
func (s *service) Logout(ctx context.Context) (*SessionDTO, error) {
	s.mu.Lock()
	s.user = nil
	dto := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.mirror.Del(ctx, s.mirror.SessionFlagKey(), s.mirror.SessionUserKey()); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "clearing session mirror")
		}
	}
	return dto, nil
}

// Get returns the current session state.
func (s *service) Get(ctx context.Context) (*SessionDTO, error) {
	s.mu.Lock()
	dto := s.snapshotLocked()
	s.mu.Unlock()
	return dto, nil
}

// Restore rebuilds the session from the mirror. Anything short of a clean
// flag plus a decodable user record restores as LoggedOut without failing
// boot.
func (s *service) Restore(ctx context.Context) error {
	flag, err := s.mirror.Get(ctx, s.mirror.SessionFlagKey())
	if err != nil {
		if redis.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("reading session flag: %w", err)
	}
	if flag != "true" {
		return nil
	}

	raw, err := s.mirror.Get(ctx, s.mirror.SessionUserKey())
	if err != nil {
		if redis.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("reading session user: %w", err)
	}

	var record mirrorUser
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "session mirror payload is not decodable, restoring logged out")
		}
		return nil
	}

	s.mu.Lock()
	s.user = &User{
		Username:  record.Username,
		Email:     record.Email,
		Avatar:    record.Avatar,
		AuthToken: record.AuthToken,
	}
	s.mu.Unlock()
	return nil
}

// snapshotLocked builds the response DTO. Callers must hold s.mu.
func (s *service) snapshotLocked() *SessionDTO {
	if s.user == nil {
		return &SessionDTO{LoggedIn: false}
	}
	return &SessionDTO{
		LoggedIn: true,
		User: &UserDTO{
			Username:  s.user.Username,
			Email:     s.user.Email,
			Avatar:    s.user.Avatar,
			AuthToken: s.user.AuthToken,
		},
	}
}

// persist mirrors the logged-in state. Failures are logged and swallowed so
// the in-memory session stays authoritative.
func (s *service) persist(ctx context.Context, user *User) {
	payload, err := json.Marshal(mirrorUser{
		Username:  user.Username,
		Email:     user.Email,
		Avatar:    user.Avatar,
		AuthToken: user.AuthToken,
	})
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "encoding session mirror payload")
		}
		return
	}
	if err := s.mirror.Set(ctx, s.mirror.SessionFlagKey(), "true", 0); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "writing session flag mirror")
		}
		return
	}
	if err := s.mirror.Set(ctx, s.mirror.SessionUserKey(), string(payload), 0); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "writing session user mirror")
		}
	}
}
