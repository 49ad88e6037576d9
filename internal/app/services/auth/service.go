package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domainauth "rentalhub/internal/domain/auth"
	"rentalhub/internal/infra/storage/memory"
)

// Artificial pauses matching the login and settings forms' loading
// states. Not real I/O latency; disabled in tests.
const (
	DefaultLoginLatency  = 800 * time.Millisecond
	DefaultUpdateLatency = 1000 * time.Millisecond
)

// Service guards the admin back office. There is exactly one
// credential pair and one authenticated flag; the flag lives in
// memory only, so a restart logs the admin out. Comparison is exact
// plaintext equality against the stored pair.
type Service struct {
	Credentials   *memory.CredentialsRepository
	Logger        *slog.Logger
	LoginLatency  time.Duration
	UpdateLatency time.Duration

	mu            sync.Mutex
	authenticated bool
}

// Login flips the authenticated flag iff both fields match exactly.
func (s *Service) Login(ctx context.Context, username, password string) bool {
	wait(ctx, s.LoginLatency)
	if !s.Credentials.Current().Match(username, password) {
		if s.Logger != nil {
			s.Logger.Warn("login rejected", "username", username)
		}
		return false
	}
	s.mu.Lock()
	s.authenticated = true
	s.mu.Unlock()
	if s.Logger != nil {
		s.Logger.Info("admin logged in", "username", username)
	}
	return true
}

func (s *Service) Logout() {
	s.mu.Lock()
	s.authenticated = false
	s.mu.Unlock()
}

func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// UpdateCredentials persists a new pair. The authenticated flag is
// left untouched.
func (s *Service) UpdateCredentials(ctx context.Context, creds domainauth.Credentials) error {
	wait(ctx, s.UpdateLatency)
	if err := creds.Validate(); err != nil {
		return err
	}
	if err := s.Credentials.Update(creds); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Info("admin credentials updated", "username", creds.Username)
	}
	return nil
}

// CheckCurrentPassword compares against the stored password.
func (s *Service) CheckCurrentPassword(password string) bool {
	return password == s.Credentials.Current().Password
}

func wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}
