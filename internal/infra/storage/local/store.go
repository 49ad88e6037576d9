// Package local is the file-backed bucket store behind every piece of
// application state. Each bucket is one independently serialized JSON
// document in the data directory; there is exactly one logical writer
// (this process), so a single mutex is all the coordination needed.
package local

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/domain/content"
	"rentalhub/internal/domain/stats"
)

// Bucket keys. Each maps to one <key>.json file.
const (
	AppDataKey    = "apartment-rental-hub-data"
	StatisticsKey = "apartment-rental-statistics"
	NavigationKey = "apartment-rental-navigation"
	AuthKey       = "apartment-rental-auth"
)

type Store struct {
	dir    string
	logger *slog.Logger
	now    func() time.Time
	mu     sync.Mutex
}

func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if dir == "" {
		return nil, errors.New("local: data directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("local: create data dir: %w", err)
	}
	return &Store{dir: dir, logger: logger, now: time.Now}, nil
}

// Ready verifies the data directory is still present and writable by
// creating and removing a probe file. Backs the readiness endpoint.
func (s *Store) Ready() error {
	f, err := os.CreateTemp(s.dir, ".ready-*")
	if err != nil {
		return fmt.Errorf("local: data dir not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("local: data dir cleanup failed: %w", err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// getItem reads one bucket. Absent buckets and read failures both
// report "not present"; failures only leave a log line.
func (s *Store) getItem(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logError("bucket read failed", key, err)
		}
		return nil, false
	}
	return data, true
}

func (s *Store) setItem(key string, data []byte) error {
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("local: write bucket %s: %w", key, err)
	}
	return nil
}

func (s *Store) removeItem(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("local: remove bucket %s: %w", key, err)
	}
	return nil
}

func (s *Store) logError(msg, key string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Error(msg, "bucket", key, "error", err)
}

// LoadStatistics reads the statistics bucket. The second return is
// false when the bucket is absent or does not parse.
func (s *Store) LoadStatistics() ([]stats.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.getItem(StatisticsKey)
	if !ok {
		return nil, false
	}
	var items []stats.Item
	if err := json.Unmarshal(data, &items); err != nil {
		s.logError("statistics parse failed", StatisticsKey, err)
		return nil, false
	}
	return items, true
}

func (s *Store) SaveStatistics(items []stats.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if items == nil {
		items = []stats.Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("local: encode statistics: %w", err)
	}
	return s.setItem(StatisticsKey, data)
}

func (s *Store) ClearStatistics() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeItem(StatisticsKey)
}

// LoadNavigation reads the navigation bucket; false when absent or
// corrupt, in which case callers fall back to the default pages.
func (s *Store) LoadNavigation() ([]content.NavigationPage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.getItem(NavigationKey)
	if !ok {
		return nil, false
	}
	var pages []content.NavigationPage
	if err := json.Unmarshal(data, &pages); err != nil {
		s.logError("navigation parse failed", NavigationKey, err)
		return nil, false
	}
	return pages, true
}

func (s *Store) SaveNavigation(pages []content.NavigationPage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pages == nil {
		pages = []content.NavigationPage{}
	}
	data, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return fmt.Errorf("local: encode navigation: %w", err)
	}
	return s.setItem(NavigationKey, data)
}

type authDocument struct {
	Credentials auth.Credentials `json:"credentials"`
}

// LoadCredentials reads the stored admin pair; false when absent or
// corrupt so callers seed the default.
func (s *Store) LoadCredentials() (auth.Credentials, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.getItem(AuthKey)
	if !ok {
		return auth.Credentials{}, false
	}
	var doc authDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logError("credentials parse failed", AuthKey, err)
		return auth.Credentials{}, false
	}
	if doc.Credentials.Username == "" && doc.Credentials.Password == "" {
		return auth.Credentials{}, false
	}
	return doc.Credentials, true
}

func (s *Store) SaveCredentials(creds auth.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.MarshalIndent(authDocument{Credentials: creds}, "", "  ")
	if err != nil {
		return fmt.Errorf("local: encode credentials: %w", err)
	}
	return s.setItem(AuthKey, data)
}
