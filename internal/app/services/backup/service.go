package backup

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"rentalhub/internal/infra/storage/local"
	"rentalhub/internal/infra/storage/memory"
)

// DefaultImportLatency mirrors the import button's processing pause.
const DefaultImportLatency = 1000 * time.Millisecond

// TopicDataImported is the event topic for applied imports.
const TopicDataImported = "data.imported"

// Publisher delivers application events to the broker, when one is
// wired.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte, headers map[string]string) error
}

// Service ties the explicit-save flow and backup files together: it
// snapshots the in-memory state into the main bucket, produces the
// combined export document and applies imported ones, refreshing the
// repositories afterwards.
type Service struct {
	Store      *local.Store
	Properties *memory.PropertyRepository
	Bookings   *memory.BookingRepository
	Statistics *memory.StatisticsRepository
	Navigation *memory.NavigationRepository
	Events     Publisher
	Logger     *slog.Logger
	Latency    time.Duration
}

// SaveAll is the explicit "Save changes" action: it serializes the
// current catalog and bookings into the main bucket.
func (s *Service) SaveAll() bool {
	return s.Store.SaveAppData(s.Properties.All(), s.Bookings.All())
}

// Info reports whether saved data exists and when it was last written.
func (s *Service) Info() (bool, time.Time, bool) {
	has := s.Store.HasSavedData()
	last, ok := s.Store.LastSavedTime()
	return has, last, ok
}

// Clear deletes the main bucket. In-memory state is untouched, exactly
// like clearing storage under a running page.
func (s *Service) Clear() bool {
	return s.Store.ClearSavedData()
}

// Export builds the combined backup document from live state plus the
// autosave buckets.
func (s *Service) Export() (string, []byte, error) {
	data, err := s.Store.ExportData(s.Properties.All(), s.Bookings.All())
	if err != nil {
		return "", nil, err
	}
	return s.Store.ExportFileName(), data, nil
}

// Import applies a backup document and rehydrates every repository
// from the replaced buckets.
func (s *Service) Import(ctx context.Context, raw []byte) local.ImportResult {
	wait(ctx, s.Latency)

	result := s.Store.ImportData(raw)
	if !result.Success {
		return result
	}

	if data := s.Store.LoadAppData(); data != nil {
		s.Properties.Replace(data.Properties)
		s.Bookings.Replace(data.Bookings)
	}
	s.Statistics.Reload()
	s.Navigation.Reload()

	if s.Logger != nil {
		s.Logger.Info("data imported",
			"properties", result.Imported.Properties,
			"bookings", result.Imported.Bookings,
			"statistics", result.Imported.Statistics,
			"navigation", result.Imported.Navigation)
	}
	s.publishImported(ctx, result)
	return result
}

func (s *Service) publishImported(ctx context.Context, result local.ImportResult) {
	if s.Events == nil {
		return
	}
	payload, err := json.Marshal(result.Imported)
	if err != nil {
		return
	}
	if err := s.Events.Publish(ctx, TopicDataImported, "", payload, nil); err != nil && s.Logger != nil {
		s.Logger.Warn("import event publish failed", "error", err)
	}
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
