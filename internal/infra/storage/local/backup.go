package local

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"rentalhub/internal/domain/booking"
	"rentalhub/internal/domain/property"
)

// ExportVersion tags every produced backup document.
const ExportVersion = "1.0"

type exportDocument struct {
	Properties    []property.Property `json:"properties"`
	Bookings      []bookingDocument   `json:"bookings"`
	Statistics    json.RawMessage     `json:"statistics"`
	Navigation    json.RawMessage     `json:"navigation"`
	LastSaved     string              `json:"lastSaved"`
	ExportVersion string              `json:"exportVersion"`
}

// ExportData builds one combined backup document from the given
// collections plus the statistics and navigation buckets read fresh
// from their own slots. A bucket that is absent or holds malformed
// JSON is exported as null rather than failing the whole export.
func (s *Store) ExportData(properties []property.Property, bookings []booking.Booking) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if properties == nil {
		properties = []property.Property{}
	}
	doc := exportDocument{
		Properties:    properties,
		Bookings:      encodeBookings(bookings),
		Statistics:    s.rawBucket(StatisticsKey),
		Navigation:    s.rawBucket(NavigationKey),
		LastSaved:     s.now().UTC().Format(time.RFC3339),
		ExportVersion: ExportVersion,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("local: encode export: %w", err)
	}
	return data, nil
}

// ExportFileName names the download after the current date.
func (s *Store) ExportFileName() string {
	return fmt.Sprintf("apartment-rental-backup-%s.json", s.now().Format("2006-01-02"))
}

func (s *Store) rawBucket(key string) json.RawMessage {
	data, ok := s.getItem(key)
	if !ok || !json.Valid(data) {
		return nil
	}
	return json.RawMessage(data)
}

// ImportCounts reports how many records each bucket received.
type ImportCounts struct {
	Properties int `json:"properties"`
	Bookings   int `json:"bookings"`
	Statistics int `json:"statistics"`
	Navigation int `json:"navigation"`
}

// ImportResult is the outcome of an import attempt.
type ImportResult struct {
	Success  bool         `json:"success"`
	Error    string       `json:"error,omitempty"`
	Imported ImportCounts `json:"imported"`
}

// Import error messages shown to the admin.
const (
	errInvalidFormat = "Неверный формат файла"
	errProcessing    = "Ошибка при обработке файла"
	errNothingToDo   = "Файл не содержит данных для импорта"
)

// ImportData applies a backup document: buckets present in the
// document replace the stored ones wholesale, buckets absent are left
// untouched. The main bucket is only replaced when both properties
// and bookings are present, and its lastSaved is re-stamped. There is
// no merging and no partial-failure recovery: a document either
// parses or the import is rejected.
func (s *Store) ImportData(raw []byte) ImportResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return ImportResult{Error: errInvalidFormat}
	}

	var counts ImportCounts
	replaced := false

	propsRaw, hasProps := presentField(doc, "properties")
	bookingsRaw, hasBookings := presentField(doc, "bookings")
	if hasProps && hasBookings {
		var properties []property.Property
		if err := json.Unmarshal(propsRaw, &properties); err != nil {
			return ImportResult{Error: errProcessing}
		}
		var bookings []bookingDocument
		if err := json.Unmarshal(bookingsRaw, &bookings); err != nil {
			return ImportResult{Error: errProcessing}
		}
		if properties == nil {
			properties = []property.Property{}
		}
		if bookings == nil {
			bookings = []bookingDocument{}
		}
		main := appDocument{
			Properties: properties,
			Bookings:   bookings,
			LastSaved:  s.now().UTC().Format(time.RFC3339),
		}
		data, err := json.MarshalIndent(main, "", "  ")
		if err != nil {
			return ImportResult{Error: errProcessing}
		}
		if err := s.setItem(AppDataKey, data); err != nil {
			s.logError("import main bucket failed", AppDataKey, err)
			return ImportResult{Error: errProcessing}
		}
		counts.Properties = len(properties)
		counts.Bookings = len(bookings)
		replaced = true
	}

	if statsRaw, ok := presentField(doc, "statistics"); ok {
		n, err := s.replaceArrayBucket(StatisticsKey, statsRaw)
		if err != nil {
			return ImportResult{Error: errProcessing, Imported: counts}
		}
		counts.Statistics = n
		replaced = true
	}

	if navRaw, ok := presentField(doc, "navigation"); ok {
		n, err := s.replaceArrayBucket(NavigationKey, navRaw)
		if err != nil {
			return ImportResult{Error: errProcessing, Imported: counts}
		}
		counts.Navigation = n
		replaced = true
	}

	if !replaced {
		return ImportResult{Error: errNothingToDo}
	}
	return ImportResult{Success: true, Imported: counts}
}

func presentField(doc map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := doc[key]
	if !ok || len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false
	}
	return raw, true
}

// replaceArrayBucket overwrites a slot with the imported array bytes
// verbatim, preserving fields this version does not know about.
func (s *Store) replaceArrayBucket(key string, raw json.RawMessage) (int, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return 0, err
	}
	if err := s.setItem(key, raw); err != nil {
		s.logError("import bucket failed", key, err)
		return 0, err
	}
	return len(entries), nil
}
