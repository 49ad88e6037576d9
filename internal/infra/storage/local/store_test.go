package local

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/domain/booking"
	"rentalhub/internal/domain/property"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func sampleProperty() property.Property {
	return property.Property{
		ID:      "1",
		Title:   "Квартира",
		Address: "Невский проспект, 1",
		Price:   50000,
		Status:  property.StatusAvailable,
	}
}

func sampleBooking() booking.Booking {
	return booking.Booking{
		ID:         "booking-1",
		PropertyID: "1",
		GuestName:  "Иван",
		GuestEmail: "ivan@example.com",
		GuestPhone: "+7 900 000-00-00",
		CheckIn:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		TotalPrice: 100000,
		Status:     booking.StatusPending,
		CreatedAt:  time.Date(2025, 2, 20, 12, 30, 0, 0, time.UTC),
	}
}

func TestAppDataRoundTrip(t *testing.T) {
	store := newTestStore(t)

	if store.HasSavedData() {
		t.Fatal("fresh store reports saved data")
	}
	if data := store.LoadAppData(); data != nil {
		t.Fatal("fresh store loaded app data")
	}

	if !store.SaveAppData([]property.Property{sampleProperty()}, []booking.Booking{sampleBooking()}) {
		t.Fatal("save failed")
	}
	if !store.HasSavedData() {
		t.Fatal("saved data not detected")
	}

	data := store.LoadAppData()
	if data == nil {
		t.Fatal("load returned nil")
	}
	if len(data.Properties) != 1 || data.Properties[0].ID != "1" {
		t.Fatalf("properties = %+v", data.Properties)
	}
	if len(data.Bookings) != 1 {
		t.Fatalf("bookings = %+v", data.Bookings)
	}
	got := data.Bookings[0]
	want := sampleBooking()
	if !got.CheckIn.Equal(want.CheckIn) || !got.CheckOut.Equal(want.CheckOut) {
		t.Fatalf("dates drifted: %v / %v", got.CheckIn, got.CheckOut)
	}
	if got.TotalPrice != want.TotalPrice || got.Status != want.Status {
		t.Fatalf("booking fields drifted: %+v", got)
	}

	if _, ok := store.LastSavedTime(); !ok {
		t.Fatal("lastSaved missing after save")
	}
	if !store.ClearSavedData() {
		t.Fatal("clear failed")
	}
	if store.HasSavedData() {
		t.Fatal("data still present after clear")
	}
}

func TestLoadAppDataCorruptBucket(t *testing.T) {
	store := newTestStore(t)
	if err := store.setItem(AppDataKey, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	if data := store.LoadAppData(); data != nil {
		t.Fatal("corrupt bucket should load as nil")
	}
}

func TestUnparseableDatesBecomeZero(t *testing.T) {
	store := newTestStore(t)
	doc := `{"properties":[],"bookings":[{"id":"b1","propertyId":"1","checkIn":"завтра","checkOut":"","createdAt":"2025-02-20T12:30:00Z"}],"lastSaved":"2025-02-20T12:30:00Z"}`
	if err := store.setItem(AppDataKey, []byte(doc)); err != nil {
		t.Fatal(err)
	}
	data := store.LoadAppData()
	if data == nil {
		t.Fatal("load returned nil")
	}
	b := data.Bookings[0]
	if !b.CheckIn.IsZero() || !b.CheckOut.IsZero() {
		t.Fatalf("bad dates should be zero: %v / %v", b.CheckIn, b.CheckOut)
	}
	if b.CreatedAt.IsZero() {
		t.Fatal("valid createdAt lost")
	}
}

func TestExportIncludesAutosaveBuckets(t *testing.T) {
	store := newTestStore(t)
	if err := store.setItem(StatisticsKey, []byte(`[{"id":"stat-1","value":"10","label":"квартир","order":1}]`)); err != nil {
		t.Fatal(err)
	}

	data, err := store.ExportData([]property.Property{sampleProperty()}, nil)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if string(doc["exportVersion"]) != `"1.0"` {
		t.Fatalf("exportVersion = %s", doc["exportVersion"])
	}
	if string(doc["navigation"]) != "null" {
		t.Fatalf("absent navigation bucket should export null, got %s", doc["navigation"])
	}
	var statItems []json.RawMessage
	if err := json.Unmarshal(doc["statistics"], &statItems); err != nil || len(statItems) != 1 {
		t.Fatalf("statistics bucket not exported verbatim: %s", doc["statistics"])
	}
}

func TestExportMalformedBucketBecomesNull(t *testing.T) {
	store := newTestStore(t)
	if err := store.setItem(StatisticsKey, []byte("{oops")); err != nil {
		t.Fatal(err)
	}
	data, err := store.ExportData(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if string(doc["statistics"]) != "null" {
		t.Fatalf("malformed bucket exported as %s, want null", doc["statistics"])
	}
}

func TestExportFileName(t *testing.T) {
	store := newTestStore(t)
	store.now = func() time.Time { return time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC) }
	if got := store.ExportFileName(); got != "apartment-rental-backup-2025-03-05.json" {
		t.Fatalf("file name = %q", got)
	}
}

func TestImportRejectsNonObject(t *testing.T) {
	store := newTestStore(t)
	for _, raw := range []string{`[]`, `"строка"`, `42`, `null`, `не json`} {
		result := store.ImportData([]byte(raw))
		if result.Success {
			t.Errorf("input %s accepted", raw)
		}
		if result.Error != "Неверный формат файла" {
			t.Errorf("input %s: error = %q", raw, result.Error)
		}
	}
}

func TestImportEmptyObjectHasNothingToImport(t *testing.T) {
	store := newTestStore(t)
	result := store.ImportData([]byte(`{}`))
	if result.Success {
		t.Fatal("empty document accepted")
	}
	if result.Error != "Файл не содержит данных для импорта" {
		t.Fatalf("error = %q", result.Error)
	}
}

func TestImportMainBucketNeedsBothCollections(t *testing.T) {
	store := newTestStore(t)
	result := store.ImportData([]byte(`{"properties":[]}`))
	if result.Success {
		t.Fatal("properties without bookings should import nothing")
	}
}

func TestImportStatisticsOnly(t *testing.T) {
	store := newTestStore(t)
	result := store.ImportData([]byte(`{"statistics":[{"id":"s1","value":"5","label":"лет","order":1}]}`))
	if !result.Success {
		t.Fatalf("statistics-only import failed: %q", result.Error)
	}
	if result.Imported.Statistics != 1 {
		t.Fatalf("imported counts = %+v", result.Imported)
	}
	if store.HasSavedData() {
		t.Fatal("main bucket should stay untouched")
	}
}

func TestImportMalformedBucket(t *testing.T) {
	store := newTestStore(t)
	result := store.ImportData([]byte(`{"statistics":{"not":"an array"}}`))
	if result.Success {
		t.Fatal("malformed bucket accepted")
	}
	if result.Error != "Ошибка при обработке файла" {
		t.Fatalf("error = %q", result.Error)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	store := newTestStore(t)
	if err := store.setItem(NavigationKey, []byte(`[{"id":"details","title":"Детали","content":"# Детали","isEditable":true}]`)); err != nil {
		t.Fatal(err)
	}
	exported, err := store.ExportData([]property.Property{sampleProperty()}, []booking.Booking{sampleBooking()})
	if err != nil {
		t.Fatal(err)
	}

	other := newTestStore(t)
	result := other.ImportData(exported)
	if !result.Success {
		t.Fatalf("round trip import failed: %q", result.Error)
	}
	if result.Imported.Properties != 1 || result.Imported.Bookings != 1 || result.Imported.Navigation != 1 {
		t.Fatalf("imported counts = %+v", result.Imported)
	}
	data := other.LoadAppData()
	if data == nil || len(data.Properties) != 1 || len(data.Bookings) != 1 {
		t.Fatalf("main bucket not restored: %+v", data)
	}
	if data.LastSaved.IsZero() {
		t.Fatal("lastSaved not re-stamped on import")
	}
}

func TestReadyProbesDataDir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Ready(); err != nil {
		t.Fatalf("writable dir reported not ready: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("probe left %d files behind", len(entries))
	}

	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	if err := store.Ready(); err == nil {
		t.Fatal("missing data dir reported ready")
	}
}

func TestCredentialsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	if _, ok := store.LoadCredentials(); ok {
		t.Fatal("fresh store has credentials")
	}
	if err := store.SaveCredentials(auth.Credentials{Username: "owner", Password: "secret"}); err != nil {
		t.Fatal(err)
	}
	creds, ok := store.LoadCredentials()
	if !ok {
		t.Fatal("saved credentials not found")
	}
	if creds.Username != "owner" || creds.Password != "secret" {
		t.Fatalf("credentials = %+v", creds)
	}
}
