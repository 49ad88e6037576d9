package backup

import (
	"context"
	"encoding/json"
	"testing"

	"rentalhub/internal/infra/storage/local"
	"rentalhub/internal/infra/storage/memory"
)

func newService(t *testing.T) *Service {
	t.Helper()
	store, err := local.NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return &Service{
		Store:      store,
		Properties: memory.NewPropertyRepository(store),
		Bookings:   memory.NewBookingRepository(store),
		Statistics: memory.NewStatisticsRepository(store, nil),
		Navigation: memory.NewNavigationRepository(store, nil),
	}
}

func TestSaveAllThenInfo(t *testing.T) {
	svc := newService(t)
	has, _, ok := svc.Info()
	if has || ok {
		t.Fatal("fresh service reports saved data")
	}
	if !svc.SaveAll() {
		t.Fatal("save failed")
	}
	has, last, ok := svc.Info()
	if !has || !ok || last.IsZero() {
		t.Fatalf("info after save: has=%v ok=%v last=%v", has, ok, last)
	}
}

func TestClearLeavesMemoryAlone(t *testing.T) {
	svc := newService(t)
	if !svc.SaveAll() {
		t.Fatal("save failed")
	}
	if !svc.Clear() {
		t.Fatal("clear failed")
	}
	if has, _, _ := svc.Info(); has {
		t.Fatal("data still present")
	}
	if got := len(svc.Properties.All()); got != 4 {
		t.Fatalf("clear changed the in-memory catalog: %d listings", got)
	}
}

func TestExportProducesNamedDocument(t *testing.T) {
	svc := newService(t)
	name, data, err := svc.Export()
	if err != nil {
		t.Fatal(err)
	}
	if name == "" {
		t.Fatal("empty file name")
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export not valid JSON: %v", err)
	}
	var properties []json.RawMessage
	if err := json.Unmarshal(doc["properties"], &properties); err != nil {
		t.Fatal(err)
	}
	if len(properties) != 4 {
		t.Fatalf("exported %d properties, want the live catalog", len(properties))
	}
}

func TestImportRefreshesRepositories(t *testing.T) {
	svc := newService(t)
	doc := `{
		"properties": [{"id":"77","title":"Импортированная","price":1,"status":"available","address":"адрес"}],
		"bookings": [],
		"statistics": [{"id":"s1","value":"7","label":"лет","order":1}]
	}`
	result := svc.Import(context.Background(), []byte(doc))
	if !result.Success {
		t.Fatalf("import failed: %q", result.Error)
	}
	props := svc.Properties.All()
	if len(props) != 1 || props[0].ID != "77" {
		t.Fatalf("catalog not refreshed: %+v", props)
	}
	statsItems := svc.Statistics.All()
	if len(statsItems) != 1 || statsItems[0].ID != "s1" {
		t.Fatalf("statistics not refreshed: %+v", statsItems)
	}
}

func TestImportFailureTouchesNothing(t *testing.T) {
	svc := newService(t)
	before := len(svc.Properties.All())
	result := svc.Import(context.Background(), []byte(`"не объект"`))
	if result.Success {
		t.Fatal("invalid document accepted")
	}
	if got := len(svc.Properties.All()); got != before {
		t.Fatalf("failed import changed the catalog: %d -> %d", before, got)
	}
}
