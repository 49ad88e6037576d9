package ginserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authsvc "rentalhub/internal/app/services/auth"
	backupsvc "rentalhub/internal/app/services/backup"
	bookingsvc "rentalhub/internal/app/services/booking"
	"rentalhub/internal/infra/config"
	"rentalhub/internal/infra/obs"
	"rentalhub/internal/infra/storage/local"
	"rentalhub/internal/infra/storage/memory"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	store, err := local.NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	properties := memory.NewPropertyRepository(store)
	bookings := memory.NewBookingRepository(store)
	statistics := memory.NewStatisticsRepository(store, nil)
	navigation := memory.NewNavigationRepository(store, nil)
	credentials := memory.NewCredentialsRepository(store)

	authService := &authsvc.Service{Credentials: credentials}
	bookingService := &bookingsvc.Service{Bookings: bookings, Properties: properties}
	backupService := &backupsvc.Service{
		Store:      store,
		Properties: properties,
		Bookings:   bookings,
		Statistics: statistics,
		Navigation: navigation,
	}

	handlers := Handlers{
		Properties: &PropertyHandler{Properties: properties},
		Bookings:   &BookingHandler{Service: bookingService, Bookings: bookings},
		Statistics: &StatsHandler{Statistics: statistics},
		Content:    &ContentHandler{Navigation: navigation},
		Auth:       &AuthHandler{Service: authService},
		Data:       &DataHandler{Service: backupService},
		AdminGuard: AdminGuard(authService),
	}
	server := NewServer(config.Config{Env: "test", HTTPAddr: ":0"}, obs.Middleware{}, obs.HealthHandlers{}, handlers)
	return server.Handler
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, h http.Handler) {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/api/v1/admin/login", `{"username":"admin","password":"admin"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", w.Code, w.Body.String())
	}
}

func TestPublicCatalog(t *testing.T) {
	h := newTestServer(t)
	w := doJSON(t, h, http.MethodGet, "/api/v1/properties", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 4 {
		t.Fatalf("total = %d, want seeded catalog", resp.Total)
	}

	w = doJSON(t, h, http.MethodGet, "/api/v1/properties/404", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown id status = %d", w.Code)
	}
}

func TestAdminGuardBlocksUntilLogin(t *testing.T) {
	h := newTestServer(t)
	w := doJSON(t, h, http.MethodGet, "/api/v1/admin/bookings", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d", w.Code)
	}

	w = doJSON(t, h, http.MethodPost, "/api/v1/admin/login", `{"username":"admin","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d", w.Code)
	}

	login(t, h)
	w = doJSON(t, h, http.MethodGet, "/api/v1/admin/bookings", "")
	if w.Code != http.StatusOK {
		t.Fatalf("authenticated status = %d", w.Code)
	}

	w = doJSON(t, h, http.MethodPost, "/api/v1/admin/logout", "")
	if w.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w.Code)
	}
	w = doJSON(t, h, http.MethodGet, "/api/v1/admin/bookings", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("post-logout status = %d", w.Code)
	}
}

func TestBookingEndpoint(t *testing.T) {
	h := newTestServer(t)

	w := doJSON(t, h, http.MethodPost, "/api/v1/bookings", `{"propertyId":"1"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty form status = %d", w.Code)
	}
	var bad struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &bad); err != nil {
		t.Fatal(err)
	}
	if bad.Errors["guestName"] == "" {
		t.Fatalf("field errors missing: %v", bad.Errors)
	}

	body := `{
		"propertyId": "1",
		"guestName": "Иван",
		"guestEmail": "ivan@example.com",
		"guestPhone": "+7 900 000-00-00",
		"checkIn": "2025-03-01",
		"checkOut": "2025-04-15",
		"guests": 2
	}`
	w = doJSON(t, h, http.MethodPost, "/api/v1/bookings", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Months  int `json:"months"`
		Booking struct {
			TotalPrice int64  `json:"totalPrice"`
			Status     string `json:"status"`
		} `json:"booking"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Months != 2 || resp.Booking.TotalPrice != 170000 {
		t.Fatalf("months=%d total=%d", resp.Months, resp.Booking.TotalPrice)
	}
	if resp.Booking.Status != "pending" {
		t.Fatalf("status = %q", resp.Booking.Status)
	}

	w = doJSON(t, h, http.MethodPost, "/api/v1/bookings", strings.Replace(body, `"propertyId": "1"`, `"propertyId": "404"`, 1))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown property status = %d", w.Code)
	}
}

func TestContentEndpoints(t *testing.T) {
	h := newTestServer(t)
	w := doJSON(t, h, http.MethodGet, "/api/v1/pages/details", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Blocks []struct {
			Type string `json:"type"`
		} `json:"blocks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Blocks) == 0 || resp.Blocks[0].Type != "heading" {
		t.Fatalf("blocks = %+v", resp.Blocks)
	}

	w = doJSON(t, h, http.MethodGet, "/api/v1/pages/details/html", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "<h1>") {
		t.Fatalf("html endpoint: %d %s", w.Code, w.Body.String())
	}
}

func TestDataEndpoints(t *testing.T) {
	h := newTestServer(t)
	login(t, h)

	w := doJSON(t, h, http.MethodGet, "/api/v1/admin/data/info", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"hasSavedData":false`) {
		t.Fatalf("info: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, http.MethodPost, "/api/v1/admin/data/save", "")
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d", w.Code)
	}

	w = doJSON(t, h, http.MethodGet, "/api/v1/admin/data/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "apartment-rental-backup-") {
		t.Fatalf("disposition = %q", got)
	}

	w = doJSON(t, h, http.MethodPost, "/api/v1/admin/data/import", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty import status = %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Файл не содержит данных для импорта") {
		t.Fatalf("import error body: %s", w.Body.String())
	}
}

func TestStatisticsEndpoints(t *testing.T) {
	h := newTestServer(t)
	w := doJSON(t, h, http.MethodGet, "/api/v1/statistics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	login(t, h)
	w = doJSON(t, h, http.MethodPost, "/api/v1/admin/statistics", `{"value":"100","label":"отзывов"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		ID    string `json:"id"`
		Order int    `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.Order != 5 {
		t.Fatalf("default order = %d, want appended", created.Order)
	}

	w = doJSON(t, h, http.MethodDelete, "/api/v1/admin/statistics/"+created.ID, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}
}

func TestCredentialsEndpoints(t *testing.T) {
	h := newTestServer(t)
	login(t, h)

	w := doJSON(t, h, http.MethodPost, "/api/v1/admin/credentials/check", `{"password":"admin"}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"valid":true`) {
		t.Fatalf("check: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, http.MethodPut, "/api/v1/admin/credentials", `{"currentPassword":"wrong","username":"a","password":"b"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("wrong current password status = %d", w.Code)
	}

	w = doJSON(t, h, http.MethodPut, "/api/v1/admin/credentials", `{"currentPassword":"admin","username":"owner","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}

	// still authenticated after the change
	w = doJSON(t, h, http.MethodGet, "/api/v1/admin/bookings", "")
	if w.Code != http.StatusOK {
		t.Fatalf("post-update status = %d", w.Code)
	}
}
