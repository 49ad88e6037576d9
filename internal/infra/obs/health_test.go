package obs

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func healthRouter(h HealthHandlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/livez", h.Livez)
	r.GET("/readyz", h.Readyz)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLivezAlwaysOK(t *testing.T) {
	r := healthRouter(HealthHandlers{})
	if w := get(r, "/livez"); w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestReadyzReflectsProbe(t *testing.T) {
	r := healthRouter(HealthHandlers{Ready: func() error { return nil }})
	if w := get(r, "/readyz"); w.Code != http.StatusOK {
		t.Fatalf("passing probe: status = %d", w.Code)
	}

	r = healthRouter(HealthHandlers{Ready: func() error { return errors.New("data dir gone") }})
	w := get(r, "/readyz")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("failing probe: status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "data dir gone") {
		t.Fatalf("probe error not surfaced: %s", w.Body.String())
	}
}

func TestReadyzWithoutProbe(t *testing.T) {
	r := healthRouter(HealthHandlers{})
	if w := get(r, "/readyz"); w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}
