package observability

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticCount int

func (c staticCount) Count() int { return int(c) }

func TestHealthChecker_Liveness(t *testing.T) {
	h := NewHealthChecker(staticCount(10), staticCount(0), staticCount(0))

	w := httptest.NewRecorder()
	h.Liveness(w, httptest.NewRequest("GET", "/health/live", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != StatusHealthy {
		t.Errorf("status = %v, want %s", body["status"], StatusHealthy)
	}
}

func TestHealthChecker_Readiness_ReportsStoreSizes(t *testing.T) {
	h := NewHealthChecker(staticCount(10), staticCount(2), staticCount(5))

	w := httptest.NewRecorder()
	h.Readiness(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	var status HealthStatus
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if status.Stores["books"] != 10 || status.Stores["users"] != 2 || status.Stores["reviews"] != 5 {
		t.Errorf("stores = %v", status.Stores)
	}
}

func TestRegisterHealthRoutes(t *testing.T) {
	h := NewHealthChecker(staticCount(1), staticCount(1), staticCount(1))
	mux := http.NewServeMux()
	RegisterHealthRoutes(mux, h)

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, w.Code)
		}
	}
}
