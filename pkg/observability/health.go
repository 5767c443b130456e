package observability

import (
	"encoding/json"
	"net/http"
	"time"
)

// Counter reports the size of one of the in-memory stores.
type Counter interface {
	Count() int
}

// HealthChecker provides health check functionality over the in-memory
// stores. With no external dependencies the service is healthy whenever it
// is up; the probes additionally report store sizes for operators.
type HealthChecker struct {
	books   Counter
	users   Counter
	reviews Counter
	started time.Time
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(books, users, reviews Counter) *HealthChecker {
	return &HealthChecker{
		books:   books,
		users:   users,
		reviews: reviews,
		started: time.Now(),
	}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status        string         `json:"status"`
	Timestamp     time.Time      `json:"timestamp"`
	UptimeSeconds int64          `json:"uptime_seconds"`
	Stores        map[string]int `json:"stores,omitempty"`
}

const StatusHealthy = "healthy"

// Liveness returns a simple liveness probe (always 200 if the server is running)
func (h *HealthChecker) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    StatusHealthy,
		"timestamp": time.Now(),
	})
}

// Readiness reports readiness along with the current store sizes
func (h *HealthChecker) Readiness(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:        StatusHealthy,
		Timestamp:     time.Now(),
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
		Stores: map[string]int{
			"books":   h.books.Count(),
			"users":   h.users.Count(),
			"reviews": h.reviews.Count(),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(status)
}

// RegisterHealthRoutes registers health check endpoints
func RegisterHealthRoutes(mux *http.ServeMux, checker *HealthChecker) {
	mux.HandleFunc("/health", checker.Readiness)
	mux.HandleFunc("/health/live", checker.Liveness)
	mux.HandleFunc("/health/ready", checker.Readiness)
}
