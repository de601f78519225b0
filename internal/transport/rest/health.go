package rest

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// HealthHandler reports liveness and whether the data directory is
// writable, which is the only external resource this service has.
type HealthHandler struct {
	dataDir string
}

func NewHealthHandler(dataDir string) *HealthHandler {
	return &HealthHandler{dataDir: dataDir}
}

func (h *HealthHandler) pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (h *HealthHandler) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK

	probe := filepath.Join(h.dataDir, ".healthcheck")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		status = "data directory not writable"
		code = http.StatusServiceUnavailable
	} else {
		os.Remove(probe)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
