package handlers

import (
	"net/http"

	"github.com/rawezhy/peywendi/internal/session"
)

type HealthHandler struct {
	sessions *session.Manager
}

func NewHealthHandler(sessions *session.Manager) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

// Health is the liveness probe: fixed payload, no session interaction.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Ready additionally checks that the session backend is reachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"ok":       false,
			"sessions": "unhealthy: " + err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":       true,
		"sessions": "ok",
	})
}
