package tenant

import (
	"encoding/json"
	"net/http"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/core/events"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/transport"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Manager *Manager
	bus     *events.EventBus
}

func NewHandler(m *Manager, bus *events.EventBus) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.LoggerWrapper()),
		Manager:     m,
		bus:         bus,
	}
}

// CurrentTag is public: clients show the active workspace before login.
func (h *Handler) CurrentTag(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, map[string]string{"tag": h.Manager.CurrentTag()})
}

type switchTagDTO struct {
	Tag string `json:"tag"`
}

// SwitchTag swaps the active workspace for the whole process; identity data
// and active sessions are unaffected.
func (h *Handler) SwitchTag(w http.ResponseWriter, r *http.Request) {
	var dto switchTagDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	previous := h.Manager.CurrentTag()
	if err := h.Manager.SwitchTag(dto.Tag); err != nil {
		h.WriteServiceError(w, err)
		return
	}

	if h.bus != nil {
		if err := h.bus.Publish(r.Context(), events.NewTagSwitched(previous, dto.Tag)); err != nil {
			h.Logger.Warn("audit event publish failed", "error", err)
		}
	}

	h.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) Backup(w http.ResponseWriter, r *http.Request) {
	path, err := h.Manager.Backup()
	if err != nil {
		h.Logger.Error("backup failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "backup failed")
		return
	}

	if h.bus != nil {
		if err := h.bus.Publish(r.Context(), events.NewBackupCreated(path, h.Manager.CurrentTag())); err != nil {
			h.Logger.Warn("audit event publish failed", "error", err)
		}
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"file": path})
}
