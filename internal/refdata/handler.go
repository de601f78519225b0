package refdata

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/transport"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.LoggerWrapper()),
		Service:     svc,
	}
}

type nameDTO struct {
	Name string `json:"name"`
}

func (h *Handler) decodeName(w http.ResponseWriter, r *http.Request) (string, bool) {
	var dto nameDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return "", false
	}
	return dto.Name, true
}

func (h *Handler) ListStatuses(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.ListStatuses())
}

func (h *Handler) CreateStatus(w http.ResponseWriter, r *http.Request) {
	name, ok := h.decodeName(w, r)
	if !ok {
		return
	}
	status, err := h.Service.CreateStatus(name)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, status)
}

func (h *Handler) DeleteStatus(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteStatus(chi.URLParam(r, "id")); err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) ListPriorities(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.ListPriorities())
}

func (h *Handler) CreatePriority(w http.ResponseWriter, r *http.Request) {
	name, ok := h.decodeName(w, r)
	if !ok {
		return
	}
	priority, err := h.Service.CreatePriority(name)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, priority)
}

func (h *Handler) DeletePriority(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeletePriority(chi.URLParam(r, "id")); err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) ListComplexities(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.ListComplexities())
}

func (h *Handler) CreateComplexity(w http.ResponseWriter, r *http.Request) {
	name, ok := h.decodeName(w, r)
	if !ok {
		return
	}
	complexity, err := h.Service.CreateComplexity(name)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, complexity)
}

func (h *Handler) DeleteComplexity(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteComplexity(chi.URLParam(r, "id")); err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
