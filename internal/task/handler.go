package task

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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.List())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.Service.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateTaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.Service.Create(dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, t)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateTaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	dto.ID = chi.URLParam(r, "id")

	t, err := h.Service.Update(dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(chi.URLParam(r, "id")); err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		StaffID string `json:"staffId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assignee, err := h.Service.AssignStaff(chi.URLParam(r, "id"), body.StaffID)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, assignee)
}

func (h *Handler) RecordProgress(w http.ResponseWriter, r *http.Request) {
	var dto ProgressReportDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	dto.TaskID = chi.URLParam(r, "id")

	report, err := h.Service.RecordProgress(dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, report)
}

func (h *Handler) ListProgress(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.ListProgress(chi.URLParam(r, "id")))
}

func (h *Handler) Unassign(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.UnassignStaff(chi.URLParam(r, "assigneeId")); err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) AddPredecessor(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PredecessorID string `json:"predecessorId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	link, err := h.Service.AddPredecessor(chi.URLParam(r, "id"), body.PredecessorID)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, link)
}

func (h *Handler) RecordEvaluation(w http.ResponseWriter, r *http.Request) {
	var dto EvaluationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	dto.TaskID = chi.URLParam(r, "id")

	eval, err := h.Service.RecordEvaluation(dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, eval)
}

func (h *Handler) ListEvaluations(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.ListEvaluations(chi.URLParam(r, "id")))
}

func (h *Handler) RecordStatusReport(w http.ResponseWriter, r *http.Request) {
	var dto StatusReportDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	dto.TaskID = chi.URLParam(r, "id")

	report, err := h.Service.RecordStatusReport(dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, report)
}

func (h *Handler) ListStatusReports(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.ListStatusReports(chi.URLParam(r, "id")))
}

func (h *Handler) RemoveProgress(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.RemoveProgress(chi.URLParam(r, "reportId")); err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) RemoveEvaluation(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.RemoveEvaluation(chi.URLParam(r, "evaluationId")); err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) RemoveStatusReport(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.RemoveStatusReport(chi.URLParam(r, "reportId")); err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
