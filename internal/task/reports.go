package task

import (
	"github.com/google/uuid"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/core/datamodel"
)

// Progress, evaluation and status reports live in the workspace alongside
// tasks; only recording and listing is offered here.

type ProgressReportDTO struct {
	TaskID     string  `json:"taskId"`
	ReportDate string  `json:"reportDate"`
	Percent    int     `json:"progressPercent"`
	Notes      *string `json:"notes,omitempty"`
	CreatorID  *string `json:"creatorId,omitempty"`
}

type EvaluationDTO struct {
	TaskID          string  `json:"taskId"`
	EvaluatorID     string  `json:"evaluatorId"`
	EvaluationDate  string  `json:"evaluationDate"`
	EvaluationNotes *string `json:"evaluationNotes,omitempty"`
	Result          *string `json:"result,omitempty"`
}

func (s *Service) RecordProgress(dto ProgressReportDTO) (*datamodel.TaskProgress, error) {
	if dto.Percent < 0 || dto.Percent > 100 {
		return nil, internal.NewValidationError("progressPercent must be between 0 and 100", internal.ErrCodeValidationFailed)
	}
	if _, err := s.Get(dto.TaskID); err != nil {
		return nil, err
	}

	ws := s.db.Workspace()
	report := datamodel.TaskProgress{
		ID:         uuid.NewString(),
		TaskID:     dto.TaskID,
		ReportDate: dto.ReportDate,
		Percent:    dto.Percent,
		Notes:      dto.Notes,
		CreatorID:  dto.CreatorID,
	}
	ws.TaskProgress = append(ws.TaskProgress, report)
	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist progress report", err)
	}
	return &report, nil
}

func (s *Service) ListProgress(taskID string) []datamodel.TaskProgress {
	ws := s.db.Workspace()
	var out []datamodel.TaskProgress
	for i := range ws.TaskProgress {
		if ws.TaskProgress[i].TaskID == taskID {
			out = append(out, ws.TaskProgress[i])
		}
	}
	return out
}

func (s *Service) RecordEvaluation(dto EvaluationDTO) (*datamodel.TaskEvaluation, error) {
	if dto.EvaluatorID == "" {
		return nil, internal.NewValidationError("evaluatorId is required", internal.ErrCodeValidationFailed)
	}
	if _, err := s.Get(dto.TaskID); err != nil {
		return nil, err
	}

	ws := s.db.Workspace()
	eval := datamodel.TaskEvaluation{
		ID:              uuid.NewString(),
		TaskID:          dto.TaskID,
		EvaluatorID:     dto.EvaluatorID,
		EvaluationDate:  dto.EvaluationDate,
		EvaluationNotes: dto.EvaluationNotes,
		Result:          dto.Result,
	}
	ws.TaskEvaluations = append(ws.TaskEvaluations, eval)
	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist evaluation", err)
	}
	return &eval, nil
}

func (s *Service) ListEvaluations(taskID string) []datamodel.TaskEvaluation {
	ws := s.db.Workspace()
	var out []datamodel.TaskEvaluation
	for i := range ws.TaskEvaluations {
		if ws.TaskEvaluations[i].TaskID == taskID {
			out = append(out, ws.TaskEvaluations[i])
		}
	}
	return out
}

type StatusReportDTO struct {
	TaskID     string  `json:"taskId"`
	ReportDate string  `json:"reportDate"`
	Summary    *string `json:"statusSummary,omitempty"`
	CreatorID  *string `json:"creatorId,omitempty"`
}

func (s *Service) RecordStatusReport(dto StatusReportDTO) (*datamodel.TaskStatusReport, error) {
	if dto.ReportDate == "" {
		return nil, internal.NewValidationError("reportDate is required", internal.ErrCodeValidationFailed)
	}
	if _, err := s.Get(dto.TaskID); err != nil {
		return nil, err
	}

	ws := s.db.Workspace()
	report := datamodel.TaskStatusReport{
		ID:         uuid.NewString(),
		TaskID:     dto.TaskID,
		ReportDate: dto.ReportDate,
		Summary:    dto.Summary,
		CreatorID:  dto.CreatorID,
	}
	ws.TaskStatusReports = append(ws.TaskStatusReports, report)
	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist status report", err)
	}
	return &report, nil
}

func (s *Service) ListStatusReports(taskID string) []datamodel.TaskStatusReport {
	ws := s.db.Workspace()
	var out []datamodel.TaskStatusReport
	for i := range ws.TaskStatusReports {
		if ws.TaskStatusReports[i].TaskID == taskID {
			out = append(out, ws.TaskStatusReports[i])
		}
	}
	return out
}

func (s *Service) RemoveProgress(reportID string) error {
	ws := s.db.Workspace()
	for i := range ws.TaskProgress {
		if ws.TaskProgress[i].ID == reportID {
			ws.TaskProgress = append(ws.TaskProgress[:i], ws.TaskProgress[i+1:]...)
			if err := s.db.WriteWorkspace(); err != nil {
				return internal.NewInternalError("failed to persist progress delete", err)
			}
			return nil
		}
	}
	return internal.NewRecordNotFoundError("progress report")
}

func (s *Service) RemoveEvaluation(evaluationID string) error {
	ws := s.db.Workspace()
	for i := range ws.TaskEvaluations {
		if ws.TaskEvaluations[i].ID == evaluationID {
			ws.TaskEvaluations = append(ws.TaskEvaluations[:i], ws.TaskEvaluations[i+1:]...)
			if err := s.db.WriteWorkspace(); err != nil {
				return internal.NewInternalError("failed to persist evaluation delete", err)
			}
			return nil
		}
	}
	return internal.NewRecordNotFoundError("evaluation")
}

func (s *Service) RemoveStatusReport(reportID string) error {
	ws := s.db.Workspace()
	for i := range ws.TaskStatusReports {
		if ws.TaskStatusReports[i].ID == reportID {
			ws.TaskStatusReports = append(ws.TaskStatusReports[:i], ws.TaskStatusReports[i+1:]...)
			if err := s.db.WriteWorkspace(); err != nil {
				return internal.NewInternalError("failed to persist status report delete", err)
			}
			return nil
		}
	}
	return internal.NewRecordNotFoundError("status report")
}
