package project

import (
	"github.com/google/uuid"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/core/datamodel"
)

type StatusReportDTO struct {
	ProjectID  string  `json:"projectId"`
	ReportDate string  `json:"reportDate"`
	Summary    *string `json:"statusSummary,omitempty"`
	CreatorID  *string `json:"creatorId,omitempty"`
}

func (s *Service) RecordStatusReport(dto StatusReportDTO) (*datamodel.ProjectStatusReport, error) {
	if dto.ReportDate == "" {
		return nil, internal.NewValidationError("reportDate is required", internal.ErrCodeValidationFailed)
	}
	if _, err := s.Get(dto.ProjectID); err != nil {
		return nil, err
	}

	ws := s.db.Workspace()
	report := datamodel.ProjectStatusReport{
		ID:         uuid.NewString(),
		ProjectID:  dto.ProjectID,
		ReportDate: dto.ReportDate,
		Summary:    dto.Summary,
		CreatorID:  dto.CreatorID,
	}
	ws.ProjectStatusReports = append(ws.ProjectStatusReports, report)
	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist status report", err)
	}
	return &report, nil
}

func (s *Service) ListStatusReports(projectID string) []datamodel.ProjectStatusReport {
	ws := s.db.Workspace()
	var out []datamodel.ProjectStatusReport
	for i := range ws.ProjectStatusReports {
		if ws.ProjectStatusReports[i].ProjectID == projectID {
			out = append(out, ws.ProjectStatusReports[i])
		}
	}
	return out
}

func (s *Service) RemoveStatusReport(reportID string) error {
	ws := s.db.Workspace()
	for i := range ws.ProjectStatusReports {
		if ws.ProjectStatusReports[i].ID == reportID {
			ws.ProjectStatusReports = append(ws.ProjectStatusReports[:i], ws.ProjectStatusReports[i+1:]...)
			if err := s.db.WriteWorkspace(); err != nil {
				return internal.NewInternalError("failed to persist status report delete", err)
			}
			return nil
		}
	}
	return internal.NewRecordNotFoundError("status report")
}
