package project

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/core/datamodel"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/tenant"
)

type Service struct {
	db     *tenant.Database
	logger *slog.Logger
}

func NewService(db *tenant.Database, logger *slog.Logger) *Service {
	return &Service{db: db, logger: logger}
}

type CreateProjectDTO struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	LeadStaffID *string `json:"leadStaffId,omitempty"`
	StartDate   *string `json:"plannedStartDate,omitempty"`
	EndDate     *string `json:"plannedEndDate,omitempty"`
}

type UpdateProjectDTO struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	LeadStaffID *string `json:"leadStaffId,omitempty"`
	StartDate   *string `json:"plannedStartDate,omitempty"`
	EndDate     *string `json:"plannedEndDate,omitempty"`
}

func (s *Service) List() []datamodel.Project {
	return s.db.Workspace().Projects
}

func (s *Service) Get(id string) (*datamodel.Project, error) {
	ws := s.db.Workspace()
	for i := range ws.Projects {
		if ws.Projects[i].ID == id {
			return &ws.Projects[i], nil
		}
	}
	return nil, internal.NewRecordNotFoundError("project")
}

func (s *Service) Create(dto CreateProjectDTO) (*datamodel.Project, error) {
	if dto.Name == "" {
		return nil, internal.NewValidationError("project name is required", internal.ErrCodeValidationFailed)
	}

	ws := s.db.Workspace()
	for i := range ws.Projects {
		if ws.Projects[i].Name == dto.Name {
			return nil, internal.NewDuplicateNameError("project", dto.Name)
		}
	}

	proj := datamodel.Project{
		ID:          uuid.NewString(),
		Name:        dto.Name,
		Description: dto.Description,
		LeadStaffID: dto.LeadStaffID,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
	}
	ws.Projects = append(ws.Projects, proj)
	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist project", err)
	}

	s.logger.Info("project created", "project_id", proj.ID)
	return &proj, nil
}

func (s *Service) Update(dto UpdateProjectDTO) (*datamodel.Project, error) {
	proj, err := s.Get(dto.ID)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil && *dto.Name != proj.Name {
		ws := s.db.Workspace()
		for i := range ws.Projects {
			if ws.Projects[i].ID != proj.ID && ws.Projects[i].Name == *dto.Name {
				return nil, internal.NewDuplicateNameError("project", *dto.Name)
			}
		}
		proj.Name = *dto.Name
	}
	if dto.Description != nil {
		proj.Description = dto.Description
	}
	if dto.LeadStaffID != nil {
		proj.LeadStaffID = dto.LeadStaffID
	}
	if dto.StartDate != nil {
		proj.StartDate = dto.StartDate
	}
	if dto.EndDate != nil {
		proj.EndDate = dto.EndDate
	}

	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist project", err)
	}
	return proj, nil
}

// Delete refuses while tasks still belong to the project.
func (s *Service) Delete(id string) error {
	ws := s.db.Workspace()

	for i := range ws.Tasks {
		if ws.Tasks[i].ProjectID == id {
			return internal.NewDependentRecordsError("project", "tasks")
		}
	}

	for i := range ws.Projects {
		if ws.Projects[i].ID == id {
			ws.Projects = append(ws.Projects[:i], ws.Projects[i+1:]...)
			if err := s.db.WriteWorkspace(); err != nil {
				return internal.NewInternalError("failed to persist project delete", err)
			}
			return nil
		}
	}
	return internal.NewRecordNotFoundError("project")
}
