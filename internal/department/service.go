package department

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

type CreateDepartmentDTO struct {
	Name               string  `json:"name"`
	Description        *string `json:"description,omitempty"`
	OrganizationID     string  `json:"organizationId"`
	ParentDepartmentID *string `json:"parentDepartmentId,omitempty"`
}

type UpdateDepartmentDTO struct {
	ID                 string  `json:"id"`
	Name               *string `json:"name,omitempty"`
	Description        *string `json:"description,omitempty"`
	ParentDepartmentID *string `json:"parentDepartmentId,omitempty"`
	ManagerID          *string `json:"managerId,omitempty"`
}

func (s *Service) List() []datamodel.Department {
	return s.db.Workspace().Departments
}

func (s *Service) Get(id string) (*datamodel.Department, error) {
	ws := s.db.Workspace()
	for i := range ws.Departments {
		if ws.Departments[i].ID == id {
			return &ws.Departments[i], nil
		}
	}
	return nil, internal.NewRecordNotFoundError("department")
}

func (s *Service) Create(dto CreateDepartmentDTO) (*datamodel.Department, error) {
	if dto.Name == "" {
		return nil, internal.NewValidationError("department name is required", internal.ErrCodeValidationFailed)
	}
	if dto.OrganizationID == "" {
		return nil, internal.NewValidationError("organizationId is required", internal.ErrCodeValidationFailed)
	}

	ws := s.db.Workspace()
	for i := range ws.Departments {
		if ws.Departments[i].OrganizationID == dto.OrganizationID && ws.Departments[i].Name == dto.Name {
			return nil, internal.NewDuplicateNameError("department", dto.Name)
		}
	}

	dept := datamodel.Department{
		ID:             uuid.NewString(),
		Name:           dto.Name,
		Description:    dto.Description,
		OrganizationID: dto.OrganizationID,
	}

	if dto.ParentDepartmentID != nil {
		if err := validateParent(ws, &dept, *dto.ParentDepartmentID); err != nil {
			return nil, err
		}
		dept.ParentDepartmentID = dto.ParentDepartmentID
	}

	ws.Departments = append(ws.Departments, dept)
	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist department", err)
	}

	s.logger.Info("department created", "department_id", dept.ID, "organization_id", dept.OrganizationID)
	return &dept, nil
}

func (s *Service) Update(dto UpdateDepartmentDTO) (*datamodel.Department, error) {
	dept, err := s.Get(dto.ID)
	if err != nil {
		return nil, err
	}
	ws := s.db.Workspace()

	// All checks run before any field is touched: dept points into the
	// shared document, so a rejected update must not leave a partial
	// mutation behind for the next write to persist.
	if dto.ParentDepartmentID != nil {
		// Guard runs against the committed graph, before the new edge is
		// applied.
		if err := validateParent(ws, dept, *dto.ParentDepartmentID); err != nil {
			return nil, err
		}
	}
	if dto.Name != nil && *dto.Name != dept.Name {
		for i := range ws.Departments {
			if ws.Departments[i].ID != dept.ID &&
				ws.Departments[i].OrganizationID == dept.OrganizationID &&
				ws.Departments[i].Name == *dto.Name {
				return nil, internal.NewDuplicateNameError("department", *dto.Name)
			}
		}
	}

	if dto.Name != nil {
		dept.Name = *dto.Name
	}
	if dto.Description != nil {
		dept.Description = dto.Description
	}
	if dto.ManagerID != nil {
		dept.ManagerID = dto.ManagerID
	}
	if dto.ParentDepartmentID != nil {
		dept.ParentDepartmentID = dto.ParentDepartmentID
	}

	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist department", err)
	}
	return dept, nil
}

// Delete refuses while staff, teams led out of it, or child departments
// still reference the department.
func (s *Service) Delete(id string) error {
	ws := s.db.Workspace()

	for i := range ws.Staff {
		if ws.Staff[i].DepartmentID == id {
			return internal.NewDependentRecordsError("department", "staff members")
		}
	}
	for i := range ws.Departments {
		if ws.Departments[i].ParentDepartmentID != nil && *ws.Departments[i].ParentDepartmentID == id {
			return internal.NewDependentRecordsError("department", "child departments")
		}
	}

	for i := range ws.Departments {
		if ws.Departments[i].ID == id {
			ws.Departments = append(ws.Departments[:i], ws.Departments[i+1:]...)
			if err := s.db.WriteWorkspace(); err != nil {
				return internal.NewInternalError("failed to persist department delete", err)
			}
			return nil
		}
	}
	return internal.NewRecordNotFoundError("department")
}
