package organization

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

type CreateOrganizationDTO struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type UpdateOrganizationDTO struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	RootStaffID *string `json:"rootStaffId,omitempty"`
}

func (s *Service) List() []datamodel.Organization {
	return s.db.Workspace().Organizations
}

func (s *Service) Get(id string) (*datamodel.Organization, error) {
	ws := s.db.Workspace()
	for i := range ws.Organizations {
		if ws.Organizations[i].ID == id {
			return &ws.Organizations[i], nil
		}
	}
	return nil, internal.NewRecordNotFoundError("organization")
}

func (s *Service) Create(dto CreateOrganizationDTO) (*datamodel.Organization, error) {
	if dto.Name == "" {
		return nil, internal.NewValidationError("organization name is required", internal.ErrCodeValidationFailed)
	}

	ws := s.db.Workspace()
	for i := range ws.Organizations {
		if ws.Organizations[i].Name == dto.Name {
			return nil, internal.NewDuplicateNameError("organization", dto.Name)
		}
	}

	org := datamodel.Organization{
		ID:          uuid.NewString(),
		Name:        dto.Name,
		Description: dto.Description,
	}
	ws.Organizations = append(ws.Organizations, org)
	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist organization", err)
	}

	s.logger.Info("organization created", "organization_id", org.ID)
	return &org, nil
}

func (s *Service) Update(dto UpdateOrganizationDTO) (*datamodel.Organization, error) {
	org, err := s.Get(dto.ID)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil && *dto.Name != org.Name {
		ws := s.db.Workspace()
		for i := range ws.Organizations {
			if ws.Organizations[i].ID != org.ID && ws.Organizations[i].Name == *dto.Name {
				return nil, internal.NewDuplicateNameError("organization", *dto.Name)
			}
		}
		org.Name = *dto.Name
	}
	if dto.Description != nil {
		org.Description = dto.Description
	}
	if dto.RootStaffID != nil {
		org.RootStaffID = dto.RootStaffID
	}

	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist organization", err)
	}
	return org, nil
}

// Delete refuses while departments or staff still belong to the
// organization.
func (s *Service) Delete(id string) error {
	ws := s.db.Workspace()

	for i := range ws.Departments {
		if ws.Departments[i].OrganizationID == id {
			return internal.NewDependentRecordsError("organization", "departments")
		}
	}
	for i := range ws.Staff {
		if ws.Staff[i].OrganizationID == id {
			return internal.NewDependentRecordsError("organization", "staff members")
		}
	}

	for i := range ws.Organizations {
		if ws.Organizations[i].ID == id {
			ws.Organizations = append(ws.Organizations[:i], ws.Organizations[i+1:]...)
			if err := s.db.WriteWorkspace(); err != nil {
				return internal.NewInternalError("failed to persist organization delete", err)
			}
			return nil
		}
	}
	return internal.NewRecordNotFoundError("organization")
}
