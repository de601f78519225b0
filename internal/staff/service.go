package staff

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

type CreateStaffDTO struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone,omitempty"`
	Role           *string `json:"role,omitempty"`
	OrganizationID string  `json:"organizationId"`
	DepartmentID   string  `json:"departmentId"`
	SupervisorID   *string `json:"supervisorId,omitempty"`
}

type UpdateStaffDTO struct {
	ID           string  `json:"id"`
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Role         *string `json:"role,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
	SupervisorID *string `json:"supervisorId,omitempty"`
}

func (s *Service) List() []datamodel.Staff {
	return s.db.Workspace().Staff
}

func (s *Service) Get(id string) (*datamodel.Staff, error) {
	ws := s.db.Workspace()
	for i := range ws.Staff {
		if ws.Staff[i].ID == id {
			return &ws.Staff[i], nil
		}
	}
	return nil, internal.NewRecordNotFoundError("staff member")
}

func (s *Service) Create(dto CreateStaffDTO) (*datamodel.Staff, error) {
	if dto.FirstName == "" || dto.LastName == "" {
		return nil, internal.NewValidationError("first and last name are required", internal.ErrCodeValidationFailed)
	}
	if dto.Email == "" {
		return nil, internal.NewValidationError("email is required", internal.ErrCodeValidationFailed)
	}
	if dto.OrganizationID == "" || dto.DepartmentID == "" {
		return nil, internal.NewValidationError("organizationId and departmentId are required", internal.ErrCodeValidationFailed)
	}

	ws := s.db.Workspace()
	for i := range ws.Staff {
		if ws.Staff[i].Email == dto.Email {
			return nil, internal.NewDuplicateNameError("staff member", dto.Email)
		}
	}

	member := datamodel.Staff{
		ID:             uuid.NewString(),
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		Email:          dto.Email,
		Phone:          dto.Phone,
		Role:           dto.Role,
		OrganizationID: dto.OrganizationID,
		DepartmentID:   dto.DepartmentID,
	}

	if dto.SupervisorID != nil {
		if err := validateSupervisor(ws, member.ID, *dto.SupervisorID); err != nil {
			return nil, err
		}
		member.SupervisorID = dto.SupervisorID
	}

	ws.Staff = append(ws.Staff, member)
	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist staff member", err)
	}

	s.logger.Info("staff member created", "staff_id", member.ID)
	return &member, nil
}

func (s *Service) Update(dto UpdateStaffDTO) (*datamodel.Staff, error) {
	member, err := s.Get(dto.ID)
	if err != nil {
		return nil, err
	}

	if dto.SupervisorID != nil {
		// Guard runs before the edge is applied, over the old graph.
		if err := validateSupervisor(s.db.Workspace(), member.ID, *dto.SupervisorID); err != nil {
			return nil, err
		}
		member.SupervisorID = dto.SupervisorID
	}
	if dto.FirstName != nil {
		member.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		member.LastName = *dto.LastName
	}
	if dto.Phone != nil {
		member.Phone = dto.Phone
	}
	if dto.Role != nil {
		member.Role = dto.Role
	}
	if dto.DepartmentID != nil {
		member.DepartmentID = *dto.DepartmentID
	}

	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist staff member", err)
	}
	return member, nil
}

// Delete refuses while the member still supervises others, belongs to a
// team or is assigned to a task.
func (s *Service) Delete(id string) error {
	ws := s.db.Workspace()

	for i := range ws.Staff {
		if ws.Staff[i].SupervisorID != nil && *ws.Staff[i].SupervisorID == id {
			return internal.NewDependentRecordsError("staff member", "supervisees")
		}
	}
	for i := range ws.TeamMembers {
		if ws.TeamMembers[i].StaffID == id {
			return internal.NewDependentRecordsError("staff member", "team memberships")
		}
	}
	for i := range ws.TaskAssignees {
		if ws.TaskAssignees[i].StaffID == id {
			return internal.NewDependentRecordsError("staff member", "task assignments")
		}
	}

	for i := range ws.Staff {
		if ws.Staff[i].ID == id {
			ws.Staff = append(ws.Staff[:i], ws.Staff[i+1:]...)
			if err := s.db.WriteWorkspace(); err != nil {
				return internal.NewInternalError("failed to persist staff delete", err)
			}
			return nil
		}
	}
	return internal.NewRecordNotFoundError("staff member")
}
