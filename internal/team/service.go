package team

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

type CreateTeamDTO struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	LeadID      *string `json:"leadId,omitempty"`
}

type UpdateTeamDTO struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	LeadID      *string `json:"leadId,omitempty"`
}

type AddMemberDTO struct {
	TeamID     string  `json:"teamId"`
	StaffID    string  `json:"staffId"`
	MemberRole *string `json:"memberRole,omitempty"`
}

func (s *Service) List() []datamodel.Team {
	return s.db.Workspace().Teams
}

func (s *Service) Get(id string) (*datamodel.Team, error) {
	ws := s.db.Workspace()
	for i := range ws.Teams {
		if ws.Teams[i].ID == id {
			return &ws.Teams[i], nil
		}
	}
	return nil, internal.NewRecordNotFoundError("team")
}

func (s *Service) Create(dto CreateTeamDTO) (*datamodel.Team, error) {
	if dto.Name == "" {
		return nil, internal.NewValidationError("team name is required", internal.ErrCodeValidationFailed)
	}

	ws := s.db.Workspace()
	for i := range ws.Teams {
		if ws.Teams[i].Name == dto.Name {
			return nil, internal.NewDuplicateNameError("team", dto.Name)
		}
	}

	team := datamodel.Team{
		ID:          uuid.NewString(),
		Name:        dto.Name,
		Description: dto.Description,
		LeadID:      dto.LeadID,
	}
	ws.Teams = append(ws.Teams, team)
	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist team", err)
	}

	s.logger.Info("team created", "team_id", team.ID)
	return &team, nil
}

func (s *Service) Update(dto UpdateTeamDTO) (*datamodel.Team, error) {
	team, err := s.Get(dto.ID)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil && *dto.Name != team.Name {
		ws := s.db.Workspace()
		for i := range ws.Teams {
			if ws.Teams[i].ID != team.ID && ws.Teams[i].Name == *dto.Name {
				return nil, internal.NewDuplicateNameError("team", *dto.Name)
			}
		}
		team.Name = *dto.Name
	}
	if dto.Description != nil {
		team.Description = dto.Description
	}
	if dto.LeadID != nil {
		team.LeadID = dto.LeadID
	}

	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist team", err)
	}
	return team, nil
}

// Delete refuses while members remain on the team.
func (s *Service) Delete(id string) error {
	ws := s.db.Workspace()

	for i := range ws.TeamMembers {
		if ws.TeamMembers[i].TeamID == id {
			return internal.NewDependentRecordsError("team", "team members")
		}
	}

	for i := range ws.Teams {
		if ws.Teams[i].ID == id {
			ws.Teams = append(ws.Teams[:i], ws.Teams[i+1:]...)
			if err := s.db.WriteWorkspace(); err != nil {
				return internal.NewInternalError("failed to persist team delete", err)
			}
			return nil
		}
	}
	return internal.NewRecordNotFoundError("team")
}

func (s *Service) Members(teamID string) []datamodel.TeamMember {
	ws := s.db.Workspace()
	var out []datamodel.TeamMember
	for i := range ws.TeamMembers {
		if ws.TeamMembers[i].TeamID == teamID {
			out = append(out, ws.TeamMembers[i])
		}
	}
	return out
}

func (s *Service) AddMember(dto AddMemberDTO) (*datamodel.TeamMember, error) {
	if _, err := s.Get(dto.TeamID); err != nil {
		return nil, err
	}

	ws := s.db.Workspace()
	for i := range ws.TeamMembers {
		if ws.TeamMembers[i].TeamID == dto.TeamID && ws.TeamMembers[i].StaffID == dto.StaffID {
			return nil, internal.NewConflictError("staff member already on team", internal.ErrCodeDuplicateName)
		}
	}

	member := datamodel.TeamMember{
		ID:         uuid.NewString(),
		TeamID:     dto.TeamID,
		StaffID:    dto.StaffID,
		MemberRole: dto.MemberRole,
	}
	ws.TeamMembers = append(ws.TeamMembers, member)
	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist team member", err)
	}
	return &member, nil
}

func (s *Service) RemoveMember(id string) error {
	ws := s.db.Workspace()
	for i := range ws.TeamMembers {
		if ws.TeamMembers[i].ID == id {
			ws.TeamMembers = append(ws.TeamMembers[:i], ws.TeamMembers[i+1:]...)
			if err := s.db.WriteWorkspace(); err != nil {
				return internal.NewInternalError("failed to persist team member delete", err)
			}
			return nil
		}
	}
	return internal.NewRecordNotFoundError("team member")
}
