package tenant

import (
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/core/datamodel"
)

// AuthData is the identity store document. It is tag independent: one file
// for the whole process lifetime, untouched by workspace switches.
type AuthData struct {
	Users    []datamodel.User    `json:"users"`
	Sessions []datamodel.Session `json:"sessions"`
}

func NewAuthData() *AuthData {
	return &AuthData{
		Users:    []datamodel.User{},
		Sessions: []datamodel.Session{},
	}
}

// WorkspaceData is the workspace store document, one independent file per
// tag. Switching tags discards the in-memory copy and loads another file;
// nothing here survives a switch except on disk.
type WorkspaceData struct {
	Organizations        []datamodel.Organization        `json:"organizations"`
	Departments          []datamodel.Department          `json:"departments"`
	Staff                []datamodel.Staff               `json:"staff"`
	Teams                []datamodel.Team                `json:"teams"`
	TeamMembers          []datamodel.TeamMember          `json:"teamMembers"`
	Projects             []datamodel.Project             `json:"projects"`
	Tasks                []datamodel.Task                `json:"tasks"`
	Statuses             []datamodel.Status              `json:"statuses"`
	Priorities           []datamodel.Priority            `json:"priorities"`
	Complexities         []datamodel.Complexity          `json:"complexities"`
	TaskAssignees        []datamodel.TaskAssignee        `json:"taskAssignees"`
	TaskPredecessors     []datamodel.TaskPredecessor     `json:"taskPredecessors"`
	TaskProgress         []datamodel.TaskProgress        `json:"taskProgress"`
	TaskEvaluations      []datamodel.TaskEvaluation      `json:"taskEvaluations"`
	TaskStatusReports    []datamodel.TaskStatusReport    `json:"taskStatusReports"`
	ProjectStatusReports []datamodel.ProjectStatusReport `json:"projectStatusReports"`
}

func NewWorkspaceData() *WorkspaceData {
	return &WorkspaceData{
		Organizations:        []datamodel.Organization{},
		Departments:          []datamodel.Department{},
		Staff:                []datamodel.Staff{},
		Teams:                []datamodel.Team{},
		TeamMembers:          []datamodel.TeamMember{},
		Projects:             []datamodel.Project{},
		Tasks:                []datamodel.Task{},
		Statuses:             []datamodel.Status{},
		Priorities:           []datamodel.Priority{},
		Complexities:         []datamodel.Complexity{},
		TaskAssignees:        []datamodel.TaskAssignee{},
		TaskPredecessors:     []datamodel.TaskPredecessor{},
		TaskProgress:         []datamodel.TaskProgress{},
		TaskEvaluations:      []datamodel.TaskEvaluation{},
		TaskStatusReports:    []datamodel.TaskStatusReport{},
		ProjectStatusReports: []datamodel.ProjectStatusReport{},
	}
}
