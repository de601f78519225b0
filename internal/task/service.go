package task

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

type CreateTaskDTO struct {
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	ProjectID    string  `json:"projectId"`
	ParentTaskID *string `json:"parentTaskId,omitempty"`
	StatusID     *string `json:"statusId,omitempty"`
	PriorityID   *string `json:"priorityId,omitempty"`
	ComplexityID *string `json:"complexityId,omitempty"`
	StartDate    *string `json:"plannedStartDate,omitempty"`
	EndDate      *string `json:"plannedEndDate,omitempty"`
}

type UpdateTaskDTO struct {
	ID           string  `json:"id"`
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	StatusID     *string `json:"statusId,omitempty"`
	PriorityID   *string `json:"priorityId,omitempty"`
	ComplexityID *string `json:"complexityId,omitempty"`
	EvaluatorID  *string `json:"evaluatorId,omitempty"`
	StartDate    *string `json:"plannedStartDate,omitempty"`
	EndDate      *string `json:"plannedEndDate,omitempty"`
}

func (s *Service) List() []datamodel.Task {
	return s.db.Workspace().Tasks
}

func (s *Service) Get(id string) (*datamodel.Task, error) {
	ws := s.db.Workspace()
	for i := range ws.Tasks {
		if ws.Tasks[i].ID == id {
			return &ws.Tasks[i], nil
		}
	}
	return nil, internal.NewRecordNotFoundError("task")
}

func (s *Service) Create(dto CreateTaskDTO) (*datamodel.Task, error) {
	if dto.Name == "" {
		return nil, internal.NewValidationError("task name is required", internal.ErrCodeValidationFailed)
	}
	if dto.ProjectID == "" {
		return nil, internal.NewValidationError("projectId is required", internal.ErrCodeValidationFailed)
	}

	ws := s.db.Workspace()
	for i := range ws.Tasks {
		if ws.Tasks[i].ProjectID == dto.ProjectID && ws.Tasks[i].Name == dto.Name {
			return nil, internal.NewDuplicateNameError("task", dto.Name)
		}
	}

	t := datamodel.Task{
		ID:           uuid.NewString(),
		Name:         dto.Name,
		Description:  dto.Description,
		ProjectID:    dto.ProjectID,
		ParentTaskID: dto.ParentTaskID,
		StatusID:     dto.StatusID,
		PriorityID:   dto.PriorityID,
		ComplexityID: dto.ComplexityID,
		StartDate:    dto.StartDate,
		EndDate:      dto.EndDate,
	}
	ws.Tasks = append(ws.Tasks, t)
	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist task", err)
	}

	s.logger.Info("task created", "task_id", t.ID, "project_id", t.ProjectID)
	return &t, nil
}

func (s *Service) Update(dto UpdateTaskDTO) (*datamodel.Task, error) {
	t, err := s.Get(dto.ID)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil && *dto.Name != t.Name {
		ws := s.db.Workspace()
		for i := range ws.Tasks {
			if ws.Tasks[i].ID != t.ID && ws.Tasks[i].ProjectID == t.ProjectID && ws.Tasks[i].Name == *dto.Name {
				return nil, internal.NewDuplicateNameError("task", *dto.Name)
			}
		}
		t.Name = *dto.Name
	}
	if dto.Description != nil {
		t.Description = dto.Description
	}
	if dto.StatusID != nil {
		t.StatusID = dto.StatusID
	}
	if dto.PriorityID != nil {
		t.PriorityID = dto.PriorityID
	}
	if dto.ComplexityID != nil {
		t.ComplexityID = dto.ComplexityID
	}
	if dto.EvaluatorID != nil {
		t.EvaluatorID = dto.EvaluatorID
	}
	if dto.StartDate != nil {
		t.StartDate = dto.StartDate
	}
	if dto.EndDate != nil {
		t.EndDate = dto.EndDate
	}

	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist task", err)
	}
	return t, nil
}

// Delete refuses while child tasks, predecessor links or reports still
// reference the task.
func (s *Service) Delete(id string) error {
	ws := s.db.Workspace()

	for i := range ws.Tasks {
		if ws.Tasks[i].ParentTaskID != nil && *ws.Tasks[i].ParentTaskID == id {
			return internal.NewDependentRecordsError("task", "child tasks")
		}
	}
	for i := range ws.TaskPredecessors {
		if ws.TaskPredecessors[i].TaskID == id || ws.TaskPredecessors[i].PredecessorID == id {
			return internal.NewDependentRecordsError("task", "predecessor links")
		}
	}
	for i := range ws.TaskProgress {
		if ws.TaskProgress[i].TaskID == id {
			return internal.NewDependentRecordsError("task", "progress reports")
		}
	}
	for i := range ws.TaskEvaluations {
		if ws.TaskEvaluations[i].TaskID == id {
			return internal.NewDependentRecordsError("task", "evaluations")
		}
	}

	for i := range ws.Tasks {
		if ws.Tasks[i].ID == id {
			ws.Tasks = append(ws.Tasks[:i], ws.Tasks[i+1:]...)
			if err := s.db.WriteWorkspace(); err != nil {
				return internal.NewInternalError("failed to persist task delete", err)
			}
			return nil
		}
	}
	return internal.NewRecordNotFoundError("task")
}

func (s *Service) AssignStaff(taskID, staffID string) (*datamodel.TaskAssignee, error) {
	if _, err := s.Get(taskID); err != nil {
		return nil, err
	}

	ws := s.db.Workspace()
	for i := range ws.TaskAssignees {
		if ws.TaskAssignees[i].TaskID == taskID && ws.TaskAssignees[i].StaffID == staffID {
			return nil, internal.NewConflictError("staff member already assigned", internal.ErrCodeDuplicateName)
		}
	}

	assignee := datamodel.TaskAssignee{
		ID:      uuid.NewString(),
		TaskID:  taskID,
		StaffID: staffID,
	}
	ws.TaskAssignees = append(ws.TaskAssignees, assignee)
	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist task assignee", err)
	}
	return &assignee, nil
}

func (s *Service) UnassignStaff(assigneeID string) error {
	ws := s.db.Workspace()
	for i := range ws.TaskAssignees {
		if ws.TaskAssignees[i].ID == assigneeID {
			ws.TaskAssignees = append(ws.TaskAssignees[:i], ws.TaskAssignees[i+1:]...)
			if err := s.db.WriteWorkspace(); err != nil {
				return internal.NewInternalError("failed to persist task assignee delete", err)
			}
			return nil
		}
	}
	return internal.NewRecordNotFoundError("task assignee")
}

// AddPredecessor links a dependency between two tasks of the workspace.
func (s *Service) AddPredecessor(taskID, predecessorID string) (*datamodel.TaskPredecessor, error) {
	if taskID == predecessorID {
		return nil, internal.NewValidationError("task cannot be its own predecessor", internal.ErrCodeValidationFailed)
	}
	if _, err := s.Get(taskID); err != nil {
		return nil, err
	}
	if _, err := s.Get(predecessorID); err != nil {
		return nil, err
	}

	ws := s.db.Workspace()
	link := datamodel.TaskPredecessor{
		ID:            uuid.NewString(),
		TaskID:        taskID,
		PredecessorID: predecessorID,
	}
	ws.TaskPredecessors = append(ws.TaskPredecessors, link)
	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist task predecessor", err)
	}
	return &link, nil
}
