// Package refdata manages the shared status, priority and complexity
// reference lists that tasks point at.
package refdata

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

func (s *Service) ListStatuses() []datamodel.Status {
	return s.db.Workspace().Statuses
}

func (s *Service) CreateStatus(name string) (*datamodel.Status, error) {
	if name == "" {
		return nil, internal.NewValidationError("status name is required", internal.ErrCodeValidationFailed)
	}
	ws := s.db.Workspace()
	for i := range ws.Statuses {
		if ws.Statuses[i].Name == name {
			return nil, internal.NewDuplicateNameError("status", name)
		}
	}

	status := datamodel.Status{ID: uuid.NewString(), Name: name}
	ws.Statuses = append(ws.Statuses, status)
	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist status", err)
	}
	return &status, nil
}

func (s *Service) DeleteStatus(id string) error {
	ws := s.db.Workspace()
	for i := range ws.Tasks {
		if ws.Tasks[i].StatusID != nil && *ws.Tasks[i].StatusID == id {
			return internal.NewDependentRecordsError("status", "tasks")
		}
	}
	for i := range ws.Statuses {
		if ws.Statuses[i].ID == id {
			ws.Statuses = append(ws.Statuses[:i], ws.Statuses[i+1:]...)
			return s.db.WriteWorkspace()
		}
	}
	return internal.NewRecordNotFoundError("status")
}

func (s *Service) ListPriorities() []datamodel.Priority {
	return s.db.Workspace().Priorities
}

func (s *Service) CreatePriority(name string) (*datamodel.Priority, error) {
	if name == "" {
		return nil, internal.NewValidationError("priority name is required", internal.ErrCodeValidationFailed)
	}
	ws := s.db.Workspace()
	for i := range ws.Priorities {
		if ws.Priorities[i].Name == name {
			return nil, internal.NewDuplicateNameError("priority", name)
		}
	}

	priority := datamodel.Priority{ID: uuid.NewString(), Name: name}
	ws.Priorities = append(ws.Priorities, priority)
	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist priority", err)
	}
	return &priority, nil
}

func (s *Service) DeletePriority(id string) error {
	ws := s.db.Workspace()
	for i := range ws.Tasks {
		if ws.Tasks[i].PriorityID != nil && *ws.Tasks[i].PriorityID == id {
			return internal.NewDependentRecordsError("priority", "tasks")
		}
	}
	for i := range ws.Priorities {
		if ws.Priorities[i].ID == id {
			ws.Priorities = append(ws.Priorities[:i], ws.Priorities[i+1:]...)
			return s.db.WriteWorkspace()
		}
	}
	return internal.NewRecordNotFoundError("priority")
}

func (s *Service) ListComplexities() []datamodel.Complexity {
	return s.db.Workspace().Complexities
}

func (s *Service) CreateComplexity(name string) (*datamodel.Complexity, error) {
	if name == "" {
		return nil, internal.NewValidationError("complexity name is required", internal.ErrCodeValidationFailed)
	}
	ws := s.db.Workspace()
	for i := range ws.Complexities {
		if ws.Complexities[i].Name == name {
			return nil, internal.NewDuplicateNameError("complexity", name)
		}
	}

	complexity := datamodel.Complexity{ID: uuid.NewString(), Name: name}
	ws.Complexities = append(ws.Complexities, complexity)
	if err := s.db.WriteWorkspace(); err != nil {
		return nil, internal.NewInternalError("failed to persist complexity", err)
	}
	return &complexity, nil
}

func (s *Service) DeleteComplexity(id string) error {
	ws := s.db.Workspace()
	for i := range ws.Tasks {
		if ws.Tasks[i].ComplexityID != nil && *ws.Tasks[i].ComplexityID == id {
			return internal.NewDependentRecordsError("complexity", "tasks")
		}
	}
	for i := range ws.Complexities {
		if ws.Complexities[i].ID == id {
			ws.Complexities = append(ws.Complexities[:i], ws.Complexities[i+1:]...)
			return s.db.WriteWorkspace()
		}
	}
	return internal.NewRecordNotFoundError("complexity")
}
