package staff

import (
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/core/datamodel"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/tenant"
)

// validateSupervisor checks a proposed supervisor assignment against the
// committed supervision tree, before the new edge is applied. Self
// supervision is rejected outright; otherwise the supervisor's chain is
// walked upward and must not contain staffID. The walk terminates because
// the pre-mutation tree has no cycles.
func validateSupervisor(ws *tenant.WorkspaceData, staffID, supervisorID string) error {
	if supervisorID == staffID {
		return internal.ErrSelfSupervision
	}

	current := findStaff(ws, supervisorID)
	if current == nil {
		return internal.NewRecordNotFoundError("supervisor")
	}

	for current != nil {
		if current.ID == staffID {
			return internal.ErrCircularSupervision
		}
		if current.SupervisorID == nil {
			break
		}
		current = findStaff(ws, *current.SupervisorID)
	}
	return nil
}

func findStaff(ws *tenant.WorkspaceData, id string) *datamodel.Staff {
	for i := range ws.Staff {
		if ws.Staff[i].ID == id {
			return &ws.Staff[i]
		}
	}
	return nil
}
