package department

import (
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/core/datamodel"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/tenant"
)

// validateParent checks a proposed parent assignment against the current
// committed tree. The parent must exist, belong to the same organization,
// and must not have dept anywhere in its ancestor chain. A department
// naming itself as parent is the degenerate cycle and reported the same
// way. The walk terminates because the pre-mutation tree is acyclic.
func validateParent(ws *tenant.WorkspaceData, dept *datamodel.Department, parentID string) error {
	parent := findDepartment(ws, parentID)
	if parent == nil {
		return internal.NewRecordNotFoundError("parent department")
	}
	if parent.OrganizationID != dept.OrganizationID {
		return internal.ErrCrossOrganizationReference
	}

	for current := parent; current != nil; {
		if current.ID == dept.ID {
			return internal.ErrCircularDepartmentReference
		}
		if current.ParentDepartmentID == nil {
			break
		}
		current = findDepartment(ws, *current.ParentDepartmentID)
	}
	return nil
}

func findDepartment(ws *tenant.WorkspaceData, id string) *datamodel.Department {
	for i := range ws.Departments {
		if ws.Departments[i].ID == id {
			return &ws.Departments[i]
		}
	}
	return nil
}
