package datamodel

type Organization struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	RootStaffID *string `json:"rootStaffId,omitempty"`
}

// Department is one node of a per-organization tree; ParentDepartmentID is
// nil for roots. The parent chain must stay acyclic and inside one
// organization.
type Department struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        *string `json:"description,omitempty"`
	OrganizationID     string  `json:"organizationId"`
	ParentDepartmentID *string `json:"parentDepartmentId,omitempty"`
	ManagerID          *string `json:"managerId,omitempty"`
}
