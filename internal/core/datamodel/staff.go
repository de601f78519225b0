package datamodel

// Staff records a person inside an organization and department.
// SupervisorID forms a tree; a staff member may never appear in their own
// supervision chain.
type Staff struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone,omitempty"`
	Role           *string `json:"role,omitempty"`
	OrganizationID string  `json:"organizationId"`
	DepartmentID   string  `json:"departmentId"`
	SupervisorID   *string `json:"supervisorId,omitempty"`
}

type Team struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	LeadID      *string `json:"leadId,omitempty"`
}

type TeamMember struct {
	ID         string  `json:"id"`
	TeamID     string  `json:"teamId"`
	StaffID    string  `json:"staffId"`
	MemberRole *string `json:"memberRole,omitempty"`
}
