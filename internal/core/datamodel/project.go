package datamodel

type Project struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	LeadStaffID *string `json:"leadStaffId,omitempty"`
	StartDate   *string `json:"plannedStartDate,omitempty"`
	EndDate     *string `json:"plannedEndDate,omitempty"`
}

type Task struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	ProjectID    string  `json:"projectId"`
	ParentTaskID *string `json:"parentTaskId,omitempty"`
	EvaluatorID  *string `json:"evaluatorId,omitempty"`
	StatusID     *string `json:"statusId,omitempty"`
	PriorityID   *string `json:"priorityId,omitempty"`
	ComplexityID *string `json:"complexityId,omitempty"`
	StartDate    *string `json:"plannedStartDate,omitempty"`
	EndDate      *string `json:"plannedEndDate,omitempty"`
}

type TaskAssignee struct {
	ID      string `json:"id"`
	TaskID  string `json:"taskId"`
	StaffID string `json:"staffId"`
}

// TaskPredecessor links a task to one it depends on, within one workspace.
type TaskPredecessor struct {
	ID            string `json:"id"`
	TaskID        string `json:"taskId"`
	PredecessorID string `json:"predecessorTaskId"`
}

type TaskProgress struct {
	ID         string  `json:"id"`
	TaskID     string  `json:"taskId"`
	ReportDate string  `json:"reportDate"`
	Percent    int     `json:"progressPercent"`
	Notes      *string `json:"notes,omitempty"`
	CreatorID  *string `json:"creatorId,omitempty"`
}

type TaskEvaluation struct {
	ID              string  `json:"id"`
	TaskID          string  `json:"taskId"`
	EvaluatorID     string  `json:"evaluatorId"`
	EvaluationDate  string  `json:"evaluationDate"`
	EvaluationNotes *string `json:"evaluationNotes,omitempty"`
	Result          *string `json:"result,omitempty"`
}

type TaskStatusReport struct {
	ID         string  `json:"id"`
	TaskID     string  `json:"taskId"`
	ReportDate string  `json:"reportDate"`
	Summary    *string `json:"statusSummary,omitempty"`
	CreatorID  *string `json:"creatorId,omitempty"`
}

type ProjectStatusReport struct {
	ID         string  `json:"id"`
	ProjectID  string  `json:"projectId"`
	ReportDate string  `json:"reportDate"`
	Summary    *string `json:"statusSummary,omitempty"`
	CreatorID  *string `json:"creatorId,omitempty"`
}
