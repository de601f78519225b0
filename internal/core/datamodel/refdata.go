package datamodel

// Reference data shared by tasks within one workspace.

type Status struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Priority struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Complexity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
