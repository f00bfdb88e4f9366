package evaluation

import "time"

// Competency groups an ordered list of rating questions under one of the fixed
// competency categories. The question count fixes the response vector length.
type Competency struct {
	Name      string   `json:"competency"`
	Questions []string `json:"questions"`
}

type Evaluation struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	DepartmentID string       `json:"department"`
	Type         string       `json:"evaluationType"`
	Competencies []Competency `json:"competencies"`
	DueDate      *time.Time   `json:"dueDate,omitempty"`
	Published    bool         `json:"published"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
