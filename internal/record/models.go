package record

import "time"

// CompetencyResponse is one competency's rated answers inside a submission,
// index-aligned with the template's question order.
type CompetencyResponse struct {
	Competency string  `json:"competency"`
	Responses  []int   `json:"responses"`
	Average    float64 `json:"average"`
}

// Record is one completed submission of an evaluation by one evaluator for one
// evaluated user. Records are immutable once created.
type Record struct {
	ID             string               `json:"id"`
	EvaluationID   string               `json:"evaluation"`
	EvaluatedUser  string               `json:"evaluatedUser"`
	Evaluator      string               `json:"evaluator"`
	DepartmentID   string               `json:"department"`
	Results        []CompetencyResponse `json:"results"`
	OverallAverage float64              `json:"overallAverage"`
	Comments       string               `json:"comments"`
	Completed      bool                 `json:"completed"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// Submission is the exact payload the console hands over for transmission.
type Submission struct {
	EvaluationID  string               `json:"evaluation"`
	EvaluatedUser string               `json:"evaluatedUser"`
	Evaluator     string               `json:"evaluator"`
	DepartmentID  string               `json:"department"`
	Responses     []CompetencyResponse `json:"responses"`
	Comments      string               `json:"comments"`
}

type CompetencyAverage struct {
	Competency string  `json:"competency"`
	Average    float64 `json:"average"`
}
