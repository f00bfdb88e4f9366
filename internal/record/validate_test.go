package record

import (
	"testing"

	"evalhub/internal/directory"
	"evalhub/internal/evaluation"
)

func submissionFixture() (evaluation.Evaluation, Submission) {
	eval := evaluation.Evaluation{
		ID:           "ev1",
		DepartmentID: "d1",
		Type:         evaluation.TypePeer,
		Competencies: []evaluation.Competency{
			{Name: evaluation.CompetencyTeamwork, Questions: []string{"q1", "q2"}},
			{Name: evaluation.CompetencyLeadership, Questions: []string{"q1"}},
		},
	}
	sub := Submission{
		EvaluationID:  "ev1",
		EvaluatedUser: "u2",
		Evaluator:     "u1",
		DepartmentID:  "d1",
		Responses: []CompetencyResponse{
			{Competency: evaluation.CompetencyTeamwork, Responses: []int{4, 5}},
			{Competency: evaluation.CompetencyLeadership, Responses: []int{3}},
		},
	}
	return eval, sub
}

func TestValidateSubmissionAccepts(t *testing.T) {
	eval, sub := submissionFixture()
	if err := ValidateSubmission(eval, sub); err != nil {
		t.Fatalf("expected valid submission, got %v", err)
	}
}

func TestValidateSubmissionRejects(t *testing.T) {
	cases := map[string]func(*Submission){
		"missing evaluation": func(s *Submission) { s.EvaluationID = "" },
		"missing target":     func(s *Submission) { s.EvaluatedUser = "" },
		"no responses":       func(s *Submission) { s.Responses = nil },
		"unknown competency": func(s *Submission) { s.Responses[0].Competency = "PUNCTUALITY" },
		"duplicate competency": func(s *Submission) {
			s.Responses[1] = s.Responses[0]
		},
		"unanswered competency": func(s *Submission) {
			s.Responses = s.Responses[:1]
		},
		"wrong vector length": func(s *Submission) { s.Responses[0].Responses = []int{4} },
		"rating too high":     func(s *Submission) { s.Responses[0].Responses[1] = 6 },
		"rating too low":      func(s *Submission) { s.Responses[1].Responses[0] = 0 },
	}

	for name, mutate := range cases {
		eval, sub := submissionFixture()
		mutate(&sub)
		if err := ValidateSubmission(eval, sub); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestValidateTargetFixed(t *testing.T) {
	targeting := Targeting{EvaluatedUser: "m1", Editable: false}

	if err := ValidateTarget(targeting, Submission{EvaluatedUser: "m1"}); err != nil {
		t.Fatalf("matching fixed target should pass: %v", err)
	}
	if err := ValidateTarget(targeting, Submission{EvaluatedUser: "u9"}); err == nil {
		t.Fatal("mismatched fixed target should fail")
	}
}

func TestValidateTargetUnresolved(t *testing.T) {
	targeting := Targeting{Editable: false}
	if err := ValidateTarget(targeting, Submission{EvaluatedUser: "u1"}); err == nil {
		t.Fatal("unresolved target must block submission")
	}
}

func TestValidateTargetPeerPool(t *testing.T) {
	targeting := Targeting{
		Editable: true,
		Candidates: []directory.Employee{
			{ID: "e2", UserID: "u2"},
			{ID: "e3", UserID: ""},
		},
	}

	if err := ValidateTarget(targeting, Submission{EvaluatedUser: "u2"}); err != nil {
		t.Fatalf("candidate should pass: %v", err)
	}
	if err := ValidateTarget(targeting, Submission{EvaluatedUser: "u7"}); err == nil {
		t.Fatal("non-candidate should fail")
	}
	// A candidate with no linked login cannot be targeted by user reference.
	if err := ValidateTarget(targeting, Submission{EvaluatedUser: ""}); err == nil {
		t.Fatal("empty target should fail")
	}
}
