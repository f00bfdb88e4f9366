package report

import (
	"testing"

	"evalhub/internal/evaluation"
	"evalhub/internal/record"
)

func TestDashboardCounts(t *testing.T) {
	evaluations := []evaluation.Evaluation{
		{ID: "ev1", Published: true},
		{ID: "ev2", Published: false},
		{ID: "ev3", Published: true},
	}
	records := []record.Record{
		{ID: "r1", Completed: true},
		{ID: "r2", Completed: false},
	}

	counts := DashboardCounts(evaluations, records, 7)
	if counts["publishedEvaluations"].(int) != 2 {
		t.Fatal("unexpected published count")
	}
	if counts["completedRecords"].(int) != 1 {
		t.Fatal("unexpected completed count")
	}
	if counts["employees"].(int) != 7 {
		t.Fatal("unexpected employee count")
	}
	if counts["reports"].(int) != 1 {
		t.Fatal("unexpected reports count")
	}
}

func TestPendingEvaluations(t *testing.T) {
	evaluations := []evaluation.Evaluation{
		{ID: "ev1", Published: true},
		{ID: "ev2", Published: true},
		{ID: "ev3", Published: false},
	}
	records := []record.Record{
		{EvaluationID: "ev1", Evaluator: "u1"},
		{EvaluationID: "ev2", Evaluator: "u2"},
	}

	pending := PendingEvaluations(evaluations, records, "u1")
	if len(pending) != 1 || pending[0].ID != "ev2" {
		t.Fatalf("expected only ev2 pending, got %+v", pending)
	}

	// A user with no records sees every published template.
	pending = PendingEvaluations(evaluations, records, "u9")
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}
}
