package report

import (
	"evalhub/internal/evaluation"
	"evalhub/internal/record"
)

// DashboardCounts is the header card payload of the console dashboard.
func DashboardCounts(evaluations []evaluation.Evaluation, records []record.Record, employeeCount int) map[string]any {
	published := 0
	for _, eval := range evaluations {
		if eval.Published {
			published++
		}
	}
	completed := 0
	for _, rec := range records {
		if rec.Completed {
			completed++
		}
	}
	return map[string]any{
		"publishedEvaluations": published,
		"completedRecords":     completed,
		"employees":            employeeCount,
		"reports":              completed,
	}
}

// PendingEvaluations lists the published templates of a department the
// evaluator has not yet answered, in the order given.
func PendingEvaluations(evaluations []evaluation.Evaluation, records []record.Record, evaluatorID string) []evaluation.Evaluation {
	answered := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.Evaluator == evaluatorID {
			answered[rec.EvaluationID] = true
		}
	}

	pending := make([]evaluation.Evaluation, 0, len(evaluations))
	for _, eval := range evaluations {
		if eval.Published && !answered[eval.ID] {
			pending = append(pending, eval)
		}
	}
	return pending
}
