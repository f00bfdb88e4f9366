package record

import "evalhub/internal/evaluation"

// ValidateSubmission checks a submission's responses against the template:
// every template competency is answered exactly once, each answer carries one
// rating per question, and every rating is on the 1-5 scale. Targeting is
// checked separately.
func ValidateSubmission(eval evaluation.Evaluation, sub Submission) error {
	if sub.EvaluationID == "" {
		return invalidf("evaluation reference is required")
	}
	if sub.EvaluatedUser == "" {
		return invalidf("evaluated user is required")
	}
	if len(sub.Responses) == 0 {
		return invalidf("submission carries no responses")
	}

	questionCounts := make(map[string]int, len(eval.Competencies))
	for _, comp := range eval.Competencies {
		questionCounts[comp.Name] = len(comp.Questions)
	}

	seen := make(map[string]bool, len(sub.Responses))
	for _, resp := range sub.Responses {
		count, ok := questionCounts[resp.Competency]
		if !ok {
			return invalidf("unknown competency %q", resp.Competency)
		}
		if seen[resp.Competency] {
			return invalidf("duplicate competency %q", resp.Competency)
		}
		seen[resp.Competency] = true

		if len(resp.Responses) != count {
			return invalidf("competency %s expects %d ratings, got %d", resp.Competency, count, len(resp.Responses))
		}
		for i, rating := range resp.Responses {
			if !ValidRating(rating) {
				return invalidf("competency %s question %d: rating %d outside the %d-%d scale", resp.Competency, i, rating, RatingMin, RatingMax)
			}
		}
	}

	for _, comp := range eval.Competencies {
		if !seen[comp.Name] {
			return invalidf("competency %s is missing from the submission", comp.Name)
		}
	}
	return nil
}

// ValidateTarget enforces the resolved targeting on a submission: self and
// manager evaluations must carry the resolved identity; peer evaluations must
// pick from the candidate pool.
func ValidateTarget(targeting Targeting, sub Submission) error {
	if !targeting.Editable {
		if targeting.EvaluatedUser == "" {
			return invalidf("evaluation target could not be resolved")
		}
		if sub.EvaluatedUser != targeting.EvaluatedUser {
			return invalidf("evaluated user is fixed for this evaluation type")
		}
		return nil
	}

	for _, candidate := range targeting.Candidates {
		if candidate.UserID != "" && candidate.UserID == sub.EvaluatedUser {
			return nil
		}
	}
	return invalidf("evaluated user is not a selectable peer")
}
