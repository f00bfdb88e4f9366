package record

import "evalhub/internal/evaluation"

// Matrix holds the in-progress ratings, one slice per competency name,
// index-aligned with the template's question order.
type Matrix map[string][]int

// NewMatrix seeds every question with the neutral default rating.
func NewMatrix(competencies []evaluation.Competency) Matrix {
	matrix := make(Matrix, len(competencies))
	for _, comp := range competencies {
		ratings := make([]int, len(comp.Questions))
		for i := range ratings {
			ratings[i] = RatingDefault
		}
		matrix[comp.Name] = ratings
	}
	return matrix
}

// SetRating returns a matrix where only the targeted cell changed. Untouched
// competencies keep their original slices, so the console re-renders only the
// control that moved and sibling state cannot cross-contaminate.
func (m Matrix) SetRating(competency string, questionIndex, value int) (Matrix, error) {
	ratings, ok := m[competency]
	if !ok {
		return nil, invalidf("unknown competency %q", competency)
	}
	if questionIndex < 0 || questionIndex >= len(ratings) {
		return nil, invalidf("question index %d out of range for %s", questionIndex, competency)
	}
	if !ValidRating(value) {
		return nil, invalidf("rating %d outside the %d-%d scale", value, RatingMin, RatingMax)
	}

	updated := make(Matrix, len(m))
	for name, row := range m {
		updated[name] = row
	}
	row := make([]int, len(ratings))
	copy(row, ratings)
	row[questionIndex] = value
	updated[competency] = row

	return updated, nil
}

// Responses flattens the matrix into the submission shape, ordered as the
// competencies appear in the template so output is deterministic. Each entry
// carries the locally computed mean for pre-submission display.
func (m Matrix) Responses(competencies []evaluation.Competency) []CompetencyResponse {
	responses := make([]CompetencyResponse, 0, len(m))
	for _, comp := range competencies {
		ratings, ok := m[comp.Name]
		if !ok {
			continue
		}
		responses = append(responses, CompetencyResponse{
			Competency: comp.Name,
			Responses:  ratings,
			Average:    mean(ratings),
		})
	}
	return responses
}

func mean(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}
