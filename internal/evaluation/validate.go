package evaluation

import "fmt"

// ValidationError marks malformed template input. Handlers map it to 400;
// everything else stays a server error.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Validate checks a template is usable: known type, a department reference,
// at least one competency, every competency a known category with at least
// one question.
func Validate(eval Evaluation) error {
	if eval.Name == "" {
		return invalidf("evaluation name is required")
	}
	if eval.DepartmentID == "" {
		return invalidf("evaluation department is required")
	}
	if !ValidType(eval.Type) {
		return invalidf("unknown evaluation type %q", eval.Type)
	}
	if len(eval.Competencies) == 0 {
		return invalidf("evaluation needs at least one competency")
	}
	for _, comp := range eval.Competencies {
		if !ValidCategory(comp.Name) {
			return invalidf("unknown competency category %q", comp.Name)
		}
		if len(comp.Questions) == 0 {
			return invalidf("competency %s needs at least one question", comp.Name)
		}
		for i, question := range comp.Questions {
			if question == "" {
				return invalidf("competency %s question %d is empty", comp.Name, i)
			}
		}
	}
	return nil
}
