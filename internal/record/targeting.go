package record

import (
	"evalhub/internal/directory"
	"evalhub/internal/evaluation"
)

// Actor is the already-authenticated identity asking to fill in an evaluation.
type Actor struct {
	UserID string
	Role   string
}

// Targeting is the resolved decision for one (evaluation, actor) pair: who is
// being evaluated, whether the console may let the actor change it, and which
// employees are selectable for peer evaluations.
type Targeting struct {
	EvaluatedUser string                `json:"evaluatedUser,omitempty"`
	Editable      bool                  `json:"editable"`
	Candidates    []directory.Employee  `json:"candidates"`
	Department    *directory.Department `json:"department,omitempty"`
}

// ResolveTargeting decides the evaluated user for an evaluation given role and
// department membership. Pure over its snapshot inputs.
//
// self: the actor's own identity when an employee record exists; otherwise the
// department's designated manager (an actor running a department without an
// employee row evaluates themselves as that manager).
// manager: always the department's designated manager, regardless of actor.
// peer: left to the caller, chosen from the candidate pool.
//
// An unknown department yields a nil department and an empty evaluated user
// rather than an error; the caller must block submission.
func ResolveTargeting(eval evaluation.Evaluation, actor Actor, employees []directory.Employee, departments []directory.Department) (Targeting, error) {
	if !evaluation.ValidType(eval.Type) {
		return Targeting{}, invalidf("unknown evaluation type %q", eval.Type)
	}

	actingEmployee, hasEmployee := directory.FindByUser(employees, actor.UserID)

	var department *directory.Department
	if dept, ok := directory.FindDepartment(departments, eval.DepartmentID); ok {
		department = &dept
	}

	candidates := make([]directory.Employee, 0, len(employees))
	for _, emp := range employees {
		if emp.DepartmentID != eval.DepartmentID {
			continue
		}
		if hasEmployee && emp.ID == actingEmployee.ID {
			continue
		}
		if !hasEmployee && emp.UserID == actor.UserID {
			continue
		}
		candidates = append(candidates, emp)
	}

	result := Targeting{Candidates: candidates, Department: department}

	switch eval.Type {
	case evaluation.TypeSelf:
		if hasEmployee {
			result.EvaluatedUser = actor.UserID
		} else if department != nil {
			result.EvaluatedUser = department.ManagerID
		}
	case evaluation.TypeManager:
		if department != nil {
			result.EvaluatedUser = department.ManagerID
		}
	case evaluation.TypePeer:
		result.Editable = true
	}

	return result, nil
}
