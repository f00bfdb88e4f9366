package record

import (
	"errors"
	"testing"

	"evalhub/internal/auth"
	"evalhub/internal/directory"
	"evalhub/internal/evaluation"
)

func snapshotFixture() ([]directory.Employee, []directory.Department) {
	employees := []directory.Employee{
		{ID: "e1", UserID: "u1", Name: "Ana", DepartmentID: "d1"},
		{ID: "e2", UserID: "u2", Name: "Bruno", DepartmentID: "d1"},
		{ID: "e3", UserID: "u3", Name: "Carla", DepartmentID: "d1"},
		{ID: "e4", UserID: "u4", Name: "Diego", DepartmentID: "d2"},
	}
	departments := []directory.Department{
		{ID: "d1", Name: "Engineering", ManagerID: "m1", Active: true},
		{ID: "d2", Name: "Sales", ManagerID: "m2", Active: true},
	}
	return employees, departments
}

func templateFixture(evalType string) evaluation.Evaluation {
	return evaluation.Evaluation{
		ID:           "ev1",
		Name:         "Q3 Review",
		DepartmentID: "d1",
		Type:         evalType,
		Competencies: []evaluation.Competency{
			{Name: evaluation.CompetencyTeamwork, Questions: []string{"q1", "q2"}},
		},
	}
}

func TestResolveManagerType(t *testing.T) {
	employees, departments := snapshotFixture()

	// Regardless of who is acting, the department manager is the target.
	for _, actor := range []Actor{
		{UserID: "u1", Role: auth.RoleEmployee},
		{UserID: "m1", Role: auth.RoleManager},
		{UserID: "admin", Role: auth.RoleAdmin},
	} {
		result, err := ResolveTargeting(templateFixture(evaluation.TypeManager), actor, employees, departments)
		if err != nil {
			t.Fatalf("resolve error: %v", err)
		}
		if result.EvaluatedUser != "m1" {
			t.Fatalf("actor %s: expected manager m1, got %q", actor.UserID, result.EvaluatedUser)
		}
		if result.Editable {
			t.Fatalf("actor %s: manager target must not be editable", actor.UserID)
		}
	}
}

func TestResolveSelfTypeWithEmployeeRecord(t *testing.T) {
	employees, departments := snapshotFixture()

	result, err := ResolveTargeting(templateFixture(evaluation.TypeSelf), Actor{UserID: "u2", Role: auth.RoleEmployee}, employees, departments)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if result.EvaluatedUser != "u2" {
		t.Fatalf("expected own identity u2, got %q", result.EvaluatedUser)
	}
	if result.Editable {
		t.Fatal("self target must not be editable")
	}
}

func TestResolveSelfTypeManagerFallback(t *testing.T) {
	employees, departments := snapshotFixture()

	// m1 manages d1 but has no employee row; self resolves to the department manager.
	result, err := ResolveTargeting(templateFixture(evaluation.TypeSelf), Actor{UserID: "m1", Role: auth.RoleManager}, employees, departments)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if result.EvaluatedUser != "m1" {
		t.Fatalf("expected department manager m1, got %q", result.EvaluatedUser)
	}
}

func TestResolvePeerType(t *testing.T) {
	employees, departments := snapshotFixture()

	result, err := ResolveTargeting(templateFixture(evaluation.TypePeer), Actor{UserID: "u1", Role: auth.RoleEmployee}, employees, departments)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if !result.Editable {
		t.Fatal("peer target must be editable")
	}
	if result.EvaluatedUser != "" {
		t.Fatalf("peer target must not be auto-resolved, got %q", result.EvaluatedUser)
	}
	if len(result.Candidates) != 2 {
		t.Fatalf("expected 2 candidates (d1 minus the actor), got %d", len(result.Candidates))
	}
	for _, candidate := range result.Candidates {
		if candidate.UserID == "u1" {
			t.Fatal("candidate pool must exclude the acting employee")
		}
		if candidate.DepartmentID != "d1" {
			t.Fatalf("candidate %s outside the evaluation department", candidate.ID)
		}
	}
}

func TestResolvePeerCandidatesForActorWithoutEmployeeRow(t *testing.T) {
	employees, departments := snapshotFixture()

	// Actors without an employee record are excluded by user reference.
	result, err := ResolveTargeting(templateFixture(evaluation.TypePeer), Actor{UserID: "m1", Role: auth.RoleManager}, employees, departments)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if len(result.Candidates) != 3 {
		t.Fatalf("expected all 3 d1 employees, got %d", len(result.Candidates))
	}
}

func TestResolveUnknownDepartment(t *testing.T) {
	employees, departments := snapshotFixture()

	eval := templateFixture(evaluation.TypeManager)
	eval.DepartmentID = "missing"

	result, err := ResolveTargeting(eval, Actor{UserID: "u1", Role: auth.RoleEmployee}, employees, departments)
	if err != nil {
		t.Fatalf("unknown department must not error, got %v", err)
	}
	if result.Department != nil {
		t.Fatal("expected nil department")
	}
	if result.EvaluatedUser != "" {
		t.Fatalf("expected unresolved target, got %q", result.EvaluatedUser)
	}
}

func TestResolveSelfFallbackUnknownDepartment(t *testing.T) {
	employees, departments := snapshotFixture()

	eval := templateFixture(evaluation.TypeSelf)
	eval.DepartmentID = "missing"

	// No employee row and no department to fall back to: unresolved, no panic.
	result, err := ResolveTargeting(eval, Actor{UserID: "m9", Role: auth.RoleManager}, employees, departments)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if result.EvaluatedUser != "" {
		t.Fatalf("expected unresolved target, got %q", result.EvaluatedUser)
	}
}

func TestResolveUnknownTypeFails(t *testing.T) {
	employees, departments := snapshotFixture()

	_, err := ResolveTargeting(templateFixture("upward"), Actor{UserID: "u1", Role: auth.RoleEmployee}, employees, departments)
	if err == nil {
		t.Fatal("expected validation error for unknown type")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}
