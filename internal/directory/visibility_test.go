package directory

import (
	"testing"

	"evalhub/internal/auth"
)

func rosterFixture() ([]Employee, []Department) {
	employees := []Employee{
		{ID: "e1", UserID: "u1", Name: "Ana", DepartmentID: "d1"},
		{ID: "e2", UserID: "u2", Name: "Bruno", DepartmentID: "d1"},
		{ID: "e3", UserID: "u3", Name: "Carla", DepartmentID: "d2"},
	}
	departments := []Department{
		{ID: "d1", Name: "Engineering", ManagerID: "m1", Active: true},
		{ID: "d2", Name: "Sales", ManagerID: "m2", Active: true},
	}
	return employees, departments
}

func TestVisibleEmployeesAdmin(t *testing.T) {
	employees, departments := rosterFixture()
	visible := VisibleEmployees(employees, departments, "whoever", auth.RoleAdmin)
	if len(visible) != 3 {
		t.Fatalf("admin should see full roster, got %d", len(visible))
	}
}

func TestVisibleEmployeesManager(t *testing.T) {
	employees, departments := rosterFixture()
	visible := VisibleEmployees(employees, departments, "m1", auth.RoleManager)
	if len(visible) != 2 {
		t.Fatalf("manager of d1 should see 2 employees, got %d", len(visible))
	}
	for _, emp := range visible {
		if emp.DepartmentID != "d1" {
			t.Fatalf("unexpected employee %s outside managed department", emp.ID)
		}
	}
}

func TestVisibleEmployeesEmployee(t *testing.T) {
	employees, departments := rosterFixture()
	visible := VisibleEmployees(employees, departments, "u2", auth.RoleEmployee)
	if len(visible) != 1 || visible[0].ID != "e2" {
		t.Fatalf("employee should see only their own record, got %+v", visible)
	}
}

func TestFindByUser(t *testing.T) {
	employees, _ := rosterFixture()

	emp, ok := FindByUser(employees, "u3")
	if !ok || emp.ID != "e3" {
		t.Fatalf("expected e3, got %+v ok=%v", emp, ok)
	}

	if _, ok := FindByUser(employees, "missing"); ok {
		t.Fatal("expected no match for unknown user")
	}
	if _, ok := FindByUser(employees, ""); ok {
		t.Fatal("expected no match for empty user id")
	}
}

func TestFindDepartment(t *testing.T) {
	_, departments := rosterFixture()

	dept, ok := FindDepartment(departments, "d2")
	if !ok || dept.ManagerID != "m2" {
		t.Fatalf("expected d2 with manager m2, got %+v ok=%v", dept, ok)
	}

	if _, ok := FindDepartment(departments, "nope"); ok {
		t.Fatal("expected no match for unknown department")
	}
}
