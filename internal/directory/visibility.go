package directory

import "evalhub/internal/auth"

// VisibleEmployees narrows the roster to what the acting user may list.
// Admins see everyone, managers see their own department, employees see only
// their own record.
func VisibleEmployees(employees []Employee, departments []Department, actorUserID, actorRole string) []Employee {
	if actorRole == auth.RoleAdmin {
		return employees
	}

	if actorRole == auth.RoleManager {
		var managed string
		for _, dept := range departments {
			if dept.ManagerID == actorUserID {
				managed = dept.ID
				break
			}
		}
		filtered := make([]Employee, 0, len(employees))
		for _, emp := range employees {
			if emp.DepartmentID == managed || emp.UserID == actorUserID {
				filtered = append(filtered, emp)
			}
		}
		return filtered
	}

	filtered := make([]Employee, 0, 1)
	for _, emp := range employees {
		if emp.UserID == actorUserID {
			filtered = append(filtered, emp)
		}
	}
	return filtered
}

// FindByUser returns the employee record linked to a user identity, if any.
// Not every login has an employee row; department managers often do not.
func FindByUser(employees []Employee, userID string) (Employee, bool) {
	if userID == "" {
		return Employee{}, false
	}
	for _, emp := range employees {
		if emp.UserID == userID {
			return emp, true
		}
	}
	return Employee{}, false
}

func FindDepartment(departments []Department, departmentID string) (Department, bool) {
	for _, dept := range departments {
		if dept.ID == departmentID {
			return dept, true
		}
	}
	return Department{}, false
}
