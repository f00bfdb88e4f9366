package directory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("directory: record not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, COALESCE(user_id::text, ''), name, email, position,
           COALESCE(department_id::text, ''), is_remote, created_at, updated_at
    FROM employees
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.UserID, &emp.Name, &emp.Email, &emp.Position, &emp.DepartmentID, &emp.IsRemote, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, employeeID string) (*Employee, error) {
	var emp Employee
	err := s.DB.QueryRow(ctx, `
    SELECT id, COALESCE(user_id::text, ''), name, email, position,
           COALESCE(department_id::text, ''), is_remote, created_at, updated_at
    FROM employees
    WHERE id = $1
  `, employeeID).Scan(&emp.ID, &emp.UserID, &emp.Name, &emp.Email, &emp.Position, &emp.DepartmentID, &emp.IsRemote, &emp.CreatedAt, &emp.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) GetEmployeeByUser(ctx context.Context, userID string) (*Employee, error) {
	var emp Employee
	err := s.DB.QueryRow(ctx, `
    SELECT id, COALESCE(user_id::text, ''), name, email, position,
           COALESCE(department_id::text, ''), is_remote, created_at, updated_at
    FROM employees
    WHERE user_id = $1
  `, userID).Scan(&emp.ID, &emp.UserID, &emp.Name, &emp.Email, &emp.Position, &emp.DepartmentID, &emp.IsRemote, &emp.CreatedAt, &emp.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) CreateEmployee(ctx context.Context, emp Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (user_id, name, email, position, department_id, is_remote)
    VALUES (NULLIF($1, '')::uuid, $2, $3, $4, NULLIF($5, '')::uuid, $6)
    RETURNING id
  `, emp.UserID, emp.Name, emp.Email, emp.Position, emp.DepartmentID, emp.IsRemote).Scan(&id)
	return id, err
}

func (s *Store) UpdateEmployee(ctx context.Context, emp Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET name = $2, email = $3, position = $4,
        department_id = NULLIF($5, '')::uuid, is_remote = $6, updated_at = now()
    WHERE id = $1
  `, emp.ID, emp.Name, emp.Email, emp.Position, emp.DepartmentID, emp.IsRemote)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListDepartments(ctx context.Context) ([]Department, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(manager_id::text, ''), active, created_at
    FROM departments
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []Department
	for rows.Next() {
		var dept Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.ManagerID, &dept.Active, &dept.CreatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}
	return departments, rows.Err()
}

func (s *Store) CreateDepartment(ctx context.Context, dept Department) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO departments (name, manager_id, active)
    VALUES ($1, NULLIF($2, '')::uuid, $3)
    RETURNING id
  `, dept.Name, dept.ManagerID, dept.Active).Scan(&id)
	return id, err
}

func (s *Store) UpdateDepartment(ctx context.Context, dept Department) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE departments
    SET name = $2, manager_id = NULLIF($3, '')::uuid, active = $4
    WHERE id = $1
  `, dept.ID, dept.Name, dept.ManagerID, dept.Active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
