package evaluation

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("evaluation: not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const selectColumns = `
    SELECT id, name, department_id::text, evaluation_type, competencies,
           due_date, published, created_at, updated_at
    FROM evaluations
`

func scanEvaluation(row pgx.Row) (*Evaluation, error) {
	var eval Evaluation
	var competencies []byte
	err := row.Scan(&eval.ID, &eval.Name, &eval.DepartmentID, &eval.Type, &competencies, &eval.DueDate, &eval.Published, &eval.CreatedAt, &eval.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(competencies, &eval.Competencies); err != nil {
		return nil, err
	}
	return &eval, nil
}

func (s *Store) List(ctx context.Context) ([]Evaluation, error) {
	rows, err := s.DB.Query(ctx, selectColumns+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (s *Store) ListByDepartment(ctx context.Context, departmentID string, publishedOnly bool) ([]Evaluation, error) {
	query := selectColumns + ` WHERE department_id = $1`
	if publishedOnly {
		query += ` AND published = true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.DB.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows pgx.Rows) ([]Evaluation, error) {
	var evaluations []Evaluation
	for rows.Next() {
		eval, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		evaluations = append(evaluations, *eval)
	}
	return evaluations, rows.Err()
}

func (s *Store) Get(ctx context.Context, evaluationID string) (*Evaluation, error) {
	eval, err := scanEvaluation(s.DB.QueryRow(ctx, selectColumns+` WHERE id = $1`, evaluationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return eval, err
}

func (s *Store) Create(ctx context.Context, eval Evaluation) (string, error) {
	competencies, err := json.Marshal(eval.Competencies)
	if err != nil {
		return "", err
	}

	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO evaluations (name, department_id, evaluation_type, competencies, due_date, published)
    VALUES ($1, $2::uuid, $3, $4, $5, $6)
    RETURNING id
  `, eval.Name, eval.DepartmentID, eval.Type, competencies, eval.DueDate, eval.Published).Scan(&id)
	return id, err
}

func (s *Store) Update(ctx context.Context, eval Evaluation) error {
	competencies, err := json.Marshal(eval.Competencies)
	if err != nil {
		return err
	}

	tag, err := s.DB.Exec(ctx, `
    UPDATE evaluations
    SET name = $2, department_id = $3::uuid, evaluation_type = $4,
        competencies = $5, due_date = $6, published = $7, updated_at = now()
    WHERE id = $1
  `, eval.ID, eval.Name, eval.DepartmentID, eval.Type, competencies, eval.DueDate, eval.Published)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) SetPublished(ctx context.Context, evaluationID string, published bool) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE evaluations SET published = $2, updated_at = now() WHERE id = $1
  `, evaluationID, published)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
