package record

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrDuplicate = errors.New("record: evaluator already submitted this evaluation")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Exists reports whether the evaluator already has a record for the
// evaluation. The unique index remains the arbiter under concurrent
// submissions; this is the cheap pre-check.
func (s *Store) Exists(ctx context.Context, evaluationID, evaluatorID string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM evaluation_records
    WHERE evaluation_id = $1 AND evaluator_id = $2
  `, evaluationID, evaluatorID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) Create(ctx context.Context, sub Submission) (string, error) {
	for i := range sub.Responses {
		sub.Responses[i].Average = mean(sub.Responses[i].Responses)
	}
	results, err := json.Marshal(sub.Responses)
	if err != nil {
		return "", err
	}

	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO evaluation_records
      (evaluation_id, evaluated_user_id, evaluator_id, department_id, results, overall_average, comments, completed)
    VALUES ($1::uuid, $2::uuid, $3::uuid, $4::uuid, $5, $6, $7, true)
    RETURNING id
  `, sub.EvaluationID, sub.EvaluatedUser, sub.Evaluator, sub.DepartmentID, results, OverallAverage(sub.Responses), sub.Comments).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrDuplicate
		}
		return "", err
	}
	return id, nil
}

func isUniqueViolation(err error) bool {
	var pgErr interface{ SQLState() string }
	return errors.As(err, &pgErr) && pgErr.SQLState() == "23505"
}

const selectColumns = `
    SELECT id, evaluation_id::text, evaluated_user_id::text, evaluator_id::text,
           department_id::text, results, overall_average, comments, completed,
           created_at, updated_at
    FROM evaluation_records
`

func (s *Store) ListByEvaluation(ctx context.Context, evaluationID string) ([]Record, error) {
	rows, err := s.DB.Query(ctx, selectColumns+` WHERE evaluation_id = $1 ORDER BY created_at`, evaluationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (s *Store) ListByDepartment(ctx context.Context, departmentID string) ([]Record, error) {
	rows, err := s.DB.Query(ctx, selectColumns+` WHERE department_id = $1 ORDER BY created_at`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows pgx.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var rec Record
		var results []byte
		if err := rows.Scan(&rec.ID, &rec.EvaluationID, &rec.EvaluatedUser, &rec.Evaluator, &rec.DepartmentID, &results, &rec.OverallAverage, &rec.Comments, &rec.Completed, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(results, &rec.Results); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
