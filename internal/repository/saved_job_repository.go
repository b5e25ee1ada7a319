package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gatorhire/internal/database"
	"gatorhire/internal/domain/job"
	"gatorhire/internal/domain/savedjob"
)

type SavedJobRepository interface {
	Save(ctx context.Context, s savedjob.SavedJob) error
	Exists(ctx context.Context, userID, jobID string) (bool, error)
	Delete(ctx context.Context, userID, jobID string) error
	BulkDelete(ctx context.Context, userID string, jobIDs []string) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]savedjob.SavedJob, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

type PostgresSavedJobRepository struct {
	db database.DB
}

func NewPostgresSavedJobRepository(db database.DB) *PostgresSavedJobRepository {
	return &PostgresSavedJobRepository{db: db}
}

func (r *PostgresSavedJobRepository) Save(ctx context.Context, s savedjob.SavedJob) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO saved_jobs (id, user_id, job_id, saved_date)
		VALUES ($1, $2, $3, $4)`,
		s.ID, s.UserID, s.JobID, s.SavedDate,
	)
	return err
}

func (r *PostgresSavedJobRepository) Exists(ctx context.Context, userID, jobID string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE user_id = $1 AND job_id = $2)`,
		userID, jobID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresSavedJobRepository) Delete(ctx context.Context, userID, jobID string) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return savedjob.ErrNotFound
	}
	return nil
}

func (r *PostgresSavedJobRepository) BulkDelete(ctx context.Context, userID string, jobIDs []string) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}

	args := []any{userID}
	placeholders := make([]string, 0, len(jobIDs))
	for i, id := range jobIDs {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
		args = append(args, id)
	}
	query := `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id IN (` +
		strings.Join(placeholders, ",") + `)`

	return r.db.Exec(ctx, query, args...)
}

func (r *PostgresSavedJobRepository) ListByUser(ctx context.Context, userID string) ([]savedjob.SavedJob, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.user_id, s.job_id, s.saved_date,
		       `+jobColumnsPrefixed+`
		FROM saved_jobs s
		JOIN jobs j ON s.job_id = j.id
		WHERE s.user_id = $1 AND j.status = 'active'
		ORDER BY s.saved_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]savedjob.SavedJob, 0)
	for rows.Next() {
		var s savedjob.SavedJob
		j, err := scanSavedJobRow(rows, &s)
		if err != nil {
			return nil, err
		}
		s.Job = j
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSavedJobRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM saved_jobs WHERE user_id = $1`, userID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

const jobColumnsPrefixed = `j.id, j.title, j.company, j.location, j.type, j.salary, j.description,
	j.requirements, j.responsibilities, j.benefits, j.posted_date,
	j.category, j.status, j.company_info, COALESCE(j.created_by::text, '')`

func scanSavedJobRow(rows database.Rows, s *savedjob.SavedJob) (job.Job, error) {
	var j job.Job
	var category string
	var reqJSON, respJSON, benJSON, ciJSON []byte

	err := rows.Scan(
		&s.ID, &s.UserID, &s.JobID, &s.SavedDate,
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Type,
		&j.Salary, &j.Description, &reqJSON, &respJSON,
		&benJSON, &j.PostedDate, &category, &j.Status,
		&ciJSON, &j.CreatedBy,
	)
	if err != nil {
		return job.Job{}, err
	}

	j.Category = job.Category(category)
	j.Requirements = unmarshalStrings(reqJSON)
	j.Responsibilities = unmarshalStrings(respJSON)
	j.Benefits = unmarshalStrings(benJSON)
	if len(ciJSON) > 0 && string(ciJSON) != "null" && string(ciJSON) != "[]" {
		var ci job.CompanyInfo
		if err := json.Unmarshal(ciJSON, &ci); err == nil {
			j.CompanyInfo = &ci
		}
	}
	return j, nil
}
