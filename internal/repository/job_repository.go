package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gatorhire/internal/database"
	"gatorhire/internal/domain/job"

	"github.com/jackc/pgx/v5"
)

type JobSearchParams struct {
	Query    string
	Category string
	Type     string
	Location string
}

type JobRepository interface {
	ListActive(ctx context.Context) ([]job.Job, error)
	ListAll(ctx context.Context) ([]job.Job, error)
	GetByID(ctx context.Context, id string) (job.Job, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, params JobSearchParams) ([]job.Job, error)
	SearchByRequirements(ctx context.Context, keywords []string, limit int) ([]job.Job, error)
	Create(ctx context.Context, j job.Job) error
	Update(ctx context.Context, j job.Job) error
	Delete(ctx context.Context, id string) (JobDeleteStats, error)
}

// JobDeleteStats reports what a job removal took with it.
type JobDeleteStats struct {
	SavedEntries int64
	Applications int64
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, company, location, type, salary, description,
	requirements, responsibilities, benefits, posted_date,
	category, status, company_info, COALESCE(created_by::text, '')`

func (r *PostgresJobRepository) ListActive(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE status = 'active' ORDER BY posted_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY posted_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id string) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) Search(ctx context.Context, params JobSearchParams) ([]job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = 'active'`
	args := []any{}
	n := 0

	if q := strings.TrimSpace(params.Query); q != "" {
		n++
		query += fmt.Sprintf(" AND (title ILIKE $%d OR company ILIKE $%d OR location ILIKE $%d)", n, n, n)
		args = append(args, "%"+q+"%")
	}
	if c := strings.TrimSpace(params.Category); c != "" && c != string(job.CategoryAll) {
		n++
		query += fmt.Sprintf(" AND category = $%d", n)
		args = append(args, c)
	}
	if t := strings.TrimSpace(params.Type); t != "" {
		n++
		query += fmt.Sprintf(" AND type = $%d", n)
		args = append(args, t)
	}
	if l := strings.TrimSpace(params.Location); l != "" {
		n++
		query += fmt.Sprintf(" AND location = $%d", n)
		args = append(args, l)
	}

	query += " ORDER BY posted_date DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

// SearchByRequirements finds active jobs whose requirement entries mention any
// of the given keywords. Used by the recommendation endpoint.
func (r *PostgresJobRepository) SearchByRequirements(ctx context.Context, keywords []string, limit int) ([]job.Job, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = 'active'`
	args := []any{}
	conds := []string{}
	for i, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		conds = append(conds, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM jsonb_array_elements_text(requirements) AS req WHERE req ILIKE $%d)`, i+1))
		args = append(args, "%"+kw+"%")
	}
	if len(conds) == 0 {
		return []job.Job{}, nil
	}
	query += " AND (" + strings.Join(conds, " OR ") + ")"
	query += fmt.Sprintf(" ORDER BY posted_date DESC LIMIT %d", limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	reqJSON, respJSON, benJSON, ciJSON, err := marshalJobJSON(j)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO jobs (id, title, company, location, type, salary, description,
			requirements, responsibilities, benefits, posted_date, category, status,
			company_info, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NULLIF($15, '')::uuid)`,
		j.ID, j.Title, j.Company, j.Location, j.Type, j.Salary, j.Description,
		reqJSON, respJSON, benJSON, j.PostedDate, string(j.Category), j.Status,
		ciJSON, j.CreatedBy,
	)
	return err
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	reqJSON, respJSON, benJSON, ciJSON, err := marshalJobJSON(j)
	if err != nil {
		return err
	}

	affected, err := r.db.Exec(ctx, `
		UPDATE jobs SET
			title = $2, company = $3, location = $4, type = $5, salary = $6,
			description = $7, requirements = $8, responsibilities = $9,
			benefits = $10, category = $11, status = $12, company_info = $13
		WHERE id = $1`,
		j.ID, j.Title, j.Company, j.Location, j.Type, j.Salary,
		j.Description, reqJSON, respJSON, benJSON, string(j.Category), j.Status, ciJSON,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

// Delete removes a job together with its saved entries and applications in
// one transaction, so a failure partway leaves everything in place. The
// returned stats say how many dependent rows went with the posting.
func (r *PostgresJobRepository) Delete(ctx context.Context, id string) (JobDeleteStats, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return JobDeleteStats{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var stats JobDeleteStats
	stats.SavedEntries, err = tx.Exec(ctx, `DELETE FROM saved_jobs WHERE job_id = $1`, id)
	if err != nil {
		return JobDeleteStats{}, err
	}
	stats.Applications, err = tx.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, id)
	if err != nil {
		return JobDeleteStats{}, err
	}

	affected, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return JobDeleteStats{}, err
	}
	if affected == 0 {
		return JobDeleteStats{}, job.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return JobDeleteStats{}, err
	}
	return stats, nil
}

func marshalJobJSON(j job.Job) (req, resp, ben, ci []byte, err error) {
	req, err = json.Marshal(emptyIfNil(j.Requirements))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	resp, err = json.Marshal(emptyIfNil(j.Responsibilities))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	ben, err = json.Marshal(emptyIfNil(j.Benefits))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if j.CompanyInfo != nil {
		ci, err = json.Marshal(j.CompanyInfo)
		if err != nil {
			return nil, nil, nil, nil, err
		}
	}
	return req, resp, ben, ci, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func scanJobs(rows database.Rows) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type jobRow interface {
	Scan(dest ...any) error
}

func scanJob(row jobRow) (job.Job, error) {
	var j job.Job
	var category string
	var reqJSON, respJSON, benJSON, ciJSON []byte

	err := row.Scan(
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

func unmarshalStrings(b []byte) []string {
	if len(b) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		return []string{}
	}
	if out == nil {
		return []string{}
	}
	return out
}
