package repository

import (
	"context"
	"database/sql"
	"errors"

	"gatorhire/internal/database"
	"gatorhire/internal/domain/application"

	"github.com/jackc/pgx/v5"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) error
	ExistsByJobAndEmail(ctx context.Context, jobID, email string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]application.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]application.Application, error)
	UpdateStatus(ctx context.Context, applicationID, status string) error
	CountByUser(ctx context.Context, userID string) (int, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO applications (id, job_id, user_id, full_name, email, phone,
			cover_letter, resume_url, linkedin, portfolio, heard_from, status, created_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		a.ID, a.JobID, a.UserID, a.FullName, a.Email, a.Phone,
		a.CoverLetter, a.ResumeURL, a.LinkedIn, a.Portfolio, a.HeardFrom,
		a.Status, a.AppliedDate,
	)
	return err
}

func (r *PostgresApplicationRepository) ExistsByJobAndEmail(ctx context.Context, jobID, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND email = $2)`,
		jobID, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

const applicationColumns = `a.id, a.job_id, COALESCE(a.user_id::text, ''), a.full_name, a.email,
	COALESCE(a.phone, ''), COALESCE(a.cover_letter, ''), COALESCE(a.resume_url, ''),
	COALESCE(a.linkedin, ''), COALESCE(a.portfolio, ''), COALESCE(a.heard_from, ''),
	a.status, a.created_at, j.title, j.company`

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID string) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+applicationColumns+`
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+applicationColumns+`
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, applicationID, status string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2 WHERE id = $1`, applicationID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE user_id = $1`, userID)
	if err := row.Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}

func scanApplications(rows database.Rows) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		err := rows.Scan(
			&a.ID, &a.JobID, &a.UserID, &a.FullName, &a.Email,
			&a.Phone, &a.CoverLetter, &a.ResumeURL,
			&a.LinkedIn, &a.Portfolio, &a.HeardFrom,
			&a.Status, &a.AppliedDate, &a.JobTitle, &a.Company,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
