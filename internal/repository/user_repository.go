package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"gatorhire/internal/database"
	"gatorhire/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, email, password, full_name, title, location, bio, skills, role, created_at`

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	skillsJSON, err := marshalSkills(u.Skills)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO profiles (id, email, password, full_name, title, location, bio, skills, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		u.ID, u.Email, u.PasswordHash, u.FullName, u.Title, u.Location, u.Bio,
		skillsJSON, u.Role, u.CreatedAt,
	)
	return err
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM profiles WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM profiles WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM profiles WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) error {
	skillsJSON, err := marshalSkills(u.Skills)
	if err != nil {
		return err
	}
	affected, err := r.db.Exec(ctx, `
		UPDATE profiles SET full_name = $2, title = $3, location = $4, bio = $5, skills = $6
		WHERE id = $1`,
		u.ID, u.FullName, u.Title, u.Location, u.Bio, skillsJSON,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func marshalSkills(skills []string) ([]byte, error) {
	if skills == nil {
		return nil, nil
	}
	return json.Marshal(skills)
}

type userRow interface {
	Scan(dest ...any) error
}

func scanUser(row userRow) (user.User, error) {
	var u user.User
	var skillsJSON []byte
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName,
		&u.Title, &u.Location, &u.Bio, &skillsJSON,
		&u.Role, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	if len(skillsJSON) > 0 {
		_ = json.Unmarshal(skillsJSON, &u.Skills)
	}
	return u, nil
}
