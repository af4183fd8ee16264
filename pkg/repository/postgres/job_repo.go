package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobportal/pkg/job"
)

const jobColumns = `j.id, j.company_id, j.title, j.description, j.requirements, j.location,
	j.category, j.job_type, j.salary_min, j.salary_max, j.is_closed, j.is_approved,
	j.created_at, j.updated_at`

const jobCompanyColumns = jobColumns + `, u.id, u.name, u.company_name, u.company_logo`

// JobRepository implements job.Repository backed by PostgreSQL (pgx).
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) (*JobRepository, error) {
	r := &JobRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JobRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS jobs (
	id UUID PRIMARY KEY,
	company_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	requirements TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	job_type TEXT NOT NULL DEFAULT '',
	salary_min INT NOT NULL DEFAULT 0,
	salary_max INT NOT NULL DEFAULT 0,
	is_closed BOOLEAN NOT NULL DEFAULT FALSE,
	is_approved BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_jobs_company ON jobs(company_id);
`)
	return err
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO jobs (id, company_id, title, description, requirements, location, category, job_type,
	salary_min, salary_max, is_closed, is_approved, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`, j.ID, j.CompanyID, j.Title, j.Description, j.Requirements, j.Location, j.Category, j.Type,
		j.SalaryMin, j.SalaryMax, j.IsClosed, j.IsApproved, j.CreatedAt, j.UpdatedAt)
	return err
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+jobCompanyColumns+`
FROM jobs j JOIN users u ON u.id = j.company_id
WHERE j.id = $1
`, id)
	return scanJobWithCompany(row)
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE jobs SET title = $2, description = $3, requirements = $4, location = $5,
	category = $6, job_type = $7, salary_min = $8, salary_max = $9,
	is_closed = $10, updated_at = $11
WHERE id = $1
`, j.ID, j.Title, j.Description, j.Requirements, j.Location,
		j.Category, j.Type, j.SalaryMin, j.SalaryMax, j.IsClosed, j.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

// ListOpen returns open, approved postings from unblocked employers, with
// the company profile joined in.
func (r *JobRepository) ListOpen(ctx context.Context, f job.Filter) ([]job.Job, error) {
	var (
		where = []string{"j.is_closed = FALSE", "j.is_approved = TRUE", "u.is_blocked = FALSE"}
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.Keyword != "" {
		where = append(where, "j.title ILIKE "+arg("%"+f.Keyword+"%"))
	}
	if f.Location != "" {
		where = append(where, "j.location ILIKE "+arg("%"+f.Location+"%"))
	}
	if f.Category != "" {
		where = append(where, "j.category = "+arg(f.Category))
	}
	if f.Type != "" {
		where = append(where, "j.job_type = "+arg(f.Type))
	}
	if f.MinSalary > 0 {
		where = append(where, "j.salary_max >= "+arg(f.MinSalary))
	}
	if f.MaxSalary > 0 {
		where = append(where, "j.salary_min <= "+arg(f.MaxSalary))
	}
	query := `
SELECT ` + jobCompanyColumns + `
FROM jobs j JOIN users u ON u.id = j.company_id
WHERE ` + strings.Join(where, " AND ") + `
ORDER BY j.created_at DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobsWithCompany(rows)
}

func (r *JobRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Job, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+jobCompanyColumns+`
FROM jobs j JOIN users u ON u.id = j.company_id
WHERE j.company_id = $1
ORDER BY j.created_at DESC
`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobsWithCompany(rows)
}

func (r *JobRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE jobs SET is_approved = $2, updated_at = now() WHERE id = $1
`, id, approved)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) ListAll(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+jobCompanyColumns+`
FROM jobs j JOIN users u ON u.id = j.company_id
ORDER BY j.created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobsWithCompany(rows)
}

func (r *JobRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n)
	return n, err
}

func scanJobWithCompany(row pgx.Row) (job.Job, error) {
	var j job.Job
	var c job.Company
	err := row.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Requirements, &j.Location,
		&j.Category, &j.Type, &j.SalaryMin, &j.SalaryMax, &j.IsClosed, &j.IsApproved,
		&j.CreatedAt, &j.UpdatedAt,
		&c.ID, &c.Name, &c.CompanyName, &c.CompanyLogo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	j.Company = &c
	j.CreatedAt = j.CreatedAt.UTC()
	j.UpdatedAt = j.UpdatedAt.UTC()
	return j, nil
}

func collectJobsWithCompany(rows pgx.Rows) ([]job.Job, error) {
	var jobs []job.Job
	for rows.Next() {
		j, err := scanJobWithCompany(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
