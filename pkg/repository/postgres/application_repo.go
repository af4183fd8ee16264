package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobportal/pkg/application"
)

const applicationColumns = `id, job_id, applicant_id, resume, status, created_at, updated_at`

// ApplicationRepository implements application.Repository backed by PostgreSQL.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) (*ApplicationRepository, error) {
	r := &ApplicationRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ApplicationRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS applications (
	id UUID PRIMARY KEY,
	job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
	applicant_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	resume TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'Applied',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	UNIQUE (job_id, applicant_id)
);
CREATE INDEX IF NOT EXISTS idx_applications_applicant ON applications(applicant_id);
`)
	return err
}

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO applications (`+applicationColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, a.ID, a.JobID, a.ApplicantID, a.Resume, a.Status, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return application.ErrAlreadyApplied
		}
		return err
	}
	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+applicationColumns+` FROM applications WHERE id = $1
`, id)
	return scanApplication(row)
}

func (r *ApplicationRepository) GetByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (application.Application, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 AND applicant_id = $2
`, jobID, applicantID)
	return scanApplication(row)
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, `
SELECT `+applicationColumns+` FROM applications WHERE applicant_id = $1
ORDER BY created_at DESC
`, applicantID)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, `
SELECT `+applicationColumns+` FROM applications WHERE job_id = $1
ORDER BY created_at DESC
`, jobID)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE applications SET status = $2, updated_at = now() WHERE id = $1
`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) CountByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(jobIDs))
	if len(jobIDs) == 0 {
		return counts, nil
	}
	rows, err := r.pool.Query(ctx, `
SELECT job_id, COUNT(*) FROM applications WHERE job_id = ANY($1) GROUP BY job_id
`, jobIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id uuid.UUID
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

func (r *ApplicationRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&n)
	return n, err
}

func (r *ApplicationRepository) list(ctx context.Context, query string, args ...any) ([]application.Application, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var apps []application.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func scanApplication(row pgx.Row) (application.Application, error) {
	var a application.Application
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Resume, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return a, nil
}
