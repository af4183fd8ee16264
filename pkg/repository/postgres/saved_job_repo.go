package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobportal/pkg/savedjob"
)

// SavedJobRepository implements savedjob.Repository backed by PostgreSQL.
type SavedJobRepository struct {
	pool *pgxpool.Pool
}

func NewSavedJobRepository(pool *pgxpool.Pool) (*SavedJobRepository, error) {
	r := &SavedJobRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SavedJobRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS saved_jobs (
	id UUID PRIMARY KEY,
	job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
	candidate_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL,
	UNIQUE (candidate_id, job_id)
);
`)
	return err
}

// Save is idempotent: re-saving an already bookmarked job is a no-op.
func (r *SavedJobRepository) Save(ctx context.Context, s savedjob.SavedJob) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO saved_jobs (id, job_id, candidate_id, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (candidate_id, job_id) DO NOTHING
`, s.ID, s.JobID, s.CandidateID, s.CreatedAt)
	return err
}

func (r *SavedJobRepository) Delete(ctx context.Context, candidateID, jobID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM saved_jobs WHERE candidate_id = $1 AND job_id = $2
`, candidateID, jobID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return savedjob.ErrNotFound
	}
	return nil
}

func (r *SavedJobRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]savedjob.SavedJob, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, job_id, candidate_id, created_at
FROM saved_jobs WHERE candidate_id = $1
ORDER BY created_at DESC
`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var saved []savedjob.SavedJob
	for rows.Next() {
		var s savedjob.SavedJob
		if err := rows.Scan(&s.ID, &s.JobID, &s.CandidateID, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.CreatedAt = s.CreatedAt.UTC()
		saved = append(saved, s)
	}
	return saved, rows.Err()
}

func (r *SavedJobRepository) JobIDsByCandidate(ctx context.Context, candidateID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	rows, err := r.pool.Query(ctx, `
SELECT job_id FROM saved_jobs WHERE candidate_id = $1
`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}
