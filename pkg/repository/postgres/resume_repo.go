package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobportal/pkg/resume"
)

// ParsedResumeRepository stores one parsed-resume record per candidate.
type ParsedResumeRepository struct {
	pool *pgxpool.Pool
}

func NewParsedResumeRepository(pool *pgxpool.Pool) (*ParsedResumeRepository, error) {
	r := &ParsedResumeRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ParsedResumeRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS parsed_resumes (
	owner_id UUID PRIMARY KEY,
	file_name TEXT NOT NULL,
	skills TEXT[] NOT NULL DEFAULT '{}',
	total_experience_years INT NOT NULL DEFAULT 0,
	education TEXT NOT NULL DEFAULT '',
	resume_text TEXT NOT NULL DEFAULT '',
	meta JSONB NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

// Upsert atomically inserts or fully replaces the record keyed by owner.
// created_at is preserved on replace, updated_at refreshed.
func (r *ParsedResumeRepository) Upsert(ctx context.Context, rec resume.ParsedResume) (resume.ParsedResume, error) {
	meta, err := json.Marshal(rec.Meta)
	if err != nil {
		return resume.ParsedResume{}, err
	}
	now := time.Now().UTC()
	row := r.pool.QueryRow(ctx, `
INSERT INTO parsed_resumes (owner_id, file_name, skills, total_experience_years, education, resume_text, meta, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
ON CONFLICT (owner_id) DO UPDATE SET
	file_name = EXCLUDED.file_name,
	skills = EXCLUDED.skills,
	total_experience_years = EXCLUDED.total_experience_years,
	education = EXCLUDED.education,
	resume_text = EXCLUDED.resume_text,
	meta = EXCLUDED.meta,
	updated_at = EXCLUDED.updated_at
RETURNING owner_id, file_name, skills, total_experience_years, education, resume_text, meta, created_at, updated_at
`, rec.OwnerID, rec.FileName, rec.Skills, rec.TotalExperienceYears, rec.Education, rec.ResumeText, meta, now)
	return scanParsedResume(row)
}

func (r *ParsedResumeRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (resume.ParsedResume, error) {
	row := r.pool.QueryRow(ctx, `
SELECT owner_id, file_name, skills, total_experience_years, education, resume_text, meta, created_at, updated_at
FROM parsed_resumes WHERE owner_id = $1
`, ownerID)
	return scanParsedResume(row)
}

func (r *ParsedResumeRepository) FindByOwnerAndFile(ctx context.Context, ownerID uuid.UUID, fileName string) (resume.ParsedResume, error) {
	row := r.pool.QueryRow(ctx, `
SELECT owner_id, file_name, skills, total_experience_years, education, resume_text, meta, created_at, updated_at
FROM parsed_resumes WHERE owner_id = $1 AND file_name = $2
`, ownerID, fileName)
	return scanParsedResume(row)
}

func scanParsedResume(row pgx.Row) (resume.ParsedResume, error) {
	var rec resume.ParsedResume
	var meta []byte
	err := row.Scan(&rec.OwnerID, &rec.FileName, &rec.Skills, &rec.TotalExperienceYears,
		&rec.Education, &rec.ResumeText, &meta, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.ParsedResume{}, resume.ErrNotFound
		}
		return resume.ParsedResume{}, err
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &rec.Meta); err != nil {
			return resume.ParsedResume{}, err
		}
	}
	if rec.Skills == nil {
		rec.Skills = []string{}
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.UpdatedAt = rec.UpdatedAt.UTC()
	return rec, nil
}
