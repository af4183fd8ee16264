package savedjob

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("saved job not found")

// SavedJob is a candidate's bookmark on a job posting.
type SavedJob struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"jobId"`
	CandidateID uuid.UUID `json:"candidateId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Repository is the persistence port for saved jobs.
type Repository interface {
	Save(ctx context.Context, s SavedJob) error
	Delete(ctx context.Context, candidateID, jobID uuid.UUID) error
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]SavedJob, error)
	// JobIDsByCandidate returns the bookmark set in one round trip.
	JobIDsByCandidate(ctx context.Context, candidateID uuid.UUID) (map[uuid.UUID]struct{}, error)
}
