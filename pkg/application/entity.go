package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status of an application in the review workflow.
type Status string

const (
	StatusApplied  Status = "Applied"
	StatusInReview Status = "In Review"
	StatusRejected Status = "Rejected"
	StatusAccepted Status = "Accepted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusInReview, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

var (
	ErrNotFound       = errors.New("application not found")
	ErrAlreadyApplied = errors.New("already applied to this job")
	ErrForbidden      = errors.New("not allowed")
)

// Application links a candidate to a job posting.
type Application struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"jobId"`
	ApplicantID uuid.UUID `json:"applicantId"`
	Resume      string    `json:"resume,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Repository is the persistence port for applications.
type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (Application, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	// CountByJobIDs returns per-job application counts in one round trip.
	CountByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]int, error)
	Count(ctx context.Context) (int, error)
}
