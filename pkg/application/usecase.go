package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jobportal/pkg/auth"
	"jobportal/pkg/job"
)

// UseCase covers the application-status workflow.
type UseCase interface {
	Apply(ctx context.Context, actorID uuid.UUID, role auth.Role, jobID uuid.UUID, resumeLink string) (Application, error)
	ListMine(ctx context.Context, actorID uuid.UUID, role auth.Role) ([]Application, error)
	ListByJob(ctx context.Context, actorID uuid.UUID, role auth.Role, jobID uuid.UUID) ([]Application, error)
	UpdateStatus(ctx context.Context, actorID uuid.UUID, role auth.Role, id uuid.UUID, status Status) (Application, error)
}

type service struct {
	repo Repository
	jobs job.Repository
}

func NewService(repo Repository, jobs job.Repository) UseCase {
	return &service{repo: repo, jobs: jobs}
}

func (s *service) Apply(ctx context.Context, actorID uuid.UUID, role auth.Role, jobID uuid.UUID, resumeLink string) (Application, error) {
	if role != auth.RoleCandidate {
		return Application{}, ErrForbidden
	}
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return Application{}, err
	}
	if j.IsClosed {
		return Application{}, ErrForbidden
	}
	if _, err := s.repo.GetByJobAndApplicant(ctx, jobID, actorID); err == nil {
		return Application{}, ErrAlreadyApplied
	}
	now := time.Now().UTC()
	a := Application{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: actorID,
		Resume:      resumeLink,
		Status:      StatusApplied,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

func (s *service) ListMine(ctx context.Context, actorID uuid.UUID, role auth.Role) ([]Application, error) {
	if role != auth.RoleCandidate {
		return nil, ErrForbidden
	}
	return s.repo.ListByApplicant(ctx, actorID)
}

func (s *service) ListByJob(ctx context.Context, actorID uuid.UUID, role auth.Role, jobID uuid.UUID) ([]Application, error) {
	if role != auth.RoleEmployer {
		return nil, ErrForbidden
	}
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.CompanyID != actorID {
		return nil, ErrForbidden
	}
	return s.repo.ListByJob(ctx, jobID)
}

func (s *service) UpdateStatus(ctx context.Context, actorID uuid.UUID, role auth.Role, id uuid.UUID, status Status) (Application, error) {
	if role != auth.RoleEmployer {
		return Application{}, ErrForbidden
	}
	if !status.Valid() {
		return Application{}, ErrForbidden
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}
	j, err := s.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		return Application{}, err
	}
	if j.CompanyID != actorID {
		return Application{}, ErrForbidden
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return Application{}, err
	}
	a.Status = status
	a.UpdatedAt = time.Now().UTC()
	return a, nil
}
