package savedjob

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"jobportal/pkg/auth"
)

var ErrForbidden = errors.New("only candidates can save jobs")

// UseCase covers bookmarking of job postings.
type UseCase interface {
	Save(ctx context.Context, actorID uuid.UUID, role auth.Role, jobID uuid.UUID) (SavedJob, error)
	Unsave(ctx context.Context, actorID uuid.UUID, role auth.Role, jobID uuid.UUID) error
	ListMine(ctx context.Context, actorID uuid.UUID, role auth.Role) ([]SavedJob, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Save(ctx context.Context, actorID uuid.UUID, role auth.Role, jobID uuid.UUID) (SavedJob, error) {
	if role != auth.RoleCandidate {
		return SavedJob{}, ErrForbidden
	}
	sj := SavedJob{
		ID:          uuid.New(),
		JobID:       jobID,
		CandidateID: actorID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, sj); err != nil {
		return SavedJob{}, err
	}
	return sj, nil
}

func (s *service) Unsave(ctx context.Context, actorID uuid.UUID, role auth.Role, jobID uuid.UUID) error {
	if role != auth.RoleCandidate {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, actorID, jobID)
}

func (s *service) ListMine(ctx context.Context, actorID uuid.UUID, role auth.Role) ([]SavedJob, error) {
	if role != auth.RoleCandidate {
		return nil, ErrForbidden
	}
	return s.repo.ListByCandidate(ctx, actorID)
}
