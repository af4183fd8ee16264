package admin

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"jobportal/pkg/application"
	"jobportal/pkg/auth"
	"jobportal/pkg/job"
)

var ErrForbidden = errors.New("admin access required")

// Stats is the moderation dashboard summary.
type Stats struct {
	Candidates   int `json:"candidates"`
	Employers    int `json:"employers"`
	Jobs         int `json:"jobs"`
	Applications int `json:"applications"`
}

// UseCase covers moderation of accounts and postings.
type UseCase interface {
	ListCandidates(ctx context.Context, role auth.Role) ([]auth.User, error)
	SetCandidateActive(ctx context.Context, role auth.Role, id uuid.UUID, active bool) error
	DeleteCandidate(ctx context.Context, role auth.Role, id uuid.UUID) error
	ListEmployers(ctx context.Context, role auth.Role) ([]auth.User, error)
	SetEmployerBlocked(ctx context.Context, role auth.Role, id uuid.UUID, blocked bool) error
	ListJobs(ctx context.Context, role auth.Role, limit, offset int) ([]job.Job, error)
	SetJobApproved(ctx context.Context, role auth.Role, id uuid.UUID, approved bool) error
	GetStats(ctx context.Context, role auth.Role) (Stats, error)
}

type service struct {
	users auth.UserRepository
	jobs  job.Repository
	apps  application.Repository
}

func NewService(users auth.UserRepository, jobs job.Repository, apps application.Repository) UseCase {
	return &service{users: users, jobs: jobs, apps: apps}
}

func (s *service) ListCandidates(ctx context.Context, role auth.Role) ([]auth.User, error) {
	if role != auth.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.users.ListByRole(ctx, auth.RoleCandidate)
}

func (s *service) SetCandidateActive(ctx context.Context, role auth.Role, id uuid.UUID, active bool) error {
	if err := s.requireUser(ctx, role, id, auth.RoleCandidate); err != nil {
		return err
	}
	return s.users.SetActive(ctx, id, active)
}

func (s *service) DeleteCandidate(ctx context.Context, role auth.Role, id uuid.UUID) error {
	if err := s.requireUser(ctx, role, id, auth.RoleCandidate); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}

func (s *service) ListEmployers(ctx context.Context, role auth.Role) ([]auth.User, error) {
	if role != auth.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.users.ListByRole(ctx, auth.RoleEmployer)
}

func (s *service) SetEmployerBlocked(ctx context.Context, role auth.Role, id uuid.UUID, blocked bool) error {
	if err := s.requireUser(ctx, role, id, auth.RoleEmployer); err != nil {
		return err
	}
	return s.users.SetBlocked(ctx, id, blocked)
}

func (s *service) ListJobs(ctx context.Context, role auth.Role, limit, offset int) ([]job.Job, error) {
	if role != auth.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.jobs.ListAll(ctx, limit, offset)
}

func (s *service) SetJobApproved(ctx context.Context, role auth.Role, id uuid.UUID, approved bool) error {
	if role != auth.RoleAdmin {
		return ErrForbidden
	}
	return s.jobs.SetApproved(ctx, id, approved)
}

func (s *service) GetStats(ctx context.Context, role auth.Role) (Stats, error) {
	if role != auth.RoleAdmin {
		return Stats{}, ErrForbidden
	}
	var st Stats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		st.Candidates, err = s.users.CountByRole(gctx, auth.RoleCandidate)
		return err
	})
	g.Go(func() (err error) {
		st.Employers, err = s.users.CountByRole(gctx, auth.RoleEmployer)
		return err
	})
	g.Go(func() (err error) {
		st.Jobs, err = s.jobs.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		st.Applications, err = s.apps.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return st, nil
}

// requireUser checks admin role and that the target user exists with the
// expected role.
func (s *service) requireUser(ctx context.Context, role auth.Role, id uuid.UUID, want auth.Role) error {
	if role != auth.RoleAdmin {
		return ErrForbidden
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.Role != want {
		return auth.ErrNotFound
	}
	return nil
}
