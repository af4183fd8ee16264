package job

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobportal/pkg/auth"
)

// Input carries employer-supplied posting fields.
type Input struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Location     string `json:"location"`
	Category     string `json:"category"`
	Type         string `json:"type"`
	SalaryMin    int    `json:"salaryMin"`
	SalaryMax    int    `json:"salaryMax"`
}

// UseCase encapsulates posting lifecycle operations.
type UseCase interface {
	Create(ctx context.Context, actorID uuid.UUID, role auth.Role, in Input) (Job, error)
	List(ctx context.Context, f Filter) ([]Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	Update(ctx context.Context, actorID uuid.UUID, id uuid.UUID, in Input) (Job, error)
	Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
	ToggleClose(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (Job, error)
	ListMine(ctx context.Context, actorID uuid.UUID, role auth.Role) ([]Job, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

// ErrValidation is a simple validation failure.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

func (s *service) Create(ctx context.Context, actorID uuid.UUID, role auth.Role, in Input) (Job, error) {
	if role != auth.RoleEmployer {
		return Job{}, ErrForbidden
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return Job{}, ErrValidation("title is required")
	}
	now := time.Now().UTC()
	j := Job{
		ID:           uuid.New(),
		CompanyID:    actorID,
		Title:        in.Title,
		Description:  in.Description,
		Requirements: in.Requirements,
		Location:     in.Location,
		Category:     in.Category,
		Type:         in.Type,
		SalaryMin:    in.SalaryMin,
		SalaryMax:    in.SalaryMax,
		IsApproved:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, j); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (s *service) List(ctx context.Context, f Filter) ([]Job, error) {
	return s.repo.ListOpen(ctx, f)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Job, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, actorID uuid.UUID, id uuid.UUID, in Input) (Job, error) {
	j, err := s.ownedJob(ctx, actorID, id)
	if err != nil {
		return Job{}, err
	}
	if t := strings.TrimSpace(in.Title); t != "" {
		j.Title = t
	}
	j.Description = in.Description
	j.Requirements = in.Requirements
	j.Location = in.Location
	j.Category = in.Category
	j.Type = in.Type
	j.SalaryMin = in.SalaryMin
	j.SalaryMax = in.SalaryMax
	j.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, j); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (s *service) Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	if _, err := s.ownedJob(ctx, actorID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) ToggleClose(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (Job, error) {
	j, err := s.ownedJob(ctx, actorID, id)
	if err != nil {
		return Job{}, err
	}
	j.IsClosed = !j.IsClosed
	j.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, j); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (s *service) ListMine(ctx context.Context, actorID uuid.UUID, role auth.Role) ([]Job, error) {
	if role != auth.RoleEmployer {
		return nil, ErrForbidden
	}
	return s.repo.ListByCompany(ctx, actorID)
}

func (s *service) ownedJob(ctx context.Context, actorID, id uuid.UUID) (Job, error) {
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Job{}, err
	}
	if j.CompanyID != actorID {
		return Job{}, ErrForbidden
	}
	return j, nil
}
