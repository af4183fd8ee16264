package job

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/pkg/auth"
)

type memJobRepo struct {
	jobs map[uuid.UUID]Job
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: map[uuid.UUID]Job{}}
}

func (r *memJobRepo) Create(_ context.Context, j Job) error {
	r.jobs[j.ID] = j
	return nil
}

func (r *memJobRepo) GetByID(_ context.Context, id uuid.UUID) (Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return j, nil
}

func (r *memJobRepo) Update(_ context.Context, j Job) error {
	if _, ok := r.jobs[j.ID]; !ok {
		return ErrNotFound
	}
	r.jobs[j.ID] = j
	return nil
}

func (r *memJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.jobs[id]; !ok {
		return ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *memJobRepo) ListOpen(_ context.Context, _ Filter) ([]Job, error) {
	var out []Job
	for _, j := range r.jobs {
		if !j.IsClosed && j.IsApproved {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *memJobRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]Job, error) {
	var out []Job
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *memJobRepo) SetApproved(_ context.Context, id uuid.UUID, approved bool) error {
	j, ok := r.jobs[id]
	if !ok {
		return ErrNotFound
	}
	j.IsApproved = approved
	r.jobs[id] = j
	return nil
}

func (r *memJobRepo) ListAll(_ context.Context, _, _ int) ([]Job, error) {
	var out []Job
	for _, j := range r.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (r *memJobRepo) Count(_ context.Context) (int, error) {
	return len(r.jobs), nil
}

func TestCreate(t *testing.T) {
	svc := NewService(newMemJobRepo())
	employer := uuid.New()

	t.Run("candidates cannot post", func(t *testing.T) {
		_, err := svc.Create(context.Background(), uuid.New(), auth.RoleCandidate, Input{Title: "Dev"})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("title required", func(t *testing.T) {
		_, err := svc.Create(context.Background(), employer, auth.RoleEmployer, Input{Title: "  "})
		var ve ErrValidation
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("created open and approved", func(t *testing.T) {
		j, err := svc.Create(context.Background(), employer, auth.RoleEmployer, Input{
			Title: " Backend Dev ", Description: "Go services", SalaryMin: 100, SalaryMax: 200,
		})
		require.NoError(t, err)
		assert.Equal(t, "Backend Dev", j.Title)
		assert.Equal(t, employer, j.CompanyID)
		assert.False(t, j.IsClosed)
		assert.True(t, j.IsApproved)
	})
}

func TestOwnership(t *testing.T) {
	repo := newMemJobRepo()
	svc := NewService(repo)
	owner := uuid.New()
	stranger := uuid.New()

	j, err := svc.Create(context.Background(), owner, auth.RoleEmployer, Input{Title: "Dev"})
	require.NoError(t, err)

	t.Run("update by non-owner", func(t *testing.T) {
		_, err := svc.Update(context.Background(), stranger, j.ID, Input{Title: "Hijacked"})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("delete by non-owner", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(context.Background(), stranger, j.ID), ErrForbidden)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(context.Background(), owner, uuid.New(), Input{Title: "X"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("owner update keeps title on blank", func(t *testing.T) {
		got, err := svc.Update(context.Background(), owner, j.ID, Input{Title: "", Location: "Remote"})
		require.NoError(t, err)
		assert.Equal(t, "Dev", got.Title)
		assert.Equal(t, "Remote", got.Location)
	})
}

func TestToggleClose(t *testing.T) {
	repo := newMemJobRepo()
	svc := NewService(repo)
	owner := uuid.New()

	j, err := svc.Create(context.Background(), owner, auth.RoleEmployer, Input{Title: "Dev"})
	require.NoError(t, err)

	closed, err := svc.ToggleClose(context.Background(), owner, j.ID)
	require.NoError(t, err)
	assert.True(t, closed.IsClosed)

	reopened, err := svc.ToggleClose(context.Background(), owner, j.ID)
	require.NoError(t, err)
	assert.False(t, reopened.IsClosed)
}

func TestListMine(t *testing.T) {
	repo := newMemJobRepo()
	svc := NewService(repo)
	owner := uuid.New()

	_, err := svc.ListMine(context.Background(), owner, auth.RoleCandidate)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Create(context.Background(), owner, auth.RoleEmployer, Input{Title: "A"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), uuid.New(), auth.RoleEmployer, Input{Title: "B"})
	require.NoError(t, err)

	mine, err := svc.ListMine(context.Background(), owner, auth.RoleEmployer)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "A", mine[0].Title)
}
