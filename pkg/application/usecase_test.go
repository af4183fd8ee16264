package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/pkg/auth"
	"jobportal/pkg/job"
)

type memAppRepo struct {
	apps map[uuid.UUID]Application
}

func newMemAppRepo() *memAppRepo {
	return &memAppRepo{apps: map[uuid.UUID]Application{}}
}

func (r *memAppRepo) Create(_ context.Context, a Application) error {
	r.apps[a.ID] = a
	return nil
}

func (r *memAppRepo) GetByID(_ context.Context, id uuid.UUID) (Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	return a, nil
}

func (r *memAppRepo) GetByJobAndApplicant(_ context.Context, jobID, applicantID uuid.UUID) (Application, error) {
	for _, a := range r.apps {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return a, nil
		}
	}
	return Application{}, ErrNotFound
}

func (r *memAppRepo) ListByApplicant(_ context.Context, applicantID uuid.UUID) ([]Application, error) {
	var out []Application
	for _, a := range r.apps {
		if a.ApplicantID == applicantID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAppRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]Application, error) {
	var out []Application
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAppRepo) UpdateStatus(_ context.Context, id uuid.UUID, status Status) error {
	a, ok := r.apps[id]
	if !ok {
		return ErrNotFound
	}
	a.Status = status
	r.apps[id] = a
	return nil
}

func (r *memAppRepo) CountByJobIDs(_ context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := map[uuid.UUID]int{}
	for _, a := range r.apps {
		counts[a.JobID]++
	}
	out := map[uuid.UUID]int{}
	for _, id := range jobIDs {
		if n, ok := counts[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

func (r *memAppRepo) Count(_ context.Context) (int, error) {
	return len(r.apps), nil
}

type stubJobRepo struct {
	job.Repository
	jobs map[uuid.UUID]job.Job
}

func (r *stubJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func newFixture(jobs ...job.Job) (UseCase, *memAppRepo) {
	jr := &stubJobRepo{jobs: map[uuid.UUID]job.Job{}}
	for _, j := range jobs {
		jr.jobs[j.ID] = j
	}
	repo := newMemAppRepo()
	return NewService(repo, jr), repo
}

func TestApply(t *testing.T) {
	owner := uuid.New()
	open := job.Job{ID: uuid.New(), CompanyID: owner, Title: "Dev"}
	closed := job.Job{ID: uuid.New(), CompanyID: owner, Title: "Old", IsClosed: true}
	svc, _ := newFixture(open, closed)
	candidate := uuid.New()

	t.Run("employers cannot apply", func(t *testing.T) {
		_, err := svc.Apply(context.Background(), owner, auth.RoleEmployer, open.ID, "")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown job", func(t *testing.T) {
		_, err := svc.Apply(context.Background(), candidate, auth.RoleCandidate, uuid.New(), "")
		assert.ErrorIs(t, err, job.ErrNotFound)
	})

	t.Run("closed job", func(t *testing.T) {
		_, err := svc.Apply(context.Background(), candidate, auth.RoleCandidate, closed.ID, "")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("first application succeeds, second is rejected", func(t *testing.T) {
		a, err := svc.Apply(context.Background(), candidate, auth.RoleCandidate, open.ID, "cv.pdf")
		require.NoError(t, err)
		assert.Equal(t, StatusApplied, a.Status)
		assert.Equal(t, open.ID, a.JobID)
		assert.Equal(t, candidate, a.ApplicantID)

		_, err = svc.Apply(context.Background(), candidate, auth.RoleCandidate, open.ID, "cv.pdf")
		assert.ErrorIs(t, err, ErrAlreadyApplied)
	})
}

func TestListByJob(t *testing.T) {
	owner := uuid.New()
	j := job.Job{ID: uuid.New(), CompanyID: owner, Title: "Dev"}
	svc, _ := newFixture(j)
	candidate := uuid.New()

	_, err := svc.Apply(context.Background(), candidate, auth.RoleCandidate, j.ID, "")
	require.NoError(t, err)

	t.Run("owner sees applications", func(t *testing.T) {
		apps, err := svc.ListByJob(context.Background(), owner, auth.RoleEmployer, j.ID)
		require.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("other employer denied", func(t *testing.T) {
		_, err := svc.ListByJob(context.Background(), uuid.New(), auth.RoleEmployer, j.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("candidate denied", func(t *testing.T) {
		_, err := svc.ListByJob(context.Background(), candidate, auth.RoleCandidate, j.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestUpdateStatus(t *testing.T) {
	owner := uuid.New()
	j := job.Job{ID: uuid.New(), CompanyID: owner, Title: "Dev"}
	svc, repo := newFixture(j)
	candidate := uuid.New()

	a, err := svc.Apply(context.Background(), candidate, auth.RoleCandidate, j.ID, "")
	require.NoError(t, err)

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.UpdateStatus(context.Background(), owner, auth.RoleEmployer, a.ID, Status("Archived"))
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("non-owner denied", func(t *testing.T) {
		_, err := svc.UpdateStatus(context.Background(), uuid.New(), auth.RoleEmployer, a.ID, StatusAccepted)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("owner moves status", func(t *testing.T) {
		got, err := svc.UpdateStatus(context.Background(), owner, auth.RoleEmployer, a.ID, StatusInReview)
		require.NoError(t, err)
		assert.Equal(t, StatusInReview, got.Status)

		stored, err := repo.GetByID(context.Background(), a.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusInReview, stored.Status)
	})
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusApplied, StatusInReview, StatusRejected, StatusAccepted} {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("Archived").Valid())
}
