package recommend

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/pkg/application"
	"jobportal/pkg/auth"
	"jobportal/pkg/job"
	"jobportal/pkg/nlp"
	"jobportal/pkg/resume"
	"jobportal/pkg/savedjob"
)

type fakeResumeRepo struct {
	rec resume.ParsedResume
	err error
}

func (r *fakeResumeRepo) FindByOwnerAndFile(_ context.Context, _ uuid.UUID, _ string) (resume.ParsedResume, error) {
	return r.rec, r.err
}

func (r *fakeResumeRepo) GetByOwner(_ context.Context, _ uuid.UUID) (resume.ParsedResume, error) {
	return r.rec, r.err
}

func (r *fakeResumeRepo) Upsert(_ context.Context, rec resume.ParsedResume) (resume.ParsedResume, error) {
	return rec, nil
}

type fakeJobRepo struct {
	job.Repository
	open []job.Job
}

func (r *fakeJobRepo) ListOpen(_ context.Context, _ job.Filter) ([]job.Job, error) {
	return r.open, nil
}

type fakeSavedRepo struct {
	savedjob.Repository
	ids map[uuid.UUID]struct{}
}

func (r *fakeSavedRepo) JobIDsByCandidate(_ context.Context, _ uuid.UUID) (map[uuid.UUID]struct{}, error) {
	return r.ids, nil
}

type fakeAppRepo struct {
	application.Repository
	apps []application.Application
}

func (r *fakeAppRepo) ListByApplicant(_ context.Context, _ uuid.UUID) ([]application.Application, error) {
	return r.apps, nil
}

func openJob(id uuid.UUID, description string) job.Job {
	return job.Job{ID: id, Title: "posting", Description: description}
}

func newTestService(resumes *fakeResumeRepo, jobs *fakeJobRepo, saved *fakeSavedRepo, apps *fakeAppRepo) UseCase {
	if saved == nil {
		saved = &fakeSavedRepo{}
	}
	if apps == nil {
		apps = &fakeAppRepo{}
	}
	return NewService(resumes, jobs, saved, apps, nlp.NewDefaultExtractor())
}

func TestRecommendedJobsRejectsNonCandidates(t *testing.T) {
	svc := newTestService(&fakeResumeRepo{}, &fakeJobRepo{}, nil, nil)
	for _, role := range []auth.Role{auth.RoleEmployer, auth.RoleAdmin} {
		_, err := svc.RecommendedJobs(context.Background(), uuid.New(), role)
		assert.ErrorIs(t, err, ErrForbidden)
	}
}

func TestRecommendedJobsWithoutParsedResume(t *testing.T) {
	svc := newTestService(
		&fakeResumeRepo{err: resume.ErrNotFound},
		&fakeJobRepo{open: []job.Job{openJob(uuid.New(), "python and sql")}},
		nil, nil,
	)
	got, err := svc.RecommendedJobs(context.Background(), uuid.New(), auth.RoleCandidate)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecommendedJobsScoring(t *testing.T) {
	full := uuid.New()
	partial := uuid.New()
	miss := uuid.New()
	noSkills := uuid.New()

	svc := newTestService(
		&fakeResumeRepo{rec: resume.ParsedResume{Skills: []string{"python", "sql"}}},
		&fakeJobRepo{open: []job.Job{
			openJob(miss, "react and node and css"),
			openJob(partial, "python, react and mongodb"),
			openJob(full, "python and sql"),
			openJob(noSkills, "no technologies mentioned"),
		}},
		nil, nil,
	)

	got, err := svc.RecommendedJobs(context.Background(), uuid.New(), auth.RoleCandidate)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Descending by score; scores rounded to two decimals, within [0, 1].
	assert.Equal(t, full, got[0].ID)
	assert.Equal(t, 1.0, got[0].MatchScore)
	assert.Equal(t, partial, got[1].ID)
	assert.Equal(t, 0.33, got[1].MatchScore)
	for _, r := range got {
		assert.GreaterOrEqual(t, r.MatchScore, 0.0)
		assert.LessOrEqual(t, r.MatchScore, 1.0)
	}
}

func TestRecommendedJobsThresholdInclusive(t *testing.T) {
	atThreshold := uuid.New()
	below := uuid.New()

	svc := newTestService(
		&fakeResumeRepo{rec: resume.ParsedResume{Skills: []string{"python"}}},
		&fakeJobRepo{open: []job.Job{
			// 1 of 5 vocabulary skills covered: exactly 0.2.
			openJob(atThreshold, "python react node css html"),
			// 1 of 6: below the threshold.
			openJob(below, "python react node css html sql"),
		}},
		nil, nil,
	)

	got, err := svc.RecommendedJobs(context.Background(), uuid.New(), auth.RoleCandidate)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, atThreshold, got[0].ID)
	assert.Equal(t, 0.2, got[0].MatchScore)
}

func TestRecommendedJobsEmptyCandidateSkills(t *testing.T) {
	svc := newTestService(
		&fakeResumeRepo{rec: resume.ParsedResume{Skills: []string{}}},
		&fakeJobRepo{open: []job.Job{openJob(uuid.New(), "python and sql")}},
		nil, nil,
	)
	got, err := svc.RecommendedJobs(context.Background(), uuid.New(), auth.RoleCandidate)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecommendedJobsAnnotations(t *testing.T) {
	savedID := uuid.New()
	appliedID := uuid.New()

	svc := newTestService(
		&fakeResumeRepo{rec: resume.ParsedResume{Skills: []string{"python"}}},
		&fakeJobRepo{open: []job.Job{
			openJob(savedID, "python"),
			openJob(appliedID, "python"),
		}},
		&fakeSavedRepo{ids: map[uuid.UUID]struct{}{savedID: {}}},
		&fakeAppRepo{apps: []application.Application{
			{JobID: appliedID, Status: application.StatusApplied},
		}},
	)

	got, err := svc.RecommendedJobs(context.Background(), uuid.New(), auth.RoleCandidate)
	require.NoError(t, err)
	require.Len(t, got, 2)

	byID := map[uuid.UUID]MatchResult{}
	for _, r := range got {
		byID[r.ID] = r
	}
	assert.True(t, byID[savedID].IsSaved)
	assert.Nil(t, byID[savedID].ApplicationStatus)
	assert.False(t, byID[appliedID].IsSaved)
	require.NotNil(t, byID[appliedID].ApplicationStatus)
	assert.Equal(t, application.StatusApplied, *byID[appliedID].ApplicationStatus)
}

func TestRecommendedJobsRequirementsContribute(t *testing.T) {
	id := uuid.New()
	j := job.Job{ID: id, Title: "posting", Requirements: "must know aws and sql"}

	svc := newTestService(
		&fakeResumeRepo{rec: resume.ParsedResume{Skills: []string{"aws", "sql"}}},
		&fakeJobRepo{open: []job.Job{j}},
		nil, nil,
	)
	got, err := svc.RecommendedJobs(context.Background(), uuid.New(), auth.RoleCandidate)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].MatchScore)
}
