package recommend

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"jobportal/pkg/application"
	"jobportal/pkg/auth"
	"jobportal/pkg/job"
	"jobportal/pkg/nlp"
	"jobportal/pkg/resume"
	"jobportal/pkg/savedjob"
)

// ErrForbidden is returned for non-candidate requesters.
var ErrForbidden = errors.New("only candidates can get recommendations")

// minScore is the coverage threshold below which a job is dropped, inclusive
// at the boundary.
const minScore = 0.2

// MatchResult is a job posting annotated with its coverage score and the
// candidate's saved/application state. Derived on demand, never persisted.
type MatchResult struct {
	job.Job
	MatchScore        float64             `json:"matchScore"`
	IsSaved           bool                `json:"isSaved"`
	ApplicationStatus *application.Status `json:"applicationStatus"`
}

// UseCase ranks open job postings against a candidate's parsed skills.
type UseCase interface {
	RecommendedJobs(ctx context.Context, actorID uuid.UUID, role auth.Role) ([]MatchResult, error)
}

type service struct {
	resumes resume.Repository
	jobs    job.Repository
	saved   savedjob.Repository
	apps    application.Repository
	nlp     *nlp.Extractor
}

func NewService(resumes resume.Repository, jobs job.Repository, saved savedjob.Repository, apps application.Repository, n *nlp.Extractor) UseCase {
	return &service{resumes: resumes, jobs: jobs, saved: saved, apps: apps, nlp: n}
}

func (s *service) RecommendedJobs(ctx context.Context, actorID uuid.UUID, role auth.Role) ([]MatchResult, error) {
	if role != auth.RoleCandidate {
		return nil, ErrForbidden
	}

	parsed, err := s.resumes.GetByOwner(ctx, actorID)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			// An unparsed candidate simply has no recommendations.
			return []MatchResult{}, nil
		}
		return nil, err
	}
	candidateSkills := make(map[string]struct{}, len(parsed.Skills))
	for _, sk := range parsed.Skills {
		candidateSkills[sk] = struct{}{}
	}

	open, err := s.jobs.ListOpen(ctx, job.Filter{})
	if err != nil {
		return nil, err
	}

	// Saved-job set and application-status map are independent batch reads;
	// fetch them in parallel and join before scoring.
	var (
		savedSet  map[uuid.UUID]struct{}
		statusMap map[uuid.UUID]application.Status
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		savedSet, err = s.saved.JobIDsByCandidate(gctx, actorID)
		return err
	})
	g.Go(func() error {
		apps, err := s.apps.ListByApplicant(gctx, actorID)
		if err != nil {
			return err
		}
		statusMap = make(map[uuid.UUID]application.Status, len(apps))
		for _, a := range apps {
			statusMap[a.JobID] = a.Status
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recommended := []MatchResult{}
	for _, j := range open {
		score, ok := s.coverageScore(candidateSkills, j)
		if !ok || score < minScore {
			continue
		}
		res := MatchResult{
			Job:        j,
			MatchScore: math.Round(score*100) / 100,
		}
		if _, saved := savedSet[j.ID]; saved {
			res.IsSaved = true
		}
		if st, applied := statusMap[j.ID]; applied {
			res.ApplicationStatus = &st
		}
		recommended = append(recommended, res)
	}

	sort.SliceStable(recommended, func(i, k int) bool {
		return recommended[i].MatchScore > recommended[k].MatchScore
	})
	return recommended, nil
}

// coverageScore derives the job's implied skill set from its text and returns
// the fraction of it covered by the candidate. ok is false when either side's
// skill set is empty, which excludes the job from the output entirely.
func (s *service) coverageScore(candidateSkills map[string]struct{}, j job.Job) (float64, bool) {
	jobSkills := s.nlp.Skills(s.nlp.Normalize(j.Description + "\n" + j.Requirements))
	if len(jobSkills) == 0 || len(candidateSkills) == 0 {
		return 0, false
	}
	common := 0
	for _, sk := range jobSkills {
		if _, ok := candidateSkills[sk]; ok {
			common++
		}
	}
	return float64(common) / float64(len(jobSkills)), true
}
