package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/api/http/presenter"
	"jobportal/pkg/application"
	"jobportal/pkg/job"
	"jobportal/pkg/recommend"
	"jobportal/pkg/savedjob"
)

type JobHandler struct {
	uc        job.UseCase
	recommend recommend.UseCase
	saved     savedjob.Repository
	apps      application.Repository
}

func NewJobHandler(uc job.UseCase, rec recommend.UseCase, saved savedjob.Repository, apps application.Repository) *JobHandler {
	return &JobHandler{uc: uc, recommend: rec, saved: saved, apps: apps}
}

// jobWithStatus annotates a posting with the viewing candidate's state.
type jobWithStatus struct {
	job.Job
	IsSaved           bool                `json:"isSaved"`
	ApplicationStatus *application.Status `json:"applicationStatus"`
}

// jobWithCount annotates an employer's posting with its application count.
type jobWithCount struct {
	job.Job
	ApplicationCount int `json:"applicationCount"`
}

// Create posts a new job.
// @Summary Create job posting
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body job.Input true "job posting"
// @Security BearerAuth
// @Success 201 {object} job.Job
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	actorID, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	var in job.Input
	if err := c.BodyParser(&in); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	j, err := h.uc.Create(c.Context(), actorID, role, in)
	if err != nil {
		if errors.Is(err, job.ErrForbidden) {
			return presenter.Error(c, http.StatusForbidden, "only employers can post jobs")
		}
		var ve job.ErrValidation
		if errors.As(err, &ve) {
			return presenter.Error(c, http.StatusBadRequest, ve.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create job")
	}
	return presenter.JSON(c, http.StatusCreated, j)
}

// List returns open, approved postings with optional filters. When a userId
// query parameter is supplied, each posting is annotated with that
// candidate's saved/application state.
// @Summary List open jobs
// @Tags    jobs
// @Produce json
// @Param   keyword   query string false "title keyword"
// @Param   location  query string false "location"
// @Param   category  query string false "category"
// @Param   type      query string false "job type"
// @Param   minSalary query int    false "minimum salary"
// @Param   maxSalary query int    false "maximum salary"
// @Param   userId    query string false "candidate id for annotations"
// @Success 200 {array} jobWithStatus
// @Router  /jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	f := job.Filter{
		Keyword:   strings.TrimSpace(c.Query("keyword")),
		Location:  strings.TrimSpace(c.Query("location")),
		Category:  strings.TrimSpace(c.Query("category")),
		Type:      strings.TrimSpace(c.Query("type")),
		MinSalary: queryInt(c, "minSalary"),
		MaxSalary: queryInt(c, "maxSalary"),
	}
	jobs, err := h.uc.List(c.Context(), f)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list jobs")
	}

	var (
		savedSet  map[uuid.UUID]struct{}
		statusMap = map[uuid.UUID]application.Status{}
	)
	if userID, err := uuid.Parse(c.Query("userId")); err == nil {
		if savedSet, err = h.saved.JobIDsByCandidate(c.Context(), userID); err != nil {
			return presenter.Error(c, http.StatusInternalServerError, "failed to load saved jobs")
		}
		apps, err := h.apps.ListByApplicant(c.Context(), userID)
		if err != nil {
			return presenter.Error(c, http.StatusInternalServerError, "failed to load applications")
		}
		for _, a := range apps {
			statusMap[a.JobID] = a.Status
		}
	}

	out := make([]jobWithStatus, 0, len(jobs))
	for _, j := range jobs {
		v := jobWithStatus{Job: j}
		if _, ok := savedSet[j.ID]; ok {
			v.IsSaved = true
		}
		if st, ok := statusMap[j.ID]; ok {
			v.ApplicationStatus = &st
		}
		out = append(out, v)
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Recommended ranks open postings against the candidate's parsed resume.
// @Summary Recommended jobs for the authenticated candidate
// @Tags    jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} recommend.MatchResult
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /jobs/recommended [get]
func (h *JobHandler) Recommended(c *fiber.Ctx) error {
	actorID, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	results, err := h.recommend.RecommendedJobs(c.Context(), actorID, role)
	if err != nil {
		if errors.Is(err, recommend.ErrForbidden) {
			return presenter.Error(c, http.StatusForbidden, "only candidates can get recommendations")
		}
		return presenter.ErrorWithCause(c, http.StatusInternalServerError, "failed to get recommended jobs", err)
	}
	return presenter.JSON(c, http.StatusOK, results)
}

// ListEmployer returns the employer's own postings with application counts.
// @Summary Employer's job postings
// @Tags    jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} jobWithCount
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /jobs/employer [get]
func (h *JobHandler) ListEmployer(c *fiber.Ctx) error {
	actorID, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	jobs, err := h.uc.ListMine(c.Context(), actorID, role)
	if err != nil {
		if errors.Is(err, job.ErrForbidden) {
			return presenter.Error(c, http.StatusForbidden, "access denied")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to list jobs")
	}
	ids := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	counts, err := h.apps.CountByJobIDs(c.Context(), ids)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to count applications")
	}
	out := make([]jobWithCount, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobWithCount{Job: j, ApplicationCount: counts[j.ID]})
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// GetByID returns a single posting; an optional userId query parameter adds
// that candidate's application status.
// @Summary Get job by id
// @Tags    jobs
// @Produce json
// @Param   id path string true "job id (UUID)"
// @Param   userId query string false "candidate id for annotations"
// @Success 200 {object} jobWithStatus
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid job id")
	}
	j, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "job not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load job")
	}
	v := jobWithStatus{Job: j}
	if userID, err := uuid.Parse(c.Query("userId")); err == nil {
		if a, err := h.apps.GetByJobAndApplicant(c.Context(), id, userID); err == nil {
			v.ApplicationStatus = &a.Status
		}
	}
	return presenter.JSON(c, http.StatusOK, v)
}

// Update modifies an owned posting.
// @Summary Update job posting
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   id path string true "job id (UUID)"
// @Param   input body job.Input true "job posting"
// @Security BearerAuth
// @Success 200 {object} job.Job
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	actorID, _, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid job id")
	}
	var in job.Input
	if err := c.BodyParser(&in); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	j, err := h.uc.Update(c.Context(), actorID, id, in)
	if err != nil {
		return h.ownershipError(c, err, "update")
	}
	return presenter.JSON(c, http.StatusOK, j)
}

// Delete removes an owned posting.
// @Summary Delete job posting
// @Tags    jobs
// @Produce json
// @Param   id path string true "job id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	actorID, _, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid job id")
	}
	if err := h.uc.Delete(c.Context(), actorID, id); err != nil {
		return h.ownershipError(c, err, "delete")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "job deleted successfully"})
}

// ToggleClose flips the open/closed state of an owned posting.
// @Summary Toggle job closed state
// @Tags    jobs
// @Produce json
// @Param   id path string true "job id (UUID)"
// @Security BearerAuth
// @Success 200 {object} job.Job
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id}/toggle-close [put]
func (h *JobHandler) ToggleClose(c *fiber.Ctx) error {
	actorID, _, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid job id")
	}
	j, err := h.uc.ToggleClose(c.Context(), actorID, id)
	if err != nil {
		return h.ownershipError(c, err, "close")
	}
	return presenter.JSON(c, http.StatusOK, j)
}

func (h *JobHandler) ownershipError(c *fiber.Ctx, err error, action string) error {
	switch {
	case errors.Is(err, job.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "job not found")
	case errors.Is(err, job.ErrForbidden):
		return presenter.Error(c, http.StatusForbidden, "not authorized to "+action+" this job")
	default:
		return presenter.Error(c, http.StatusInternalServerError, "failed to "+action+" job")
	}
}
