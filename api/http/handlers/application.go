package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/api/http/presenter"
	"jobportal/pkg/application"
	"jobportal/pkg/job"
)

type ApplicationHandler struct {
	uc application.UseCase
}

func NewApplicationHandler(uc application.UseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type applyRequest struct {
	Resume string `json:"resume"`
}

type updateStatusRequest struct {
	Status application.Status `json:"status"`
}

// Apply submits an application to an open posting.
// @Summary Apply to a job
// @Tags    applications
// @Accept  json
// @Produce json
// @Param   jobId path string true "job id (UUID)"
// @Param   input body applyRequest false "optional resume link"
// @Security BearerAuth
// @Success 201 {object} application.Application
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /applications/{jobId} [post]
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	actorID, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid job id")
	}
	var req applyRequest
	_ = c.BodyParser(&req)

	a, err := h.uc.Apply(c.Context(), actorID, role, jobID, req.Resume)
	if err != nil {
		switch {
		case errors.Is(err, job.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "job not found")
		case errors.Is(err, application.ErrAlreadyApplied):
			return presenter.Error(c, http.StatusConflict, "already applied to this job")
		case errors.Is(err, application.ErrForbidden):
			return presenter.Error(c, http.StatusForbidden, "cannot apply to this job")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to apply")
		}
	}
	return presenter.JSON(c, http.StatusCreated, a)
}

// ListMine returns the authenticated candidate's applications.
// @Summary My applications
// @Tags    applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} application.Application
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /applications/my [get]
func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	actorID, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	apps, err := h.uc.ListMine(c.Context(), actorID, role)
	if err != nil {
		if errors.Is(err, application.ErrForbidden) {
			return presenter.Error(c, http.StatusForbidden, "only candidates have applications")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to list applications")
	}
	return presenter.JSON(c, http.StatusOK, apps)
}

// ListByJob returns applications for one of the employer's postings.
// @Summary Applications for a job
// @Tags    applications
// @Produce json
// @Param   jobId path string true "job id (UUID)"
// @Security BearerAuth
// @Success 200 {array} application.Application
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/job/{jobId} [get]
func (h *ApplicationHandler) ListByJob(c *fiber.Ctx) error {
	actorID, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid job id")
	}
	apps, err := h.uc.ListByJob(c.Context(), actorID, role, jobID)
	if err != nil {
		switch {
		case errors.Is(err, job.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "job not found")
		case errors.Is(err, application.ErrForbidden):
			return presenter.Error(c, http.StatusForbidden, "not authorized to view these applications")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to list applications")
		}
	}
	return presenter.JSON(c, http.StatusOK, apps)
}

// UpdateStatus moves an application through the review workflow.
// @Summary Update application status
// @Tags    applications
// @Accept  json
// @Produce json
// @Param   id path string true "application id (UUID)"
// @Param   input body updateStatusRequest true "new status"
// @Security BearerAuth
// @Success 200 {object} application.Application
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	actorID, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid application id")
	}
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if !req.Status.Valid() {
		return presenter.Error(c, http.StatusBadRequest, "invalid status value")
	}
	a, err := h.uc.UpdateStatus(c.Context(), actorID, role, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotFound), errors.Is(err, job.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "application not found")
		case errors.Is(err, application.ErrForbidden):
			return presenter.Error(c, http.StatusForbidden, "not authorized to update this application")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to update application")
		}
	}
	return presenter.JSON(c, http.StatusOK, a)
}
