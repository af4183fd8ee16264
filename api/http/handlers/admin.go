package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/api/http/presenter"
	"jobportal/pkg/admin"
	"jobportal/pkg/auth"
	"jobportal/pkg/job"
)

type AdminHandler struct {
	uc admin.UseCase
}

func NewAdminHandler(uc admin.UseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

type setFlagRequest struct {
	Value bool `json:"value"`
}

// ListCandidates lists all candidate accounts.
// @Summary List candidates
// @Tags    admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} auth.User
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /admin/candidates [get]
func (h *AdminHandler) ListCandidates(c *fiber.Ctx) error {
	_, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	users, err := h.uc.ListCandidates(c.Context(), role)
	if err != nil {
		return h.adminError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, users)
}

// SetCandidateActive toggles a candidate account on or off.
// @Summary Activate or deactivate a candidate
// @Tags    admin
// @Accept  json
// @Produce json
// @Param   id path string true "user id (UUID)"
// @Param   input body setFlagRequest true "active flag"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/candidates/{id}/active [put]
func (h *AdminHandler) SetCandidateActive(c *fiber.Ctx) error {
	_, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid user id")
	}
	var req setFlagRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.uc.SetCandidateActive(c.Context(), role, id, req.Value); err != nil {
		return h.adminError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "candidate updated"})
}

// DeleteCandidate removes a candidate account.
// @Summary Delete a candidate
// @Tags    admin
// @Produce json
// @Param   id path string true "user id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/candidates/{id} [delete]
func (h *AdminHandler) DeleteCandidate(c *fiber.Ctx) error {
	_, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid user id")
	}
	if err := h.uc.DeleteCandidate(c.Context(), role, id); err != nil {
		return h.adminError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "candidate deleted"})
}

// ListEmployers lists all employer accounts.
// @Summary List employers
// @Tags    admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} auth.User
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /admin/employers [get]
func (h *AdminHandler) ListEmployers(c *fiber.Ctx) error {
	_, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	users, err := h.uc.ListEmployers(c.Context(), role)
	if err != nil {
		return h.adminError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, users)
}

// SetEmployerBlocked blocks or unblocks an employer account.
// @Summary Block or unblock an employer
// @Tags    admin
// @Accept  json
// @Produce json
// @Param   id path string true "user id (UUID)"
// @Param   input body setFlagRequest true "blocked flag"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/employers/{id}/block [put]
func (h *AdminHandler) SetEmployerBlocked(c *fiber.Ctx) error {
	_, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid user id")
	}
	var req setFlagRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.uc.SetEmployerBlocked(c.Context(), role, id, req.Value); err != nil {
		return h.adminError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "employer updated"})
}

// ListJobs lists all postings regardless of state.
// @Summary List all jobs
// @Tags    admin
// @Produce json
// @Param   limit  query int false "page size"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} job.Job
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /admin/jobs [get]
func (h *AdminHandler) ListJobs(c *fiber.Ctx) error {
	_, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	limit, offset := parseLimitOffset(c, 50)
	jobs, err := h.uc.ListJobs(c.Context(), role, limit, offset)
	if err != nil {
		return h.adminError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, jobs)
}

// SetJobApproved approves or rejects a posting for public listing.
// @Summary Approve or reject a job
// @Tags    admin
// @Accept  json
// @Produce json
// @Param   id path string true "job id (UUID)"
// @Param   input body setFlagRequest true "approved flag"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/jobs/{id}/approve [put]
func (h *AdminHandler) SetJobApproved(c *fiber.Ctx) error {
	_, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid job id")
	}
	var req setFlagRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.uc.SetJobApproved(c.Context(), role, id, req.Value); err != nil {
		return h.adminError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "job updated"})
}

// GetStats returns platform-wide totals for the moderation dashboard.
// @Summary Platform statistics
// @Tags    admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} admin.Stats
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /admin/stats [get]
func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	_, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	st, err := h.uc.GetStats(c.Context(), role)
	if err != nil {
		return h.adminError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, st)
}

func (h *AdminHandler) adminError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, admin.ErrForbidden):
		return presenter.Error(c, http.StatusForbidden, "admin access required")
	case errors.Is(err, auth.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "user not found")
	case errors.Is(err, job.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "job not found")
	default:
		return presenter.Error(c, http.StatusInternalServerError, "operation failed")
	}
}
