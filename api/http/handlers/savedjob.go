package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/api/http/presenter"
	"jobportal/pkg/savedjob"
)

type SavedJobHandler struct {
	uc savedjob.UseCase
}

func NewSavedJobHandler(uc savedjob.UseCase) *SavedJobHandler {
	return &SavedJobHandler{uc: uc}
}

// Save bookmarks a job for the authenticated candidate.
// @Summary Save a job
// @Tags    saved-jobs
// @Produce json
// @Param   jobId path string true "job id (UUID)"
// @Security BearerAuth
// @Success 201 {object} savedjob.SavedJob
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /saved-jobs/{jobId} [post]
func (h *SavedJobHandler) Save(c *fiber.Ctx) error {
	actorID, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid job id")
	}
	s, err := h.uc.Save(c.Context(), actorID, role, jobID)
	if err != nil {
		if errors.Is(err, savedjob.ErrForbidden) {
			return presenter.Error(c, http.StatusForbidden, "only candidates can save jobs")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to save job")
	}
	return presenter.JSON(c, http.StatusCreated, s)
}

// Unsave removes a bookmark.
// @Summary Unsave a job
// @Tags    saved-jobs
// @Produce json
// @Param   jobId path string true "job id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /saved-jobs/{jobId} [delete]
func (h *SavedJobHandler) Unsave(c *fiber.Ctx) error {
	actorID, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid job id")
	}
	if err := h.uc.Unsave(c.Context(), actorID, role, jobID); err != nil {
		if errors.Is(err, savedjob.ErrForbidden) {
			return presenter.Error(c, http.StatusForbidden, "only candidates can save jobs")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to unsave job")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "job removed from saved"})
}

// ListMine returns the candidate's bookmarked jobs.
// @Summary My saved jobs
// @Tags    saved-jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} savedjob.SavedJob
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /saved-jobs/my [get]
func (h *SavedJobHandler) ListMine(c *fiber.Ctx) error {
	actorID, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	saved, err := h.uc.ListMine(c.Context(), actorID, role)
	if err != nil {
		if errors.Is(err, savedjob.ErrForbidden) {
			return presenter.Error(c, http.StatusForbidden, "only candidates can save jobs")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to list saved jobs")
	}
	return presenter.JSON(c, http.StatusOK, saved)
}
