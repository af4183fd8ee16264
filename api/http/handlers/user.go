package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"jobportal/api/http/presenter"
	"jobportal/pkg/auth"
)

type UserHandler struct {
	useCase auth.AuthUseCase
}

func NewUserHandler(useCase auth.AuthUseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

// Me returns the authenticated user's profile.
// @Summary Current user profile
// @Tags    users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.User
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	id, _, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	user, err := h.useCase.GetProfile(c.Context(), id)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "user not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, user)
}

type updateProfileRequest struct {
	Name               *string `json:"name"`
	Avatar             *string `json:"avatar"`
	CompanyName        *string `json:"companyName"`
	CompanyDescription *string `json:"companyDescription"`
	CompanyLogo        *string `json:"companyLogo"`
}

// UpdateMe updates the authenticated user's profile.
// @Summary Update current user profile
// @Tags    users
// @Accept  json
// @Produce json
// @Param   input body updateProfileRequest true "profile changes"
// @Security BearerAuth
// @Success 200 {object} auth.User
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /users/me [put]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	id, _, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	user, err := h.useCase.UpdateProfile(c.Context(), id, auth.ProfileUpdate{
		Name:               req.Name,
		Avatar:             req.Avatar,
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		CompanyLogo:        req.CompanyLogo,
	})
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "user not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update profile")
	}
	return presenter.JSON(c, http.StatusOK, user)
}
