package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"jobportal/api/http/presenter"
	"jobportal/pkg/resume"
)

type ResumeHandler struct {
	useCase resume.UseCase
	// Limit uploaded file size (bytes)
	maxBytes int64
	baseDir  string
}

func NewResumeHandler(useCase resume.UseCase, baseDir string, maxBytes int64) *ResumeHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20 // 15MB
	}
	return &ResumeHandler{useCase: useCase, maxBytes: maxBytes, baseDir: baseDir}
}

// Upload parses an uploaded resume (PDF/DOCX) and caches the result.
// @Summary Upload and parse resume
// @Description Accepts a PDF or DOCX resume, extracts skills/experience/education and caches the parsed record. Re-uploading the same file name returns the cached parse.
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   resume formData file true "Resume file (PDF or DOCX)"
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume/upload [post]
func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	actorID, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "no resume file uploaded")
	}
	if fh.Size > h.maxBytes {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("file too large: limit is %d bytes", h.maxBytes))
	}

	if err := os.MkdirAll(h.baseDir, 0o755); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to prepare upload storage")
	}
	// Generated on-disk name doubles as the duplicate-detection key.
	storedName := actorID.String() + "-" + filepath.Base(fh.Filename)
	dst := filepath.Join(h.baseDir, storedName)
	if err := c.SaveFile(fh, dst); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to store uploaded file")
	}

	rec, cacheHit, err := h.useCase.UploadAndParse(c.Context(), actorID, role, resume.Upload{
		Path:         dst,
		StoredName:   storedName,
		OriginalName: fh.Filename,
		ContentType:  fh.Header.Get("Content-Type"),
		Size:         fh.Size,
	})
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrForbidden):
			return presenter.Error(c, http.StatusForbidden, "only candidates can upload resumes")
		case errors.Is(err, resume.ErrInvalidInput):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, resume.ErrUnsupportedFormat):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		default:
			return presenter.ErrorWithCause(c, http.StatusInternalServerError, "failed to parse resume", err)
		}
	}

	source := "parsed"
	if cacheHit {
		source = "cache"
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"source":       source,
		"parsedResume": rec,
	})
}

// Me returns the stored parsed resume for the authenticated candidate.
// @Summary Get my parsed resume
// @Tags    resume
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resume.ParsedResume
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resume/me [get]
func (h *ResumeHandler) Me(c *fiber.Ctx) error {
	actorID, role, err := requestActor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	rec, err := h.useCase.GetMine(c.Context(), actorID, role)
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrForbidden):
			return presenter.Error(c, http.StatusForbidden, "only candidates can access parsed resume")
		case errors.Is(err, resume.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "no parsed resume found")
		default:
			return presenter.ErrorWithCause(c, http.StatusInternalServerError, "failed to fetch parsed resume", err)
		}
	}
	return presenter.JSON(c, http.StatusOK, rec)
}
