package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Errors surfaced by the upload-and-parse pipeline.
var (
	ErrForbidden         = errors.New("only candidates can work with parsed resumes")
	ErrInvalidInput      = errors.New("no resume file provided")
	ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and docx are allowed")
	ErrNotFound          = errors.New("no parsed resume found")
)

// Meta is an opaque bag of upload metadata kept for inspection only; the
// matching logic never reads it.
type Meta struct {
	Size         int64  `json:"size"`
	OriginalName string `json:"originalName"`
	ContentType  string `json:"contentType"`
}

// ParsedResume is the cached parse result. At most one live record exists
// per candidate; re-parsing fully overwrites it.
type ParsedResume struct {
	OwnerID              uuid.UUID `json:"ownerId"`
	FileName             string    `json:"fileName"`
	Skills               []string  `json:"skills"`
	TotalExperienceYears int       `json:"totalExperienceYears"`
	Education            string    `json:"education"`
	ResumeText           string    `json:"resumeText"`
	Meta                 Meta      `json:"meta"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// Repository is the persistence port for parsed resumes.
type Repository interface {
	// FindByOwnerAndFile returns the stored record only when its file name
	// matches; used for the duplicate short-circuit.
	FindByOwnerAndFile(ctx context.Context, ownerID uuid.UUID, fileName string) (ParsedResume, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (ParsedResume, error)
	// Upsert atomically inserts or fully replaces the record keyed by owner.
	Upsert(ctx context.Context, rec ParsedResume) (ParsedResume, error)
}
