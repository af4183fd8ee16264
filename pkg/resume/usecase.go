package resume

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"jobportal/pkg/auth"
	"jobportal/pkg/nlp"
)

// Upload describes the temporary file written by the HTTP layer.
type Upload struct {
	// Path of the temporary file on disk.
	Path string
	// StoredName is the generated on-disk name; it is the duplicate-detection
	// key, not a content hash (re-uploading under an unchanged name skips
	// re-parsing even if content differs).
	StoredName   string
	OriginalName string
	ContentType  string
	Size         int64
}

// UseCase drives the upload-and-parse pipeline and the self-service lookup.
type UseCase interface {
	// UploadAndParse runs the full pipeline. cacheHit reports whether the
	// stored record was reused without re-running extraction.
	UploadAndParse(ctx context.Context, actorID uuid.UUID, role auth.Role, up Upload) (rec ParsedResume, cacheHit bool, err error)
	GetMine(ctx context.Context, actorID uuid.UUID, role auth.Role) (ParsedResume, error)
}

type parseService struct {
	repo      Repository
	extractor TextExtractor
	nlp       *nlp.Extractor
}

// NewParseService wires the pipeline. The nlp extractor carries the fixed
// vocabulary/synonym tables.
func NewParseService(repo Repository, extractor TextExtractor, n *nlp.Extractor) UseCase {
	return &parseService{repo: repo, extractor: extractor, nlp: n}
}

func (s *parseService) UploadAndParse(ctx context.Context, actorID uuid.UUID, role auth.Role, up Upload) (ParsedResume, bool, error) {
	if role != auth.RoleCandidate {
		return ParsedResume{}, false, ErrForbidden
	}
	if up.Path == "" || up.StoredName == "" {
		return ParsedResume{}, false, ErrInvalidInput
	}

	// Duplicate short-circuit: same candidate + same stored filename means
	// the previous parse is reused as-is.
	if existing, err := s.repo.FindByOwnerAndFile(ctx, actorID, up.StoredName); err == nil {
		return existing, true, nil
	}

	rawText, err := s.extractor.ExtractText(up.Path, up.ContentType)
	if err != nil {
		return ParsedResume{}, false, err
	}

	normalized := s.nlp.Normalize(rawText)
	rec := ParsedResume{
		OwnerID:              actorID,
		FileName:             up.StoredName,
		Skills:               s.nlp.Skills(normalized),
		TotalExperienceYears: s.nlp.ExperienceYears(rawText),
		Education:            s.nlp.Education(rawText),
		ResumeText:           rawText,
		Meta: Meta{
			Size:         up.Size,
			OriginalName: up.OriginalName,
			ContentType:  up.ContentType,
		},
		UpdatedAt: time.Now().UTC(),
	}

	saved, err := s.repo.Upsert(ctx, rec)
	if err != nil {
		return ParsedResume{}, false, fmt.Errorf("save parsed resume: %w", err)
	}

	// Best-effort temp file cleanup; failure never surfaces to the caller.
	_ = os.Remove(up.Path)

	return saved, false, nil
}

func (s *parseService) GetMine(ctx context.Context, actorID uuid.UUID, role auth.Role) (ParsedResume, error) {
	if role != auth.RoleCandidate {
		return ParsedResume{}, ErrForbidden
	}
	return s.repo.GetByOwner(ctx, actorID)
}
