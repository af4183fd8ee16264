package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("job not found")
	ErrForbidden = errors.New("not allowed")
)

// Company is the posting employer's public profile, joined onto listings.
type Company struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"companyName,omitempty"`
	CompanyLogo string    `json:"companyLogo,omitempty"`
}

// Job is a posting owned by an employer.
type Job struct {
	ID           uuid.UUID `json:"id"`
	CompanyID    uuid.UUID `json:"companyId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Location     string    `json:"location"`
	Category     string    `json:"category"`
	Type         string    `json:"type"`
	SalaryMin    int       `json:"salaryMin"`
	SalaryMax    int       `json:"salaryMax"`
	IsClosed     bool      `json:"isClosed"`
	IsApproved   bool      `json:"isApproved"`
	Company      *Company  `json:"company,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Filter narrows the public listing.
type Filter struct {
	Keyword   string
	Location  string
	Category  string
	Type      string
	MinSalary int
	MaxSalary int
}

// Repository is the persistence port for job postings.
type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListOpen returns open, approved postings from unblocked employers,
	// company profile joined in, optionally narrowed by filter.
	ListOpen(ctx context.Context, f Filter) ([]Job, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]Job, error)
	// moderation
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
	ListAll(ctx context.Context, limit, offset int) ([]Job, error)
	Count(ctx context.Context) (int, error)
}
