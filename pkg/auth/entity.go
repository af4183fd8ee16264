package auth

import (
	"time"

	"github.com/google/uuid"
)

// Role of a system user.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleCandidate || r == RoleEmployer || r == RoleAdmin
}

// User is a domain entity representing a system user.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`

	// Account status, managed by moderation.
	IsActive  bool `json:"isActive"`
	IsBlocked bool `json:"isBlocked"`

	Avatar string `json:"avatar,omitempty"`

	// Employer-only profile fields.
	CompanyName        string `json:"companyName,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`
	CompanyLogo        string `json:"companyLogo,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
