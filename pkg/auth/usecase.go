package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	GetProfile(ctx context.Context, id uuid.UUID) (User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input ProfileUpdate) (User, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     Role

	CompanyName        string
	CompanyDescription string
	CompanyLogo        string
}

// ProfileUpdate carries optional profile changes; nil fields are left untouched.
type ProfileUpdate struct {
	Name               *string
	Avatar             *string
	CompanyName        *string
	CompanyDescription *string
	CompanyLogo        *string
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo   UserRepository
	tokens TokenGenerator
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenGenerator) AuthUseCase {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}
	// Admins are provisioned out of band, never via public registration.
	if input.Role != RoleCandidate && input.Role != RoleEmployer {
		return AuthResult{}, ErrInvalidCredentials
	}

	// If user exists, fail fast (best-effort check)
	if _, err := s.repo.GetByEmail(ctx, input.Email); err == nil {
		return AuthResult{}, ErrUserAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	now := time.Now().UTC()
	user := User{
		ID:                 uuid.New(),
		Name:               input.Name,
		Email:              input.Email,
		PasswordHash:       string(passwordHash),
		Role:               input.Role,
		IsActive:           true,
		CompanyName:        input.CompanyName,
		CompanyDescription: input.CompanyDescription,
		CompanyLogo:        input.CompanyLogo,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if !user.IsActive || user.IsBlocked {
		return AuthResult{}, ErrAccountDisabled
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) GetProfile(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authService) UpdateProfile(ctx context.Context, id uuid.UUID, input ProfileUpdate) (User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if user.Role == RoleEmployer {
		if input.CompanyName != nil {
			user.CompanyName = *input.CompanyName
		}
		if input.CompanyDescription != nil {
			user.CompanyDescription = *input.CompanyDescription
		}
		if input.CompanyLogo != nil {
			user.CompanyLogo = *input.CompanyLogo
		}
	}
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}
