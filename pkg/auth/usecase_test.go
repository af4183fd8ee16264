package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]User
	byID    map[uuid.UUID]User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]User{}, byID: map[uuid.UUID]User{}}
}

func (r *fakeUserRepo) put(u User) {
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
}

func (r *fakeUserRepo) Create(_ context.Context, u User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return ErrUserAlreadyExists
	}
	r.put(u)
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u User) error {
	r.put(u)
	return nil
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role Role) ([]User, error) {
	var out []User
	for _, u := range r.byID {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.IsActive = active
	r.put(u)
	return nil
}

func (r *fakeUserRepo) SetBlocked(_ context.Context, id uuid.UUID, blocked bool) error {
	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.IsBlocked = blocked
	r.put(u)
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	return nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role Role) (int, error) {
	n := 0
	for _, u := range r.byID {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type staticTokens struct{}

func (staticTokens) Generate(_ context.Context, _ User) (string, error) {
	return "token", nil
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, staticTokens{})

	res, err := svc.Register(context.Background(), RegisterInput{
		Name:     "  Jane  ",
		Email:    "Jane@Example.COM",
		Password: "secret",
		Role:     RoleCandidate,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", res.User.Name)
	assert.Equal(t, "jane@example.com", res.User.Email)
	assert.Equal(t, RoleCandidate, res.User.Role)
	assert.True(t, res.User.IsActive)
	assert.Equal(t, "token", res.Token)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("secret")))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, staticTokens{})
	in := RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "secret", Role: RoleCandidate}

	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), staticTokens{})
	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Root", Email: "root@example.com", Password: "secret", Role: RoleAdmin,
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), staticTokens{})
	for _, in := range []RegisterInput{
		{Email: "a@b.c", Password: "x", Role: RoleCandidate},
		{Name: "A", Password: "x", Role: RoleCandidate},
		{Name: "A", Email: "a@b.c", Role: RoleCandidate},
	} {
		_, err := svc.Register(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, staticTokens{})
	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Jane", Email: "jane@example.com", Password: "secret", Role: RoleCandidate,
	})
	require.NoError(t, err)

	t.Run("success with case-insensitive email", func(t *testing.T) {
		res, err := svc.Login(context.Background(), "JANE@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "token", res.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "jane@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ghost@example.com", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLoginDisabledAccounts(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, staticTokens{})
	res, err := svc.Register(context.Background(), RegisterInput{
		Name: "Emp", Email: "emp@example.com", Password: "secret", Role: RoleEmployer,
	})
	require.NoError(t, err)

	require.NoError(t, repo.SetBlocked(context.Background(), res.User.ID, true))
	_, err = svc.Login(context.Background(), "emp@example.com", "secret")
	assert.ErrorIs(t, err, ErrAccountDisabled)

	require.NoError(t, repo.SetBlocked(context.Background(), res.User.ID, false))
	require.NoError(t, repo.SetActive(context.Background(), res.User.ID, false))
	_, err = svc.Login(context.Background(), "emp@example.com", "secret")
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, staticTokens{})
	res, err := svc.Register(context.Background(), RegisterInput{
		Name: "Emp", Email: "emp@example.com", Password: "secret", Role: RoleEmployer,
	})
	require.NoError(t, err)

	name := "Acme HR"
	company := "Acme Corp"
	updated, err := svc.UpdateProfile(context.Background(), res.User.ID, ProfileUpdate{
		Name:        &name,
		CompanyName: &company,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme HR", updated.Name)
	assert.Equal(t, "Acme Corp", updated.CompanyName)

	t.Run("company fields ignored for candidates", func(t *testing.T) {
		cres, err := svc.Register(context.Background(), RegisterInput{
			Name: "Jane", Email: "jane@example.com", Password: "secret", Role: RoleCandidate,
		})
		require.NoError(t, err)
		got, err := svc.UpdateProfile(context.Background(), cres.User.ID, ProfileUpdate{CompanyName: &company})
		require.NoError(t, err)
		assert.Empty(t, got.CompanyName)
	})

	t.Run("blank name is ignored", func(t *testing.T) {
		blank := "   "
		got, err := svc.UpdateProfile(context.Background(), res.User.ID, ProfileUpdate{Name: &blank})
		require.NoError(t, err)
		assert.Equal(t, "Acme HR", got.Name)
	})
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleCandidate.Valid())
	assert.True(t, RoleEmployer.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("intern").Valid())
}
