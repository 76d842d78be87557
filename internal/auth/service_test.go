package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hamstech/backend/internal/models"
	"github.com/hamstech/backend/internal/repository"
)

type memoryUsers struct {
	mu     sync.Mutex
	byMail map[string]*models.User
	nextID uint
	err    error
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byMail: make(map[string]*models.User)}
}

func (m *memoryUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byMail[u.Email]; ok {
		return repository.ErrDuplicate
	}
	m.nextID++
	u.ID = m.nextID
	stored := *u
	m.byMail[u.Email] = &stored
	return nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byMail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func newTestService(users UserStore) (*Service, *Tokens, *fakeClock) {
	clock := newFakeClock()
	throttle := NewThrottle(3, 300*time.Second)
	throttle.now = clock.Now
	tokens := NewTokens(testSecret, time.Hour)
	return NewService(users, NewHasher(bcrypt.MinCost), throttle, tokens), tokens, clock
}

func TestRegister_DefaultsRoleToNormal(t *testing.T) {
	users := newMemoryUsers()
	svc, _, _ := newTestService(users)

	u, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "A@x.com ", Password: "p"})
	require.NoError(t, err)

	assert.Equal(t, models.RoleNormal, u.Role)
	assert.Equal(t, "a@x.com", u.Email)
	assert.NotEqual(t, "p", u.PasswordHash)
	assert.NotZero(t, u.ID)
}

func TestRegister_AdminRole(t *testing.T) {
	svc, _, _ := newTestService(newMemoryUsers())

	u, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "p", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)
}

func TestRegister_InvalidRoleCreatesNothing(t *testing.T) {
	users := newMemoryUsers()
	svc, _, _ := newTestService(users)

	for _, role := range []string{"root", "superadmin", "Normal user", "ADMIN", "Normal"} {
		_, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "p", Role: role})
		assert.ErrorIs(t, err, ErrInvalidRole, role)
	}
	assert.Empty(t, users.byMail)
}

func TestRegister_MissingData(t *testing.T) {
	svc, _, _ := newTestService(newMemoryUsers())

	for _, in := range []RegisterInput{
		{Email: "a@x.com", Password: "p"},
		{Name: "A", Password: "p"},
		{Name: "A", Email: "a@x.com"},
		{Name: "  ", Email: "a@x.com", Password: "p"},
	} {
		_, err := svc.Register(context.Background(), in)
		assert.ErrorIs(t, err, ErrMissingData, "%+v", in)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(newMemoryUsers())

	_, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), RegisterInput{Name: "B", Email: "a@x.com", Password: "q"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestLogin_IssuesTokenWithIdentity(t *testing.T) {
	svc, tokens, _ := newTestService(newMemoryUsers())
	u, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), "a@x.com", "p")
	require.NoError(t, err)
	assert.Equal(t, "/dashboard", res.Redirect)

	claims, err := tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, models.RoleNormal, claims.Role)
}

func TestLogin_AdminRedirect(t *testing.T) {
	svc, _, _ := newTestService(newMemoryUsers())
	_, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "p", Role: "admin"})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), "a@x.com", "p")
	require.NoError(t, err)
	assert.Equal(t, "/admin/dashboard", res.Redirect)
}

func TestLogin_Errors(t *testing.T) {
	svc, _, _ := newTestService(newMemoryUsers())
	_, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "", "p")
	assert.ErrorIs(t, err, ErrMissingData)

	_, err = svc.Login(context.Background(), "nobody@x.com", "p")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Login(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestLogin_LockoutAfterThreeFailures(t *testing.T) {
	svc, _, clock := newTestService(newMemoryUsers())
	_, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := svc.Login(context.Background(), "a@x.com", "wrong")
		require.ErrorIs(t, err, ErrIncorrectPassword)
	}

	_, err = svc.Login(context.Background(), "a@x.com", "p")
	assert.ErrorIs(t, err, ErrTooManyAttempts, "correct password is rejected while locked")

	clock.Advance(300 * time.Second)
	res, err := svc.Login(context.Background(), "a@x.com", "p")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
}

func TestLogin_SuccessResetsCounter(t *testing.T) {
	svc, _, _ := newTestService(newMemoryUsers())
	_, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, _ = svc.Login(context.Background(), "a@x.com", "wrong")
	}
	_, err = svc.Login(context.Background(), "a@x.com", "p")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, _ = svc.Login(context.Background(), "a@x.com", "wrong")
	}
	_, err = svc.Login(context.Background(), "a@x.com", "p")
	assert.NoError(t, err, "two failures after a success must not lock")
}

func TestLogin_StoreErrorPropagates(t *testing.T) {
	users := newMemoryUsers()
	users.err = errors.New("connection refused")
	svc, _, _ := newTestService(users)

	_, err := svc.Login(context.Background(), "a@x.com", "p")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, models.RoleNormal, role)

	role, err = ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	for _, bad := range []string{"owner", "ADMIN", "Normal", " admin"} {
		_, err = ParseRole(bad)
		assert.ErrorIs(t, err, ErrInvalidRole, bad)
	}
}
