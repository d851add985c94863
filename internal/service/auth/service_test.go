package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-CarWash/internal/domain"
	"github.com/m04kA/SMC-CarWash/internal/infra/session"
	userRepo "github.com/m04kA/SMC-CarWash/internal/infra/storage/user"
	"github.com/m04kA/SMC-CarWash/internal/service/auth/models"
	"github.com/m04kA/SMC-CarWash/pkg/logger"
	"github.com/m04kA/SMC-CarWash/pkg/metrics"
	"github.com/m04kA/SMC-CarWash/pkg/password"
)

// MockUserRepository mock-реализация UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListByLogin(ctx context.Context, login string) ([]*domain.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

type fixture struct {
	svc      *Service
	users    *MockUserRepository
	sessions *session.MemoryStore
	hasher   *password.Bcrypt
}

func setup(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		users:    &MockUserRepository{},
		sessions: session.NewMemoryStore(),
		hasher:   password.NewBcrypt(bcrypt.MinCost),
	}
	f.svc = NewService(f.users, f.sessions, f.hasher, metrics.Nop{}, time.Hour, logger.Discard())
	f.svc.newID = func() string { return "session-1" }

	t.Cleanup(func() { f.users.AssertExpectations(t) })
	return f
}

func TestSignUp_Success(t *testing.T) {
	f := setup(t)

	f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		ok, _ := f.hasher.Verify(u.PasswordHash, "p")
		return u.Name == "A" && u.Email == "a@x.com" && u.Phone == "111" && u.PasswordHash != "p" && ok
	})).Return(&domain.User{ID: 1}, nil)

	resp, err := f.svc.SignUp(context.Background(), &models.SignUpRequest{
		Name: " A ", Email: "a@x.com", Phone: "111", Password: "p",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestSignUp_MissingFields(t *testing.T) {
	f := setup(t)

	cases := []models.SignUpRequest{
		{Email: "a@x.com", Phone: "1", Password: "p"},
		{Name: "A", Phone: "1", Password: "p"},
		{Name: "A", Email: "a@x.com", Password: "p"},
		{Name: "A", Email: "a@x.com", Phone: "1"},
		{Name: "   ", Email: "a@x.com", Phone: "1", Password: "p"},
	}
	for _, req := range cases {
		req := req
		_, err := f.svc.SignUp(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestSignUp_Duplicate(t *testing.T) {
	f := setup(t)

	f.users.On("Create", mock.Anything, mock.Anything).Return(nil, userRepo.ErrUserExists)

	_, err := f.svc.SignUp(context.Background(), &models.SignUpRequest{
		Name: "A", Email: "a@x.com", Phone: "222", Password: "p",
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestSignUp_RepositoryFailure(t *testing.T) {
	f := setup(t)

	f.users.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("disk full"))

	_, err := f.svc.SignUp(context.Background(), &models.SignUpRequest{
		Name: "A", Email: "a@x.com", Phone: "222", Password: "p",
	})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSignIn(t *testing.T) {
	f := setup(t)
	hash, err := f.hasher.Hash("p")
	require.NoError(t, err)

	stored := &domain.User{ID: 7, Name: "A", Email: "a@x.com", Phone: "111", PasswordHash: hash}
	f.users.On("ListByLogin", mock.Anything, "a@x.com").Return([]*domain.User{stored}, nil)
	f.users.On("ListByLogin", mock.Anything, "111").Return([]*domain.User{stored}, nil)
	f.users.On("ListByLogin", mock.Anything, "ghost@x.com").Return(nil, userRepo.ErrUserNotFound)

	t.Run("by email", func(t *testing.T) {
		sess, err := f.svc.SignIn(context.Background(), &models.SignInRequest{Login: "a@x.com", Password: "p"})
		require.NoError(t, err)
		assert.Equal(t, "session-1", sess.ID)
		assert.Equal(t, int64(7), sess.UserID)
		assert.False(t, sess.ExpiresAt.IsZero())

		saved, err := f.svc.GetSession(context.Background(), "session-1")
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", saved.Email)
	})

	t.Run("by phone", func(t *testing.T) {
		_, err := f.svc.SignIn(context.Background(), &models.SignInRequest{Login: "111", Password: "p"})
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.svc.SignIn(context.Background(), &models.SignInRequest{Login: "a@x.com", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown login", func(t *testing.T) {
		_, err := f.svc.SignIn(context.Background(), &models.SignInRequest{Login: "ghost@x.com", Password: "p"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty login", func(t *testing.T) {
		_, err := f.svc.SignIn(context.Background(), &models.SignInRequest{Password: "p"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestSignIn_LoginSharedByTwoUsers(t *testing.T) {
	f := setup(t)
	hashA, err := f.hasher.Hash("pa")
	require.NoError(t, err)
	hashB, err := f.hasher.Hash("pb")
	require.NoError(t, err)

	// у первого это email, у второго телефон
	first := &domain.User{ID: 1, Name: "A", Email: "a@x.com", Phone: "111", PasswordHash: hashA}
	second := &domain.User{ID: 2, Name: "B", Email: "b@x.com", Phone: "a@x.com", PasswordHash: hashB}
	f.users.On("ListByLogin", mock.Anything, "a@x.com").Return([]*domain.User{first, second}, nil)

	sess, err := f.svc.SignIn(context.Background(), &models.SignInRequest{Login: "a@x.com", Password: "pb"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), sess.UserID)

	sess, err = f.svc.SignIn(context.Background(), &models.SignInRequest{Login: "a@x.com", Password: "pa"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), sess.UserID)

	_, err = f.svc.SignIn(context.Background(), &models.SignInRequest{Login: "a@x.com", Password: "pc"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignIn_PasswordLongerThanBcryptLimit(t *testing.T) {
	f := setup(t)
	hash, err := f.hasher.Hash("p")
	require.NoError(t, err)

	stored := &domain.User{ID: 7, Email: "a@x.com", PasswordHash: hash}
	f.users.On("ListByLogin", mock.Anything, "a@x.com").Return([]*domain.User{stored}, nil)

	_, err = f.svc.SignIn(context.Background(), &models.SignInRequest{
		Login:    "a@x.com",
		Password: strings.Repeat("x", 80),
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout_Idempotent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.sessions.Save(ctx, &domain.Session{ID: "s", UserID: 1}, time.Hour))

	require.NoError(t, f.svc.Logout(ctx, "s"))
	require.NoError(t, f.svc.Logout(ctx, "s"))
	require.NoError(t, f.svc.Logout(ctx, ""))

	_, err := f.svc.GetSession(ctx, "s")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
