package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarWash/internal/domain"
	sessionStore "github.com/m04kA/SMC-CarWash/internal/infra/session"
	userRepo "github.com/m04kA/SMC-CarWash/internal/infra/storage/user"
	"github.com/m04kA/SMC-CarWash/internal/service/auth/models"
	"github.com/m04kA/SMC-CarWash/pkg/metrics"
)

// Service регистрация, вход и сессии
type Service struct {
	users      UserRepository
	sessions   SessionStore
	hasher     PasswordHasher
	events     EventRecorder
	sessionTTL time.Duration
	newID      func() string
	now        func() time.Time
	logger     Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	users UserRepository,
	sessions SessionStore,
	hasher PasswordHasher,
	events EventRecorder,
	sessionTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		hasher:     hasher,
		events:     events,
		sessionTTL: sessionTTL,
		newID:      uuid.NewString,
		now:        time.Now,
		logger:     logger,
	}
}

// SignUp регистрирует пользователя. Не выполняет вход: для сессии нужен отдельный SignIn.
func (s *Service) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.SignUpResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	if name == "" || email == "" || phone == "" || req.Password == "" {
		s.logger.Warn("SignUp: missing required fields")
		return nil, fmt.Errorf("%w: name, email, phone and password are required", ErrInvalidInput)
	}
	if len(req.Password) > domain.MaxPasswordLength {
		return nil, fmt.Errorf("%w: password is longer than %d bytes", ErrInvalidInput, domain.MaxPasswordLength)
	}

	s.logger.Info("SignUp: registering user email=%s", email)

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("SignUp: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: SignUp - hash password: %v", ErrInternal, err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserExists) {
			s.logger.Warn("SignUp: email=%s or phone already registered", email)
			return nil, ErrUserExists
		}
		s.logger.Error("SignUp: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: SignUp - repository error: %v", ErrInternal, err)
	}

	s.events.Inc(metrics.EventUserSignedUp)
	s.logger.Info("SignUp: user id=%d registered", user.ID)
	return &models.SignUpResponse{ID: user.ID}, nil
}

// SignIn проверяет логин (email или телефон) и пароль и открывает сессию.
// Если логин совпал у нескольких пользователей, входит первый, чей пароль подошел.
func (s *Service) SignIn(ctx context.Context, req *models.SignInRequest) (*domain.Session, error) {
	login := strings.TrimSpace(req.Login)
	if login == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: login and password are required", ErrInvalidInput)
	}

	candidates, err := s.users.ListByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.events.Inc(metrics.EventSignInFailed)
			s.logger.Warn("SignIn: unknown login")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("SignIn: repository error: %v", err)
		return nil, fmt.Errorf("%w: SignIn - repository error: %v", ErrInternal, err)
	}

	user, err := s.matchPassword(candidates, req.Password)
	if err != nil {
		return nil, err
	}

	sess := &domain.Session{
		ID:        s.newID(),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		CreatedAt: s.now(),
	}
	if err := s.sessions.Save(ctx, sess, s.sessionTTL); err != nil {
		s.logger.Error("SignIn: failed to save session for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: SignIn - save session: %v", ErrInternal, err)
	}

	s.events.Inc(metrics.EventUserSignedIn)
	s.logger.Info("SignIn: user id=%d signed in", user.ID)
	return sess, nil
}

// matchPassword первый пользователь, для которого пароль проверяется по хешу
func (s *Service) matchPassword(candidates []*domain.User, password string) (*domain.User, error) {
	for _, user := range candidates {
		ok, err := s.hasher.Verify(user.PasswordHash, password)
		if err != nil {
			s.logger.Error("SignIn: failed to verify password for user id=%d: %v", user.ID, err)
			return nil, fmt.Errorf("%w: SignIn - verify password: %v", ErrInternal, err)
		}
		if ok {
			return user, nil
		}
	}

	s.events.Inc(metrics.EventSignInFailed)
	s.logger.Warn("SignIn: wrong password for %d matching user(s)", len(candidates))
	return nil, ErrInvalidCredentials
}

// Logout удаляет сессию. Повторный вызов и пустой id не ошибка.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Error("Logout: failed to delete session: %v", err)
		return fmt.Errorf("%w: Logout - delete session: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: session closed")
	return nil
}

// GetSession чтение текущей сессии без побочных эффектов
func (s *Service) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetSession: session store error: %v", err)
		return nil, fmt.Errorf("%w: GetSession - store error: %v", ErrInternal, err)
	}

	return sess, nil
}
