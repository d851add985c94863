package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CarWash/internal/domain"
	"github.com/m04kA/SMC-CarWash/internal/service/admin/models"
)

// Service административный просмотр базы.
// Доступ только по сессии пользователя, чей email есть в списке администраторов.
type Service struct {
	users    UserRepository
	bookings BookingRepository
	feedback FeedbackRepository
	shops    ShopRepository
	admins   map[string]struct{}
	logger   Logger
}

// NewService создает новый экземпляр административного сервиса
func NewService(
	users UserRepository,
	bookings BookingRepository,
	feedback FeedbackRepository,
	shops ShopRepository,
	adminEmails []string,
	logger Logger,
) *Service {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			admins[email] = struct{}{}
		}
	}

	return &Service{
		users:    users,
		bookings: bookings,
		feedback: feedback,
		shops:    shops,
		admins:   admins,
		logger:   logger,
	}
}

// IsAdmin true, если email входит в список администраторов (без учета регистра)
func (s *Service) IsAdmin(email string) bool {
	_, ok := s.admins[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

// Dump возвращает содержимое всех таблиц
func (s *Service) Dump(ctx context.Context, sess *domain.Session) (*models.DumpResponse, error) {
	if err := s.authorize(sess, "Dump"); err != nil {
		return nil, err
	}

	dump, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Dump: user id=%d read %d users, %d bookings, %d feedback, %d shops",
		sess.UserID, len(dump.Users), len(dump.Bookings), len(dump.Feedback), len(dump.Shops))
	return dump, nil
}

func (s *Service) authorize(sess *domain.Session, op string) error {
	if sess == nil {
		return ErrUnauthorized
	}
	if !s.IsAdmin(sess.Email) {
		s.logger.Warn("%s: user id=%d is not an admin", op, sess.UserID)
		return ErrForbidden
	}
	return nil
}

func (s *Service) collect(ctx context.Context) (*models.DumpResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error("collect: failed to list users: %v", err)
		return nil, fmt.Errorf("%w: collect - list users: %v", ErrInternal, err)
	}

	bookings, err := s.bookings.List(ctx)
	if err != nil {
		s.logger.Error("collect: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: collect - list bookings: %v", ErrInternal, err)
	}

	feedback, err := s.feedback.List(ctx)
	if err != nil {
		s.logger.Error("collect: failed to list feedback: %v", err)
		return nil, fmt.Errorf("%w: collect - list feedback: %v", ErrInternal, err)
	}

	shops, err := s.shops.List(ctx)
	if err != nil {
		s.logger.Error("collect: failed to list shops: %v", err)
		return nil, fmt.Errorf("%w: collect - list shops: %v", ErrInternal, err)
	}

	return models.NewDumpResponse(users, bookings, feedback, shops), nil
}
