package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CarWash/internal/domain"
	"github.com/m04kA/SMC-CarWash/internal/service/feedback/models"
	"github.com/m04kA/SMC-CarWash/pkg/metrics"
)

// Service сервис отзывов. Сессия не требуется.
type Service struct {
	repo   FeedbackRepository
	events EventRecorder
	now    func() time.Time
	logger Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(repo FeedbackRepository, events EventRecorder, logger Logger) *Service {
	return &Service{
		repo:   repo,
		events: events,
		now:    time.Now,
		logger: logger,
	}
}

// Submit сохраняет отзыв; пустое имя заменяется на "Anonymous"
func (s *Service) Submit(ctx context.Context, req *models.SubmitRequest) (int64, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = domain.AnonymousName
	}

	fb, err := s.repo.Create(ctx, &domain.Feedback{
		Name:      name,
		Rating:    req.Rating,
		Text:      strings.TrimSpace(req.Text),
		CreatedAt: s.now().Unix(),
	})
	if err != nil {
		s.logger.Error("Submit: repository error: %v", err)
		return 0, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.events.Inc(metrics.EventFeedbackSent)
	s.logger.Info("Submit: feedback id=%d, rating=%d", fb.ID, fb.Rating)
	return fb.ID, nil
}

// ListRecent возвращает последние отзывы, новые первыми
func (s *Service) ListRecent(ctx context.Context) ([]*models.FeedbackResponse, error) {
	items, err := s.repo.ListRecent(ctx, domain.RecentFeedbackLimit)
	if err != nil {
		s.logger.Error("ListRecent: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRecent - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFeedbackList(items), nil
}
