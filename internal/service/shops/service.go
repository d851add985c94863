package shops

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CarWash/internal/service/shops/models"
	"github.com/m04kA/SMC-CarWash/pkg/metrics"
)

// Service регистрация автомоек
type Service struct {
	repo   ShopRepository
	events EventRecorder
	logger Logger
}

func NewService(repo ShopRepository, events EventRecorder, logger Logger) *Service {
	return &Service{repo: repo, events: events, logger: logger}
}

// Register сохраняет анкету. Повторная регистрация той же мойки не отсекается.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (int64, error) {
	shop, err := s.repo.Create(ctx, req.ToDomainShop())
	if err != nil {
		s.logger.Error("Register: repository error for shop=%s: %v", req.ShopName, err)
		return 0, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.events.Inc(metrics.EventShopRegistered)
	s.logger.Info("Register: shop id=%d registered, city=%s", shop.ID, shop.City)
	return shop.ID, nil
}
