package shops

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWash/internal/domain"
	"github.com/m04kA/SMC-CarWash/internal/service/shops/models"
	"github.com/m04kA/SMC-CarWash/pkg/logger"
	"github.com/m04kA/SMC-CarWash/pkg/metrics"
)

type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) Create(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	args := m.Called(ctx, shop)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func TestRegister(t *testing.T) {
	repo := &MockShopRepository{}
	svc := NewService(repo, metrics.Nop{}, logger.Discard())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Shop) bool {
		return s.ShopName == "Shine" && s.OwnerName == "Kim" && s.City == "Pune"
	})).Return(&domain.Shop{ID: 4, City: "Pune"}, nil)

	id, err := svc.Register(context.Background(), &models.RegisterRequest{
		ShopName: " Shine ", OwnerName: "Kim", Phone: "123", City: "Pune",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
	repo.AssertExpectations(t)
}

func TestRegister_RepositoryFailure(t *testing.T) {
	repo := &MockShopRepository{}
	svc := NewService(repo, metrics.Nop{}, logger.Discard())
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	_, err := svc.Register(context.Background(), &models.RegisterRequest{ShopName: "Shine"})
	assert.ErrorIs(t, err, ErrInternal)
}
