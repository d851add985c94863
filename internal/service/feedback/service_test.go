package feedback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWash/internal/domain"
	"github.com/m04kA/SMC-CarWash/internal/service/feedback/models"
	"github.com/m04kA/SMC-CarWash/pkg/logger"
	"github.com/m04kA/SMC-CarWash/pkg/metrics"
)

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	args := m.Called(ctx, fb)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Feedback, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Feedback), args.Error(1)
}

func TestSubmit(t *testing.T) {
	fixed := time.Unix(1700000000, 0)

	tests := []struct {
		name     string
		req      models.SubmitRequest
		wantName string
	}{
		{name: "named", req: models.SubmitRequest{Name: "Bob", Rating: 5, Text: "great"}, wantName: "Bob"},
		{name: "anonymous", req: models.SubmitRequest{Rating: 4, Text: "ok"}, wantName: "Anonymous"},
		{name: "blank name", req: models.SubmitRequest{Name: "  ", Rating: 1}, wantName: "Anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockFeedbackRepository{}
			svc := NewService(repo, metrics.Nop{}, logger.Discard())
			svc.now = func() time.Time { return fixed }

			repo.On("Create", mock.Anything, mock.MatchedBy(func(fb *domain.Feedback) bool {
				return fb.Name == tt.wantName && fb.Rating == tt.req.Rating && fb.CreatedAt == fixed.Unix()
			})).Return(&domain.Feedback{ID: 9, Rating: tt.req.Rating}, nil)

			id, err := svc.Submit(context.Background(), &tt.req)
			require.NoError(t, err)
			assert.Equal(t, int64(9), id)
			repo.AssertExpectations(t)
		})
	}
}

func TestSubmit_RepositoryFailure(t *testing.T) {
	repo := &MockFeedbackRepository{}
	svc := NewService(repo, metrics.Nop{}, logger.Discard())
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("read-only"))

	_, err := svc.Submit(context.Background(), &models.SubmitRequest{Rating: 3})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestListRecent(t *testing.T) {
	repo := &MockFeedbackRepository{}
	svc := NewService(repo, metrics.Nop{}, logger.Discard())

	repo.On("ListRecent", mock.Anything, domain.RecentFeedbackLimit).Return([]*domain.Feedback{
		{ID: 2, Name: "B", Rating: 4, CreatedAt: 20},
		{ID: 1, Name: "A", Rating: 5, CreatedAt: 10},
	}, nil)

	items, err := svc.ListRecent(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, int64(20), items[0].TS)
	repo.AssertExpectations(t)
}
