package session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarWash/internal/domain"
)

// Store хранилище сессий: потокобезопасная карта id -> сессия с TTL
type Store interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, s *domain.Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// Clock источник текущего времени (подменяется в тестах)
type Clock func() time.Time
