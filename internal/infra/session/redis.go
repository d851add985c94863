package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CarWash/internal/config"
	"github.com/m04kA/SMC-CarWash/internal/domain"
)

// RedisStore хранит сессии в Redis как JSON с TTL ключа
type RedisStore struct {
	client *redis.Client
	prefix string
	now    Clock
}

var _ Store = (*RedisStore)(nil)

// NewRedisClient создает клиент Redis на основе конфигурации
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRedisStore создает хранилище поверх готового клиента
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, now: time.Now}
}

// Ping проверяет соединение с Redis
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: ping: %v", ErrStore, err)
	}
	return nil
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get: %v", ErrStore, err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("%w: decode session: %v", ErrStore, err)
	}

	return &sess, nil
}

// Save сохраняет сессию; ttl <= 0 означает ключ без срока
func (s *RedisStore) Save(ctx context.Context, sess *domain.Session, ttl time.Duration) error {
	if ttl > 0 {
		sess.ExpiresAt = s.now().Add(ttl)
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("%w: encode session: %v", ErrStore, err)
	}

	if err := s.client.Set(ctx, s.key(sess.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrStore, err)
	}
	return nil
}

// Delete удаляет сессию; отсутствие ключа не ошибка
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("%w: delete: %v", ErrStore, err)
	}
	return nil
}
