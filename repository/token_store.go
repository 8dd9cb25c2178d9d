package repository

import (
	"context"
	"errors"

	"github.com/appditto/survey-push-server/config"
	"github.com/appditto/survey-push-server/database"
	"github.com/appditto/survey-push-server/models/dbmodels"
	"github.com/go-redis/redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Holds the installation's single push token. Read returns "" when nothing
// has been stored yet.
type TokenStore interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, token string) error
}

// Token store backed by redis
type RedisTokenStore struct {
	Key string
}

func (s *RedisTokenStore) key() string {
	if s.Key == "" {
		return config.PUSH_TOKEN_KEY
	}
	return s.Key
}

func (s *RedisTokenStore) Read(ctx context.Context) (string, error) {
	token, err := database.GetRedisDB().Get(ctx, s.key())
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return token, err
}

func (s *RedisTokenStore) Write(ctx context.Context, token string) error {
	return database.GetRedisDB().Set(ctx, s.key(), token, 0)
}

// Token store backed by the kv_entries table
type GormTokenStore struct {
	DB  *gorm.DB
	Key string
}

func (s *GormTokenStore) key() string {
	if s.Key == "" {
		return config.PUSH_TOKEN_KEY
	}
	return s.Key
}

func (s *GormTokenStore) Read(ctx context.Context) (string, error) {
	var entry dbmodels.KvEntry
	err := s.DB.WithContext(ctx).Where("key = ?", s.key()).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	return entry.Value, nil
}

func (s *GormTokenStore) Write(ctx context.Context, token string) error {
	entry := &dbmodels.KvEntry{
		Key:   s.key(),
		Value: token,
	}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(entry).Error
}
