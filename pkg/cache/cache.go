package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL 상수 정의
const (
	TTLAnalysis  = 1 * time.Minute  // 분석 결과 (짧은 캐시, 테이블 갱신 시 빠른 반영)
	TTLTestCases = 5 * time.Minute  // 테스트 케이스 목록
	TTLDefault   = 5 * time.Minute  // 기본값
)

// 캐시 키 접두사
const (
	PrefixAnalysis  = "analysis:"
	PrefixTestCases = "testcases:"
)

// Service Redis 캐시 서비스 인터페이스
type Service interface {
	// 기본 캐시 연산
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// 분석 결과 캐시 (키: 입력 텍스트 해시)
	GetAnalysis(ctx context.Context, textHash string) ([]byte, error)
	SetAnalysis(ctx context.Context, textHash string, data interface{}) error

	// 유틸리티
	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache Redis 기반 캐시 구현
type redisCache struct {
	client *redis.Client
}

// NewService 새로운 캐시 서비스 생성
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable Redis 연결 가능 여부
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping Redis 연결 테스트
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get 캐시 조회 후 JSON 역직렬화
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return redis.Nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Set JSON 직렬화 후 캐시 저장
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}
	if ttl <= 0 {
		ttl = TTLDefault
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete 캐시 삭제
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Exists 키 존재 여부
func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetAnalysis 분석 결과 캐시 조회 (raw bytes)
func (c *redisCache) GetAnalysis(ctx context.Context, textHash string) ([]byte, error) {
	if c.client == nil {
		return nil, redis.Nil
	}
	return c.client.Get(ctx, PrefixAnalysis+textHash).Bytes()
}

// SetAnalysis 분석 결과 캐시 저장
func (c *redisCache) SetAnalysis(ctx context.Context, textHash string, data interface{}) error {
	return c.Set(ctx, PrefixAnalysis+textHash, data, TTLAnalysis)
}
