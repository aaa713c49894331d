// Package eventtype is a Redis read-through cache in front of the event type repository.
package eventtype

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/pkg/dbmetrics"
)

const (
	keyPrefix  = "gso:event_types:"
	keyAll     = keyPrefix + "all"
	keyPattern = keyPrefix + "*"
)

// Repository кэшируемый репозиторий (Postgres или memory)
type Repository interface {
	List(ctx context.Context) ([]*domain.EventType, error)
	GetByID(ctx context.Context, id string) (*domain.EventType, error)
	Create(ctx context.Context, et *domain.EventType) error
	Update(ctx context.Context, et *domain.EventType) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, eventTypes []*domain.EventType) error
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// Cache реализует Repository. Ошибки Redis не пробрасываются: запрос уходит в next.
type Cache struct {
	next Repository
	rdb  redis.Cmdable
	ttl  time.Duration
	log  Logger
}

func NewCache(next Repository, rdb redis.Cmdable, ttl time.Duration, log Logger) *Cache {
	return &Cache{next: next, rdb: rdb, ttl: ttl, log: log}
}

type cachedEventType struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	BaseAmount       float64          `json:"baseAmount"`
	DefaultResources domain.Resources `json:"defaultResources"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

func toCached(et *domain.EventType) cachedEventType {
	return cachedEventType{
		ID:               et.ID,
		Name:             et.Name,
		BaseAmount:       et.BaseAmount,
		DefaultResources: et.DefaultResources,
		CreatedAt:        et.CreatedAt,
		UpdatedAt:        et.UpdatedAt,
	}
}

func (c cachedEventType) toDomain() *domain.EventType {
	return &domain.EventType{
		ID:               c.ID,
		Name:             c.Name,
		BaseAmount:       c.BaseAmount,
		DefaultResources: c.DefaultResources,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (c *Cache) List(ctx context.Context) ([]*domain.EventType, error) {
	if dbmetrics.IsInTransaction(ctx) {
		return c.next.List(ctx)
	}

	var cached []cachedEventType
	if c.get(ctx, keyAll, &cached) {
		result := make([]*domain.EventType, len(cached))
		for i := range cached {
			result[i] = cached[i].toDomain()
		}
		return result, nil
	}

	eventTypes, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}

	toStore := make([]cachedEventType, len(eventTypes))
	for i, et := range eventTypes {
		toStore[i] = toCached(et)
	}
	c.set(ctx, keyAll, toStore)

	return eventTypes, nil
}

func (c *Cache) GetByID(ctx context.Context, id string) (*domain.EventType, error) {
	if dbmetrics.IsInTransaction(ctx) {
		return c.next.GetByID(ctx, id)
	}

	var cached cachedEventType
	if c.get(ctx, keyPrefix+id, &cached) {
		return cached.toDomain(), nil
	}

	et, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, keyPrefix+id, toCached(et))

	return et, nil
}

func (c *Cache) Create(ctx context.Context, et *domain.EventType) error {
	if err := c.next.Create(ctx, et); err != nil {
		return err
	}
	c.invalidate(ctx, keyAll)
	return nil
}

func (c *Cache) Update(ctx context.Context, et *domain.EventType) error {
	if err := c.next.Update(ctx, et); err != nil {
		return err
	}
	c.invalidate(ctx, keyAll, keyPrefix+et.ID)
	return nil
}

func (c *Cache) Delete(ctx context.Context, id string) error {
	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, keyAll, keyPrefix+id)
	return nil
}

func (c *Cache) ReplaceAll(ctx context.Context, eventTypes []*domain.EventType) error {
	if err := c.next.ReplaceAll(ctx, eventTypes); err != nil {
		return err
	}

	keys, err := c.scanKeys(ctx)
	if err != nil {
		c.log.Warn("event type cache: scan keys: %v", err)
		return nil
	}
	c.invalidate(ctx, keys...)
	return nil
}

func (c *Cache) get(ctx context.Context, key string, dest interface{}) bool {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		c.log.Warn("event type cache: get %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.log.Warn("event type cache: decode %s: %v", key, err)
		return false
	}
	return true
}

func (c *Cache) set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("event type cache: encode %s: %v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("event type cache: set %s: %v", key, err)
	}
}

func (c *Cache) invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("event type cache: invalidate %v: %v", keys, err)
	}
}

func (c *Cache) scanKeys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := c.rdb.Scan(ctx, 0, keyPattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", keyPattern, err)
	}
	return keys, nil
}
