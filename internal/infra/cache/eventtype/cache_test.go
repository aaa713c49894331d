package eventtype

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/internal/infra/storage/memory"
	"github.com/m04kA/GSO-BookingService/pkg/logger"
)

// unreachableRedis returns a client whose every command fails fast.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestCache_FallsThroughWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.SeedEventTypes(domain.DefaultEventTypes())

	cache := NewCache(store.EventTypes(), unreachableRedis(t), time.Minute, logger.NewNop())

	list, err := cache.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	et, err := cache.GetByID(ctx, "evt-2")
	require.NoError(t, err)
	assert.Equal(t, "BASKETBALL TRAINING", et.Name)
	assert.Equal(t, 600.0, et.BaseAmount)

	require.NoError(t, cache.Create(ctx, &domain.EventType{ID: "evt-4", Name: "ZUMBA", BaseAmount: 300}))
	require.NoError(t, cache.Delete(ctx, "evt-1"))

	list, err = cache.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestCachedEventType_RoundTrip(t *testing.T) {
	et := &domain.EventType{
		ID:               "evt-1",
		Name:             "VOLLEYBALL TRAINING",
		BaseAmount:       500,
		DefaultResources: domain.Resources{Lights: true, Chairs: 20},
	}

	assert.Equal(t, et, toCached(et).toDomain())
}
