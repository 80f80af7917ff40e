package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SlotLocker guards the count-then-insert sequence for one date. The returned
// release func must be called once the booking is persisted (or abandoned).
type SlotLocker interface {
	Lock(ctx context.Context, dateKey string) (release func(), err error)
}

// NoopLocker leaves concurrent bookings for a date unserialised.
type NoopLocker struct{}

func (NoopLocker) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}

// releaseScript deletes the lock only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisSlotLocker takes a per-date lock with SET NX and a TTL so a crashed
// holder cannot block a date forever.
type RedisSlotLocker struct {
	Client *redis.Client
	// TTL bounds how long a lock survives its holder.
	TTL time.Duration
	// Wait bounds how long Lock retries before giving up.
	Wait          time.Duration
	RetryInterval time.Duration
	Logger        *zap.Logger
}

// NewRedisSlotLocker sizes the lock from storeTimeout. The critical section is
// a count and an insert, each bounded by storeTimeout, so the TTL covers both
// with room to spare.
func NewRedisSlotLocker(client *redis.Client, storeTimeout time.Duration, logger *zap.Logger) *RedisSlotLocker {
	if storeTimeout <= 0 {
		storeTimeout = 5 * time.Second
	}
	ttl := 3 * storeTimeout
	return &RedisSlotLocker{
		Client:        client,
		TTL:           ttl,
		Wait:          ttl,
		RetryInterval: 50 * time.Millisecond,
		Logger:        logger,
	}
}

func lockKey(dateKey string) string {
	return "ziaclinic:slotlock:" + dateKey
}

func (l *RedisSlotLocker) Lock(ctx context.Context, dateKey string) (func(), error) {
	key := lockKey(dateKey)
	token := uuid.New().String()

	ctx, cancel := context.WithTimeout(ctx, l.Wait)
	defer cancel()

	for {
		ok, err := l.Client.SetNX(ctx, key, token, l.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire slot lock for %s: %w", dateKey, err)
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("timed out waiting for slot lock for %s: %w", dateKey, ctx.Err())
		case <-time.After(l.RetryInterval):
		}
	}
}

func (l *RedisSlotLocker) release(key, token string) {
	// The request context may already be done; release on a fresh one.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, l.Client, []string{key}, token).Err(); err != nil && err != redis.Nil {
		if l.Logger != nil {
			l.Logger.Warn("Failed to release slot lock", zap.String("key", key), zap.Error(err))
		}
	}
}
