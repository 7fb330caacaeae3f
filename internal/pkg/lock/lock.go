package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// LockTimeoutError means the lock could not be acquired within the retry
// budget. Callers surface it as a busy/retry-later signal.
type LockTimeoutError struct {
	Key string
}

func (e *LockTimeoutError) Error() string {
	return fmt.Sprintf("lock timeout on key %s", e.Key)
}

func IsLockTimeout(err error) bool {
	var lte *LockTimeoutError
	return errors.As(err, &lte)
}

// Locker runs a critical section under a named distributed mutex. Acquisition
// is a single atomic set-if-absent with TTL; release is compare-and-delete on
// a caller-unique value so an expired and re-acquired lock is never deleted
// out from under its new holder.
type Locker interface {
	WithLock(ctx context.Context, key string, ttl time.Duration, fn func(ctx context.Context) error) error
}

type locker struct {
	rs            *redsync.Redsync
	maxRetries    int
	retryInterval time.Duration
}

func New(client *redis.Client, maxRetries int, retryInterval time.Duration) Locker {
	pool := goredis.NewPool(client)
	return &locker{
		rs:            redsync.New(pool),
		maxRetries:    maxRetries,
		retryInterval: retryInterval,
	}
}

func (l *locker) WithLock(ctx context.Context, key string, ttl time.Duration, fn func(ctx context.Context) error) error {
	mutex := l.rs.NewMutex(key,
		redsync.WithExpiry(ttl),
		redsync.WithTries(l.maxRetries),
		redsync.WithRetryDelay(l.retryInterval),
	)

	if err := mutex.LockContext(ctx); err != nil {
		return &LockTimeoutError{Key: key}
	}
	// unlock is ownership-checked, a lock lost to TTL expiry is left alone
	defer mutex.UnlockContext(ctx)

	return fn(ctx)
}
