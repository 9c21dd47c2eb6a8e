package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// SignInThrottle counts failed sign-ins per email in Redis and blocks further
// attempts once the limit is reached within the window.
// Key format: signin:fail:<lowercased email>
type SignInThrottle struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

// NewSignInThrottle creates a SignInThrottle wrapping the given Redis client.
func NewSignInThrottle(client *redis.Client, maxFailures int, window time.Duration) *SignInThrottle {
	return &SignInThrottle{client: client, maxFailures: int64(maxFailures), window: window}
}

// Blocked reports whether the email has exhausted its failure budget.
func (t *SignInThrottle) Blocked(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(email)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.maxFailures, nil
}

// RecordFailure increments the failure counter; the first failure in a window
// arms the expiry.
func (t *SignInThrottle) RecordFailure(ctx context.Context, email string) error {
	n, err := t.client.Incr(ctx, t.key(email)).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		return t.client.Expire(ctx, t.key(email), t.window).Err()
	}
	return nil
}

// Reset clears the failure counter after a successful sign-in.
func (t *SignInThrottle) Reset(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *SignInThrottle) key(email string) string {
	return fmt.Sprintf("signin:fail:%s", strings.ToLower(email))
}
