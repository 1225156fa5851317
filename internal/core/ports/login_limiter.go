package ports

import "context"

// LoginLimiter throttles repeated failed credential attempts per identity.
// Implementations must fail open: an unavailable backing store should never
// lock users out of login.
type LoginLimiter interface {
	// TooManyAttempts reports whether the identity has exhausted its window.
	TooManyAttempts(ctx context.Context, identity string) (bool, error)
	// RecordFailure counts one failed attempt against the identity.
	RecordFailure(ctx context.Context, identity string) error
	// Clear resets the identity's counter after a successful login.
	Clear(ctx context.Context, identity string) error
}
