package contract

import (
	"context"
	"time"
)

// IReplyRepository stores at most one pending owner reply per session.
// A second Set before consumption overwrites the first (last write wins,
// no queueing).
type IReplyRepository interface {
	// Set stores the reply under the session key with an expiry bounding
	// storage growth.
	Set(ctx context.Context, sessionID, reply string, ttl time.Duration) error

	// Consume atomically fetches and removes the pending reply. The bool is
	// false when no unconsumed reply exists, which is not an error. The
	// atomicity closes the duplicate-delivery window between concurrent
	// polls.
	Consume(ctx context.Context, sessionID string) (string, bool, error)

	// Delete drops a pending reply without delivering it.
	Delete(ctx context.Context, sessionID string) error
}
