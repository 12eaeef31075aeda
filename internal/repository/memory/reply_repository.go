package memory

import (
	"context"
	"sync"
	"time"

	"portfolio-chat-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// consumedGrace keeps a consumed entry around briefly before deletion so
// late duplicate polls see "already consumed" rather than racing a fresh
// overwrite.
const consumedGrace = 10 * time.Second

type pendingReply struct {
	Reply    string
	Consumed bool
}

// ReplyRepository is the single-instance variant of the reply store.
// Suitable for local development and tests; production deployments should
// use the Redis repository since this state dies with the process.
type ReplyRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewReplyRepository() *ReplyRepository {
	// Default expiry mirrors the durable-store TTL; expired items are
	// purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ReplyRepository{cache: c}
}

var _ contract.IReplyRepository = (*ReplyRepository)(nil)

func (r *ReplyRepository) Set(_ context.Context, sessionID, reply string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Overwrites any unconsumed reply: last write wins.
	r.cache.Set(sessionID, &pendingReply{Reply: reply}, ttl)
	return nil
}

func (r *ReplyRepository) Consume(_ context.Context, sessionID string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	x, found := r.cache.Get(sessionID)
	if !found {
		return "", false, nil
	}

	pending := x.(*pendingReply)
	if pending.Consumed {
		return "", false, nil
	}

	pending.Consumed = true
	time.AfterFunc(consumedGrace, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		// A fresh reply may have overwritten the slot meanwhile; only
		// delete the entry we consumed.
		if x, ok := r.cache.Get(sessionID); ok && x.(*pendingReply) == pending {
			r.cache.Delete(sessionID)
		}
	})

	return pending.Reply, true, nil
}

func (r *ReplyRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Delete(sessionID)
	return nil
}
