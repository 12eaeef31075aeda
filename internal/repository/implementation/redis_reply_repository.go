package implementation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio-chat-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const replyKeyPrefix = "reply:"

// redisReplyRepository keeps pending replies in Redis so the relay survives
// restarts and multi-instance deployments. Consume uses GETDEL, so two
// concurrent polls can never both observe the same reply.
type redisReplyRepository struct {
	rdb *redis.Client
}

func NewRedisReplyRepository(rdb *redis.Client) contract.IReplyRepository {
	return &redisReplyRepository{rdb: rdb}
}

func replyKey(sessionID string) string {
	return replyKeyPrefix + sessionID
}

func (r *redisReplyRepository) Set(ctx context.Context, sessionID, reply string, ttl time.Duration) error {
	if err := r.rdb.Set(ctx, replyKey(sessionID), reply, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store reply for session %s: %w", sessionID, err)
	}
	return nil
}

func (r *redisReplyRepository) Consume(ctx context.Context, sessionID string) (string, bool, error) {
	val, err := r.rdb.GetDel(ctx, replyKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to consume reply for session %s: %w", sessionID, err)
	}
	return val, true, nil
}

func (r *redisReplyRepository) Delete(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, replyKey(sessionID)).Err()
}
