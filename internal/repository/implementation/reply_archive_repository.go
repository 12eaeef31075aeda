package implementation

import (
	"context"

	"portfolio-chat-be/internal/model"

	"gorm.io/gorm"
)

// IReplyArchiveRepository persists relayed replies for the admin view.
// All writes are best-effort from the caller's perspective.
type IReplyArchiveRepository interface {
	Create(ctx context.Context, reply *model.RelayedReply) error
	FindRecent(ctx context.Context, limit int) ([]model.RelayedReply, error)
}

type ReplyArchiveRepositoryImpl struct {
	db *gorm.DB
}

func NewReplyArchiveRepository(db *gorm.DB) IReplyArchiveRepository {
	return &ReplyArchiveRepositoryImpl{db: db}
}

func (r *ReplyArchiveRepositoryImpl) Create(ctx context.Context, reply *model.RelayedReply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}

func (r *ReplyArchiveRepositoryImpl) FindRecent(ctx context.Context, limit int) ([]model.RelayedReply, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var replies []model.RelayedReply
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&replies).Error
	return replies, err
}
