package service

import (
	"context"

	"portfolio-chat-be/internal/model"
	"portfolio-chat-be/internal/pkg/logger"
	"portfolio-chat-be/internal/repository/implementation"
)

type IAdminService interface {
	GetLogs(level string, limit, offset int) ([]logger.LogEntry, error)
	GetRecentReplies(ctx context.Context, limit int) ([]model.RelayedReply, error)
}

type adminService struct {
	logger  logger.ILogger
	archive implementation.IReplyArchiveRepository // nil when no DSN configured
}

func NewAdminService(sysLogger logger.ILogger, archive implementation.IReplyArchiveRepository) IAdminService {
	return &adminService{
		logger:  sysLogger,
		archive: archive,
	}
}

func (s *adminService) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.logger.GetLogs(level, limit, offset)
}

func (s *adminService) GetRecentReplies(ctx context.Context, limit int) ([]model.RelayedReply, error) {
	if s.archive == nil {
		return []model.RelayedReply{}, nil
	}
	return s.archive.FindRecent(ctx, limit)
}
