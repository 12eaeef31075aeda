package service

import (
	"context"
	"math"

	"portfolio-chat-be/internal/dto"
	"portfolio-chat-be/pkg/match"
	"portfolio-chat-be/pkg/rewrite"
)

type IChatService interface {
	Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error)
}

type chatService struct {
	scorer   *match.Scorer
	rewriter rewrite.Provider
}

func NewChatService(scorer *match.Scorer, rewriter rewrite.Provider) IChatService {
	return &chatService{
		scorer:   scorer,
		rewriter: rewriter,
	}
}

// Ask scores the visitor message against the corpus, blends the top matches
// and appends the confidence-tiered follow-up. The rewrite stage is
// best-effort and can never fail the request.
func (s *chatService) Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error) {
	selected := s.scorer.Select(req.Message)
	confidence := s.scorer.Confidence(selected)
	reply := s.scorer.Blend(selected)

	if len(selected) > 0 {
		reply = s.rewriter.Rewrite(ctx, req.Message, reply)
	}
	reply += s.scorer.FollowUp(confidence)

	matched := make([]string, 0, len(selected))
	for _, e := range selected {
		matched = append(matched, e.ID)
	}

	return &dto.AskResponse{
		Reply:         reply,
		Confidence:    math.Round(confidence*100) / 100,
		MatchedTopics: matched,
		Format:        string(s.scorer.Corpus().Format),
	}, nil
}
