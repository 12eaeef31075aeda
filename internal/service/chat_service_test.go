package service

import (
	"context"
	"strings"
	"testing"

	"portfolio-chat-be/internal/dto"
	"portfolio-chat-be/pkg/knowledge"
	"portfolio-chat-be/pkg/match"
	"portfolio-chat-be/pkg/rewrite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRewriter struct {
	called   bool
	lastText string
}

func (r *recordingRewriter) Rewrite(_ context.Context, _, content string) string {
	r.called = true
	r.lastText = content
	return "rewritten: " + content
}

func chatTestCorpus() *knowledge.Corpus {
	return &knowledge.Corpus{
		Name:           "chat-test",
		Format:         knowledge.FormatMarkdown,
		Separator:      "\n\n---\n\n",
		Fallback:       "Ask me about my projects or skills!",
		FollowUpBroad:  "\n\nTry asking about my projects.",
		FollowUpNarrow: "\n\nWant more detail on anything?",
		Entries: []knowledge.Entry{
			{ID: "projects", Text: "I built TaraG a travel companion app with maps and weather"},
			{ID: "skills", Text: "My skills include react typescript and go"},
		},
	}
}

func TestAskMatchesTopic(t *testing.T) {
	scorer := match.NewScorer(chatTestCorpus(), match.DefaultConfig())
	svc := NewChatService(scorer, rewrite.NewNoopProvider())

	res, err := svc.Ask(context.Background(), &dto.AskRequest{Message: "tell me about the travel app you built"})
	require.NoError(t, err)

	assert.Contains(t, res.MatchedTopics, "projects")
	assert.Contains(t, res.Reply, "TaraG")
	assert.Greater(t, res.Confidence, 0.0)
	assert.Equal(t, "markdown", res.Format)
}

func TestAskFallbackOnGibberish(t *testing.T) {
	scorer := match.NewScorer(chatTestCorpus(), match.DefaultConfig())
	svc := NewChatService(scorer, rewrite.NewNoopProvider())

	res, err := svc.Ask(context.Background(), &dto.AskRequest{Message: "zxqvbn plorf"})
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Confidence)
	assert.Empty(t, res.MatchedTopics)
	assert.NotNil(t, res.MatchedTopics) // serializes as [], not null
	assert.True(t, strings.HasPrefix(res.Reply, "Ask me about my projects or skills!"))
	// Zero confidence lands in the broad follow-up tier
	assert.Contains(t, res.Reply, "Try asking about my projects.")
}

func TestAskRewriteOnlyWhenMatched(t *testing.T) {
	scorer := match.NewScorer(chatTestCorpus(), match.DefaultConfig())

	rw := &recordingRewriter{}
	svc := NewChatService(scorer, rw)

	// No match: the fallback goes out untouched
	res, err := svc.Ask(context.Background(), &dto.AskRequest{Message: "zxqvbn plorf"})
	require.NoError(t, err)
	assert.False(t, rw.called, "rewriter must not run on fallback replies")
	assert.NotContains(t, res.Reply, "rewritten:")

	// Match: the blended text passes through the rewriter
	res, err = svc.Ask(context.Background(), &dto.AskRequest{Message: "what skills do you have"})
	require.NoError(t, err)
	assert.True(t, rw.called)
	assert.Contains(t, res.Reply, "rewritten:")
	assert.Contains(t, rw.lastText, "skills")
}

func TestAskConfidenceRounded(t *testing.T) {
	scorer := match.NewScorer(chatTestCorpus(), match.DefaultConfig())
	svc := NewChatService(scorer, rewrite.NewNoopProvider())

	res, err := svc.Ask(context.Background(), &dto.AskRequest{Message: "travel app with maps"})
	require.NoError(t, err)

	// Two decimal places on the wire
	cents := res.Confidence * 100
	assert.InDelta(t, cents, float64(int(cents+0.5)), 1e-9)
}
