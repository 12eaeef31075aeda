package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-chat-be/internal/pkg/serverutils"
	"portfolio-chat-be/internal/service"
	"portfolio-chat-be/pkg/knowledge"
	"portfolio-chat-be/pkg/match"
	"portfolio-chat-be/pkg/rewrite"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatTestApp() *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	scorer := match.NewScorer(knowledge.MarkdownCorpus(), match.DefaultConfig())
	chatService := service.NewChatService(scorer, rewrite.NewNoopProvider())

	api := app.Group("/api")
	NewChatController(chatService).RegisterRoutes(api)
	return app
}

func TestAskEndpoint(t *testing.T) {
	app := newChatTestApp()

	req := httptest.NewRequest("POST", "/api/chat/v1/ask", strings.NewReader(`{"message":"tell me about the TaraG travel app"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Reply         string   `json:"reply"`
			Confidence    float64  `json:"confidence"`
			MatchedTopics []string `json:"matchedTopics"`
			Format        string   `json:"format"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))

	assert.True(t, body.Success)
	assert.Contains(t, body.Data.MatchedTopics, "projects")
	assert.NotEmpty(t, body.Data.Reply)
	assert.Equal(t, "markdown", body.Data.Format)
}

func TestAskMissingMessage(t *testing.T) {
	app := newChatTestApp()

	req := httptest.NewRequest("POST", "/api/chat/v1/ask", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	var body serverutils.Response
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.False(t, body.Success)
}

func TestAskMalformedBody(t *testing.T) {
	app := newChatTestApp()

	req := httptest.NewRequest("POST", "/api/chat/v1/ask", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}
