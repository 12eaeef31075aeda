package controller

import (
	"log"

	"portfolio-chat-be/internal/dto"
	"portfolio-chat-be/internal/pkg/serverutils"
	"portfolio-chat-be/internal/service"
	internalWS "portfolio-chat-be/internal/websocket"
	"portfolio-chat-be/pkg/telegram"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type IRelayController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
	GetReplies(ctx *fiber.Ctx) error
}

type relayController struct {
	relayService service.IRelayService
	hub          *internalWS.Hub
}

func NewRelayController(relayService service.IRelayService, hub *internalWS.Hub) IRelayController {
	return &relayController{
		relayService: relayService,
		hub:          hub,
	}
}

func (c *relayController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/relay/v1")
	h.Post("send", c.Send)
	h.Post("telegram/webhook", c.Webhook)
	h.Get("replies", c.GetReplies)

	// Real-time alternative to polling. The socket only pushes a
	// notification; the client still consumes via GET replies.
	h.Get("subscribe", upgradeRequired, websocket.New(func(conn *websocket.Conn) {
		sessionID := conn.Query("sessionId")
		if sessionID == "" {
			conn.Close()
			return
		}
		internalWS.ServeWs(c.hub, conn, sessionID)
	}))
}

func upgradeRequired(ctx *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(ctx) {
		return ctx.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (c *relayController) Send(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing sessionId or message")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.relayService.Send(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Message sent", nil))
}

// Webhook always acknowledges with 200. Messaging platforms retry on
// non-2xx, so internal failures are flagged in the body instead of the
// status code.
func (c *relayController) Webhook(ctx *fiber.Ctx) error {
	var update telegram.Update
	if err := ctx.BodyParser(&update); err != nil {
		log.Printf("[WARN] Malformed webhook payload: %v", err)
		return ctx.JSON(dto.WebhookAck{Success: false})
	}

	if _, err := c.relayService.HandleUpdate(ctx.Context(), &update); err != nil {
		return ctx.JSON(dto.WebhookAck{Success: false})
	}

	return ctx.JSON(dto.WebhookAck{Success: true})
}

func (c *relayController) GetReplies(ctx *fiber.Ctx) error {
	sessionID := ctx.Query("sessionId")
	if sessionID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing sessionId")
	}

	reply, err := c.relayService.ConsumeReply(ctx.Context(), sessionID)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", dto.GetRepliesResponse{Reply: reply}))
}
