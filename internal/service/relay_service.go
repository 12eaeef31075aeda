package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"portfolio-chat-be/internal/dto"
	"portfolio-chat-be/internal/model"
	"portfolio-chat-be/internal/pkg/logger"
	"portfolio-chat-be/internal/repository/contract"
	"portfolio-chat-be/internal/repository/implementation"
	"portfolio-chat-be/pkg/events"
	pktNats "portfolio-chat-be/pkg/nats"
	"portfolio-chat-be/pkg/telegram"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// replyTTL bounds storage growth for unread replies.
const replyTTL = time.Hour

// sessionTagRe extracts the session token the send path embeds in outgoing
// messages, e.g. "[session: session_xxx_xxx]".
var sessionTagRe = regexp.MustCompile(`\[session:\s*([^\]]+)\]`)

type IRelayService interface {
	Send(ctx context.Context, req *dto.SendMessageRequest) error
	HandleUpdate(ctx context.Context, update *telegram.Update) (bool, error)
	ConsumeReply(ctx context.Context, sessionID string) (*string, error)
}

type relayService struct {
	bot     *telegram.Client
	replies contract.IReplyRepository
	archive implementation.IReplyArchiveRepository // nil when no DSN configured
	pubSub  *gochannel.GoChannel
	topic   string
	natsPub *pktNats.Publisher // nil when NATS is unavailable
	logger  logger.ILogger
}

func NewRelayService(
	bot *telegram.Client,
	replies contract.IReplyRepository,
	archive implementation.IReplyArchiveRepository,
	pubSub *gochannel.GoChannel,
	topic string,
	natsPub *pktNats.Publisher,
	sysLogger logger.ILogger,
) IRelayService {
	return &relayService{
		bot:     bot,
		replies: replies,
		archive: archive,
		pubSub:  pubSub,
		topic:   topic,
		natsPub: natsPub,
		logger:  sysLogger,
	}
}

// Send forwards a visitor message to the owner's chat with the session tag
// prefixed, so the owner's reply can be routed back.
func (s *relayService) Send(ctx context.Context, req *dto.SendMessageRequest) error {
	if !s.bot.Configured() {
		s.logger.Error("Relay", "Telegram credentials missing", nil)
		return fiber.NewError(fiber.StatusInternalServerError, "Server configuration error - missing Telegram credentials")
	}

	formatted := fmt.Sprintf("[session: %s]\n%s", req.SessionId, req.Message)
	if err := s.bot.SendMessage(ctx, formatted); err != nil {
		s.logger.Error("Relay", "Telegram send failed", map[string]interface{}{
			"session_id": req.SessionId,
			"error":      err.Error(),
		})
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to send message to Telegram: "+err.Error())
	}

	s.logger.Info("Relay", "Message forwarded to owner", map[string]interface{}{"session_id": req.SessionId})
	s.publishEvent(ctx, events.NewMessageRelayed(req.SessionId))
	return nil
}

// HandleUpdate processes an inbound Telegram update. Unrelated traffic
// (no message, no session tag, empty body) is ignored without error; the
// webhook endpoint acknowledges 200 either way so the platform never
// retry-storms us.
func (s *relayService) HandleUpdate(ctx context.Context, update *telegram.Update) (bool, error) {
	if update == nil || update.Message == nil {
		return false, nil
	}

	text := update.Message.Text
	tag := sessionTagRe.FindStringSubmatch(text)
	if tag == nil {
		return false, nil
	}

	sessionID := strings.TrimSpace(tag[1])
	reply := strings.TrimSpace(sessionTagRe.ReplaceAllString(text, ""))
	if sessionID == "" || reply == "" {
		return false, nil
	}

	if err := s.replies.Set(ctx, sessionID, reply, replyTTL); err != nil {
		s.logger.Error("Relay", "Failed to store reply", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return false, err
	}

	s.logger.Info("Relay", "Stored reply", map[string]interface{}{"session_id": sessionID})
	s.archiveReply(ctx, sessionID, reply, update)
	s.fanOut(sessionID, reply)
	return true, nil
}

// ConsumeReply atomically fetches and removes the pending reply. Returns
// nil when no reply is waiting.
func (s *relayService) ConsumeReply(ctx context.Context, sessionID string) (*string, error) {
	reply, found, err := s.replies.Consume(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	s.publishEvent(ctx, events.NewReplyConsumed(sessionID))
	return &reply, nil
}

// archiveReply persists the reply for the admin view. Best-effort: the live
// delivery path must not depend on the archive database.
func (s *relayService) archiveReply(ctx context.Context, sessionID, reply string, update *telegram.Update) {
	if s.archive == nil {
		return
	}

	raw, err := json.Marshal(update)
	if err != nil {
		raw = nil
	}
	record := &model.RelayedReply{
		SessionId:  sessionID,
		Reply:      reply,
		RawPayload: datatypes.JSON(raw),
	}
	if err := s.archive.Create(ctx, record); err != nil {
		s.logger.Warn("Relay", "Failed to archive reply", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
}

// fanOut hands the stored reply to the background consumer (websocket push
// + external events) via the in-process bus.
func (s *relayService) fanOut(sessionID, reply string) {
	if s.pubSub == nil {
		return
	}

	payload, err := json.Marshal(dto.ReplyStoredMessage{SessionId: sessionID, Reply: reply})
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.topic, msg); err != nil {
		s.logger.Warn("Relay", "Failed to publish reply-stored message", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
}

func (s *relayService) publishEvent(ctx context.Context, event events.Event) {
	if s.natsPub == nil {
		return
	}
	if err := s.natsPub.Publish(ctx, event); err != nil {
		s.logger.Warn("Relay", "Failed to publish event", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}
