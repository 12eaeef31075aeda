package bootstrap

import (
	"context"
	"log"
	"time"

	"portfolio-chat-be/internal/config"
	"portfolio-chat-be/internal/controller"
	"portfolio-chat-be/internal/pkg/logger"
	"portfolio-chat-be/internal/pkg/mailer"
	"portfolio-chat-be/internal/repository/contract"
	"portfolio-chat-be/internal/repository/implementation"
	"portfolio-chat-be/internal/repository/memory"
	"portfolio-chat-be/internal/service"
	"portfolio-chat-be/internal/websocket"
	"portfolio-chat-be/pkg/knowledge"
	"portfolio-chat-be/pkg/match"
	pktNats "portfolio-chat-be/pkg/nats"
	"portfolio-chat-be/pkg/rewrite"
	"portfolio-chat-be/pkg/telegram"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	RelayController   controller.IRelayController
	ContactController controller.IContactController
	AdminController   controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	RelayHub *websocket.Hub
}

// NewContainer wires every dependency. db may be nil (archive disabled).
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Secure,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.User,
		cfg.SMTP.Inbox,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Knowledge base + scorer
	corpus, err := knowledge.Load(cfg.Knowledge.Corpus, cfg.Knowledge.FilePath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load knowledge corpus: %v", err)
	}
	scorerCfg := match.DefaultConfig()
	if corpus.Name == "portfolio-tagged" {
		scorerCfg = match.TaggedConfig()
	}
	scorer := match.NewScorer(corpus, scorerCfg)
	log.Printf("[INFO] Using knowledge corpus: %s (%d entries)", corpus.Name, len(corpus.Entries))

	// Rewrite stage is optional; disabled means pass-through
	var rewriter rewrite.Provider
	if cfg.Rewrite.Endpoint != "" {
		rewriter = rewrite.NewHTTPProvider(cfg.Rewrite.Endpoint, time.Duration(cfg.Rewrite.TimeoutSeconds)*time.Second)
		log.Printf("[INFO] Rewrite stage enabled: %s", cfg.Rewrite.Endpoint)
	} else {
		rewriter = rewrite.NewNoopProvider()
	}

	// 4. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// Redis (reply store + cross-instance hub delivery). Without Redis the
	// relay falls back to the single-instance in-memory store.
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	var replyRepo contract.IReplyRepository
	if rdb != nil {
		replyRepo = implementation.NewRedisReplyRepository(rdb)
		log.Printf("[INFO] Using reply store: REDIS")
	} else {
		replyRepo = memory.NewReplyRepository()
		log.Printf("[INFO] Using reply store: IN-MEMORY (single instance only)")
	}

	var archiveRepo implementation.IReplyArchiveRepository
	if db != nil {
		archiveRepo = implementation.NewReplyArchiveRepository(db)
		log.Printf("[INFO] Reply archive enabled")
	}

	// WebSocket Hub
	hubLogger := logger.NewIsolatedLogger("logs/relay_hub.log")
	relayHub := websocket.NewHub(rdb, hubLogger)
	go relayHub.Run()

	bot := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.APIBaseURL)

	// 5. Services
	chatService := service.NewChatService(scorer, rewriter)
	relayService := service.NewRelayService(
		bot,
		replyRepo,
		archiveRepo,
		pubSub,
		cfg.App.ReplyTopic,
		natsPub,
		sysLogger,
	)
	contactService := service.NewContactService(emailService, sysLogger)
	adminService := service.NewAdminService(sysLogger, archiveRepo)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.ReplyTopic,
		relayHub,
		natsPub,
	)

	// 6. Controllers
	return &Container{
		ChatController:    controller.NewChatController(chatService),
		RelayController:   controller.NewRelayController(relayService, relayHub),
		ContactController: controller.NewContactController(contactService),
		AdminController:   controller.NewAdminController(adminService),
		ConsumerService:   consumerService,
		RelayHub:          relayHub,
	}
}
