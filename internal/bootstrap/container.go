package bootstrap

import (
	"context"
	"log"
	"os"

	"giftshop-chatbot-be/internal/config"
	"giftshop-chatbot-be/internal/constant"
	"giftshop-chatbot-be/internal/controller"
	"giftshop-chatbot-be/internal/handler"
	"giftshop-chatbot-be/internal/pkg/logger"
	"giftshop-chatbot-be/internal/repository/memory"
	"giftshop-chatbot-be/internal/repository/unitofwork"
	"giftshop-chatbot-be/internal/service"
	"giftshop-chatbot-be/internal/websocket"
	"giftshop-chatbot-be/pkg/catalog"
	"giftshop-chatbot-be/pkg/chat/dialog"
	pktNats "giftshop-chatbot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	CatalogController controller.ICatalogController

	// Background Services (Exposed for main.go to run)
	PersisterService service.IPersisterService

	// WebSockets
	ChatStreamHandler *handler.ChatStreamHandler
	WebSocketHub      *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 2.5 Infrastructure
	// NATS (optional: chat keeps working without the analytics bus)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil // single-node mode, no cross-instance fanout
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/chat_stream.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(constant.ChatPersistTopicName, pubSub)
	persisterService := service.NewPersisterService(
		pubSub,
		constant.ChatPersistTopicName,
		uowFactory,
	)

	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL)
	catalogService := service.NewCatalogService(catalogClient, sysLogger)

	engine := dialog.NewEngine(
		catalogService,
		constant.MaxDisplayProducts,
		log.New(os.Stdout, "", log.LstdFlags),
	)

	chatService := service.NewChatService(
		engine,
		sessionRepo,
		uowFactory,
		publisherService,
		natsPub,
		wsHub,
		cfg.Chat.PersistHistory,
		sysLogger,
	)

	if natsSub != nil {
		analyticsService := service.NewAnalyticsService(natsSub, sysLogger)
		if err := analyticsService.Start(); err != nil {
			log.Printf("[WARN] Failed to start analytics consumer: %v", err)
		}
	}

	chatStreamHandler := handler.NewChatStreamHandler(wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		ChatController:    controller.NewChatController(chatService),
		CatalogController: controller.NewCatalogController(catalogService),

		PersisterService: persisterService,

		ChatStreamHandler: chatStreamHandler,
		WebSocketHub:      wsHub,
	}
}
