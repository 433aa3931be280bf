package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-ordering-be/internal/config"
	"ai-ordering-be/internal/controller"
	"ai-ordering-be/internal/pkg/logger"
	"ai-ordering-be/internal/pkg/mailer"
	"ai-ordering-be/internal/repository/unitofwork"
	"ai-ordering-be/internal/service"
	"ai-ordering-be/internal/websocket"
	"ai-ordering-be/pkg/cache"
	"ai-ordering-be/pkg/events"
	pktNats "ai-ordering-be/pkg/nats"
	"ai-ordering-be/pkg/ordering/schedule"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	AuthController      controller.IAuthController
	SessionController   controller.ISessionController
	OrderController     controller.IOrderController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

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
	}

	// Cache provider based on Config
	var cacheService cache.Service
	if cfg.App.CacheProvider == "redis" {
		cacheService = cache.NewRedisCache(rdb)
		log.Printf("[INFO] Using Cache Provider: REDIS")
	} else {
		cacheService = cache.NewMemoryCache(5 * time.Minute)
		log.Printf("[INFO] Using Cache Provider: MEMORY")
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Session lifecycle events (locks, mode switches) reach dashboards via
	// the bus rather than a direct hub call, so every instance sees them.
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	} else {
		subscribeSessionEvents(natsSub, wsHub)
	}

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.AuditTopicName)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.AuditTopicName,
		uowFactory,
	)

	catalogService := service.NewCatalogService(uowFactory, cacheService)
	sessionService := service.NewSessionService(uowFactory, publisherService, natsPub)
	cartService := service.NewCartService(
		uowFactory,
		catalogService,
		publisherService,
		schedule.NewRFC3339Parser(),
	)
	orderService := service.NewOrderService(
		uowFactory,
		catalogService,
		publisherService,
		natsPub,
		emailService,
		wsHub, // Hub implements OrderBroadcaster
	)
	assistantService := service.NewAssistantService(sessionService, cartService, orderService)
	authService := service.NewAuthService(uowFactory)

	// 4. Controllers
	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		AuthController:      controller.NewAuthController(authService),
		SessionController:   controller.NewSessionController(sessionService),
		OrderController:     controller.NewOrderController(orderService),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
		Logger:          sysLogger,
	}
}

func subscribeSessionEvents(sub *pktNats.Subscriber, hub *websocket.Hub) {
	forward := func(eventType string) pktNats.EventHandler {
		return func(ctx context.Context, event events.Event) error {
			businessId, ok := event.Payload()["business_id"].(string)
			if !ok {
				return nil // nothing to route on, drop
			}
			id, err := uuid.Parse(businessId)
			if err != nil {
				return nil
			}
			hub.BroadcastEvent(id, eventType, event.Payload())
			return nil
		}
	}

	subscriptions := []struct {
		eventType string
		durable   string
	}{
		{events.TypeSessionLocked, "dashboard-session-locked"},
		{events.TypeModeSwitched, "dashboard-mode-switched"},
	}
	for _, s := range subscriptions {
		subject := "orders." + s.eventType
		if err := sub.Subscribe(subject, s.durable, forward(s.eventType)); err != nil {
			log.Printf("[WARN] Failed to subscribe to %s: %v", subject, err)
		}
	}
}
