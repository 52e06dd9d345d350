package bootstrap

import (
	"context"
	"log"
	"time"

	"storefront-be/internal/config"
	"storefront-be/internal/controller"
	"storefront-be/internal/handler"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/repository/contract"
	"storefront-be/internal/repository/implementation"
	"storefront-be/internal/repository/memory"
	"storefront-be/internal/repository/unitofwork"
	"storefront-be/internal/service"
	"storefront-be/internal/websocket"
	"storefront-be/pkg/bundle"
	pktNats "storefront-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ProductController    controller.IProductController
	BundleController     controller.IBundleController
	CartController       controller.ICartController
	PreferenceController controller.IPreferenceController

	// Background Services (Exposed for main.go to run)
	ConsumerService     service.IConsumerService
	NotificationService service.INotificationService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	c := &Container{}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	policies, err := buildPolicies(cfg.Bundle)
	if err != nil {
		log.Fatalf("[FATAL] Invalid bundle policy configuration: %v", err)
	}
	rules := bundle.NewDefaultAssociationResolver()
	images := bundle.NewDefaultImageResolver()

	// 2. Cart line pipeline
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	var (
		eventPub service.EventPublisher
		eventSub service.EventSubscriber
	)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventPub = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	} else {
		eventSub = natsSub
		c.closers = append(c.closers, natsSub.Close)
	}

	rdb := connectRedis(cfg.App.RedisURL)
	var prefRepo contract.PreferenceRepository
	if rdb != nil {
		prefRepo = implementation.NewRedisPreferenceRepository(rdb)
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	} else {
		log.Printf("[WARN] Preferences fall back to in-memory storage")
		prefRepo = memory.NewPreferenceRepository()
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.NotificationLog)
	wsHub := websocket.NewHub(rdb, wsLogger)
	hubCtx, stopHub := context.WithCancel(context.Background())
	go wsHub.Run(hubCtx)
	c.closers = append(c.closers, stopHub)

	// 4. Services
	sessionRepo := memory.NewSessionRepository(cfg.Bundle.ViewTTL)
	catalogService := service.NewCatalogService(uowFactory)
	cartService := service.NewCartService(pubSub, cfg.App.CartLineTopic, uowFactory, sysLogger)
	notifService := service.NewNotificationService(eventPub, eventSub, wsHub, wsLogger)
	recommendationService := service.NewRecommendationService(catalogService, policies, rules, images, sysLogger)
	bundleService := service.NewBundleService(
		catalogService,
		policies,
		rules,
		images,
		sessionRepo,
		cartService,
		notifService,
		sysLogger,
	)
	preferenceService := service.NewPreferenceService(prefRepo, sysLogger)

	c.ConsumerService = service.NewConsumerService(pubSub, cfg.App.CartLineTopic, uowFactory)
	c.NotificationService = notifService

	// 5. Controllers
	c.ProductController = controller.NewProductController(recommendationService)
	c.BundleController = controller.NewBundleController(bundleService, wsHub, sysLogger)
	c.CartController = controller.NewCartController(cartService)
	c.PreferenceController = controller.NewPreferenceController(preferenceService)
	c.NotificationHandler = handler.NewNotificationHandler(wsHub, wsLogger)
	c.WebSocketHub = wsHub

	return c
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func buildPolicies(cfg config.BundleConfig) (bundle.PolicySet, error) {
	crossSell, err := bundle.NewPolicy(bundle.PolicyCrossSell, cfg.CrossSellDiscountRate, cfg.CrossSellCandidates, cfg.CurrencyCode)
	if err != nil {
		return nil, err
	}
	fbt, err := bundle.NewPolicy(bundle.PolicyFrequentlyBoughtTogether, cfg.FrequentlyBoughtRate, cfg.FrequentlyBoughtCandidates, cfg.CurrencyCode)
	if err != nil {
		return nil, err
	}
	return bundle.PolicySet{
		crossSell.Name: crossSell,
		fbt.Name:       fbt,
	}, nil
}

// connectRedis returns nil when Redis is not reachable.
func connectRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		_ = rdb.Close()
		return nil
	}
	return rdb
}
