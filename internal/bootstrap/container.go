package bootstrap

import (
	"context"
	"log"
	"time"

	"matchfeed-be/internal/config"
	"matchfeed-be/internal/constant"
	"matchfeed-be/internal/controller"
	"matchfeed-be/internal/pkg/logger"
	"matchfeed-be/internal/pkg/seencache"
	"matchfeed-be/internal/repository/memory"
	"matchfeed-be/internal/repository/unitofwork"
	"matchfeed-be/internal/service"
	"matchfeed-be/pkg/scoring"

	pktNats "matchfeed-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	FeedController          controller.IFeedController
	CompatibilityController controller.ICompatibilityController
	FollowController        controller.IFollowController
	PostController          controller.IPostController
	AdminController         controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService     service.IConsumerService
	InvalidationService service.IInvalidationService

	// Exposed for cmd/batch so jobs share the exact production wiring.
	MatchService         service.IMatchService
	PresortService       service.IPresortService
	CompatibilityService service.ICompatibilityService
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

	// 2.5 Infrastructure
	// NATS
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
	}

	seenCache := seencache.NewSeenCache(rdb, time.Duration(cfg.Feed.SeenWindowHours)*time.Hour)
	pairCache := memory.NewCompatibilityCache()

	// 3. Scoring Pipeline
	aggregator := scoring.NewAggregator(
		[]scoring.HardGate{
			scoring.SelfMatchGate{},
			scoring.BlockedPairGate{},
		},
		[]scoring.PreferenceClassifier{
			scoring.GenderClassifier{},
			scoring.AgeClassifier{},
			scoring.DistanceClassifier{},
		},
		[]scoring.Operator{
			scoring.QuizSimilarityOperator{},
			scoring.TraitSimilarityOperator{},
			scoring.InterestOverlapOperator{},
			scoring.RatingQualityOperator{MinCount: cfg.Match.RatingMinCount},
			scoring.RatingFitOperator{},
			scoring.ProximityOperator{},
		},
		scoring.Weights(constant.DefaultWeights),
	)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Feed.RecomputeTopic, pubSub)

	providers := service.NewFeedProviders(uowFactory, service.ProviderCaps{
		Posts:       constant.DefaultPostCap,
		Suggestions: constant.DefaultSuggestionCap,
		Questions:   constant.DefaultQuestionCap,
	})

	presortService := service.NewPresortService(
		uowFactory,
		providers,
		constant.DefaultSlotSequence,
		cfg.Feed.ActorCap,
		service.PresortConfig{
			SegmentCount: cfg.Feed.SegmentCount,
			SegmentSize:  cfg.Feed.SegmentSize,
			TTL:          time.Duration(cfg.Feed.PresortTTLMinutes) * time.Minute,
			Version:      cfg.Match.AlgorithmVersion,
		},
		publisherService,
		sysLogger,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Feed.RecomputeTopic,
		presortService,
		sysLogger,
	)

	var invalidationService service.IInvalidationService
	if natsSub != nil {
		invalidationService = service.NewInvalidationService(natsSub, presortService, pairCache, sysLogger)
	}

	matchService := service.NewMatchService(uowFactory, aggregator, cfg.Match.TopK, natsPub, sysLogger)
	compatibilityService := service.NewCompatibilityService(uowFactory, pairCache, sysLogger)
	followService := service.NewFollowService(uowFactory, presortService, natsPub, sysLogger)
	postService := service.NewPostService(uowFactory, presortService, natsPub, sysLogger)

	feedService := service.NewFeedService(
		uowFactory,
		providers,
		presortService,
		seenCache,
		constant.DefaultSlotSequence,
		cfg.Feed.ActorCap,
		cfg.Feed.SegmentSize,
		cfg.Match.AlgorithmVersion,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		FeedController:          controller.NewFeedController(feedService),
		CompatibilityController: controller.NewCompatibilityController(compatibilityService),
		FollowController:        controller.NewFollowController(followService),
		PostController:          controller.NewPostController(postService),
		AdminController:         controller.NewAdminController(matchService),

		ConsumerService:      consumerService,
		InvalidationService:  invalidationService,
		MatchService:         matchService,
		PresortService:       presortService,
		CompatibilityService: compatibilityService,
	}
}
