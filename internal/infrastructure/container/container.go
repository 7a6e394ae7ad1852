package container

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/emberapp/ember-backend/internal/config"
	httpdelivery "github.com/emberapp/ember-backend/internal/delivery/http"
	"github.com/emberapp/ember-backend/internal/delivery/http/handler"
	"github.com/emberapp/ember-backend/internal/delivery/http/middleware"
	"github.com/emberapp/ember-backend/internal/infrastructure/server"
	"github.com/emberapp/ember-backend/internal/repository/memory"
	"github.com/emberapp/ember-backend/internal/seed"
	"github.com/emberapp/ember-backend/internal/usecase/chat"
	"github.com/emberapp/ember-backend/internal/usecase/discovery"
	"github.com/emberapp/ember-backend/internal/usecase/likes"
	"github.com/emberapp/ember-backend/internal/usecase/profile"
	"github.com/emberapp/ember-backend/internal/usecase/wallet"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger, err := newLogger(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize repositories from the seed dataset
	profileRepo := memory.NewProfileRepository(seed.Profiles())
	sessionRepo := memory.NewSessionRepository()
	conversationRepo := memory.NewConversationRepository(seed.Conversations(time.Now()))
	giftRepo := memory.NewGiftRepository(seed.Gifts())
	walletRepo := memory.NewWalletRepository(cfg.Economy.StartingBalance)
	unlockRepo := memory.NewUnlockRepository()

	// Initialize use cases
	walletUseCase := wallet.NewWalletUseCase(walletRepo, logger)

	profileUseCase := profile.NewProfileUseCase(profileRepo, sessionRepo)

	discoveryUseCase := discovery.NewDiscoveryUseCase(
		profileRepo,
		sessionRepo,
		conversationRepo,
		rand.New(rand.NewSource(time.Now().UnixNano())),
		cfg.Discovery.MatchProbability,
		cfg.Discovery.MinCompletion,
		logger,
	)

	likesUseCase := likes.NewLikesUseCase(
		profileRepo,
		unlockRepo,
		walletUseCase,
		seed.LikedYouIDs(),
		cfg.Economy.UnlockCost,
		logger,
	)

	chatUseCase := chat.NewChatUseCase(
		conversationRepo,
		giftRepo,
		profileRepo,
		walletUseCase,
		logger,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(profileUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	discoveryHandler := handler.NewDiscoveryHandler(discoveryUseCase)
	likesHandler := handler.NewLikesHandler(likesUseCase)
	walletHandler := handler.NewWalletHandler(walletUseCase)
	chatHandler := handler.NewChatHandler(chatUseCase)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(sessionRepo)

	// Initialize router
	router := httpdelivery.NewRouter(
		authHandler,
		profileHandler,
		discoveryHandler,
		likesHandler,
		walletHandler,
		chatHandler,
		sessionMiddleware,
		logger,
	)

	srv := server.NewServer(&cfg.Server, router.Setup())

	return &Container{
		Config: cfg,
		Logger: logger,
		Server: srv,
	}, nil
}

// Close flushes buffered log entries.
func (c *Container) Close() error {
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	return nil
}

func newLogger(cfg *config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
