package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MEDWEDU/Lettera/domain"
	"github.com/MEDWEDU/Lettera/internal/config"
	"github.com/MEDWEDU/Lettera/internal/infrastructure/auth"
	"github.com/MEDWEDU/Lettera/internal/infrastructure/cache"
	"github.com/MEDWEDU/Lettera/internal/infrastructure/database"
	"github.com/MEDWEDU/Lettera/internal/infrastructure/notifications"
	"github.com/MEDWEDU/Lettera/internal/infrastructure/repositories"
	"github.com/MEDWEDU/Lettera/internal/infrastructure/storage"
	"github.com/MEDWEDU/Lettera/internal/services"
)

// Container holds all dependencies with an explicit lifecycle.
type Container struct {
	Config *config.Config
	Logger zerolog.Logger

	// Infrastructure handles
	Mongo    *database.MongoHandle
	Redis    *database.RedisHandle
	Cache    cache.Store
	memStore *cache.MemoryStore

	// Repositories
	UserRepo     domain.UserRepository
	ChatRepo     domain.ChatRepository
	MessageRepo  domain.MessageRepository
	MediaRepo    domain.MediaRepository
	SearchRepo   domain.SearchRepository
	TokenRepo    domain.TokenRepository
	PresenceRepo domain.PresenceRepository

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	VerificationSvc domain.VerificationService
	MailerSvc       domain.MailerService
	AuthSvc         domain.AuthService
	ChatSvc         domain.ChatService
	MediaSvc        domain.MediaService
	PresenceSvc     domain.PresenceService
	SearchSvc       domain.SearchService
}

// NewContainer creates and wires all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	if err := c.initRepositories(ctx); err != nil {
		return nil, err
	}
	if err := c.initServices(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	mongoHandle, err := database.OpenMongo(ctx, c.Config.MongoURI, c.Config.MongoDatabase)
	if err != nil {
		return fmt.Errorf("durable store: %w", err)
	}
	c.Mongo = mongoHandle

	// The ephemeral store degrades to an in-process fallback, so a failed
	// ping here is logged, not fatal.
	c.Redis = database.OpenRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	if err := c.Redis.HealthCheck(ctx); err != nil {
		c.Logger.Warn().Err(err).Msg("ephemeral store unreachable at startup, degraded mode until it recovers")
	}

	c.memStore = cache.NewMemoryStore()
	c.Cache = cache.NewFailoverStore(cache.NewRedisStore(c.Redis.Client()), c.memStore, c.Logger)
	return nil
}

func (c *Container) initRepositories(ctx context.Context) error {
	db := c.Mongo.Database()

	userRepo, err := repositories.NewUserRepository(ctx, db)
	if err != nil {
		return fmt.Errorf("user repository: %w", err)
	}
	c.UserRepo = userRepo

	chatRepo, err := repositories.NewChatRepository(ctx, db)
	if err != nil {
		return fmt.Errorf("chat repository: %w", err)
	}
	c.ChatRepo = chatRepo

	messageRepo, err := repositories.NewMessageRepository(ctx, db)
	if err != nil {
		return fmt.Errorf("message repository: %w", err)
	}
	c.MessageRepo = messageRepo

	searchRepo, err := repositories.NewSearchRepository(ctx, db)
	if err != nil {
		return fmt.Errorf("search repository: %w", err)
	}
	c.SearchRepo = searchRepo

	c.MediaRepo = repositories.NewMediaRepository(db)
	c.TokenRepo = repositories.NewTokenRepository(c.Cache)
	c.PresenceRepo = repositories.NewPresenceRepository(c.Cache)
	return nil
}

func (c *Container) initServices(ctx context.Context) error {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
		c.Config.RefreshTTL,
	)
	c.VerificationSvc = services.NewVerificationService(c.Cache, services.VerificationConfig{
		Length: c.Config.CodeLength,
		TTL:    c.Config.VerificationTTL,
	})
	c.MailerSvc = notifications.NewMailerService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SMTPFrom,
	)

	mediaStore, err := storage.NewS3Store(ctx, storage.S3Config{
		Region:       c.Config.S3Region,
		Bucket:       c.Config.S3Bucket,
		AccessKey:    c.Config.S3AccessKey,
		SecretKey:    c.Config.S3SecretKey,
		BaseEndpoint: c.Config.S3BaseEndpoint,
	})
	if err != nil {
		return fmt.Errorf("object storage: %w", err)
	}

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.TokenRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.VerificationSvc,
		c.MailerSvc,
		c.Logger,
	)
	c.ChatSvc = services.NewChatService(c.ChatRepo, c.MessageRepo, c.UserRepo, c.MediaRepo)
	c.MediaSvc = services.NewMediaService(c.MediaRepo, mediaStore, c.Config.MediaMaxSize)
	c.PresenceSvc = services.NewPresenceService(c.PresenceRepo, c.Config.PresenceTTL)
	c.SearchSvc = services.NewSearchService(c.UserRepo, c.SearchRepo)
	return nil
}

// Close releases all connections.
func (c *Container) Close(ctx context.Context) error {
	if c.memStore != nil {
		c.memStore.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn().Err(err).Msg("closing ephemeral store")
		}
	}
	if c.Mongo != nil {
		return c.Mongo.Close(ctx)
	}
	return nil
}
