package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"adboard-backend/internal/config"
	infraCache "adboard-backend/internal/infrastructure/cache"
	"adboard-backend/internal/infrastructure/database"
	"adboard-backend/internal/infrastructure/queue"
	"adboard-backend/pkg/cache"
	"adboard-backend/pkg/jwt"

	"adboard-backend/internal/domains/announcement"
	announcementHandler "adboard-backend/internal/domains/announcement/handler"
	announcementRepo "adboard-backend/internal/domains/announcement/repository"
	announcementService "adboard-backend/internal/domains/announcement/service"
	"adboard-backend/internal/domains/author"
	authorHandler "adboard-backend/internal/domains/author/handler"
	authorRepo "adboard-backend/internal/domains/author/repository"
	authorService "adboard-backend/internal/domains/author/service"
	"adboard-backend/internal/domains/heading"
	headingHandler "adboard-backend/internal/domains/heading/handler"
	headingRepo "adboard-backend/internal/domains/heading/repository"
	headingService "adboard-backend/internal/domains/heading/service"
	"adboard-backend/internal/domains/suitablead"
	suitableAdHandler "adboard-backend/internal/domains/suitablead/handler"
	suitableAdRepo "adboard-backend/internal/domains/suitablead/repository"
	suitableAdService "adboard-backend/internal/domains/suitablead/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application. It is the root
// of the dependency graph; everything below is a singleton created
// once at startup.
type Container struct {
	// Infrastructure layer, shared across all domains.
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	QueueClient *queue.Client

	// Repository layer (data access).
	AuthorRepo       author.Repository
	HeadingRepo      heading.Repository
	AnnouncementRepo announcement.Repository
	SuitableAdRepo   suitablead.Repository

	// Service layer (business logic).
	AuthorService       author.Service
	HeadingService      heading.Service
	AnnouncementService announcement.Service
	SuitableAdService   suitablead.Service

	// Handler layer (HTTP).
	AuthorHandler       *authorHandler.AuthorHandler
	HeadingHandler      *headingHandler.HeadingHandler
	AnnouncementHandler *announcementHandler.AnnouncementHandler
	SuitableAdHandler   *suitableAdHandler.SuitableAdHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole dependency graph. Initialization order
// matters: config first, then infrastructure, repositories, services
// and finally handlers. A wrong order means nil pointers at runtime.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// Step 1: configuration. Depends on nothing.
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// Step 2: database.
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// Step 3: cache. Redis being down is not fatal; repositories fall
	// back to the database on cache misses.
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	// Step 4: queue client for handing side effects to the worker.
	c.QueueClient = queue.NewClient(cfg.Redis.Host)

	// Steps 5-7: repositories, services, handlers.
	log.Println("📦 Initializing repositories...")
	c.initRepositories()
	log.Println("⚙️  Initializing services...")
	c.initServices()
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool, c.Cache)
	c.HeadingRepo = headingRepo.NewPostgresRepository(pool, c.Cache)
	c.AnnouncementRepo = announcementRepo.NewPostgresRepository(pool, c.Cache)
	c.SuitableAdRepo = suitableAdRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.SuitableAdRepo, c.JWTManager)
	c.HeadingService = headingService.NewHeadingService(c.HeadingRepo)
	c.AnnouncementService = announcementService.NewAnnouncementService(
		c.AnnouncementRepo,
		c.HeadingRepo,
		c.QueueClient,
	)
	c.SuitableAdService = suitableAdService.NewSuitableAdService(c.SuitableAdRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.HeadingHandler = headingHandler.NewHeadingHandler(c.HeadingService)
	c.AnnouncementHandler = announcementHandler.NewAnnouncementHandler(c.AnnouncementService)
	c.SuitableAdHandler = suitableAdHandler.NewSuitableAdHandler(c.SuitableAdService)
}

// ========================================
// HELPER METHODS
// ========================================

// Cleanup releases container resources during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			log.Printf("⚠️  Failed to close queue client: %v", err)
		}
	}

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
