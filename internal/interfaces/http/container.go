package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/GraziArcH/domain-sales/internal/infrastructure/auth"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/cache"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/config"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/database"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/email"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/metrics"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/permission"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/ratelimit"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/scheduler"
	"github.com/GraziArcH/domain-sales/internal/interfaces/http/middleware"
	"github.com/GraziArcH/domain-sales/internal/shared/db"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
	"github.com/GraziArcH/domain-sales/internal/shared/services/markdown"
	"github.com/GraziArcH/domain-sales/internal/shared/utils"
)

// Container holds the infrastructure components, repositories, use cases,
// handlers and background services and wires them together.
type Container struct {
	// Core infrastructure
	engine     *gin.Engine
	db         *gorm.DB
	identityDB *gorm.DB
	cfg        *config.Config
	log        logger.Interface
	redis      *redis.Client

	planCache cache.PlanCache
	txMgr     *db.TransactionManager
	identTx   *db.TransactionManager

	// Shared services
	renderer markdown.Renderer
	prices   *utils.PriceFormatter
	metrics  *metrics.Metrics
	notifier *email.AsyncNotifier
	enforcer *permission.Enforcer
	jwtSvc   *auth.JWTService
	hasher   *auth.ServiceKeyHasher

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	publicRateLimit      gin.HandlerFunc

	schedulerManager *scheduler.SchedulerManager
}

// NewContainer opens both databases and wires every component. The plan and
// identity databases must already be registered with database.Init.
func NewContainer(cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine:     gin.New(),
		db:         database.Get(database.Plan),
		identityDB: database.Get(database.Identity),
		cfg:        cfg,
		log:        log,
	}
	if c.db == nil {
		return nil, errors.New("plan database is not initialized")
	}
	if c.identityDB == nil {
		return nil, errors.New("identity database is not initialized")
	}

	// Section 1: Infrastructure - Redis, caches, shared services
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Repositories and use cases
	c.repos = c.initRepositories()
	c.ucs = c.initUseCases()

	// Section 3: Auth and permissions
	if err := c.initAuth(); err != nil {
		return nil, err
	}

	// Section 4: Handlers
	c.hdlrs = c.initHandlers()

	// Section 5: Scheduler jobs
	if err := c.initScheduler(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	if c.cfg.Cache.Enabled {
		c.planCache = cache.NewRedisPlanCache(c.redis, c.cfg.Cache.KeyPrefix, c.log)
	} else {
		c.planCache = cache.NoopPlanCache{}
	}

	c.txMgr = db.NewTransactionManager(c.db)
	c.identTx = db.NewNamedTransactionManager(c.identityDB, db.IdentityName)

	renderer, err := markdown.NewRenderer(c.cfg.Catalog.DescriptionCache)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	c.renderer = renderer

	prices, err := utils.NewPriceFormatter(c.cfg.Catalog.Currency, c.cfg.Catalog.Locale)
	if err != nil {
		return fmt.Errorf("failed to create price formatter: %w", err)
	}
	c.prices = prices

	c.metrics = metrics.NewMetrics()
	c.notifier = email.NewAsyncNotifier(email.NewCancellationMailer(c.cfg.Email, c.log), c.log)
	return nil
}

func (c *Container) initAuth() error {
	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.SeedDefaults(); err != nil {
		return fmt.Errorf("failed to seed default policies: %w", err)
	}
	c.enforcer = enforcer

	jwtCfg := c.cfg.Auth.JWT
	c.jwtSvc = auth.NewJWTService(jwtCfg.Secret, jwtCfg.AccessExpMinutes, jwtCfg.Issuer)
	c.hasher = auth.NewServiceKeyHasher(0)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, middleware.ServiceKeyConfig{
		Verifier: c.hasher,
		Hash:     c.cfg.Auth.ServiceKeyHash,
		ActorID:  c.cfg.Auth.ServiceActorID,
	}, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)

	if c.cfg.Catalog.RateLimit > 0 {
		limiter := ratelimit.NewRedisRateLimiter(c.redis, c.cfg.Catalog.RateLimit, c.cfg.Catalog.RateWindow())
		c.publicRateLimit = middleware.RateLimit(limiter, c.log)
	}
	return nil
}

func (c *Container) initScheduler() error {
	c.schedulerManager = scheduler.NewSchedulerManager(c.log)
	if !c.cfg.Scheduler.Enabled {
		return nil
	}
	return c.schedulerManager.RegisterExpiryJob(c.cfg.Scheduler.ExpirySpec, c.ucs.expireSubscriptions)
}

// StartScheduler starts the registered background jobs.
func (c *Container) StartScheduler() {
	if c.cfg.Scheduler.Enabled {
		c.schedulerManager.Start()
	}
}

// Shutdown stops background jobs, drains pending notifications and closes redis. Database connections are
// closed by database.CloseAll.
func (c *Container) Shutdown(ctx context.Context) error {
	if c.schedulerManager != nil {
		c.schedulerManager.Stop(ctx)
	}
	if c.notifier != nil {
		c.notifier.Wait()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			return fmt.Errorf("failed to close redis: %w", err)
		}
	}
	return nil
}
