package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	settingApp "github.com/talento-hq/talento/internal/application/setting"
	"github.com/talento-hq/talento/internal/domain/shared/events"
	"github.com/talento-hq/talento/internal/infrastructure/auth"
	"github.com/talento-hq/talento/internal/infrastructure/config"
	"github.com/talento-hq/talento/internal/infrastructure/email"
	"github.com/talento-hq/talento/internal/infrastructure/metrics"
	"github.com/talento-hq/talento/internal/infrastructure/scheduler"
	"github.com/talento-hq/talento/internal/interfaces/http/middleware"
	shareddb "github.com/talento-hq/talento/internal/shared/db"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases, handlers,
// and background services. It is responsible for wiring everything together and
// providing a Shutdown() method for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client // nil when redis.enabled is false
	txMgr  *shareddb.TransactionManager

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimitMiddleware // nil when rate limiting is disabled

	// Auth & setting infrastructure services
	jwtSvc            *auth.JWTService
	hasher            *auth.BcryptPasswordHasher
	mailer            *email.Mailer
	settingServiceDDD *settingApp.ServiceDDD

	// Cross-cutting
	metrics         *metrics.Metrics // nil when metrics.enabled is false
	eventDispatcher *events.InMemoryEventDispatcher

	// Background services
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Auth, Events
	if err := c.initInfrastructure(); err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	// Section 2: Settings & Email - hot-reload provider, SMTP, payment notifications
	if err := c.initSettingsAndEmail(); err != nil {
		c.Shutdown()
		return nil, fmt.Errorf("init settings: %w", err)
	}

	// Section 3: Use cases - accounts, plans, quota, interviews, payments, admin
	if err := c.initUseCases(); err != nil {
		c.Shutdown()
		return nil, fmt.Errorf("init use cases: %w", err)
	}

	// Section 4: Middlewares - authentication, casbin authorization, rate limiting
	if err := c.initMiddlewares(); err != nil {
		c.Shutdown()
		return nil, fmt.Errorf("init middlewares: %w", err)
	}

	// Section 5: Handlers
	c.initHandlers()

	// Section 6: Scheduler - stale checkout expiry
	if err := c.initScheduler(); err != nil {
		c.Shutdown()
		return nil, fmt.Errorf("init scheduler: %w", err)
	}

	return c, nil
}

// Shutdown stops background work and releases connections. Safe to call on
// a partially initialized container.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}

	// Drains queued payment notifications
	if c.eventDispatcher != nil {
		if err := c.eventDispatcher.Stop(); err != nil {
			c.log.Errorw("failed to stop event dispatcher", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
