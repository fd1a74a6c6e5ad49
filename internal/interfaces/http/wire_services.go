package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	accountUsecases "github.com/talento-hq/talento/internal/application/account/usecases"
	adminUsecases "github.com/talento-hq/talento/internal/application/admin/usecases"
	interviewUsecases "github.com/talento-hq/talento/internal/application/interview/usecases"
	paymentUsecases "github.com/talento-hq/talento/internal/application/payment/usecases"
	planUsecases "github.com/talento-hq/talento/internal/application/plan/usecases"
	"github.com/talento-hq/talento/internal/application/quota"
	settingApp "github.com/talento-hq/talento/internal/application/setting"
	settingUsecases "github.com/talento-hq/talento/internal/application/setting/usecases"
	"github.com/talento-hq/talento/internal/domain/shared/events"
	"github.com/talento-hq/talento/internal/infrastructure/analyzer"
	"github.com/talento-hq/talento/internal/infrastructure/auth"
	"github.com/talento-hq/talento/internal/infrastructure/cache"
	"github.com/talento-hq/talento/internal/infrastructure/config"
	"github.com/talento-hq/talento/internal/infrastructure/email"
	"github.com/talento-hq/talento/internal/infrastructure/metrics"
	infraPayment "github.com/talento-hq/talento/internal/infrastructure/payment"
	"github.com/talento-hq/talento/internal/infrastructure/permission"
	"github.com/talento-hq/talento/internal/infrastructure/ratelimit"
	"github.com/talento-hq/talento/internal/infrastructure/scheduler"
	"github.com/talento-hq/talento/internal/interfaces/http/handlers"
	adminHandlers "github.com/talento-hq/talento/internal/interfaces/http/handlers/admin"
	"github.com/talento-hq/talento/internal/interfaces/http/middleware"
	shareddb "github.com/talento-hq/talento/internal/shared/db"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/services/markdown"
)

const (
	eventBufferSize       = 100
	webhookEventKeyPrefix = "talento:webhook:event:"
)

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Auth, Events
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	if cfg.Redis.Enabled {
		client, err := initRedis(cfg, log)
		if err != nil {
			return err
		}
		c.redis = client
	} else {
		log.Infow("redis disabled, plan cache and webhook dedup are off")
	}

	c.repos = newRepositories(c.db, log)
	c.txMgr = shareddb.NewTransactionManager(c.db)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpDays)
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	if cfg.Metrics.Enabled {
		c.metrics = metrics.New()
	}

	c.eventDispatcher = events.NewInMemoryEventDispatcher(eventBufferSize, log.Named("events"))
	if err := c.eventDispatcher.Start(); err != nil {
		return fmt.Errorf("start event dispatcher: %w", err)
	}

	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

// ============================================================
// Section 2: Settings & Email
// ============================================================

func (c *Container) initSettingsAndEmail() error {
	cfg := c.cfg
	log := c.log

	c.settingServiceDDD = settingApp.NewServiceDDD(
		c.repos.settingRepo,
		settingUsecases.SettingProviderConfig{
			Stripe: cfg.Payment.Stripe,
			Email:  cfg.Email,
		},
		markdown.NewRenderer(),
		log,
	)

	// SMTP settings saved by an admin take effect without a restart
	c.mailer = email.NewMailer(c.settingServiceDDD.GetSettingProvider(), cfg.Server.ClientOrigin, log)
	if err := c.mailer.Reload(context.Background()); err != nil {
		log.Warnw("failed to initialize email service, notifications disabled until settings change", "error", err)
	}
	c.settingServiceDDD.Subscribe(c.mailer)

	notifier := email.NewPaymentNotifier(
		c.repos.paymentRepo,
		c.repos.accountRepo,
		c.repos.planRepo,
		c.mailer,
		log,
	)
	if err := notifier.Register(c.eventDispatcher); err != nil {
		return fmt.Errorf("register payment notifier: %w", err)
	}

	return nil
}

// ============================================================
// Section 3: Use cases
// ============================================================

func (c *Container) initUseCases() error {
	cfg := c.cfg
	log := c.log
	repos := c.repos

	// Interfaces stay nil unless the backing service exists
	var (
		planCache          planUsecases.PublicPlanCache
		denialRecorder     quota.DenialRecorder
		transitionRecorder paymentUsecases.TransitionRecorder
	)
	if c.redis != nil {
		planCache = cache.NewRedisPlanCache(c.redis, log)
	}
	if c.metrics != nil {
		denialRecorder = c.metrics
		transitionRecorder = c.metrics
	}

	gateway, err := infraPayment.NewGateway(cfg.Payment.Gateway, infraPayment.NewStripeGateway(log))
	if err != nil {
		return err
	}
	credentials := c.settingServiceDDD.GetSettingProvider()
	placeholderAnalyzer := analyzer.NewPlaceholder()

	ucs := &allUseCases{}

	// Quota
	ucs.quotaService = quota.NewService(repos.accountRepo, repos.planRepo, denialRecorder, log)

	// Account / Auth
	ucs.authenticateUC = accountUsecases.NewAuthenticateUseCase(repos.accountRepo, c.jwtSvc, log)
	ucs.signupUC = accountUsecases.NewSignupUseCase(repos.accountRepo, repos.planRepo, c.hasher, c.jwtSvc, cfg.Auth.Password.MinLength, log)
	ucs.loginUC = accountUsecases.NewLoginUseCase(repos.accountRepo, c.hasher, c.jwtSvc, log)
	ucs.getProfileUC = accountUsecases.NewGetProfileUseCase(repos.accountRepo, ucs.quotaService, log)

	// Plan
	ucs.listPublicPlansUC = planUsecases.NewListPublicPlansUseCase(repos.planRepo, planCache, log)
	ucs.listPlansUC = planUsecases.NewListPlansUseCase(repos.planRepo, log)
	ucs.createPlanUC = planUsecases.NewCreatePlanUseCase(repos.planRepo, planCache, cfg.Payment.Currency, log)
	ucs.updatePlanUC = planUsecases.NewUpdatePlanUseCase(repos.planRepo, planCache, log)
	ucs.deletePlanUC = planUsecases.NewDeletePlanUseCase(repos.planRepo, planCache, log)
	ucs.togglePlanUC = planUsecases.NewTogglePlanUseCase(repos.planRepo, planCache, log)

	// Interview
	ucs.createInterviewUC = interviewUsecases.NewCreateInterviewUseCase(repos.interviewRepo, ucs.quotaService, c.txMgr, cfg.Server.ClientOrigin, log)
	ucs.listInterviewsUC = interviewUsecases.NewListInterviewsUseCase(repos.interviewRepo, cfg.Server.ClientOrigin, log)
	ucs.getReportUC = interviewUsecases.NewGetReportUseCase(repos.interviewRepo, log)
	ucs.memberDashboardUC = interviewUsecases.NewGetMemberDashboardUseCase(repos.accountRepo, ucs.quotaService, repos.interviewRepo, cfg.Server.ClientOrigin, log)
	ucs.getInterviewByLinkUC = interviewUsecases.NewGetByLinkUseCase(repos.interviewRepo, log)
	ucs.startInterviewUC = interviewUsecases.NewStartInterviewUseCase(repos.interviewRepo, placeholderAnalyzer, log)
	ucs.submitInterviewUC = interviewUsecases.NewSubmitInterviewUseCase(repos.interviewRepo, placeholderAnalyzer, log)

	// Payment
	ucs.paymentWorkflow = paymentUsecases.NewWorkflow(repos.paymentRepo, repos.accountRepo, repos.planRepo, c.txMgr, c.eventDispatcher, transitionRecorder, log)
	ucs.createCheckoutUC = paymentUsecases.NewCreateCheckoutUseCase(
		repos.paymentRepo,
		repos.accountRepo,
		repos.planRepo,
		gateway,
		credentials,
		paymentUsecases.CheckoutURLs{
			ClientOrigin: cfg.Server.ClientOrigin,
			SuccessPath:  cfg.Payment.SuccessPath,
			CancelPath:   cfg.Payment.CancelPath,
		},
		log,
	)
	ucs.submitManualPaymentUC = paymentUsecases.NewSubmitManualPaymentUseCase(repos.paymentRepo, repos.accountRepo, repos.planRepo, log)
	ucs.listPaymentHistoryUC = paymentUsecases.NewListPaymentHistoryUseCase(repos.paymentRepo, repos.planRepo, log)
	ucs.getPaymentUC = paymentUsecases.NewGetPaymentUseCase(repos.paymentRepo, repos.planRepo, log)
	ucs.getManualInstructionsUC = paymentUsecases.NewGetManualInstructionsUseCase(repos.settingRepo, markdown.NewRenderer(), log)
	ucs.handleWebhookUC = paymentUsecases.NewHandleWebhookUseCase(repos.paymentRepo, ucs.paymentWorkflow, gateway, credentials, log)
	if c.redis != nil {
		ucs.handleWebhookUC = ucs.handleWebhookUC.WithEventStore(
			cache.NewRedisWebhookEventStore(c.redis, webhookEventKeyPrefix, cache.DefaultWebhookEventTTL))
	}
	ucs.listPendingPaymentsUC = paymentUsecases.NewListPendingPaymentsUseCase(repos.paymentRepo, repos.accountRepo, repos.planRepo, log)
	ucs.approvePaymentUC = paymentUsecases.NewApprovePaymentUseCase(repos.paymentRepo, repos.planRepo, ucs.paymentWorkflow, log)
	ucs.rejectPaymentUC = paymentUsecases.NewRejectPaymentUseCase(repos.paymentRepo, repos.planRepo, ucs.paymentWorkflow, log)
	ucs.assignPlanUC = paymentUsecases.NewAssignPlanUseCase(repos.paymentRepo, repos.accountRepo, repos.planRepo, ucs.paymentWorkflow, c.txMgr, log)
	ucs.expireStaleCheckoutsUC = paymentUsecases.NewExpireStaleCheckoutsUseCase(
		repos.paymentRepo,
		ucs.paymentWorkflow,
		time.Duration(cfg.Payment.PendingCheckoutTTLMinutes)*time.Minute,
		log,
	)

	// Admin
	ucs.getAdminDashboardUC = adminUsecases.NewGetAdminDashboardUseCase(repos.accountRepo, repos.interviewRepo, repos.paymentRepo, cfg.Payment.Currency, log)
	ucs.listAccountsUC = adminUsecases.NewListAccountsUseCase(repos.accountRepo, repos.planRepo, log)

	c.ucs = ucs
	return nil
}

// ============================================================
// Section 4: Middlewares
// ============================================================

func (c *Container) initMiddlewares() error {
	cfg := c.cfg
	log := c.log

	c.authMiddleware = middleware.NewAuthMiddleware(c.ucs.authenticateUC, log)

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("create permission enforcer: %w", err)
	}
	if err := permission.SyncDefaultPolicies(enforcer, log); err != nil {
		return fmt.Errorf("sync default policies: %w", err)
	}
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, log)

	if cfg.RateLimit.Enabled {
		var limiter ratelimit.RateLimiter
		if c.redis != nil {
			limiter = ratelimit.NewRedisRateLimiter(c.redis)
		} else {
			// Per-process counters; fine for a single instance
			limiter = ratelimit.NewMemoryRateLimiter()
		}
		c.rateLimiter = middleware.NewRateLimitMiddleware(limiter, log)
	}

	return nil
}

// ============================================================
// Section 5: Handlers
// ============================================================

func (c *Container) initHandlers() {
	log := c.log
	ucs := c.ucs

	c.hdlrs = &allHandlers{
		healthHandler: handlers.NewHealthHandler(c.healthChecks(), log),

		authHandler:   handlers.NewAuthHandler(ucs.signupUC, ucs.loginUC, ucs.getProfileUC, log),
		publicHandler: handlers.NewPublicHandler(ucs.listPublicPlansUC, c.settingServiceDDD, log),
		interviewHandler: handlers.NewInterviewHandler(
			ucs.createInterviewUC,
			ucs.listInterviewsUC,
			ucs.getReportUC,
			ucs.memberDashboardUC,
			ucs.getInterviewByLinkUC,
			ucs.startInterviewUC,
			ucs.submitInterviewUC,
			log,
		),
		paymentHandler: handlers.NewPaymentHandler(
			ucs.createCheckoutUC,
			ucs.submitManualPaymentUC,
			ucs.listPaymentHistoryUC,
			ucs.getPaymentUC,
			ucs.getManualInstructionsUC,
			ucs.handleWebhookUC,
			log,
		),

		adminDashboardHandler: adminHandlers.NewDashboardHandler(ucs.getAdminDashboardUC, log),
		adminSettingHandler:   adminHandlers.NewSettingHandler(c.settingServiceDDD, c.mailer, log),
		adminPlanHandler: adminHandlers.NewPlanHandler(
			ucs.listPlansUC,
			ucs.createPlanUC,
			ucs.updatePlanUC,
			ucs.deletePlanUC,
			ucs.togglePlanUC,
			log,
		),
		adminUserHandler:    adminHandlers.NewUserHandler(ucs.listAccountsUC, ucs.assignPlanUC, log),
		adminPaymentHandler: adminHandlers.NewPaymentHandler(ucs.listPendingPaymentsUC, ucs.approvePaymentUC, ucs.rejectPaymentUC, log),
	}
}

// ============================================================
// Section 6: Scheduler
// ============================================================

func (c *Container) initScheduler() error {
	manager, err := scheduler.NewSchedulerManager(c.log)
	if err != nil {
		return err
	}
	if err := manager.RegisterPaymentJobs(c.ucs.expireStaleCheckoutsUC, scheduler.DefaultCheckoutExpiryInterval); err != nil {
		return fmt.Errorf("register payment jobs: %w", err)
	}
	c.schedulerManager = manager
	return nil
}
