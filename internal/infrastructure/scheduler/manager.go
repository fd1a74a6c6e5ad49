// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/talento-hq/talento/internal/shared/biztime"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// DefaultCheckoutExpiryInterval is how often stale gateway checkouts are swept.
const DefaultCheckoutExpiryInterval = 10 * time.Minute

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

type managerState int

const (
	stateIdle managerState = iota
	stateRunning
	stateStopped
)

// SchedulerManager manages all scheduled jobs using gocron v2.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	mu    sync.Mutex
	state managerState
}

// NewSchedulerManager creates a new SchedulerManager instance.
// It initializes gocron with the business timezone for cron expressions.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// ========================================
// Payment Jobs
// ========================================

// RegisterPaymentJobs registers the sweep that fails gateway checkouts the
// customer abandoned. A non-positive interval uses the default.
func (m *SchedulerManager) RegisterPaymentJobs(expireCheckoutsJob BatchJob, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultCheckoutExpiryInterval
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()
			m.processPaymentTasks(ctx, expireCheckoutsJob)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("payment", "expire-checkouts"),
		gocron.WithName("payment-expire-checkouts"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered payment jobs", "interval", interval.String())
	return nil
}

func (m *SchedulerManager) processPaymentTasks(ctx context.Context, expireCheckoutsJob BatchJob) {
	m.logger.Debugw("processing payment tasks started")

	startTime := biztime.NowUTC()

	expiredCount, err := expireCheckoutsJob.Execute(ctx)
	if err != nil {
		m.logger.Errorw("failed to expire stale checkouts",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}
	if expiredCount > 0 {
		m.logger.Infow("stale checkouts expired",
			"count", expiredCount,
			"duration", time.Since(startTime),
		)
	}
}

// ========================================
// Scheduler Lifecycle Methods
// ========================================

// Start starts the scheduler and all registered jobs. It is a no-op once
// the manager has been started or stopped.
func (m *SchedulerManager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != stateIdle {
		return
	}

	m.scheduler.Start()
	m.state = stateRunning
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop shuts the scheduler down, waiting for running jobs. A manager that
// was never started is shut down too, so its gocron goroutines exit.
func (m *SchedulerManager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateStopped {
		return nil
	}
	wasRunning := m.state == stateRunning
	m.state = stateStopped

	if err := m.scheduler.Shutdown(); err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	if wasRunning {
		m.logger.Infow("scheduler manager stopped")
	}
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == stateRunning
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
