// Package scheduler keeps the dashboard forecast fresh in the background
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"meteorenard.app/internal/core/dashboard"
	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
)

// DefaultJobTimeout bounds a single scheduled refresh
const DefaultJobTimeout = 30 * time.Second

// Refresher is the dashboard operation run on every tick
type Refresher interface {
	Refresh(ctx context.Context) (*dashboard.Snapshot, error)
}

// RefreshSchedulerParams holds the dependencies of RefreshScheduler
type RefreshSchedulerParams struct {
	Dashboard  Refresher
	Logger     ports.Logger
	Interval   time.Duration
	JobTimeout time.Duration
}

// RefreshScheduler refreshes the dashboard on a fixed interval using gocron.
// The first refresh runs as soon as the scheduler starts.
type RefreshScheduler struct {
	scheduler  *gocron.Scheduler
	dashboard  Refresher
	logger     ports.Logger
	interval   time.Duration
	jobTimeout time.Duration

	mu      sync.Mutex
	running bool
}

// NewRefreshScheduler creates a stopped scheduler
func NewRefreshScheduler(params RefreshSchedulerParams) (*RefreshScheduler, error) {
	if params.Dashboard == nil {
		return nil, errors.NewValidationError("dashboard is required")
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if params.Interval <= 0 {
		return nil, errors.NewValidationError("refresh interval must be positive")
	}

	timeout := params.JobTimeout
	if timeout <= 0 {
		timeout = DefaultJobTimeout
	}

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	return &RefreshScheduler{
		scheduler:  s,
		dashboard:  params.Dashboard,
		logger:     params.Logger,
		interval:   params.Interval,
		jobTimeout: timeout,
	}, nil
}

// Start schedules the refresh job and starts the underlying scheduler
func (s *RefreshScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	if _, err := s.scheduler.Every(s.interval).Do(s.refresh); err != nil {
		return errors.NewConfigurationError("failed to schedule dashboard refresh", err)
	}

	s.scheduler.StartAsync()
	s.running = true
	s.logger.Info("Refresh scheduler started", ports.F("interval", s.interval.String()))
	return nil
}

// Stop stops the scheduler and waits for a running refresh to return
func (s *RefreshScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}

	s.scheduler.Stop()
	s.scheduler.Clear()
	s.running = false
	s.logger.Info("Refresh scheduler stopped")
}

func (s *RefreshScheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
	defer cancel()

	start := time.Now()
	snap, err := s.dashboard.Refresh(ctx)
	if err != nil {
		s.logger.Warn("Scheduled refresh failed",
			ports.F("error", err),
			ports.F("duration_ms", time.Since(start).Milliseconds()))
		return
	}

	s.logger.Debug("Scheduled refresh completed",
		ports.F("location", snap.Location.Name),
		ports.F("provider", snap.ProviderID),
		ports.F("duration_ms", time.Since(start).Milliseconds()))
}
