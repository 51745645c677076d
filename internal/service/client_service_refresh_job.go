package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/kundelik/internal/logger"
	"github.com/MKhiriev/kundelik/internal/store"
)

// DefaultRefreshInterval is used when no positive interval is configured.
const DefaultRefreshInterval = 5 * time.Minute

type refreshable interface {
	Name() string
	Refresh(ctx context.Context) error
}

type clientRefresher struct {
	trackers []refreshable
	logger   *logger.Logger
}

// NewClientRefresher creates a refresher over the given trackers.
func NewClientRefresher(logger *logger.Logger, trackers ...refreshable) ClientRefresher {
	return &clientRefresher{trackers: trackers, logger: logger}
}

// RefreshAll implements ClientRefresher. One failing tracker does not cancel
// the others.
func (r *clientRefresher) RefreshAll(ctx context.Context) error {
	var g errgroup.Group
	errs := make([]error, len(r.trackers))

	for i, t := range r.trackers {
		g.Go(func() error {
			if err := t.Refresh(ctx); err != nil {
				r.logger.Warn().Err(err).Str("tracker", t.Name()).Msg("refresh failed")
				errs[i] = err
			}
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

type clientRefreshJob struct {
	refresher ClientRefresher
	session   store.SessionStore
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that calls
// refresher.RefreshAll every interval while a session exists. The job is
// idle until Run or Start is called.
func NewClientRefreshJob(refresher ClientRefresher, session store.SessionStore, interval time.Duration, logger *logger.Logger) ClientRefreshJob {
	return &clientRefreshJob{refresher: refresher, session: session, interval: interval, logger: logger}
}

// Run implements workers.Worker with the configured interval.
func (j *clientRefreshJob) Run(ctx context.Context) {
	j.Start(ctx, j.interval)
}

// Start implements ClientRefreshJob. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if !j.session.Current().IsAuthenticated() {
					continue
				}
				if err := j.refresher.RefreshAll(jobCtx); err != nil {
					j.logger.Debug().Err(err).Msg("background refresh finished with errors")
				}
			}
		}
	}()
}

// Stop implements ClientRefreshJob. Safe to call when the job is not
// running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
