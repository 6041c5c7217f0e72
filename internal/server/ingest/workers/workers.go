// Package workers runs one ingest worker per allowed receiver.
package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Pool starts and stops receiver workers as the allow list changes.
type Pool struct {
	cm   dConfigManager
	proc dProcessor

	mu       sync.Mutex
	workers  map[string]context.CancelFunc
	workerWG sync.WaitGroup

	activeWorkers prometheus.Gauge

	debounce     time.Duration
	pollInterval time.Duration
	baseBackoff  time.Duration
	maxBackoff   time.Duration
}

type dConfigManager interface {
	Watch(context.Context) (<-chan struct{}, <-chan error, error)
	AllowList() []string
	IsAllowed(string) bool
}

type dProcessor interface {
	Process(ctx context.Context, receiver string) error
}

type options struct {
	debounce     time.Duration
	pollInterval time.Duration
	baseBackoff  time.Duration
	maxBackoff   time.Duration
}

// Options represents an optional function to override Pool default values.
type Options func(*options)

// WithPollInterval sets how long a worker waits between two rounds over its spool.
func WithPollInterval(d time.Duration) Options {
	return func(o *options) {
		o.pollInterval = d
	}
}

// New returns a Pool processing events with proc. Its active workers gauge is registered in reg.
func New(cm dConfigManager, proc dProcessor, reg prometheus.Registerer, args ...Options) (*Pool, error) {
	opts := options{
		debounce:     5 * time.Second,
		pollInterval: 2 * time.Second,
		baseBackoff:  5 * time.Second,
		maxBackoff:   30 * time.Second,
	}
	for _, arg := range args {
		arg(&opts)
	}

	activeWorkers := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ingest_active_workers",
		Help: "Number of active receiver workers in the ingest service.",
	})
	if err := reg.Register(activeWorkers); err != nil {
		return nil, fmt.Errorf("failed to register active workers gauge: %v", err)
	}

	return &Pool{
		cm:            cm,
		proc:          proc,
		workers:       make(map[string]context.CancelFunc),
		activeWorkers: activeWorkers,

		debounce:     opts.debounce,
		pollInterval: opts.pollInterval,
		baseBackoff:  opts.baseBackoff,
		maxBackoff:   opts.maxBackoff,
	}, nil
}

// Run starts a worker for every allowed receiver and keeps the workers in sync with the
// configuration until ctx is done or the configuration can no longer be watched.
//
// It waits for all workers to stop before returning, and always returns a non-nil error.
func (m *Pool) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		m.workerWG.Wait()
	}()

	reloadCh, watchErrCh, err := m.cm.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start watch configuration: %v", err)
	}

	m.syncWorkers(ctx)

	// Bursts of changes only resync once.
	debounceTimer := time.NewTimer(m.debounce)
	debounceTimer.Stop()
	defer debounceTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Context canceled, stopping worker pool")
			return ctx.Err()

		case _, ok := <-reloadCh:
			if !ok {
				return m.stopped(ctx, errors.New("configuration changes channel closed unexpectedly"))
			}
			debounceTimer.Reset(m.debounce)

		case <-debounceTimer.C:
			slog.Info("Resyncing workers after configuration change")
			m.syncWorkers(ctx)

		case err, ok := <-watchErrCh:
			if !ok {
				return m.stopped(ctx, errors.New("configuration errors channel closed unexpectedly"))
			}
			slog.Error("Configuration watcher error", "err", err)
			return fmt.Errorf("configuration watcher failed: %v", err)
		}
	}
}

// stopped returns the context error when the watcher stopped because ctx is done, err otherwise.
func (m *Pool) stopped(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// syncWorkers stops the workers of removed receivers and starts the ones of new receivers.
func (m *Pool) syncWorkers(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for receiver, cancel := range m.workers {
		if !m.cm.IsAllowed(receiver) {
			slog.Info("Stopping receiver worker", "receiver", receiver)
			cancel()
			delete(m.workers, receiver)
		}
	}

	for _, receiver := range m.cm.AllowList() {
		if _, ok := m.workers[receiver]; ok {
			continue
		}
		if ctx.Err() != nil {
			return
		}

		wCtx, cancel := context.WithCancel(ctx)
		m.workers[receiver] = cancel
		slog.Info("Starting receiver worker", "receiver", receiver)
		m.workerWG.Add(1)
		go m.worker(wCtx, receiver)
	}
}

// worker processes the spool of receiver until ctx is done, backing off after failures.
func (m *Pool) worker(ctx context.Context, receiver string) {
	defer m.workerWG.Done()

	m.activeWorkers.Inc()
	defer m.activeWorkers.Dec()

	backoff := m.baseBackoff
	for {
		wait := m.pollInterval
		if err := m.proc.Process(ctx, receiver); err != nil && ctx.Err() == nil {
			slog.Warn("Processing failed, backing off", "receiver", receiver, "err", err)
			if backoff > 0 {
				// #nosec:G404 We don't need cryptographic randomness.
				wait = time.Duration(rand.Int63n(int64(backoff)))
			}
			backoff = min(backoff*2, m.maxBackoff)
		} else {
			backoff = m.baseBackoff
		}

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			slog.Debug("Receiver worker stopped", "receiver", receiver)
			return
		}
	}
}
