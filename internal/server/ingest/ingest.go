// Package ingest runs the workers storing spooled webhook events alongside the metrics server.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Service runs the ingest worker pool and the metrics server until one of them stops.
type Service struct {
	workerPool    WorkerPool
	metricsServer MetricsServer
	db            Closer

	// This context is used to interrupt any action.
	// It must be the parent of gracefulCtx.
	ctx    context.Context
	cancel context.CancelFunc

	// This context is cancelled to request a graceful stop.
	gracefulCtx    context.Context
	gracefulCancel context.CancelFunc

	maxDegradedDuration time.Duration

	mu      sync.Mutex
	running chan struct{} // Closed when Run returns.
}

// WorkerPool processes the spool until its context is done.
type WorkerPool interface {
	Run(ctx context.Context) error
}

// MetricsServer serves the metrics of the service.
type MetricsServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
	Close() error
}

// Closer releases a resource once the service stopped.
type Closer interface {
	Close() error
}

type options struct {
	maxDegradedDuration time.Duration
	db                  Closer
}

// Option is a function which tweaks the creation of the Service.
type Option func(*options)

var (
	// errServiceClosed is returned when Run is called on a stopped service.
	errServiceClosed = errors.New("service closed")

	// ErrTeardownTimeout is returned when the service takes too long to shut down.
	// A force Quit may be required to cleanup the service.
	ErrTeardownTimeout = errors.New("service teardown timed out")
)

// WithDatabase closes db once the service stopped.
func WithDatabase(db Closer) Option {
	return func(o *options) {
		o.db = db
	}
}

// New returns a Service running workerPool and metricsServer.
func New(ctx context.Context, workerPool WorkerPool, metricsServer MetricsServer, args ...Option) *Service {
	opts := options{
		maxDegradedDuration: 2 * time.Minute,
	}
	for _, arg := range args {
		arg(&opts)
	}

	ctx, cancel := context.WithCancel(ctx)
	gCtx, gCancel := context.WithCancel(ctx)

	running := make(chan struct{})
	close(running)
	return &Service{
		workerPool:    workerPool,
		metricsServer: metricsServer,
		db:            opts.db,

		ctx:            ctx,
		cancel:         cancel,
		gracefulCtx:    gCtx,
		gracefulCancel: gCancel,

		maxDegradedDuration: opts.maxDegradedDuration,

		running: running,
	}
}

// Run starts the worker pool and the metrics server.
//
// Once one of them stops, the other is asked to stop too. Run returns when both are done,
// or after the degraded duration if the other does not stop in time.
func (s *Service) Run() (err error) {
	select {
	case <-s.gracefulCtx.Done():
		return errServiceClosed
	default:
	}

	running := make(chan struct{})
	s.mu.Lock()
	s.running = running
	s.mu.Unlock()
	defer close(running)
	defer s.cancel()
	defer func() {
		if s.db == nil {
			return
		}
		if cErr := s.db.Close(); cErr != nil {
			slog.Warn("Failed to close database", "err", cErr)
			err = errors.Join(err, cErr)
		}
	}()

	slog.Info("Ingest service started")

	done := make(chan error, 2)
	go func() { done <- s.runWorkers() }()
	go func() { done <- s.runMetrics() }()

	err = <-done
	slog.Info("Waiting for ingest services to finish")

	select {
	case <-time.After(s.maxDegradedDuration):
		// Errors of the remaining service are lost.
		slog.Warn("Ingest service teardown timed out")
		return errors.Join(err, ErrTeardownTimeout)
	case secondErr := <-done:
		return errors.Join(err, secondErr)
	}
}

func (s *Service) runWorkers() error {
	slog.Info("Starting worker pool")
	defer s.gracefulCancel()

	if err := s.workerPool.Run(s.gracefulCtx); err != nil && !errors.Is(err, s.gracefulCtx.Err()) {
		slog.Error("Worker pool encountered an error", "err", err)
		return fmt.Errorf("ingest workers error: %v", err)
	}
	slog.Info("Workers stopped")
	return nil
}

func (s *Service) runMetrics() error {
	slog.Info("Starting metrics server")
	defer s.gracefulCancel()

	metricsErrCh := make(chan error, 1)
	go func() {
		defer close(metricsErrCh)
		if err := s.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			metricsErrCh <- err
		}
	}()

	select {
	case <-s.ctx.Done():
		slog.Info("Closing metrics server", "reason", s.ctx.Err())
		_ = s.metricsServer.Close()
		return nil
	case <-s.gracefulCtx.Done():
		if err := s.metricsServer.Shutdown(s.ctx); err != nil {
			slog.Error("Metrics server graceful shutdown encountered error", "err", err)
			return fmt.Errorf("metrics server shutdown error: %v", err)
		}
	case err := <-metricsErrCh:
		if err != nil {
			slog.Error("Metrics server encountered error", "err", err)
			return fmt.Errorf("metrics server error: %v", err)
		}
	}
	slog.Info("Metrics server stopped")
	return nil
}

// Quit stops the service and waits for Run to return.
// Unless force is set, workers finish their current round first.
func (s *Service) Quit(force bool) {
	slog.Info("Stopping ingest service", "force", force)

	if force {
		s.cancel()
		_ = s.metricsServer.Close()
	} else {
		s.gracefulCancel()
	}

	s.mu.Lock()
	running := s.running
	s.mu.Unlock()
	<-running
}
