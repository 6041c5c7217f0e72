// Package webhooks provides the HTTP server receiving webhook deliveries and spooling them for ingestion.
package webhooks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/trypinnacle/pinnacle-go/internal/server/metrics"
	"github.com/trypinnacle/pinnacle-go/internal/server/webhooks/handlers"
	webhookmetrics "github.com/trypinnacle/pinnacle-go/internal/server/webhooks/metrics"
)

// Server holds the webhook HTTP server, its metrics server and their configuration.
type Server struct {
	httpServer    *http.Server
	metricsServer *metrics.Server
	cm            dConfigManager

	mu   sync.RWMutex
	addr net.Addr

	// This context is used to interrupt any action.
	// It must be the parent of gracefulCtx.
	ctx    context.Context
	cancel context.CancelFunc

	// This context is cancelled to start a graceful shutdown.
	gracefulCtx    context.Context
	gracefulCancel context.CancelFunc
}

// StaticConfig holds the configuration which cannot change while the server runs.
type StaticConfig struct {
	ConfigPath string
	SpoolDir   string

	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	RequestTimeout time.Duration
	MaxHeaderBytes int
	MaxBodyBytes   int

	ListenHost string
	ListenPort int

	MetricsHost string
	MetricsPort int
}

type dConfigManager interface {
	Load() error
	Watch(context.Context) (<-chan struct{}, <-chan error, error)
	IsAllowed(string) bool
	AllowList() []string
	Secret(string) string
}

// New loads the receiver configuration and returns a Server ready to Run.
func New(ctx context.Context, cm dConfigManager, sc StaticConfig) (*Server, error) {
	if err := cm.Load(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	receive, err := handlers.NewReceive(cm, sc.SpoolDir, int64(sc.MaxBodyBytes), reg)
	if err != nil {
		return nil, err
	}

	endpoints := webhookmetrics.NewEndpointMiddleware(reg)
	mux := http.NewServeMux()
	mux.Handle("POST /webhooks/{receiver}", endpoints.Wrap("webhooks", receive))
	mux.Handle("GET /version", endpoints.Wrap("version", http.HandlerFunc(handlers.Version)))

	ctx, cancel := context.WithCancel(ctx)
	gCtx, gCancel := context.WithCancel(ctx)

	return &Server{
		cm: cm,
		httpServer: &http.Server{
			Addr:           net.JoinHostPort(sc.ListenHost, strconv.Itoa(sc.ListenPort)),
			ReadTimeout:    sc.ReadTimeout,
			WriteTimeout:   sc.WriteTimeout,
			Handler:        webhookmetrics.NewMuxMiddleware(reg).Wrap("mux", http.TimeoutHandler(mux, sc.RequestTimeout, "")),
			MaxHeaderBytes: sc.MaxHeaderBytes,
		},
		metricsServer: metrics.New(metrics.Config{
			Host:         sc.MetricsHost,
			Port:         sc.MetricsPort,
			ReadTimeout:  sc.ReadTimeout,
			WriteTimeout: sc.WriteTimeout,
		}, reg),

		ctx:    ctx,
		cancel: cancel,

		gracefulCtx:    gCtx,
		gracefulCancel: gCancel,
	}, nil
}

// Run listens for deliveries until the server is asked to quit or fails.
func (s *Server) Run() error {
	// already asked to quit?
	select {
	case <-s.gracefulCtx.Done():
		return errors.New("server is already shutting down")
	default:
	}

	_, watchErr, err := s.cm.Watch(s.gracefulCtx)
	if err != nil {
		return fmt.Errorf("failed to start watching configuration: %v", err)
	}

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		s.cancel()
		return fmt.Errorf("failed to listen on %q: %v", s.httpServer.Addr, err)
	}
	s.mu.Lock()
	s.addr = listener.Addr()
	s.mu.Unlock()
	slog.Info("Starting server", "addr", listener.Addr().String())

	serverErr := make(chan error, 2)
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("webhook server error: %v", err)
		}
	}()
	go func() {
		if err := s.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("metrics server error: %v", err)
		}
	}()

	for {
		select {
		case <-s.gracefulCtx.Done():
			slog.Info("Graceful shutdown initiated")
			// The parent context unblocks Shutdown when a forced quit follows.
			err := errors.Join(s.httpServer.Shutdown(s.ctx), s.metricsServer.Shutdown(s.ctx))
			s.cancel()
			if err != nil {
				slog.Error("Graceful shutdown failed", "err", err)
				return err
			}
			slog.Info("Server shut down gracefully")
			return nil

		case err := <-serverErr:
			slog.Error("Server encountered error", "err", err)
			return errors.Join(err, s.closeAll())

		case err, ok := <-watchErr:
			if !ok {
				// The watcher stops with the graceful context.
				watchErr = nil
				continue
			}
			slog.Error("Config watcher encountered unrecoverable error", "err", err)
			return errors.Join(err, s.closeAll())
		}
	}
}

// Quit shuts down the server. Unless force is set, in-flight deliveries are completed first.
func (s *Server) Quit(force bool) {
	if force {
		_ = s.closeAll()
	} else {
		s.gracefulCancel()
	}
	slog.Info("Server quit")
}

// Addr returns the address the server listens on, or an empty string before it listens.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.addr == nil {
		return ""
	}
	return s.addr.String()
}

// MetricsAddr returns the address the metrics server listens on, or an empty string before it listens.
func (s *Server) MetricsAddr() string {
	return s.metricsServer.Addr()
}

func (s *Server) closeAll() error {
	defer s.cancel()
	return errors.Join(s.httpServer.Close(), s.metricsServer.Close())
}
