// Package database stores webhook events in PostgreSQL.
package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trypinnacle/pinnacle-go/internal/server/ingest/models"
	"github.com/ubuntu/decorate"
)

// EventsTable is the table webhook events are inserted into.
const EventsTable = "webhook_events"

// Config holds the configuration for connecting to the PostgreSQL database.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type dbPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

// Manager owns the PostgreSQL connection pool.
type Manager struct {
	mu     sync.Mutex
	dbpool dbPool

	closeTimeout time.Duration
}

type options struct {
	newPool      func(ctx context.Context, dsn string) (dbPool, error)
	closeTimeout time.Duration
}

// Options represents an optional function to override Manager default values.
type Options func(*options)

// Connect creates a connection pool to the database described by cfg and checks it with a ping.
func Connect(ctx context.Context, cfg Config, args ...Options) (m *Manager, err error) {
	defer decorate.OnError(&err, "could not connect to database %q", cfg.DBName)

	opts := options{
		newPool: func(ctx context.Context, dsn string) (dbPool, error) {
			return pgxpool.New(ctx, dsn)
		},
		closeTimeout: 10 * time.Second,
	}
	for _, opt := range args {
		opt(&opts)
	}

	dbpool, err := opts.newPool(ctx, cfg.URI("postgres"))
	if err != nil {
		return nil, fmt.Errorf("unable to create database connection pool: %w", err)
	}

	slog.Debug("Testing database connection", "host", cfg.Host, "port", cfg.Port)
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := dbpool.Ping(pingCtx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("unable to ping database: %v", err)
	}

	slog.Info("Connected to PostgreSQL database", "host", cfg.Host, "port", cfg.Port, "database", cfg.DBName)
	return &Manager{dbpool: dbpool, closeTimeout: opts.closeTimeout}, nil
}

// Insert stores row. Inserting an event id which is already stored is a no-op, so an event
// whose file could not be removed is not stored twice.
func (db *Manager) Insert(ctx context.Context, row *models.EventRow) (err error) {
	defer decorate.OnError(&err, "could not store event %s", row.EventID)

	db.mu.Lock()
	pool := db.dbpool
	db.mu.Unlock()
	if pool == nil {
		return errors.New("database not initialized")
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (
			event_id,
			receiver,
			received_at,
			event_type,
			conversation_id,
			sender,
			recipient,
			message_id,
			message_type,
			status,
			direction,
			segments,
			occurred_at,
			delivered_at,
			payload
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (event_id) DO NOTHING`,
		pgx.Identifier{EventsTable}.Sanitize(),
	)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err = pool.Exec(ctx, query,
		row.EventID,               // event_id
		row.Receiver,              // receiver
		time.Now(),                // received_at
		row.Type,                  // event_type
		row.ConversationID,        // conversation_id
		row.From,                  // sender
		row.To,                    // recipient
		nullable(row.MessageID),   // message_id
		nullable(row.MessageType), // message_type
		nullable(row.Status),      // status
		nullable(row.Direction),   // direction
		row.Segments,              // segments
		row.OccurredAt,            // occurred_at
		row.DeliveredAt,           // delivered_at
		string(row.Payload),       // payload
	)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("insert canceled: %w", err)
		}
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// nullable maps empty strings to NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Close closes the connection pool. Closing an already closed Manager does nothing.
// It errors if the pool does not close in time.
func (db *Manager) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.dbpool == nil {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		db.dbpool.Close()
	}()

	select {
	case <-done:
		db.dbpool = nil
		return nil
	case <-time.After(db.closeTimeout):
		return errors.New("timeout while closing database, connection may still be open")
	}
}

// URI returns a connection URI for PostgreSQL with the given scheme.
// It does not check the validity of the configuration values.
//
// Security warning: the returned string may include credentials.
func (c Config) URI(scheme string) string {
	host := c.Host
	if c.Port != 0 {
		host = c.Host + ":" + strconv.Itoa(c.Port)
	}

	user := url.User(c.User)
	if c.Password != "" {
		user = url.UserPassword(c.User, c.Password)
	}

	u := &url.URL{
		Scheme: scheme,
		User:   user,
		Host:   host,
		Path:   c.DBName,
	}

	q := u.Query()
	if c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
