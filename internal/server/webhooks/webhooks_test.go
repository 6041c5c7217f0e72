package webhooks_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trypinnacle/pinnacle-go/internal/server/webhooks"
	"github.com/trypinnacle/pinnacle-go/internal/testutils"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle"
)

const typingEvent = `{"type":"USER.TYPING","startedAt":"2025-06-01T10:00:00Z","conversation":{"id":"conv_1","from":"+14155550100","to":"agent_1"}}`

var defaultDaemonConfig = webhooks.StaticConfig{
	ReadTimeout:    5 * time.Second,
	WriteTimeout:   10 * time.Second,
	RequestTimeout: 3 * time.Second,
	MaxHeaderBytes: 1 << 13, // 8 KB
	MaxBodyBytes: 1 << 10,

	ListenHost:  "localhost",
	MetricsHost: "localhost",
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		cmLoadErr error

		wantErr bool
	}{
		"Empty valid":                     {},
		"ConfigManager load error errors": {cmLoadErr: assert.AnError, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cm := &testConfigManager{allowList: []string{"main"}, loadErr: tc.cmLoadErr}
			s, err := webhooks.New(t.Context(), cm, defaultDaemonConfig)
			if tc.wantErr {
				require.Error(t, err, "New should fail")
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err, "New should not fail")
			assert.Empty(t, s.Addr(), "Addr should be empty before Run")
		})
	}
}

func TestServe(t *testing.T) {
	t.Parallel()

	dConf := defaultDaemonConfig
	dConf.SpoolDir = t.TempDir()
	cm := &testConfigManager{allowList: []string{"main"}, secret: "s3cret"}
	s := startServer(t, cm, dConf)

	tests := map[string]struct {
		method string
		path   string
		secret string
		body   string

		wantStatus int
		wantSpool  bool
	}{
		"Version":                  {method: http.MethodGet, path: "/version", wantStatus: http.StatusOK},
		"Valid delivery":           {method: http.MethodPost, path: "/webhooks/main", secret: "s3cret", body: typingEvent, wantStatus: http.StatusOK, wantSpool: true},
		"Unknown path":             {method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
		"Bad method":               {method: http.MethodGet, path: "/webhooks/main", wantStatus: http.StatusMethodNotAllowed},
		"Unknown receiver":         {method: http.MethodPost, path: "/webhooks/sales", secret: "s3cret", body: typingEvent, wantStatus: http.StatusForbidden},
		"Nested receiver path":     {method: http.MethodPost, path: "/webhooks/main/extra", secret: "s3cret", body: typingEvent, wantStatus: http.StatusNotFound},
		"Wrong secret":             {method: http.MethodPost, path: "/webhooks/main", secret: "nope", body: typingEvent, wantStatus: http.StatusUnauthorized},
		"Invalid JSON":             {method: http.MethodPost, path: "/webhooks/main", secret: "s3cret", body: "not-json", wantStatus: http.StatusBadRequest},
		"Body over the size limit": {method: http.MethodPost, path: "/webhooks/main", secret: "s3cret", body: strings.Repeat(" ", 2048) + typingEvent, wantStatus: http.StatusRequestEntityTooLarge},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// Subtests share the spool and run in order.
			req, err := http.NewRequest(tc.method, "http://"+s.Addr()+tc.path, strings.NewReader(tc.body))
			require.NoError(t, err, "Setup: failed to create request")
			if tc.secret != "" {
				req.Header.Set(pinnacle.SigningSecretHeader, tc.secret)
			}

			before, err := testutils.GetDirContents(t, dConf.SpoolDir, 2)
			require.NoError(t, err, "Setup: failed to read spool")

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err, "Request should succeed")
			defer resp.Body.Close()
			assert.Equal(t, tc.wantStatus, resp.StatusCode, "Unexpected status")

			after, err := testutils.GetDirContents(t, dConf.SpoolDir, 2)
			require.NoError(t, err, "Failed to read spool")
			if !tc.wantSpool {
				assert.Len(t, after, len(before), "Nothing should be spooled")
				return
			}
			assert.Len(t, after, len(before)+1, "One event should be spooled")
			for p, content := range after {
				if _, ok := before[p]; ok {
					continue
				}
				assert.Equal(t, "main", filepath.Dir(p), "Event should be spooled for its receiver")
				assert.Equal(t, typingEvent, content, "Event should be spooled as received")
			}
		})
	}

	resp, err := http.Get("http://" + s.MetricsAddr() + "/metrics")
	require.NoError(t, err, "Metrics should be served")
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read metrics")
	assert.Contains(t, string(data), `webhook_events_accepted_total{receiver="main",type="USER.TYPING"} 1`)
	assert.Contains(t, string(data), "http_mux_requests_total")
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		cm    testConfigManager
		dConf func(webhooks.StaticConfig) webhooks.StaticConfig
	}{
		"Invalid port":  {dConf: func(c webhooks.StaticConfig) webhooks.StaticConfig { c.ListenPort = -1; return c }},
		"Watcher error": {cm: testConfigManager{newWatcherErr: errors.New("requested watch error")}},
		"Watch error":   {cm: testConfigManager{watchErr: errors.New("requested watch error")}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dConf := defaultDaemonConfig
			dConf.SpoolDir = t.TempDir()
			if tc.dConf != nil {
				dConf = tc.dConf(dConf)
			}

			s, err := webhooks.New(t.Context(), &tc.cm, dConf)
			require.NoError(t, err, "Setup: New should not fail")
			t.Cleanup(func() { s.Quit(true) })

			select {
			case err := <-runAsync(s):
				require.Error(t, err, "Run should fail")
			case <-time.After(5 * time.Second):
				require.Fail(t, "Run should have returned")
			}
		})
	}
}

func TestQuit(t *testing.T) {
	t.Parallel()

	for _, force := range []bool{false, true} {
		s, err := webhooks.New(t.Context(), &testConfigManager{}, defaultDaemonConfig)
		require.NoError(t, err, "Setup: New should not fail")

		runErr := runAsync(s)
		waitServerReady(t, s)
		s.Quit(force)

		select {
		case err := <-runErr:
			if !force {
				require.NoError(t, err, "Graceful quit should not make Run fail")
			}
		case <-time.After(5 * time.Second):
			require.Fail(t, "Run should have returned after Quit")
		}

		require.Error(t, <-runAsync(s), "Run after Quit should fail")
	}
}

type testConfigManager struct {
	allowList     []string
	secret        string
	loadErr       error
	newWatcherErr error
	watchErr      error
}

func (t testConfigManager) Load() error {
	return t.loadErr
}

func (t testConfigManager) Watch(ctx context.Context) (<-chan struct{}, <-chan error, error) {
	if t.newWatcherErr != nil {
		return nil, nil, t.newWatcherErr
	}

	eventsChan := make(chan struct{})
	errorsChan := make(chan error)
	go func() {
		defer close(eventsChan)
		defer close(errorsChan)

		if t.watchErr != nil {
			errorsChan <- t.watchErr
			return
		}
		<-ctx.Done()
	}()

	return eventsChan, errorsChan, nil
}

func (t testConfigManager) AllowList() []string {
	return t.allowList
}

func (t testConfigManager) IsAllowed(receiver string) bool {
	for _, a := range t.allowList {
		if a == receiver {
			return true
		}
	}
	return false
}

func (t testConfigManager) Secret(string) string {
	return t.secret
}

func runAsync(s *webhooks.Server) <-chan error {
	runErr := make(chan error, 1)
	go func() {
		defer close(runErr)
		runErr <- s.Run()
	}()
	return runErr
}

func startServer(t *testing.T, cm *testConfigManager, dConf webhooks.StaticConfig) *webhooks.Server {
	t.Helper()

	s, err := webhooks.New(t.Context(), cm, dConf)
	require.NoError(t, err, "Setup: failed to create server")
	t.Cleanup(func() { s.Quit(true) })

	runAsync(s)
	waitServerReady(t, s)
	return s
}

func waitServerReady(t *testing.T, s *webhooks.Server) {
	t.Helper()

	const (
		timeout  = 5 * time.Second
		interval = 50 * time.Millisecond
	)

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if s.Addr() != "" && s.MetricsAddr() != "" {
			resp, err := http.Get("http://" + s.Addr() + "/version")
			if err == nil {
				resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					return
				}
			}
		}
		time.Sleep(interval)
	}

	require.Fail(t, "Setup: Server did not become ready in time")
}
