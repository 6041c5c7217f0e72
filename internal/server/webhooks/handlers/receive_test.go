package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trypinnacle/pinnacle-go/internal/server/webhooks/handlers"
	"github.com/trypinnacle/pinnacle-go/internal/testutils"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle"
)

const (
	typingEvent   = `{"type":"USER.TYPING","startedAt":"2025-06-01T10:00:00Z","conversation":{"id":"conv_1","from":"+14155550100","to":"agent_1"}}`
	receivedEvent = `{"type":"MESSAGE.RECEIVED","conversation":{"id":"conv_2","from":"+14155550100","to":"+14155550101"},"status":"RECEIVED","direction":"INBOUND","segments":1,"sentAt":"2025-06-01T10:00:00Z","message":{"type":"SMS","id":"msg_1","text":"hi"}}`
	editedEvent   = `{"type":"MESSAGE.EDITED","conversation":{"id":"conv_3","from":"+1","to":"+2"},"status":"DELIVERED","direction":"OUTBOUND","segments":1,"sentAt":"t","message":{"type":"SMS","id":"msg_2","text":"hey"}}`
)

type mockConfigManager struct {
	allowList []string
	secrets   map[string]string
}

func (m mockConfigManager) AllowList() []string { return m.allowList }

func (m mockConfigManager) IsAllowed(receiver string) bool {
	for _, a := range m.allowList {
		if a == receiver {
			return true
		}
	}
	return false
}

func (m mockConfigManager) Secret(receiver string) string { return m.secrets[receiver] }

func TestReceive(t *testing.T) {
	t.Parallel()

	cfg := mockConfigManager{
		allowList: []string{"main", "support", "invalid"},
		secrets:   map[string]string{"main": "s3cret", "support": "other", "invalid": "s3cret"},
	}

	tests := map[string]struct {
		receiver    string
		header      string
		body        string
		spoolIsFile bool

		wantCode  int
		wantType  string
		wantSpool bool
	}{
		"Accepts received message": {receiver: "main", header: "s3cret", body: receivedEvent, wantCode: http.StatusOK, wantType: "MESSAGE.RECEIVED", wantSpool: true},
		"Accepts user typing":      {receiver: "main", header: "s3cret", body: typingEvent, wantCode: http.StatusOK, wantType: "USER.TYPING", wantSpool: true},
		"Accepts unknown type":     {receiver: "main", header: "s3cret", body: editedEvent, wantCode: http.StatusOK, wantType: "other", wantSpool: true},
		"Uses receiver secret":     {receiver: "support", header: "other", body: typingEvent, wantCode: http.StatusOK, wantType: "USER.TYPING", wantSpool: true},

		"Rejects receiver not allowed": {receiver: "sales", header: "s3cret", body: typingEvent, wantCode: http.StatusForbidden},
		"Rejects reserved receiver":    {receiver: "invalid", header: "s3cret", body: typingEvent, wantCode: http.StatusForbidden},
		"Rejects missing secret":       {receiver: "main", body: typingEvent, wantCode: http.StatusUnauthorized},
		"Rejects secret of another":    {receiver: "support", header: "s3cret", body: typingEvent, wantCode: http.StatusUnauthorized},
		"Rejects invalid JSON":         {receiver: "main", header: "s3cret", body: `{"type":`, wantCode: http.StatusBadRequest},
		"Rejects array body":           {receiver: "main", header: "s3cret", body: `[]`, wantCode: http.StatusBadRequest},
		"Rejects too large body":       {receiver: "main", header: "s3cret", body: `{"pad":"` + strings.Repeat("x", 1024) + `"}`, wantCode: http.StatusRequestEntityTooLarge},
		"Fails when spool is broken":   {receiver: "main", header: "s3cret", body: typingEvent, spoolIsFile: true, wantCode: http.StatusInternalServerError},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			spoolDir := filepath.Join(t.TempDir(), "spool")
			if tc.spoolIsFile {
				require.NoError(t, os.WriteFile(spoolDir, nil, 0600), "Setup: failed to create spool file")
			}
			reg := prometheus.NewRegistry()
			h, err := handlers.NewReceive(cfg, spoolDir, 1024, reg)
			require.NoError(t, err, "Setup: NewReceive should not fail")

			req := httptest.NewRequest(http.MethodPost, "/webhooks/"+tc.receiver, strings.NewReader(tc.body))
			req.SetPathValue("receiver", tc.receiver)
			if tc.header != "" {
				req.Header.Set(pinnacle.SigningSecretHeader, tc.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			require.Equal(t, tc.wantCode, rr.Code, "Unexpected status code: %s", rr.Body.String())

			var files map[string]string
			if !tc.spoolIsFile {
				if _, err := os.Stat(spoolDir); err == nil {
					files, err = testutils.GetDirContents(t, spoolDir, 2)
					require.NoError(t, err, "Failed to read spool")
				}
			}
			if !tc.wantSpool {
				assert.Empty(t, files, "Nothing should be spooled")
				assert.Equal(t, 0, testutil.CollectAndCount(reg), "No event should be counted")
				return
			}

			var resp struct{ ID string }
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "Response should be JSON")
			require.NoError(t, uuid.Validate(resp.ID), "The response should hold the request id")
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			want := map[string]string{path.Join(tc.receiver, resp.ID+".json"): tc.body}
			assert.Equal(t, want, files, "The body should be spooled as received")
			assert.InDelta(t, 1, testutil.ToFloat64(h.EventsCounter().WithLabelValues(tc.receiver, tc.wantType)), 0, "The event should be counted")
		})
	}
}

func TestNewReceiveRegistersOnce(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := handlers.NewReceive(mockConfigManager{}, t.TempDir(), 1, reg)
	require.NoError(t, err, "First registration should succeed")
	_, err = handlers.NewReceive(mockConfigManager{}, t.TempDir(), 1, reg)
	require.Error(t, err, "Registering the counter twice should fail")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	handlers.Version(rr, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"Dev"}`, rr.Body.String())
}
