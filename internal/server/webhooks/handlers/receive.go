// Package handlers provides the HTTP handlers of the webhook receiver.
package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/trypinnacle/pinnacle-go/internal/constants"
	"github.com/trypinnacle/pinnacle-go/internal/fileutils"
	"github.com/trypinnacle/pinnacle-go/internal/server/shared/config"
	"github.com/trypinnacle/pinnacle-go/internal/server/webhooks/metrics"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle"
)

// otherType is the event type label of types this build does not know.
const otherType = "other"

// Receive verifies webhook deliveries and spools the accepted ones for ingestion.
type Receive struct {
	config      config.Provider
	spoolDir    string
	maxBodySize int64

	events *prometheus.CounterVec
}

// NewReceive returns a Receive handler spooling events under spoolDir.
// Its event counter is registered in reg.
func NewReceive(cfg config.Provider, spoolDir string, maxBodySize int64, reg prometheus.Registerer) (*Receive, error) {
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_events_accepted_total",
		Help: "Number of webhook events accepted, by receiver and event type.",
	}, []string{"receiver", "type"})
	if err := reg.Register(events); err != nil {
		return nil, fmt.Errorf("failed to register events counter: %v", err)
	}

	return &Receive{
		config:      cfg,
		spoolDir:    spoolDir,
		maxBodySize: maxBodySize,
		events:      events,
	}, nil
}

// ServeHTTP handles a delivery to /webhooks/{receiver}.
func (h *Receive) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	receiver := r.PathValue("receiver")

	if !config.ValidReceiver(receiver) || !h.config.IsAllowed(receiver) {
		http.Error(w, "Unknown receiver", http.StatusForbidden)
		slog.Warn("Rejected delivery for unknown receiver", "req_id", reqID, "receiver", receiver)
		return
	}
	metrics.ApplyReceiver(r, receiver)
	slog.Debug("Delivery received", "req_id", reqID, "receiver", receiver)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
		} else {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
		}
		slog.Warn("Error reading the request body", "req_id", reqID, "receiver", receiver, "err", err)
		return
	}

	ev, err := pinnacle.ProcessWebhook(r.Header, body, h.config.Secret(receiver))
	switch {
	case errors.Is(err, pinnacle.ErrUnauthorized):
		http.Error(w, "Invalid signing secret", http.StatusUnauthorized)
		slog.Warn("Rejected unsigned delivery", "req_id", reqID, "receiver", receiver, "err", err)
		return
	case errors.Is(err, pinnacle.ErrBadRequest):
		http.Error(w, "Invalid webhook event", http.StatusBadRequest)
		slog.Warn("Rejected invalid delivery", "req_id", reqID, "receiver", receiver, "err", err)
		return
	case err != nil:
		http.Error(w, "Failed to process webhook event", http.StatusInternalServerError)
		slog.Error("Failed to process delivery", "req_id", reqID, "receiver", receiver, "err", err)
		return
	}

	targetDir := filepath.Join(h.spoolDir, receiver)
	if err := os.MkdirAll(targetDir, 0750); err != nil {
		http.Error(w, "Error creating directory", http.StatusInternalServerError)
		slog.Error("Error creating directory", "req_id", reqID, "receiver", receiver, "target", targetDir, "err", err)
		return
	}
	targetPath := filepath.Join(targetDir, reqID+constants.EventExtension)
	if err := fileutils.AtomicWrite(targetPath, body); err != nil {
		http.Error(w, "Error saving event", http.StatusInternalServerError)
		slog.Error("Error saving event", "req_id", reqID, "receiver", receiver, "target", targetPath, "err", err)
		return
	}

	evType := ev.EventType()
	typeLabel := string(evType)
	if !evType.IsKnown() {
		typeLabel = otherType
	}
	h.events.WithLabelValues(receiver, typeLabel).Inc()
	slog.Info("Event accepted", "req_id", reqID, "receiver", receiver, "type", evType, "conversation", ev.ConversationID(), "target", targetPath)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"id":%q}`, reqID)
}
