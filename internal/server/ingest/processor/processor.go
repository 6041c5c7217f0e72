// Package processor stores the webhook events spooled by the webhook service.
package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/trypinnacle/pinnacle-go/internal/constants"
	"github.com/trypinnacle/pinnacle-go/internal/fileutils"
	"github.com/trypinnacle/pinnacle-go/internal/server/ingest/models"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle"
	"github.com/ubuntu/decorate"
)

// ErrDatabaseErrors is returned when too many inserts of a processing round failed.
var ErrDatabaseErrors = errors.New("database errors during processing surpassed threshold")

var errNoConversation = errors.New("event has no conversation id")

type database interface {
	Insert(ctx context.Context, row *models.EventRow) error
}

// Processor moves spooled events into the database.
type Processor struct {
	spoolDir string
	db       database
}

// New returns a Processor reading events from spoolDir, which is created if needed.
func New(spoolDir string, db database) (*Processor, error) {
	if spoolDir == "" {
		return nil, errors.New("spoolDir must be set")
	}

	if err := os.MkdirAll(spoolDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create spoolDir: %v", err)
	}

	return &Processor{
		spoolDir: spoolDir,
		db:       db,
	}, nil
}

// Process inserts every event spooled for receiver and removes its file.
//
// Events which cannot be decoded are moved to the invalid folder of the spool. Files whose
// insert failed are left in place to be retried. It returns ErrDatabaseErrors if more than
// a set share of the inserts failed.
func (p Processor) Process(ctx context.Context, receiver string) (err error) {
	defer decorate.OnError(&err, "could not process events of %q", receiver)

	const minimumSuccessRate = 0.85

	dir := filepath.Join(p.spoolDir, receiver)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %q: %v", dir, err)
	}

	files, err := eventFiles(dir)
	if err != nil {
		return fmt.Errorf("failed to list spooled events: %v", err)
	}

	var attempts, failures int
	defer func() {
		if attempts > 0 && float64(failures)/float64(attempts) > (1-minimumSuccessRate) {
			err = errors.Join(ErrDatabaseErrors, err)
		}
	}()

	for _, file := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		row, err := readEvent(file, receiver)
		if err != nil {
			slog.Warn("Invalid spooled event", "file", file, "receiver", receiver, "err", err)
			p.moveInvalid(file, receiver)
			continue
		}

		attempts++
		if err := p.db.Insert(ctx, row); err != nil {
			failures++
			slog.Warn("Failed to insert event", "file", file, "receiver", receiver, "err", err)
			continue
		}

		if err := os.Remove(file); err != nil {
			slog.Warn("Failed to remove file after processing", "file", file, "err", err)
		}
		slog.Debug("Event stored", "file", file, "receiver", receiver, "type", row.Type, "conversation", row.ConversationID)
	}

	return nil
}

func (p Processor) moveInvalid(file, receiver string) {
	dst, err := fileutils.MoveToDir(file, filepath.Join(p.spoolDir, constants.InvalidFolder, receiver))
	if err != nil {
		slog.Error("Failed to move invalid event aside, removing it", "file", file, "err", err)
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			slog.Error("Failed to remove invalid event", "file", file, "err", err)
		}
		return
	}
	slog.Info("Moved invalid event", "file", dst)
}

// eventFiles returns the spooled events of dir. Temporary files of writes in progress are skipped.
func eventFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() || filepath.Ext(e.Name()) != constants.EventExtension {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// readEvent decodes the event stored in file into the row to insert.
func readEvent(file, receiver string) (*models.EventRow, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	if _, err := pinnacle.ParseWebhookEvent(data); err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(errors.New("event could not be parsed"), err)
	}

	var ev models.Event
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &ev,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %v", err)
	}
	if err := decoder.Decode(doc); err != nil {
		return nil, errors.Join(errors.New("event does not match the expected structure"), err)
	}
	if ev.Conversation.ID == "" {
		return nil, errNoConversation
	}
	if len(ev.Extras) > 0 {
		slog.Debug("Event carries fields without a column", "file", file, "fields", len(ev.Extras))
	}

	row := ev.Row(eventID(file), receiver, json.RawMessage(data))
	return &row, nil
}

// eventID returns the id of the event from its file name, or a new one if the name is not a UUID.
func eventID(file string) string {
	id := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	if err := uuid.Validate(id); err != nil {
		newID := uuid.NewString()
		slog.Warn("Event file name is not a UUID, generating a new id", "file", file, "id", newID)
		return newID
	}
	return id
}
