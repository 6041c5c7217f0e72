// Package models provides the shapes spooled webhook events are decoded into before being stored.
package models

import (
	"encoding/json"
	"time"
)

// Event is the part of a webhook event the ingest service stores in dedicated columns.
// Everything else is kept in the raw payload.
type Event struct {
	Type         string       `mapstructure:"type"`
	Conversation Conversation `mapstructure:"conversation"`
	Status       string       `mapstructure:"status"`
	Direction    string       `mapstructure:"direction"`
	Segments     int64        `mapstructure:"segments"`
	SentAt       string       `mapstructure:"sentAt"`
	DeliveredAt  *string      `mapstructure:"deliveredAt"`
	StartedAt    string       `mapstructure:"startedAt"`
	Message      Message      `mapstructure:"message"`

	Extras map[string]any `mapstructure:",remain"`
}

// Conversation identifies the conversation of an event.
type Conversation struct {
	ID   string `mapstructure:"id"`
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// Message holds the identifiers of the message carried by a message event.
type Message struct {
	Type string `mapstructure:"type"`
	ID   string `mapstructure:"id"`

	Content map[string]any `mapstructure:",remain"`
}

// EventRow is a row of the webhook_events table.
type EventRow struct {
	EventID        string
	Receiver       string
	Type           string
	ConversationID string
	From           string
	To             string

	MessageID   string
	MessageType string
	Status      string
	Direction   string
	Segments    int64

	// OccurredAt is sentAt for message events and startedAt for user events. Nil when
	// the event does not carry a parsable timestamp.
	OccurredAt  *time.Time
	DeliveredAt *time.Time

	Payload json.RawMessage
}

// Row returns the row storing e, received for receiver as id with the raw body payload.
func (e Event) Row(id, receiver string, payload json.RawMessage) EventRow {
	occurred := e.SentAt
	if occurred == "" {
		occurred = e.StartedAt
	}

	var delivered string
	if e.DeliveredAt != nil {
		delivered = *e.DeliveredAt
	}

	return EventRow{
		EventID:        id,
		Receiver:       receiver,
		Type:           e.Type,
		ConversationID: e.Conversation.ID,
		From:           e.Conversation.From,
		To:             e.Conversation.To,
		MessageID:      e.Message.ID,
		MessageType:    e.Message.Type,
		Status:         e.Status,
		Direction:      e.Direction,
		Segments:       e.Segments,
		OccurredAt:     parseTime(occurred),
		DeliveredAt:    parseTime(delivered),
		Payload:        payload,
	}
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
