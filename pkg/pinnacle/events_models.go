package pinnacle

import (
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/field"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/internal/codec"
)

// MessageEventConversation identifies the conversation a webhook event belongs to.
type MessageEventConversation struct {
	field.Meta
	ID   string `json:"id,required"`
	From string `json:"from,required"`
	To   string `json:"to,required"`
}

func (r MessageEventConversation) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *MessageEventConversation) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r MessageEventConversation) Validate() error                  { return codec.Validate(r) }

type MessageEventSMSContent struct {
	field.Meta
	ID   string `json:"id,required"`
	Text string `json:"text,required"`
}

func (r MessageEventSMSContent) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *MessageEventSMSContent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r MessageEventSMSContent) Validate() error                  { return codec.Validate(r) }

type MessageEventMMSContent struct {
	field.Meta
	ID        string              `json:"id,required"`
	MediaURLs []string            `json:"mediaUrls,required"`
	Text      field.Field[string] `json:"text"`
}

func (r MessageEventMMSContent) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *MessageEventMMSContent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r MessageEventMMSContent) Validate() error                  { return codec.Validate(r) }

type MessageEventRCSTextContent struct {
	field.Meta
	ID           string       `json:"id,required"`
	Text         string       `json:"text,required"`
	QuickReplies []RichButton `json:"quickReplies,required"`
}

func (r MessageEventRCSTextContent) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *MessageEventRCSTextContent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r MessageEventRCSTextContent) Validate() error                  { return codec.Validate(r) }

type MessageEventRCSMediaContent struct {
	field.Meta
	ID           string       `json:"id,required"`
	Media        string       `json:"media,required"`
	QuickReplies []RichButton `json:"quickReplies,required"`
}

func (r MessageEventRCSMediaContent) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *MessageEventRCSMediaContent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r MessageEventRCSMediaContent) Validate() error                  { return codec.Validate(r) }

// MessageEventCard is a card of a received carousel. Media is described in full.
type MessageEventCard struct {
	field.Meta
	Title    string                       `json:"title,required"`
	Subtitle field.Field[string]          `json:"subtitle"`
	Media    field.Field[RCSMediaDetails] `json:"media"`
	Buttons  []RichButton                 `json:"buttons,required"`
}

func (r MessageEventCard) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *MessageEventCard) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r MessageEventCard) Validate() error                  { return codec.Validate(r) }

type MessageEventRCSCardsContent struct {
	field.Meta
	ID           string             `json:"id,required"`
	Cards        []MessageEventCard `json:"cards,required"`
	QuickReplies []RichButton       `json:"quickReplies,required"`
}

func (r MessageEventRCSCardsContent) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *MessageEventRCSCardsContent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r MessageEventRCSCardsContent) Validate() error                  { return codec.Validate(r) }

// ClickedButton is the button a recipient tapped.
type ClickedButton struct {
	field.Meta
	Type     field.Field[string] `json:"type"`
	Raw      RichButton          `json:"raw,required"`
	Payload  field.Field[string] `json:"payload"`
	Metadata field.Field[string] `json:"metadata"`
	Clicks   int64               `json:"clicks,required"`
}

func (r ClickedButton) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ClickedButton) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ClickedButton) Validate() error                  { return codec.Validate(r) }

type MessageEventRCSButtonData struct {
	field.Meta
	ID     string        `json:"id,required"`
	Button ClickedButton `json:"button,required"`
	// MessageID is the message holding the button, null when it is no longer known.
	MessageID field.Field[string] `json:"messageId,required,nullable"`
}

func (r MessageEventRCSButtonData) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *MessageEventRCSButtonData) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r MessageEventRCSButtonData) Validate() error                  { return codec.Validate(r) }

type SharedLocation struct {
	field.Meta
	Latitude  float64 `json:"latitude,required"`
	Longitude float64 `json:"longitude,required"`
}

func (r SharedLocation) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SharedLocation) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SharedLocation) Validate() error                  { return codec.Validate(r) }

type MessageEventRCSLocationData struct {
	field.Meta
	ID        string              `json:"id,required"`
	Data      SharedLocation      `json:"data,required"`
	MessageID field.Field[string] `json:"messageId"`
}

func (r MessageEventRCSLocationData) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *MessageEventRCSLocationData) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r MessageEventRCSLocationData) Validate() error                  { return codec.Validate(r) }

func (MessageEventSMSContent) isMessageEventContent()      {}
func (MessageEventMMSContent) isMessageEventContent()      {}
func (MessageEventRCSTextContent) isMessageEventContent()  {}
func (MessageEventRCSMediaContent) isMessageEventContent() {}
func (MessageEventRCSCardsContent) isMessageEventContent() {}
func (MessageEventRCSButtonData) isMessageEventContent()   {}
func (MessageEventRCSLocationData) isMessageEventContent() {}

// MessageEventContent is the message carried by a MessageEvent, discriminated by "type".
type MessageEventContent struct{ Variant MessageEventContentVariant }

// MessageEventContentVariant is implemented by the MessageEvent content types.
type MessageEventContentVariant interface{ isMessageEventContent() }

func (u MessageEventContent) MarshalJSON() ([]byte, error)     { return codec.Marshal(u) }
func (u *MessageEventContent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, u) }
func (u MessageEventContent) Validate() error                  { return codec.Validate(u) }

// MessageEvent reports a received message or a status change of a sent one.
type MessageEvent struct {
	field.Meta
	Type         WebhookEventType         `json:"type,required"`
	Conversation MessageEventConversation `json:"conversation,required"`
	Status       MessageStatus            `json:"status,required"`
	Direction    MessageDirection         `json:"direction,required"`
	Segments     int64                    `json:"segments,required"`
	SentAt       string                   `json:"sentAt,required"`
	DeliveredAt  field.Field[string]      `json:"deliveredAt"`
	Message      MessageEventContent      `json:"message,required"`
}

func (r MessageEvent) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *MessageEvent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r MessageEvent) Validate() error                  { return codec.Validate(r) }

// UserEvent reports that a recipient started typing.
type UserEvent struct {
	field.Meta
	Type         WebhookEventType         `json:"type,required"`
	StartedAt    string                   `json:"startedAt,required"`
	Conversation MessageEventConversation `json:"conversation,required"`
}

func (r UserEvent) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *UserEvent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r UserEvent) Validate() error                  { return codec.Validate(r) }

func (MessageEvent) isWebhookEvent() {}
func (UserEvent) isWebhookEvent()    {}

// WebhookEvent is the body posted to a webhook. USER.TYPING events are UserEvent, the
// others MessageEvent.
type WebhookEvent struct{ Variant WebhookEventVariant }

// WebhookEventVariant is implemented by MessageEvent and UserEvent.
type WebhookEventVariant interface{ isWebhookEvent() }

func (u WebhookEvent) MarshalJSON() ([]byte, error)     { return codec.Marshal(u) }
func (u *WebhookEvent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, u) }
func (u WebhookEvent) Validate() error                  { return codec.Validate(u) }

// EventType returns the type of the event, empty for an empty WebhookEvent.
func (u WebhookEvent) EventType() WebhookEventType {
	switch e := u.Variant.(type) {
	case MessageEvent:
		return e.Type
	case UserEvent:
		return e.Type
	}
	return ""
}

// ConversationID returns the conversation the event belongs to.
func (u WebhookEvent) ConversationID() string {
	switch e := u.Variant.(type) {
	case MessageEvent:
		return e.Conversation.ID
	case UserEvent:
		return e.Conversation.ID
	}
	return ""
}

func init() {
	codec.RegisterUnion[MessageEventContent, MessageEventContentVariant]("type",
		codec.Tagged[MessageEventSMSContent]("SMS"),
		codec.Tagged[MessageEventMMSContent]("MMS"),
		codec.Tagged[MessageEventRCSTextContent]("RCS_TEXT"),
		codec.Tagged[MessageEventRCSMediaContent]("RCS_MEDIA"),
		codec.Tagged[MessageEventRCSCardsContent]("RCS_CARDS"),
		codec.Tagged[MessageEventRCSButtonData]("RCS_BUTTON_DATA"),
		codec.Tagged[MessageEventRCSLocationData]("RCS_LOCATION_DATA"),
	)
	codec.RegisterUnion[WebhookEvent, WebhookEventVariant]("type",
		codec.Tagged[MessageEvent](string(WebhookEventMessageStatus)),
		codec.Tagged[MessageEvent](string(WebhookEventMessageReceived)),
		codec.Tagged[UserEvent](string(WebhookEventUserTyping)),
		codec.Fallback[MessageEvent](),
	)
}
