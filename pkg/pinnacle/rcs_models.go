package pinnacle

import (
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/field"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/internal/codec"
)

// LatLng is a point on the map.
type LatLng struct {
	field.Meta
	Lat float64 `json:"lat,required"`
	Lng float64 `json:"lng,required"`
}

func (r LatLng) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *LatLng) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r LatLng) Validate() error                  { return codec.Validate(r) }

// RCSButtonOpenURL opens Payload in the browser or in a webview.
type RCSButtonOpenURL struct {
	field.Meta
	Title       string                   `json:"title,required"`
	Payload     string                   `json:"payload,required"`
	WebviewMode field.Field[WebviewMode] `json:"webviewMode"`
	Metadata    field.Field[string]      `json:"metadata"`
}

func (r RCSButtonOpenURL) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSButtonOpenURL) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSButtonOpenURL) Validate() error                  { return codec.Validate(r) }

// RCSButtonCall dials the phone number in Payload.
type RCSButtonCall struct {
	field.Meta
	Title    string              `json:"title,required"`
	Payload  string              `json:"payload,required"`
	Metadata field.Field[string] `json:"metadata"`
}

func (r RCSButtonCall) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSButtonCall) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSButtonCall) Validate() error                  { return codec.Validate(r) }

// RCSButtonTrigger sends Payload to the webhooks of the sender when tapped.
type RCSButtonTrigger struct {
	field.Meta
	Title    string              `json:"title,required"`
	Payload  string              `json:"payload,required"`
	Metadata field.Field[string] `json:"metadata"`
}

func (r RCSButtonTrigger) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSButtonTrigger) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSButtonTrigger) Validate() error                  { return codec.Validate(r) }

// RCSButtonRequestUserLocation asks the recipient to share their location.
type RCSButtonRequestUserLocation struct {
	field.Meta
	Title    string              `json:"title,required"`
	Metadata field.Field[string] `json:"metadata"`
}

func (r RCSButtonRequestUserLocation) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSButtonRequestUserLocation) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSButtonRequestUserLocation) Validate() error                  { return codec.Validate(r) }

// RCSButtonScheduleEvent adds an event to the calendar of the recipient.
type RCSButtonScheduleEvent struct {
	field.Meta
	Title            string              `json:"title,required"`
	EventTitle       string              `json:"eventTitle,required"`
	EventStartTime   string              `json:"eventStartTime,required"`
	EventEndTime     string              `json:"eventEndTime,required"`
	EventDescription field.Field[string] `json:"eventDescription"`
	Metadata         field.Field[string] `json:"metadata"`
}

func (r RCSButtonScheduleEvent) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSButtonScheduleEvent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSButtonScheduleEvent) Validate() error                  { return codec.Validate(r) }

// RCSButtonSendLocation shows a place on the map.
type RCSButtonSendLocation struct {
	field.Meta
	Title    string              `json:"title,required"`
	LatLong  LatLng              `json:"latLong,required"`
	Name     field.Field[string] `json:"name"`
	Metadata field.Field[string] `json:"metadata"`
}

func (r RCSButtonSendLocation) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSButtonSendLocation) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSButtonSendLocation) Validate() error                  { return codec.Validate(r) }

func (RCSButtonOpenURL) isRichButton()             {}
func (RCSButtonCall) isRichButton()                {}
func (RCSButtonTrigger) isRichButton()             {}
func (RCSButtonRequestUserLocation) isRichButton() {}
func (RCSButtonScheduleEvent) isRichButton()       {}
func (RCSButtonSendLocation) isRichButton()        {}

// RichButton is a button of an RCS card or a quick reply, discriminated by its "type" key.
type RichButton struct{ Variant RichButtonVariant }

// RichButtonVariant is implemented by the RCSButton types.
type RichButtonVariant interface{ isRichButton() }

func (u RichButton) MarshalJSON() ([]byte, error)     { return codec.Marshal(u) }
func (u *RichButton) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, u) }
func (u RichButton) Validate() error                  { return codec.Validate(u) }

// RCSCard is a rich card sent in an RCS message.
type RCSCard struct {
	field.Meta
	Title    string                    `json:"title,required"`
	Subtitle field.Field[string]       `json:"subtitle"`
	Media    field.Field[string]       `json:"media"`
	Buttons  field.Field[[]RichButton] `json:"buttons"`
}

func (r RCSCard) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSCard) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSCard) Validate() error                  { return codec.Validate(r) }

// RCSText is text with optional quick replies.
type RCSText struct {
	field.Meta
	Text         string                    `json:"text,required"`
	QuickReplies field.Field[[]RichButton] `json:"quickReplies"`
}

func (r RCSText) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSText) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSText) Validate() error                  { return codec.Validate(r) }

// RCSMedia is a media URL with optional quick replies.
type RCSMedia struct {
	field.Meta
	Media        string                    `json:"media,required"`
	QuickReplies field.Field[[]RichButton] `json:"quickReplies"`
}

func (r RCSMedia) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSMedia) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSMedia) Validate() error                  { return codec.Validate(r) }

// RCSCards is a standalone card or a carousel.
type RCSCards struct {
	field.Meta
	Cards        []RCSCard                 `json:"cards,required"`
	QuickReplies field.Field[[]RichButton] `json:"quickReplies"`
}

func (r RCSCards) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSCards) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSCards) Validate() error                  { return codec.Validate(r) }

func (RCSText) isRCSContent()  {}
func (RCSMedia) isRCSContent() {}
func (RCSCards) isRCSContent() {}

// RCSContent is the content of an RCS message to validate or blast, discriminated by its
// "type" key: "text", "media" or "cards".
type RCSContent struct{ Variant RCSContentVariant }

// RCSContentVariant is implemented by RCSText, RCSMedia and RCSCards.
type RCSContentVariant interface{ isRCSContent() }

func (u RCSContent) MarshalJSON() ([]byte, error)     { return codec.Marshal(u) }
func (u *RCSContent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, u) }
func (u RCSContent) Validate() error                  { return codec.Validate(u) }

// RichTextMessage sends text over RCS.
type RichTextMessage struct {
	field.Meta
	From         string                       `json:"from,required"`
	To           string                       `json:"to,required"`
	Text         string                       `json:"text,required"`
	QuickReplies field.Field[[]RichButton]    `json:"quickReplies"`
	Fallback     field.Field[FallbackMessage] `json:"fallback"`
	Options      field.Field[SendRCSOptions]  `json:"options"`
}

func (r RichTextMessage) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RichTextMessage) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RichTextMessage) Validate() error                  { return codec.Validate(r) }

// RichMediaMessage sends a media file over RCS.
type RichMediaMessage struct {
	field.Meta
	From         string                       `json:"from,required"`
	To           string                       `json:"to,required"`
	Media        string                       `json:"media,required"`
	QuickReplies field.Field[[]RichButton]    `json:"quickReplies"`
	Fallback     field.Field[FallbackMessage] `json:"fallback"`
	Options      field.Field[SendRCSOptions]  `json:"options"`
}

func (r RichMediaMessage) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RichMediaMessage) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RichMediaMessage) Validate() error                  { return codec.Validate(r) }

// RichCardsMessage sends one card or a carousel over RCS.
type RichCardsMessage struct {
	field.Meta
	From         string                       `json:"from,required"`
	To           string                       `json:"to,required"`
	Cards        []RCSCard                    `json:"cards,required"`
	QuickReplies field.Field[[]RichButton]    `json:"quickReplies"`
	Fallback     field.Field[FallbackMessage] `json:"fallback"`
	Options      field.Field[SendRCSOptions]  `json:"options"`
}

func (r RichCardsMessage) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RichCardsMessage) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RichCardsMessage) Validate() error                  { return codec.Validate(r) }

func (RichTextMessage) isRichMessage()  {}
func (RichMediaMessage) isRichMessage() {}
func (RichCardsMessage) isRichMessage() {}

// RichMessage is the body of Messages.SendRCS. The kind of message is recognised by which
// of "text", "media" or "cards" it carries.
type RichMessage struct{ Variant RichMessageVariant }

// RichMessageVariant is implemented by RichTextMessage, RichMediaMessage and RichCardsMessage.
type RichMessageVariant interface{ isRichMessage() }

func (u RichMessage) MarshalJSON() ([]byte, error)     { return codec.Marshal(u) }
func (u *RichMessage) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, u) }
func (u RichMessage) Validate() error                  { return codec.Validate(u) }

// ActionURL is a legacy action opening a link.
type ActionURL struct {
	field.Meta
	Title string `json:"title,required"`
	URL   string `json:"url,required"`
}

func (r ActionURL) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ActionURL) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ActionURL) Validate() error                  { return codec.Validate(r) }

// ActionCall is a legacy action dialing a number.
type ActionCall struct {
	field.Meta
	Title       string `json:"title,required"`
	PhoneNumber string `json:"phoneNumber,required"`
}

func (r ActionCall) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ActionCall) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ActionCall) Validate() error                  { return codec.Validate(r) }

// ActionPostback is a legacy action sending a payload back to the sender.
type ActionPostback struct {
	field.Meta
	Title   string              `json:"title,required"`
	Payload string              `json:"payload,required"`
	Execute field.Field[string] `json:"execute"`
}

func (r ActionPostback) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ActionPostback) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ActionPostback) Validate() error                  { return codec.Validate(r) }

// ActionShareLocation is a legacy action asking for the location of the recipient.
type ActionShareLocation struct {
	field.Meta
	Title         string `json:"title,required"`
	ShareLocation bool   `json:"shareLocation,required"`
}

func (r ActionShareLocation) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ActionShareLocation) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ActionShareLocation) Validate() error                  { return codec.Validate(r) }

// ActionViewLocation is a legacy action showing a place on the map.
type ActionViewLocation struct {
	field.Meta
	Title   string              `json:"title,required"`
	LatLong LatLng              `json:"latLong,required"`
	Label   field.Field[string] `json:"label"`
}

func (r ActionViewLocation) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ActionViewLocation) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ActionViewLocation) Validate() error                  { return codec.Validate(r) }

func (ActionURL) isAction()           {}
func (ActionCall) isAction()          {}
func (ActionPostback) isAction()      {}
func (ActionShareLocation) isAction() {}
func (ActionViewLocation) isAction()  {}

// Action is the legacy button format. It has no discriminant and is recognised by its fields.
type Action struct{ Variant ActionVariant }

// ActionVariant is implemented by the Action types.
type ActionVariant interface{ isAction() }

func (u Action) MarshalJSON() ([]byte, error)     { return codec.Marshal(u) }
func (u *Action) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, u) }
func (u Action) Validate() error                  { return codec.Validate(u) }

// RCSCapabilityActions lists the buttons a device can display.
type RCSCapabilityActions struct {
	field.Meta
	OpenURL             bool `json:"openUrl,required"`
	Call                bool `json:"call,required"`
	Trigger             bool `json:"trigger,required"`
	RequestUserLocation bool `json:"requestUserLocation,required"`
	ScheduleEvent       bool `json:"scheduleEvent,required"`
	SendLocation        bool `json:"sendLocation,required"`
}

func (r RCSCapabilityActions) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSCapabilityActions) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSCapabilityActions) Validate() error                  { return codec.Validate(r) }

// RCSCapability is what a phone number supports over RCS.
type RCSCapability struct {
	field.Meta
	Cards    bool                 `json:"cards,required"`
	Carousel bool                 `json:"carousel,required"`
	Actions  RCSCapabilityActions `json:"actions,required"`
}

func (r RCSCapability) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSCapability) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSCapability) Validate() error                  { return codec.Validate(r) }

// RCSCapabilitiesParams lists the numbers to look up.
type RCSCapabilitiesParams struct {
	field.Meta
	PhoneNumbers []string `json:"phoneNumbers,required"`
}

func (r RCSCapabilitiesParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSCapabilitiesParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSCapabilitiesParams) Validate() error                  { return codec.Validate(r) }

// RCSLinkParams asks for a link opening a conversation with an agent.
type RCSLinkParams struct {
	field.Meta
	AgentID     string              `json:"agentId,required"`
	TestMode    field.Field[bool]   `json:"testMode"`
	PhoneNumber field.Field[string] `json:"phoneNumber"`
	Body        field.Field[string] `json:"body"`
}

func (r RCSLinkParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSLinkParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSLinkParams) Validate() error                  { return codec.Validate(r) }

type RCSLinkResult struct {
	field.Meta
	URL       field.Field[string] `json:"url"`
	ServiceID string              `json:"serviceId,required"`
}

func (r RCSLinkResult) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSLinkResult) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSLinkResult) Validate() error                  { return codec.Validate(r) }

// RCSWhitelistParams whitelists a number for the test agent.
type RCSWhitelistParams struct {
	field.Meta
	AgentID     string `json:"agentId,required"`
	PhoneNumber string `json:"phoneNumber,required"`
}

func (r RCSWhitelistParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSWhitelistParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSWhitelistParams) Validate() error                  { return codec.Validate(r) }

type RCSWhitelistResult struct {
	field.Meta
	Success                  bool   `json:"success,required"`
	VerificationInstructions string `json:"verificationInstructions,required"`
}

func (r RCSWhitelistResult) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSWhitelistResult) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSWhitelistResult) Validate() error                  { return codec.Validate(r) }

func init() {
	codec.RegisterUnion[RichButton, RichButtonVariant]("type",
		codec.Tagged[RCSButtonOpenURL]("OPEN_URL"),
		codec.Tagged[RCSButtonCall]("CALL"),
		codec.Tagged[RCSButtonTrigger]("TRIGGER"),
		codec.Tagged[RCSButtonRequestUserLocation]("REQUEST_USER_LOCATION"),
		codec.Tagged[RCSButtonScheduleEvent]("SCHEDULE_EVENT"),
		codec.Tagged[RCSButtonSendLocation]("SEND_LOCATION"),
	)
	codec.RegisterUnion[RCSContent, RCSContentVariant]("type",
		codec.Tagged[RCSText]("text"),
		codec.Tagged[RCSMedia]("media"),
		codec.Tagged[RCSCards]("cards"),
	)
	codec.RegisterUnion[RichMessage, RichMessageVariant]("",
		codec.Untagged[RichTextMessage](),
		codec.Untagged[RichMediaMessage](),
		codec.Untagged[RichCardsMessage](),
	)
	codec.RegisterUnion[Action, ActionVariant]("",
		codec.Untagged[ActionURL](),
		codec.Untagged[ActionCall](),
		codec.Untagged[ActionPostback](),
		codec.Untagged[ActionShareLocation](),
		codec.Untagged[ActionViewLocation](),
	)
}
