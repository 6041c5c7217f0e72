package pinnacle

import (
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/field"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/internal/codec"
)

// MessageSchedule sends a message later, once or on a recurrence.
type MessageSchedule struct {
	field.Meta
	// SendAt is an ISO 8601 timestamp.
	SendAt string `json:"sendAt,required"`
	// Recurrence is an RRULE string.
	Recurrence field.Field[string] `json:"recurrence"`
	Timezone   field.Field[string] `json:"timezone"`
	EndDate    field.Field[string] `json:"endDate"`
}

func (r MessageSchedule) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *MessageSchedule) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r MessageSchedule) Validate() error                  { return codec.Validate(r) }

// FallbackMessage is sent as SMS or MMS when the recipient cannot receive RCS.
type FallbackMessage struct {
	field.Meta
	From      string                `json:"from,required"`
	Text      field.Field[string]   `json:"text"`
	MediaURLs field.Field[[]string] `json:"mediaUrls"`
}

func (r FallbackMessage) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *FallbackMessage) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r FallbackMessage) Validate() error                  { return codec.Validate(r) }

// SendSMSOptions tunes how an SMS is sent.
type SendSMSOptions struct {
	field.Meta
	Schedule field.Field[MessageSchedule] `json:"schedule"`
	// Tracking shortens and tracks the links of the message.
	Tracking field.Field[string] `json:"tracking"`
	// CheckContent rejects the message when its content would not pass validation.
	CheckContent field.Field[bool] `json:"validate"`
}

func (r SendSMSOptions) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SendSMSOptions) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SendSMSOptions) Validate() error                  { return codec.Validate(r) }

// SendSMSParams is the body of Messages.SendSMS.
type SendSMSParams struct {
	field.Meta
	From    string                      `json:"from,required"`
	To      string                      `json:"to,required"`
	Text    string                      `json:"text,required"`
	Options field.Field[SendSMSOptions] `json:"options"`
}

// NewSendSMSParams returns the parameters to send text from one number to another.
func NewSendSMSParams(from, to, text string) SendSMSParams {
	return SendSMSParams{From: from, To: to, Text: text}
}

func (r SendSMSParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SendSMSParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SendSMSParams) Validate() error                  { return codec.Validate(r) }

// SendMMSOptions tunes how an MMS is sent.
type SendMMSOptions struct {
	field.Meta
	// MultipleMessages splits media that does not fit a single MMS into several messages.
	MultipleMessages field.Field[bool]            `json:"multiple_messages"`
	Schedule         field.Field[MessageSchedule] `json:"schedule"`
	Tracking         field.Field[string]          `json:"tracking"`
	CheckContent     field.Field[bool]            `json:"validate"`
}

func (r SendMMSOptions) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SendMMSOptions) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SendMMSOptions) Validate() error                  { return codec.Validate(r) }

// SendMMSParams is the body of Messages.SendMMS.
type SendMMSParams struct {
	field.Meta
	From      string                      `json:"from,required"`
	To        string                      `json:"to,required"`
	MediaURLs []string                    `json:"mediaUrls,required"`
	Text      field.Field[string]         `json:"text"`
	Options   field.Field[SendMMSOptions] `json:"options"`
}

// NewSendMMSParams returns the parameters to send media from one number to another.
func NewSendMMSParams(from, to string, mediaURLs ...string) SendMMSParams {
	return SendMMSParams{From: from, To: to, MediaURLs: mediaURLs}
}

func (r SendMMSParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SendMMSParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SendMMSParams) Validate() error                  { return codec.Validate(r) }

// SendRCSOptions tunes how an RCS message is sent.
type SendRCSOptions struct {
	field.Meta
	Schedule field.Field[MessageSchedule] `json:"schedule"`
	// TestMode sends from the test agent to whitelisted numbers only.
	TestMode field.Field[bool]   `json:"test_mode"`
	Tracking field.Field[string] `json:"tracking"`
	// Transcode converts media to a format supported by the recipient.
	Transcode    field.Field[bool] `json:"transcode"`
	CheckContent field.Field[bool] `json:"validate"`
}

func (r SendRCSOptions) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SendRCSOptions) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SendRCSOptions) Validate() error                  { return codec.Validate(r) }

// SentSMSSegments describes how an SMS was split.
type SentSMSSegments struct {
	field.Meta
	Count    int64  `json:"count,required"`
	Encoding string `json:"encoding,required"`
}

func (r SentSMSSegments) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SentSMSSegments) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SentSMSSegments) Validate() error                  { return codec.Validate(r) }

// SentSMSDetails is returned when an SMS is sent right away.
type SentSMSDetails struct {
	field.Meta
	MessageID string          `json:"messageId,required"`
	Segments  SentSMSSegments `json:"segments,required"`
	TotalCost float64         `json:"totalCost,required"`
	Sender    string          `json:"sender,required"`
	Recipient string          `json:"recipient,required"`
	Status    string          `json:"status,required"`
}

func (r SentSMSDetails) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SentSMSDetails) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SentSMSDetails) Validate() error                  { return codec.Validate(r) }

// SentMMSDetails is returned when an MMS is sent right away.
type SentMMSDetails struct {
	field.Meta
	MessageIDs []string `json:"messageIds,required"`
	Segments   int64    `json:"segments,required"`
	TotalCost  float64  `json:"totalCost,required"`
	Sender     string   `json:"sender,required"`
	Recipient  string   `json:"recipient,required"`
	Status     string   `json:"status,required"`
}

func (r SentMMSDetails) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SentMMSDetails) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SentMMSDetails) Validate() error                  { return codec.Validate(r) }

// SentRCSDetails is returned when an RCS message is sent right away.
type SentRCSDetails struct {
	field.Meta
	MessageID string  `json:"messageId,required"`
	Segments  int64   `json:"segments,required"`
	TotalCost float64 `json:"totalCost,required"`
	Sender    string  `json:"sender,required"`
	Recipient string  `json:"recipient,required"`
	Status    string  `json:"status,required"`
}

func (r SentRCSDetails) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SentRCSDetails) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SentRCSDetails) Validate() error                  { return codec.Validate(r) }

// ScheduledSendConfig echoes the schedule of a scheduled message.
type ScheduledSendConfig struct {
	field.Meta
	SendAt     string              `json:"sendAt,required"`
	Recurrence field.Field[string] `json:"recurrence"`
	Timezone   string              `json:"timezone,required"`
	EndDate    field.Field[string] `json:"endDate"`
}

func (r ScheduledSendConfig) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ScheduledSendConfig) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ScheduledSendConfig) Validate() error                  { return codec.Validate(r) }

// ScheduledSendResponse is returned when a message is scheduled instead of sent.
type ScheduledSendResponse struct {
	field.Meta
	ScheduleID string              `json:"scheduleId,required"`
	Config     ScheduledSendConfig `json:"config,required"`
}

func (r ScheduledSendResponse) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ScheduledSendResponse) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ScheduledSendResponse) Validate() error                  { return codec.Validate(r) }

func (SentSMSDetails) isSendSMSResponse()        {}
func (ScheduledSendResponse) isSendSMSResponse() {}
func (SentMMSDetails) isSendMMSResponse()        {}
func (ScheduledSendResponse) isSendMMSResponse() {}
func (SentRCSDetails) isSendRCSResponse()        {}
func (ScheduledSendResponse) isSendRCSResponse() {}

// SendSMSResponse is either a SentSMSDetails or a ScheduledSendResponse.
type SendSMSResponse struct{ Variant SendSMSResponseVariant }

// SendSMSResponseVariant is implemented by the members of SendSMSResponse.
type SendSMSResponseVariant interface{ isSendSMSResponse() }

func (u SendSMSResponse) MarshalJSON() ([]byte, error)     { return codec.Marshal(u) }
func (u *SendSMSResponse) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, u) }
func (u SendSMSResponse) Validate() error                  { return codec.Validate(u) }

// SendMMSResponse is either a SentMMSDetails or a ScheduledSendResponse.
type SendMMSResponse struct{ Variant SendMMSResponseVariant }

// SendMMSResponseVariant is implemented by the members of SendMMSResponse.
type SendMMSResponseVariant interface{ isSendMMSResponse() }

func (u SendMMSResponse) MarshalJSON() ([]byte, error)     { return codec.Marshal(u) }
func (u *SendMMSResponse) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, u) }
func (u SendMMSResponse) Validate() error                  { return codec.Validate(u) }

// SendRCSResponse is either a SentRCSDetails or a ScheduledSendResponse.
type SendRCSResponse struct{ Variant SendRCSResponseVariant }

// SendRCSResponseVariant is implemented by the members of SendRCSResponse.
type SendRCSResponseVariant interface{ isSendRCSResponse() }

func (u SendRCSResponse) MarshalJSON() ([]byte, error)     { return codec.Marshal(u) }
func (u *SendRCSResponse) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, u) }
func (u SendRCSResponse) Validate() error                  { return codec.Validate(u) }

// SendTypingParams shows a typing indicator to an RCS recipient.
type SendTypingParams struct {
	field.Meta
	AgentID string `json:"agentId,required"`
	To      string `json:"to,required"`
}

func (r SendTypingParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SendTypingParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SendTypingParams) Validate() error                  { return codec.Validate(r) }

type SendTypingResponse struct {
	field.Meta
	Success   bool   `json:"success,required"`
	AgentID   string `json:"agentId,required"`
	Recipient string `json:"recipient,required"`
	StartedAt string `json:"startedAt,required"`
	EndedAt   string `json:"endedAt,required"`
}

func (r SendTypingResponse) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SendTypingResponse) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SendTypingResponse) Validate() error                  { return codec.Validate(r) }

// SMSSegmentBreakdown is the split of a text in one encoding.
type SMSSegmentBreakdown struct {
	field.Meta
	TotalBytes  int64    `json:"total_bytes,required"`
	Unsupported []string `json:"unsupported,required"`
	Value       []string `json:"value,required"`
}

func (r SMSSegmentBreakdown) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SMSSegmentBreakdown) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SMSSegmentBreakdown) Validate() error                  { return codec.Validate(r) }

type SMSValidationSegments struct {
	field.Meta
	GSM7  SMSSegmentBreakdown `json:"gsm7,required"`
	UTF16 SMSSegmentBreakdown `json:"utf16,required"`
}

func (r SMSValidationSegments) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SMSValidationSegments) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SMSValidationSegments) Validate() error                  { return codec.Validate(r) }

// SMSValidationTotal is the price of the message in each encoding.
type SMSValidationTotal struct {
	field.Meta
	GSM7  float64 `json:"gsm7,required"`
	UTF16 float64 `json:"utf16,required"`
}

func (r SMSValidationTotal) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SMSValidationTotal) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SMSValidationTotal) Validate() error                  { return codec.Validate(r) }

// SMSValidationResult is returned by Messages.ValidateSMS.
type SMSValidationResult struct {
	field.Meta
	IsOverSegmentLimit field.Field[bool]     `json:"isOverSegmentLimit"`
	Segments           SMSValidationSegments `json:"segments,required"`
	Total              SMSValidationTotal    `json:"total,required"`
	Unit               float64               `json:"unit,required"`
}

func (r SMSValidationResult) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SMSValidationResult) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SMSValidationResult) Validate() error                  { return codec.Validate(r) }

// ValidateSMSParams is the body of Messages.ValidateSMS.
type ValidateSMSParams struct {
	field.Meta
	Text string `json:"text,required"`
}

func (r ValidateSMSParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ValidateSMSParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ValidateSMSParams) Validate() error                  { return codec.Validate(r) }

// ValidateMMSParams is the body of Messages.ValidateMMS.
type ValidateMMSParams struct {
	field.Meta
	MediaURLs []string            `json:"mediaUrls,required"`
	Text      field.Field[string] `json:"text"`
}

func (r ValidateMMSParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ValidateMMSParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ValidateMMSParams) Validate() error                  { return codec.Validate(r) }

// MMSSegment is one message of a split MMS.
type MMSSegment struct {
	field.Meta
	Size     int64               `json:"size,required"`
	Text     field.Field[string] `json:"text"`
	MediaURL field.Field[string] `json:"mediaUrl"`
}

func (r MMSSegment) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *MMSSegment) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r MMSSegment) Validate() error                  { return codec.Validate(r) }

type MMSValidationSegments struct {
	field.Meta
	Count            int64        `json:"count,required"`
	UnsupportedFiles []string     `json:"unsupportedFiles,required"`
	Value            []MMSSegment `json:"value,required"`
}

func (r MMSValidationSegments) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *MMSValidationSegments) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r MMSValidationSegments) Validate() error                  { return codec.Validate(r) }

// MMSValidationResult is returned by Messages.ValidateMMS.
type MMSValidationResult struct {
	field.Meta
	Segments MMSValidationSegments `json:"segments,required"`
	Total    float64               `json:"total,required"`
	Unit     float64               `json:"unit,required"`
}

func (r MMSValidationResult) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *MMSValidationResult) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r MMSValidationResult) Validate() error                  { return codec.Validate(r) }

// RCSValidationResult is returned by Messages.ValidateRCS.
type RCSValidationResult struct {
	field.Meta
	Total            float64  `json:"total,required"`
	Unit             float64  `json:"unit,required"`
	UnsupportedFiles []string `json:"unsupportedFiles,required"`
}

func (r RCSValidationResult) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSValidationResult) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSValidationResult) Validate() error                  { return codec.Validate(r) }

// ReactParams adds a reaction to a message, or removes it when Reaction is null.
type ReactParams struct {
	field.Meta
	MessageID string                    `json:"messageId,required"`
	Reaction  field.Field[string]       `json:"reaction,required,nullable"`
	Options   field.Field[ReactOptions] `json:"options"`
}

type ReactOptions struct {
	field.Meta
	Force field.Field[bool] `json:"force"`
}

func (r ReactOptions) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ReactOptions) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ReactOptions) Validate() error                  { return codec.Validate(r) }

func (r ReactParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ReactParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ReactParams) Validate() error                  { return codec.Validate(r) }

type ReactionResult struct {
	field.Meta
	MessageID         string `json:"messageId,required"`
	ReactionMessageID string `json:"reactionMessageId,required"`
}

func (r ReactionResult) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ReactionResult) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ReactionResult) Validate() error                  { return codec.Validate(r) }

// SuccessResponse acknowledges an operation without a result.
type SuccessResponse struct {
	field.Meta
	Success bool `json:"success,required"`
}

func (r SuccessResponse) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SuccessResponse) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SuccessResponse) Validate() error                  { return codec.Validate(r) }

// SMSContent is the content of a sent or received SMS.
type SMSContent struct {
	field.Meta
	Text string `json:"text,required"`
}

func (r SMSContent) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SMSContent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SMSContent) Validate() error                  { return codec.Validate(r) }

// MMSContent is the content of a sent or received MMS.
type MMSContent struct {
	field.Meta
	MediaURLs []string            `json:"mediaUrls,required"`
	Text      field.Field[string] `json:"text"`
}

func (r MMSContent) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *MMSContent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r MMSContent) Validate() error                  { return codec.Validate(r) }

// RCSMediaDetails locates a media file stored by Pinnacle.
type RCSMediaDetails struct {
	field.Meta
	FullPath string `json:"fullPath,required"`
	MimeType string `json:"mimeType,required"`
	URL      string `json:"url,required"`
}

func (r RCSMediaDetails) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSMediaDetails) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSMediaDetails) Validate() error                  { return codec.Validate(r) }

// RCSTextContent is the content of a text RCS message.
type RCSTextContent struct {
	field.Meta
	Text         string       `json:"text,required"`
	QuickReplies []RichButton `json:"quickReplies,required"`
}

func (r RCSTextContent) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSTextContent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSTextContent) Validate() error                  { return codec.Validate(r) }

// RCSMediaContent is the content of a media RCS message.
type RCSMediaContent struct {
	field.Meta
	Media        RCSMediaDetails `json:"media,required"`
	QuickReplies []RichButton    `json:"quickReplies,required"`
}

func (r RCSMediaContent) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSMediaContent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSMediaContent) Validate() error                  { return codec.Validate(r) }

type RCSContentCard struct {
	field.Meta
	Title    string                       `json:"title,required"`
	Subtitle field.Field[string]          `json:"subtitle"`
	Media    field.Field[RCSMediaDetails] `json:"media"`
	Buttons  []RichButton                 `json:"buttons,required"`
}

func (r RCSContentCard) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSContentCard) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSContentCard) Validate() error                  { return codec.Validate(r) }

// RCSCardsContent is the content of a card or carousel RCS message.
type RCSCardsContent struct {
	field.Meta
	Cards        []RCSContentCard `json:"cards,required"`
	QuickReplies []RichButton     `json:"quickReplies,required"`
}

func (r RCSCardsContent) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSCardsContent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSCardsContent) Validate() error                  { return codec.Validate(r) }

func (SMSContent) isMessageContent()      {}
func (MMSContent) isMessageContent()      {}
func (RCSTextContent) isMessageContent()  {}
func (RCSMediaContent) isMessageContent() {}
func (RCSCardsContent) isMessageContent() {}

// MessageContent is the content of a stored message. It carries no discriminant: the
// member is recognised by its fields, and an SMS payload with quick replies is read as
// RCS text because RCSTextContent declares more of its keys.
type MessageContent struct{ Variant MessageContentVariant }

// MessageContentVariant is implemented by SMSContent, MMSContent, RCSTextContent,
// RCSMediaContent and RCSCardsContent.
type MessageContentVariant interface{ isMessageContent() }

func (u MessageContent) MarshalJSON() ([]byte, error)     { return codec.Marshal(u) }
func (u *MessageContent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, u) }
func (u MessageContent) Validate() error                  { return codec.Validate(u) }

// Message is a message sent or received by the account.
type Message struct {
	field.Meta
	ID          string               `json:"id,required"`
	Content     MessageContent       `json:"content,required"`
	Cost        field.Field[float64] `json:"cost,required,nullable"`
	DeliveredAt field.Field[string]  `json:"deliveredAt,required,nullable"`
	Error       field.Field[string]  `json:"error,required,nullable"`
	Method      MessageMethod        `json:"method,required"`
	NumSegments int64                `json:"numSegments,required"`
	Receiver    string               `json:"receiver,required"`
	Sender      string               `json:"sender,required"`
	SentAt      field.Field[string]  `json:"sentAt,required,nullable"`
	Status      MessageStatus        `json:"status,required"`
	Type        MessageProtocol      `json:"type,required"`
}

func (r Message) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *Message) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r Message) Validate() error                  { return codec.Validate(r) }

// BlastSMSOptions tunes an SMS blast.
type BlastSMSOptions struct {
	field.Meta
	Schedule     field.Field[MessageSchedule] `json:"schedule"`
	CheckContent field.Field[bool]            `json:"validate"`
}

func (r BlastSMSOptions) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *BlastSMSOptions) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r BlastSMSOptions) Validate() error                  { return codec.Validate(r) }

// BlastSMSParams sends an SMS to every contact of an audience.
type BlastSMSParams struct {
	field.Meta
	AudienceID string                       `json:"audienceId,required"`
	Senders    []string                     `json:"senders,required"`
	Message    SMSContent                   `json:"message,required"`
	Options    field.Field[BlastSMSOptions] `json:"options"`
}

func (r BlastSMSParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *BlastSMSParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r BlastSMSParams) Validate() error                  { return codec.Validate(r) }

// BlastMMSParams sends an MMS to every contact of an audience.
type BlastMMSParams struct {
	field.Meta
	AudienceID string                       `json:"audienceId,required"`
	Senders    []string                     `json:"senders,required"`
	Message    MMSContent                   `json:"message,required"`
	Options    field.Field[BlastSMSOptions] `json:"options"`
}

func (r BlastMMSParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *BlastMMSParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r BlastMMSParams) Validate() error                  { return codec.Validate(r) }

// StandaloneCardOptions lays out a single rich card.
type StandaloneCardOptions struct {
	field.Meta
	Orientation    field.Field[string] `json:"orientation"`
	ImageAlignment field.Field[string] `json:"image_alignment"`
}

func (r StandaloneCardOptions) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *StandaloneCardOptions) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r StandaloneCardOptions) Validate() error                  { return codec.Validate(r) }

type BlastRCSOptions struct {
	field.Meta
	Transcode      field.Field[bool]                  `json:"transcode"`
	CheckContent   field.Field[bool]                  `json:"validate"`
	StandaloneCard field.Field[StandaloneCardOptions] `json:"standalone_card"`
	Schedule       field.Field[MessageSchedule]       `json:"schedule"`
}

func (r BlastRCSOptions) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *BlastRCSOptions) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r BlastRCSOptions) Validate() error                  { return codec.Validate(r) }

// BlastRCSParams sends an RCS message to every contact of an audience.
type BlastRCSParams struct {
	field.Meta
	AudienceID string                       `json:"audienceId,required"`
	Senders    []string                     `json:"senders,required"`
	Message    RCSContent                   `json:"message,required"`
	Options    field.Field[BlastRCSOptions] `json:"options"`
}

func (r BlastRCSParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *BlastRCSParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r BlastRCSParams) Validate() error                  { return codec.Validate(r) }

// BlastDetails summarises a blast that was sent.
type BlastDetails struct {
	field.Meta
	BlastID         string  `json:"blastId,required"`
	AudienceID      string  `json:"audienceId,required"`
	TotalRecipients int64   `json:"totalRecipients,required"`
	TotalMessages   int64   `json:"totalMessages,required"`
	TotalSegments   int64   `json:"totalSegments,required"`
	TotalCost       float64 `json:"totalCost,required"`
}

func (r BlastDetails) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *BlastDetails) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r BlastDetails) Validate() error                  { return codec.Validate(r) }

// ScheduledBlastConfig echoes the schedule of a scheduled blast.
type ScheduledBlastConfig struct {
	field.Meta
	SendAt     field.Field[string] `json:"sendAt"`
	Recurrence field.Field[string] `json:"recurrence"`
	Timezone   field.Field[string] `json:"timezone"`
	EndDate    field.Field[string] `json:"endDate"`
}

func (r ScheduledBlastConfig) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ScheduledBlastConfig) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ScheduledBlastConfig) Validate() error                  { return codec.Validate(r) }

type ScheduledBlastResponse struct {
	field.Meta
	ScheduleID string               `json:"scheduleId,required"`
	Config     ScheduledBlastConfig `json:"config,required"`
}

func (r ScheduledBlastResponse) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ScheduledBlastResponse) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ScheduledBlastResponse) Validate() error                  { return codec.Validate(r) }

func (BlastDetails) isBlastResponse()           {}
func (ScheduledBlastResponse) isBlastResponse() {}

// BlastResponse is either a BlastDetails or a ScheduledBlastResponse.
type BlastResponse struct{ Variant BlastResponseVariant }

// BlastResponseVariant is implemented by the members of BlastResponse.
type BlastResponseVariant interface{ isBlastResponse() }

func (u BlastResponse) MarshalJSON() ([]byte, error)     { return codec.Marshal(u) }
func (u *BlastResponse) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, u) }
func (u BlastResponse) Validate() error                  { return codec.Validate(u) }

func init() {
	codec.RegisterUnion[SendSMSResponse, SendSMSResponseVariant]("",
		codec.Untagged[SentSMSDetails](),
		codec.Untagged[ScheduledSendResponse](),
	)
	codec.RegisterUnion[SendMMSResponse, SendMMSResponseVariant]("",
		codec.Untagged[SentMMSDetails](),
		codec.Untagged[ScheduledSendResponse](),
	)
	codec.RegisterUnion[SendRCSResponse, SendRCSResponseVariant]("",
		codec.Untagged[SentRCSDetails](),
		codec.Untagged[ScheduledSendResponse](),
	)
	codec.RegisterUnion[MessageContent, MessageContentVariant]("",
		codec.Untagged[SMSContent](),
		codec.Untagged[MMSContent](),
		codec.Untagged[RCSTextContent](),
		codec.Untagged[RCSMediaContent](),
		codec.Untagged[RCSCardsContent](),
	)
	codec.RegisterUnion[BlastResponse, BlastResponseVariant]("",
		codec.Untagged[BlastDetails](),
		codec.Untagged[ScheduledBlastResponse](),
	)
}
