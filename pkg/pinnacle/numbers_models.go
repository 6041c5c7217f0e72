package pinnacle

import (
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/field"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/internal/codec"
)

type SearchByLocation struct {
	field.Meta
	City                    field.Field[string] `json:"city"`
	CountryCode             field.Field[string] `json:"countryCode"`
	NationalDestinationCode field.Field[string] `json:"nationalDestinationCode"`
	State                   field.Field[string] `json:"state"`
}

func (r SearchByLocation) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SearchByLocation) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SearchByLocation) Validate() error                  { return codec.Validate(r) }

// SearchByDigits matches numbers by the digits they start with, contain or end with.
type SearchByDigits struct {
	field.Meta
	Contains   field.Field[string] `json:"contains"`
	StartsWith field.Field[string] `json:"startsWith"`
	EndsWith   field.Field[string] `json:"endsWith"`
}

func (r SearchByDigits) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SearchByDigits) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SearchByDigits) Validate() error                  { return codec.Validate(r) }

type SearchOptions struct {
	field.Meta
	Limit field.Field[int64] `json:"limit"`
}

func (r SearchOptions) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SearchOptions) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SearchOptions) Validate() error                  { return codec.Validate(r) }

// SearchPhoneNumbersParams is the body of PhoneNumbers.Search.
type SearchPhoneNumbersParams struct {
	field.Meta
	Type     []PhoneNumberType             `json:"type,required"`
	Features field.Field[[]PhoneFeature]   `json:"features"`
	Location field.Field[SearchByLocation] `json:"location"`
	Number   field.Field[SearchByDigits]   `json:"number"`
	Options  field.Field[SearchOptions]    `json:"options"`
}

func (r SearchPhoneNumbersParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *SearchPhoneNumbersParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r SearchPhoneNumbersParams) Validate() error                  { return codec.Validate(r) }

type PhoneNumberCost struct {
	field.Meta
	UpfrontCost float64 `json:"upfrontCost,required"`
	MonthlyCost float64 `json:"monthlyCost,required"`
	Currency    string  `json:"currency,required"`
}

func (r PhoneNumberCost) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *PhoneNumberCost) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r PhoneNumberCost) Validate() error                  { return codec.Validate(r) }

type PhoneNumberRegion struct {
	field.Meta
	Country    string              `json:"country,required"`
	State      field.Field[string] `json:"state"`
	City       field.Field[string] `json:"city"`
	RateCenter field.Field[string] `json:"rateCenter"`
}

func (r PhoneNumberRegion) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *PhoneNumberRegion) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r PhoneNumberRegion) Validate() error                  { return codec.Validate(r) }

// AvailablePhoneNumber is a number returned by a search.
type AvailablePhoneNumber struct {
	field.Meta
	Number    string            `json:"number,required"`
	PhoneType PhoneNumberType   `json:"phoneType,required"`
	Cost      PhoneNumberCost   `json:"cost,required"`
	Features  []PhoneFeature    `json:"features,required"`
	Region    PhoneNumberRegion `json:"region,required"`
}

func (r AvailablePhoneNumber) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *AvailablePhoneNumber) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r AvailablePhoneNumber) Validate() error                  { return codec.Validate(r) }

type BuyPhoneNumbersParams struct {
	field.Meta
	Numbers []string `json:"numbers,required"`
}

func (r BuyPhoneNumbersParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *BuyPhoneNumbersParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r BuyPhoneNumbersParams) Validate() error                  { return codec.Validate(r) }

type PhoneCapabilities struct {
	field.Meta
	SMS   bool `json:"sms,required"`
	MMS   bool `json:"mms,required"`
	Voice bool `json:"voice,required"`
}

func (r PhoneCapabilities) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *PhoneCapabilities) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r PhoneCapabilities) Validate() error                  { return codec.Validate(r) }

// PurchasedPhoneNumber is a number owned by the account.
type PurchasedPhoneNumber struct {
	field.Meta
	PhoneNumber  string            `json:"phoneNumber,required"`
	Status       PhoneNumberStatus `json:"status,required"`
	Capabilities PhoneCapabilities `json:"capabilities,required"`
	IsSandbox    bool              `json:"isSandbox,required"`
	CreatedAt    string            `json:"createdAt,required"`
	UpdatedAt    string            `json:"updatedAt,required"`
}

func (r PurchasedPhoneNumber) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *PurchasedPhoneNumber) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r PurchasedPhoneNumber) Validate() error                  { return codec.Validate(r) }

// PhoneDetailsOptions controls an advanced lookup.
type PhoneDetailsOptions struct {
	field.Meta
	Force field.Field[bool] `json:"force"`
	Risk  field.Field[bool] `json:"risk"`
	// EnhancedContactInfo also looks up the owner of the number.
	EnhancedContactInfo field.Field[bool] `json:"enhancedContactInfo"`
}

func (r PhoneDetailsOptions) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *PhoneDetailsOptions) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r PhoneDetailsOptions) Validate() error                  { return codec.Validate(r) }

// PhoneDetailsParams is the body of PhoneNumbers.Details. Level is "basic" or "advanced".
type PhoneDetailsParams struct {
	field.Meta
	Phone   string                           `json:"phone,required"`
	Level   field.Field[string]              `json:"level"`
	Options field.Field[PhoneDetailsOptions] `json:"options"`
}

func (r PhoneDetailsParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *PhoneDetailsParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r PhoneDetailsParams) Validate() error                  { return codec.Validate(r) }

type NumberFormat struct {
	field.Meta
	International string `json:"international,required"`
	National      string `json:"national,required"`
	Raw           string `json:"raw,required"`
}

func (r NumberFormat) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *NumberFormat) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r NumberFormat) Validate() error                  { return codec.Validate(r) }

type BasicPhoneLocation struct {
	field.Meta
	Country string              `json:"country,required"`
	State   field.Field[string] `json:"state,required,nullable"`
	City    field.Field[string] `json:"city,required,nullable"`
}

func (r BasicPhoneLocation) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *BasicPhoneLocation) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r BasicPhoneLocation) Validate() error                  { return codec.Validate(r) }

type BasicPhoneContact struct {
	field.Meta
	Name field.Field[string] `json:"name,required,nullable"`
}

func (r BasicPhoneContact) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *BasicPhoneContact) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r BasicPhoneContact) Validate() error                  { return codec.Validate(r) }

// BasicPhoneInformation is the result of a basic lookup.
type BasicPhoneInformation struct {
	field.Meta
	IsValid  bool                    `json:"isValid,required"`
	Type     DetailedPhoneNumberType `json:"type,required"`
	Formats  NumberFormat            `json:"formats,required"`
	Location BasicPhoneLocation      `json:"location,required"`
	Carrier  string                  `json:"carrier,required"`
	Contact  BasicPhoneContact       `json:"contact,required"`
}

func (r BasicPhoneInformation) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *BasicPhoneInformation) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r BasicPhoneInformation) Validate() error                  { return codec.Validate(r) }

type LineType struct {
	field.Meta
	Value          DetailedPhoneNumberType `json:"value,required"`
	Description    string                  `json:"description,required"`
	Details        string                  `json:"details,required"`
	Recommendation LookupRecommendation    `json:"recommendation,required"`
}

func (r LineType) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *LineType) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r LineType) Validate() error                  { return codec.Validate(r) }

type Country struct {
	field.Meta
	Name string `json:"name,required"`
	Code string `json:"code,required"`
}

func (r Country) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *Country) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r Country) Validate() error                  { return codec.Validate(r) }

type Coordinates struct {
	field.Meta
	Lat field.Field[float64] `json:"lat,required,nullable"`
	Lng field.Field[float64] `json:"lng,required,nullable"`
}

func (r Coordinates) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *Coordinates) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r Coordinates) Validate() error                  { return codec.Validate(r) }

type AdvancedPhoneLocation struct {
	field.Meta
	Country     Country             `json:"country,required"`
	City        field.Field[string] `json:"city,required,nullable"`
	State       field.Field[string] `json:"state,required,nullable"`
	Zip         field.Field[string] `json:"zip,required,nullable"`
	MetroCode   field.Field[string] `json:"metroCode,required,nullable"`
	County      field.Field[string] `json:"county,required,nullable"`
	Coordinates Coordinates         `json:"coordinates,required"`
	TimeZone    field.Field[string] `json:"timeZone,required,nullable"`
}

func (r AdvancedPhoneLocation) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *AdvancedPhoneLocation) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r AdvancedPhoneLocation) Validate() error                  { return codec.Validate(r) }

type Carrier struct {
	field.Meta
	Name string `json:"name,required"`
	// Normalized is the name without suffixes such as "LLC".
	Normalized string `json:"normalizedCarrier,required"`
}

func (r Carrier) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *Carrier) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r Carrier) Validate() error                  { return codec.Validate(r) }

type OwnerProfile struct {
	field.Meta
	Platform string `json:"platform,required"`
	URL      string `json:"url,required"`
}

func (r OwnerProfile) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *OwnerProfile) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r OwnerProfile) Validate() error                  { return codec.Validate(r) }

// NumberOwner is what is known of the owner of a number.
type NumberOwner struct {
	field.Meta
	FirstName    field.Field[string]         `json:"firstName"`
	LastName     field.Field[string]         `json:"lastName"`
	EmailAddress field.Field[string]         `json:"emailAddress"`
	Street       field.Field[string]         `json:"street"`
	Unit         field.Field[string]         `json:"unit"`
	Place        field.Field[string]         `json:"place"`
	Zip          field.Field[string]         `json:"zip"`
	State        field.Field[string]         `json:"state"`
	Country      field.Field[string]         `json:"country"`
	Profiles     field.Field[[]OwnerProfile] `json:"profiles"`
}

func (r NumberOwner) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *NumberOwner) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r NumberOwner) Validate() error                  { return codec.Validate(r) }

// AdvancedPhoneInformation is the result of an advanced lookup.
type AdvancedPhoneInformation struct {
	field.Meta
	IsValid  bool                     `json:"isValid,required"`
	Type     LineType                 `json:"type,required"`
	Formats  NumberFormat             `json:"formats,required"`
	Location AdvancedPhoneLocation    `json:"location,required"`
	Carrier  Carrier                  `json:"carrier,required"`
	Contact  field.Field[NumberOwner] `json:"contact,required,nullable"`
}

func (r AdvancedPhoneInformation) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *AdvancedPhoneInformation) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r AdvancedPhoneInformation) Validate() error                  { return codec.Validate(r) }

func (AdvancedPhoneInformation) isPhoneInformation() {}
func (BasicPhoneInformation) isPhoneInformation()    {}

// PhoneInformation is the result of PhoneNumbers.Details, basic or advanced depending on
// the requested level.
type PhoneInformation struct{ Variant PhoneInformationVariant }

// PhoneInformationVariant is implemented by AdvancedPhoneInformation and BasicPhoneInformation.
type PhoneInformationVariant interface{ isPhoneInformation() }

func (u PhoneInformation) MarshalJSON() ([]byte, error)     { return codec.Marshal(u) }
func (u *PhoneInformation) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, u) }
func (u PhoneInformation) Validate() error                  { return codec.Validate(u) }

// AttachCampaignParams attaches phone numbers to a campaign.
type AttachCampaignParams struct {
	field.Meta
	Phones       []string     `json:"phones,required"`
	CampaignType CampaignType `json:"campaignType,required"`
	CampaignID   string       `json:"campaignId,required"`
}

func (r AttachCampaignParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *AttachCampaignParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r AttachCampaignParams) Validate() error                  { return codec.Validate(r) }

type DetachCampaignParams struct {
	field.Meta
	Phones []string `json:"phones,required"`
}

func (r DetachCampaignParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *DetachCampaignParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r DetachCampaignParams) Validate() error                  { return codec.Validate(r) }

type AttachedPhone struct {
	field.Meta
	PhoneNumber string              `json:"phoneNumber,required"`
	Status      string              `json:"status,required"`
	Error       field.Field[string] `json:"error"`
}

func (r AttachedPhone) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *AttachedPhone) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r AttachedPhone) Validate() error                  { return codec.Validate(r) }

type CampaignAttachment struct {
	field.Meta
	Phones []AttachedPhone `json:"phones,required"`
}

func (r CampaignAttachment) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *CampaignAttachment) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r CampaignAttachment) Validate() error                  { return codec.Validate(r) }

// AttachWebhookByID attaches an existing webhook.
type AttachWebhookByID struct {
	field.Meta
	WebhookID string                        `json:"webhookId,required"`
	Event     field.Field[WebhookEventType] `json:"event,required,nullable"`
}

func (r AttachWebhookByID) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *AttachWebhookByID) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r AttachWebhookByID) Validate() error                  { return codec.Validate(r) }

// AttachWebhookByURL creates a webhook and attaches it.
type AttachWebhookByURL struct {
	field.Meta
	Name  string                        `json:"name,required"`
	URL   string                        `json:"url,required"`
	Event field.Field[WebhookEventType] `json:"event,required,nullable"`
}

func (r AttachWebhookByURL) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *AttachWebhookByURL) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r AttachWebhookByURL) Validate() error                  { return codec.Validate(r) }

func (AttachWebhookByID) isAttachWebhookParams()  {}
func (AttachWebhookByURL) isAttachWebhookParams() {}

// AttachWebhookParams is the body of PhoneNumbers.AttachWebhook. A null event subscribes
// the webhook to every event.
type AttachWebhookParams struct{ Variant AttachWebhookParamsVariant }

// AttachWebhookParamsVariant is implemented by AttachWebhookByID and AttachWebhookByURL.
type AttachWebhookParamsVariant interface{ isAttachWebhookParams() }

func (u AttachWebhookParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(u) }
func (u *AttachWebhookParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, u) }
func (u AttachWebhookParams) Validate() error                  { return codec.Validate(u) }

type Webhook struct {
	field.Meta
	ID            string `json:"id,required"`
	Name          string `json:"name,required"`
	Endpoint      string `json:"endpoint,required"`
	SigningSecret string `json:"signingSecret,required"`
}

func (r Webhook) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *Webhook) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r Webhook) Validate() error                  { return codec.Validate(r) }

// ConfiguredWebhook is a webhook attached to a phone number.
type ConfiguredWebhook struct {
	field.Meta
	Webhook     Webhook                       `json:"webhook,required"`
	Event       field.Field[WebhookEventType] `json:"event,required,nullable"`
	PhoneNumber string                        `json:"phoneNumber,required"`
}

func (r ConfiguredWebhook) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ConfiguredWebhook) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ConfiguredWebhook) Validate() error                  { return codec.Validate(r) }

// WebhooksParams lists the webhooks of the given identifiers, phone numbers or webhook ids.
type WebhooksParams struct {
	field.Meta
	Identifiers []string `json:"identifiers,required"`
}

func (r WebhooksParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *WebhooksParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r WebhooksParams) Validate() error                  { return codec.Validate(r) }

type WebhookLookup struct {
	field.Meta
	Identifier string              `json:"identifier,required"`
	Webhooks   []ConfiguredWebhook `json:"webhooks,required"`
	Error      field.Field[string] `json:"error"`
}

func (r WebhookLookup) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *WebhookLookup) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r WebhookLookup) Validate() error                  { return codec.Validate(r) }

type WebhooksResult struct {
	field.Meta
	Webhooks []WebhookLookup `json:"webhooks,required"`
}

func (r WebhooksResult) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *WebhooksResult) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r WebhooksResult) Validate() error                  { return codec.Validate(r) }

func init() {
	codec.RegisterUnion[PhoneInformation, PhoneInformationVariant]("",
		codec.Untagged[AdvancedPhoneInformation](),
		codec.Untagged[BasicPhoneInformation](),
	)
	codec.RegisterUnion[AttachWebhookParams, AttachWebhookParamsVariant]("",
		codec.Untagged[AttachWebhookByID](),
		codec.Untagged[AttachWebhookByURL](),
	)
}
