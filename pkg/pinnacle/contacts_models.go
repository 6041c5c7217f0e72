package pinnacle

import (
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/field"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/internal/codec"
)

// Contact is a person messages are exchanged with.
type Contact struct {
	field.Meta
	ID          string                `json:"id,required"`
	PhoneNumber string                `json:"phoneNumber,required"`
	Name        field.Field[string]   `json:"name"`
	Email       field.Field[string]   `json:"email"`
	Description field.Field[string]   `json:"description"`
	Tags        field.Field[[]string] `json:"tags"`
}

func (r Contact) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *Contact) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r Contact) Validate() error                  { return codec.Validate(r) }

// GetContactParams looks a contact up by id or by phone number.
type GetContactParams struct {
	field.Meta
	ID          field.Field[string] `json:"id"`
	PhoneNumber field.Field[string] `json:"phoneNumber"`
}

func (r GetContactParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *GetContactParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r GetContactParams) Validate() error                  { return codec.Validate(r) }

type CreateContactParams struct {
	field.Meta
	PhoneNumber string                `json:"phoneNumber,required"`
	Name        field.Field[string]   `json:"name"`
	Email       field.Field[string]   `json:"email"`
	Description field.Field[string]   `json:"description"`
	Tags        field.Field[[]string] `json:"tags"`
}

func (r CreateContactParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *CreateContactParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r CreateContactParams) Validate() error                  { return codec.Validate(r) }

type UpdateContactParams struct {
	field.Meta
	ID          string                `json:"id,required"`
	Name        field.Field[string]   `json:"name"`
	Email       field.Field[string]   `json:"email"`
	Description field.Field[string]   `json:"description"`
	Tags        field.Field[[]string] `json:"tags"`
}

func (r UpdateContactParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *UpdateContactParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r UpdateContactParams) Validate() error                  { return codec.Validate(r) }

type ContactID struct {
	field.Meta
	ID string `json:"id,required"`
}

func (r ContactID) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ContactID) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ContactID) Validate() error                  { return codec.Validate(r) }

// Pagination describes the page of a listing.
type Pagination struct {
	field.Meta
	Page    int64 `json:"page,required"`
	Limit   int64 `json:"limit,required"`
	Total   int64 `json:"total,required"`
	HasMore bool  `json:"hasMore,required"`
}

func (r Pagination) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *Pagination) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r Pagination) Validate() error                  { return codec.Validate(r) }

type CampaignQuery struct {
	field.Meta
	ID   string       `json:"id,required"`
	Name string       `json:"name,required"`
	Type CampaignType `json:"type,required"`
}

func (r CampaignQuery) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *CampaignQuery) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r CampaignQuery) Validate() error                  { return codec.Validate(r) }

type ConversationContact struct {
	field.Meta
	ID          string `json:"id,required"`
	PhoneNumber string `json:"phoneNumber,required"`
}

func (r ConversationContact) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ConversationContact) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ConversationContact) Validate() error                  { return codec.Validate(r) }

// ConversationSender is the number or agent of the account side of a conversation.
type ConversationSender struct {
	field.Meta
	ID          string `json:"id,required"`
	PhoneNumber string `json:"phoneNumber,required"`
}

func (r ConversationSender) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ConversationSender) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ConversationSender) Validate() error                  { return codec.Validate(r) }

// Conversation is the thread between a sender and a contact.
type Conversation struct {
	field.Meta
	ID        string                          `json:"id,required"`
	BrandID   field.Field[string]             `json:"brandId,required,nullable"`
	Campaign  field.Field[CampaignQuery]      `json:"campaign,required,nullable"`
	Contact   ConversationContact             `json:"contact,required"`
	Sender    field.Field[ConversationSender] `json:"sender,required,nullable"`
	Notes     string                          `json:"notes,required"`
	CreatedAt string                          `json:"createdAt,required"`
	UpdatedAt string                          `json:"updatedAt,required"`
}

func (r Conversation) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *Conversation) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r Conversation) Validate() error                  { return codec.Validate(r) }

// GetConversationParams looks a conversation up by id or by its two ends.
type GetConversationParams struct {
	field.Meta
	ID        field.Field[string] `json:"id"`
	Sender    field.Field[string] `json:"sender"`
	Recipient field.Field[string] `json:"recipient"`
}

func (r GetConversationParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *GetConversationParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r GetConversationParams) Validate() error                  { return codec.Validate(r) }

type ListConversationsParams struct {
	field.Meta
	PageIndex    int64                     `json:"pageIndex,required"`
	PageSize     field.Field[int64]        `json:"pageSize"`
	BrandID      field.Field[string]       `json:"brandId"`
	CampaignID   field.Field[string]       `json:"campaignId"`
	CampaignType field.Field[CampaignType] `json:"campaignType"`
	Receiver     field.Field[string]       `json:"receiver"`
	Sender       field.Field[string]       `json:"sender"`
}

func (r ListConversationsParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ListConversationsParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ListConversationsParams) Validate() error                  { return codec.Validate(r) }

type RetrievedConversations struct {
	field.Meta
	Count         int64          `json:"count,required"`
	Conversations []Conversation `json:"conversations,required"`
	HasMore       bool           `json:"hasMore,required"`
}

func (r RetrievedConversations) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RetrievedConversations) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RetrievedConversations) Validate() error                  { return codec.Validate(r) }

type UpdateConversationParams struct {
	field.Meta
	ID    string `json:"id,required"`
	Notes string `json:"notes,required"`
}

func (r UpdateConversationParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *UpdateConversationParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r UpdateConversationParams) Validate() error                  { return codec.Validate(r) }

// ListMessagesParams filters the messages of a conversation. ID is sent in the path.
type ListMessagesParams struct {
	field.Meta
	ID        string                        `json:"-"`
	PageIndex field.Field[int64]            `json:"pageIndex"`
	PageSize  field.Field[int64]            `json:"pageSize"`
	SortOrder field.Field[string]           `json:"sortOrder"`
	Direction field.Field[MessageDirection] `json:"direction"`
	Status    field.Field[MessageStatus]    `json:"status"`
	Type      field.Field[MessageProtocol]  `json:"type"`
	DateFrom  field.Field[string]           `json:"dateFrom"`
	DateTo    field.Field[string]           `json:"dateTo"`
}

func (r ListMessagesParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ListMessagesParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ListMessagesParams) Validate() error                  { return codec.Validate(r) }

type ConversationMessages struct {
	field.Meta
	Messages   []Message  `json:"messages,required"`
	Pagination Pagination `json:"pagination,required"`
}

func (r ConversationMessages) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ConversationMessages) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ConversationMessages) Validate() error                  { return codec.Validate(r) }

// Audience is a named list of contacts blasts are sent to.
type Audience struct {
	field.Meta
	ID           string     `json:"id,required"`
	Name         string     `json:"name,required"`
	Description  string     `json:"description,required"`
	Contacts     []Contact  `json:"contacts,required"`
	ContactCount int64      `json:"contactCount,required"`
	Pagination   Pagination `json:"pagination,required"`
}

func (r Audience) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *Audience) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r Audience) Validate() error                  { return codec.Validate(r) }

// AudienceSummary is an audience without its contacts.
type AudienceSummary struct {
	field.Meta
	ID           string `json:"id,required"`
	Name         string `json:"name,required"`
	Description  string `json:"description,required"`
	ContactCount int64  `json:"contactCount,required"`
}

func (r AudienceSummary) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *AudienceSummary) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r AudienceSummary) Validate() error                  { return codec.Validate(r) }

type GetAudienceParams struct {
	field.Meta
	ID    string             `json:"id,required"`
	Page  field.Field[int64] `json:"page"`
	Limit field.Field[int64] `json:"limit"`
}

func (r GetAudienceParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *GetAudienceParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r GetAudienceParams) Validate() error                  { return codec.Validate(r) }

type CreateAudienceParams struct {
	field.Meta
	Name        string                `json:"name,required"`
	Description field.Field[string]   `json:"description"`
	Contacts    field.Field[[]string] `json:"contacts"`
}

func (r CreateAudienceParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *CreateAudienceParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r CreateAudienceParams) Validate() error                  { return codec.Validate(r) }

type UpdateAudienceParams struct {
	field.Meta
	ID          string              `json:"id,required"`
	Name        field.Field[string] `json:"name"`
	Description field.Field[string] `json:"description"`
}

func (r UpdateAudienceParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *UpdateAudienceParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r UpdateAudienceParams) Validate() error                  { return codec.Validate(r) }

// AudienceContactsParams adds contacts to or removes contacts from an audience. Contacts
// are phone numbers or contact ids.
type AudienceContactsParams struct {
	field.Meta
	ID       string   `json:"id,required"`
	Contacts []string `json:"contacts,required"`
}

func (r AudienceContactsParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *AudienceContactsParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r AudienceContactsParams) Validate() error                  { return codec.Validate(r) }
