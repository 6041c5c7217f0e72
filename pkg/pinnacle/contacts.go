package pinnacle

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

// ContactsService manages the contacts of the account.
type ContactsService struct {
	c *Client
}

// Get looks a contact up by id or phone number. One of them must be set.
func (s *ContactsService) Get(ctx context.Context, params GetContactParams) (Contact, error) {
	q := url.Values{}
	if id, ok := params.ID.Get(); ok {
		q.Set("id", id)
	}
	if phone, ok := params.PhoneNumber.Get(); ok {
		q.Set("phoneNumber", phone)
	}
	if len(q) == 0 {
		return Contact{}, errors.New("contact lookup needs an id or a phone number")
	}
	return call[Contact](ctx, s.c, http.MethodGet, "contacts", q, nil)
}

func (s *ContactsService) Create(ctx context.Context, params CreateContactParams) (ContactID, error) {
	return call[ContactID](ctx, s.c, http.MethodPost, "contacts", nil, params)
}

// Update changes the fields of params which are present. Null fields are cleared.
func (s *ContactsService) Update(ctx context.Context, params UpdateContactParams) (ContactID, error) {
	return call[ContactID](ctx, s.c, http.MethodPut, "contacts", nil, params)
}

// ConversationsService reads conversations and their messages.
type ConversationsService struct {
	c *Client
}

func (s *ConversationsService) Get(ctx context.Context, params GetConversationParams) (Conversation, error) {
	return call[Conversation](ctx, s.c, http.MethodPost, "conversations/get", nil, params)
}

// List returns a page of the conversations matching params.
func (s *ConversationsService) List(ctx context.Context, params ListConversationsParams) (RetrievedConversations, error) {
	return call[RetrievedConversations](ctx, s.c, http.MethodPost, "conversations/list", nil, params)
}

// Update replaces the notes of a conversation.
func (s *ConversationsService) Update(ctx context.Context, params UpdateConversationParams) (SuccessResponse, error) {
	return call[SuccessResponse](ctx, s.c, http.MethodPost, "conversations/update", nil, params)
}

// ListMessages returns a page of the messages of the conversation params.ID.
func (s *ConversationsService) ListMessages(ctx context.Context, params ListMessagesParams) (ConversationMessages, error) {
	if params.ID == "" {
		return ConversationMessages{}, errors.New("conversation id is required")
	}
	return call[ConversationMessages](ctx, s.c, http.MethodPost, "conversations/"+pathEscape(params.ID)+"/messages", nil, params)
}

// AudiencesService manages audiences.
type AudiencesService struct {
	c *Client
}

// Get returns an audience with a page of its contacts.
func (s *AudiencesService) Get(ctx context.Context, params GetAudienceParams) (Audience, error) {
	q := url.Values{"id": {params.ID}}
	if page, ok := params.Page.Get(); ok {
		q.Set("page", strconv.FormatInt(page, 10))
	}
	if limit, ok := params.Limit.Get(); ok {
		q.Set("limit", strconv.FormatInt(limit, 10))
	}
	return call[Audience](ctx, s.c, http.MethodGet, "audiences", q, nil)
}

func (s *AudiencesService) Create(ctx context.Context, params CreateAudienceParams) (AudienceSummary, error) {
	return call[AudienceSummary](ctx, s.c, http.MethodPost, "audiences", nil, params)
}

func (s *AudiencesService) Update(ctx context.Context, params UpdateAudienceParams) (AudienceSummary, error) {
	return call[AudienceSummary](ctx, s.c, http.MethodPatch, "audiences", nil, params)
}

// Delete removes an audience. Its contacts are kept.
func (s *AudiencesService) Delete(ctx context.Context, id string) (SuccessResponse, error) {
	return call[SuccessResponse](ctx, s.c, http.MethodDelete, "audiences", url.Values{"id": {id}}, nil)
}

func (s *AudiencesService) AddContacts(ctx context.Context, params AudienceContactsParams) (AudienceSummary, error) {
	return call[AudienceSummary](ctx, s.c, http.MethodPatch, "audiences/contacts", nil, params)
}

func (s *AudiencesService) RemoveContacts(ctx context.Context, params AudienceContactsParams) (AudienceSummary, error) {
	return call[AudienceSummary](ctx, s.c, http.MethodDelete, "audiences/contacts", nil, params)
}
