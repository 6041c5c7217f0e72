package pinnacle

import (
	"context"
	"net/http"
)

// PhoneNumbersService searches, buys and configures phone numbers.
type PhoneNumbersService struct {
	c *Client
}

// Search returns the numbers available for purchase matching params.
func (s *PhoneNumbersService) Search(ctx context.Context, params SearchPhoneNumbersParams) ([]AvailablePhoneNumber, error) {
	return call[[]AvailablePhoneNumber](ctx, s.c, http.MethodPost, "phone-numbers/search", nil, params)
}

// Buy purchases the given numbers. The account is charged their upfront cost.
func (s *PhoneNumbersService) Buy(ctx context.Context, params BuyPhoneNumbersParams) ([]PurchasedPhoneNumber, error) {
	return call[[]PurchasedPhoneNumber](ctx, s.c, http.MethodPost, "phone-numbers/buy", nil, params)
}

// Details looks up a phone number. The member of the result depends on params.Level.
func (s *PhoneNumbersService) Details(ctx context.Context, params PhoneDetailsParams) (PhoneInformation, error) {
	return call[PhoneInformation](ctx, s.c, http.MethodPost, "phone-numbers/details", nil, params)
}

func (s *PhoneNumbersService) AttachCampaign(ctx context.Context, params AttachCampaignParams) (CampaignAttachment, error) {
	return call[CampaignAttachment](ctx, s.c, http.MethodPost, "phone-numbers/attach-campaign", nil, params)
}

func (s *PhoneNumbersService) DetachCampaign(ctx context.Context, params DetachCampaignParams) (CampaignAttachment, error) {
	return call[CampaignAttachment](ctx, s.c, http.MethodDelete, "phone-numbers/detach-campaign", nil, params)
}

// AttachWebhook subscribes an existing or a new webhook to the events of phone.
func (s *PhoneNumbersService) AttachWebhook(ctx context.Context, phone string, params AttachWebhookParams) (ConfiguredWebhook, error) {
	return call[ConfiguredWebhook](ctx, s.c, http.MethodPost, "phone-numbers/"+pathEscape(phone)+"/attach-webhook", nil, params)
}

func (s *PhoneNumbersService) DetachWebhook(ctx context.Context, phone, webhookID string) (SuccessResponse, error) {
	p := "phone-numbers/" + pathEscape(phone) + "/detach-webhook/" + pathEscape(webhookID)
	return call[SuccessResponse](ctx, s.c, http.MethodDelete, p, nil, nil)
}

// WebhooksService lists webhooks.
type WebhooksService struct {
	c *Client
}

// List returns the webhooks attached to each identifier. Lookup failures are reported per
// identifier in WebhookLookup.Error.
func (s *WebhooksService) List(ctx context.Context, params WebhooksParams) (WebhooksResult, error) {
	return call[WebhooksResult](ctx, s.c, http.MethodPost, "webhooks", nil, params)
}

// StatusService reports the registration state of brands, campaigns and numbers.
type StatusService struct {
	c *Client
}

func (s *StatusService) Brand(ctx context.Context, id string) (BrandStatusResult, error) {
	return call[BrandStatusResult](ctx, s.c, http.MethodGet, "status/brand/"+pathEscape(id), nil, nil)
}

func (s *StatusService) DLCCampaign(ctx context.Context, id string) (DLCCampaignStatus, error) {
	return call[DLCCampaignStatus](ctx, s.c, http.MethodGet, "status/dlc-campaign/"+pathEscape(id), nil, nil)
}

func (s *StatusService) TollFreeCampaign(ctx context.Context, id string) (TollFreeCampaignStatus, error) {
	return call[TollFreeCampaignStatus](ctx, s.c, http.MethodGet, "status/toll-free-campaign/"+pathEscape(id), nil, nil)
}

func (s *StatusService) RCSCampaign(ctx context.Context, id string) (RCSCampaignStatus, error) {
	return call[RCSCampaignStatus](ctx, s.c, http.MethodGet, "status/rcs-campaign/"+pathEscape(id), nil, nil)
}

func (s *StatusService) PhoneNumber(ctx context.Context, phone string) (PhoneNumberStatusResult, error) {
	return call[PhoneNumberStatusResult](ctx, s.c, http.MethodGet, "status/phone-number/"+pathEscape(phone), nil, nil)
}

// RCSService checks RCS support and builds links to RCS agents.
type RCSService struct {
	c *Client
}

// Capabilities returns what each number of params supports, keyed by number.
func (s *RCSService) Capabilities(ctx context.Context, params RCSCapabilitiesParams) (map[string]RCSCapability, error) {
	return call[map[string]RCSCapability](ctx, s.c, http.MethodPost, "rcs/capabilities", nil, params)
}

// Link returns a link opening a conversation with an agent.
func (s *RCSService) Link(ctx context.Context, params RCSLinkParams) (RCSLinkResult, error) {
	return call[RCSLinkResult](ctx, s.c, http.MethodPost, "rcs/link", nil, params)
}

// Whitelist allows a test device to receive messages of an agent which is not launched yet.
func (s *RCSService) Whitelist(ctx context.Context, params RCSWhitelistParams) (RCSWhitelistResult, error) {
	return call[RCSWhitelistResult](ctx, s.c, http.MethodPost, "rcs/whitelist", nil, params)
}
