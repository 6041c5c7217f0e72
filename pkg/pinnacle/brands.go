package pinnacle

import (
	"context"
	"net/http"
)

// BrandsService registers brands.
type BrandsService struct {
	c *Client
}

// Get returns a brand with its vetting history.
func (s *BrandsService) Get(ctx context.Context, id string) (VettedBrand, error) {
	return call[VettedBrand](ctx, s.c, http.MethodGet, "brands/"+pathEscape(id), nil, nil)
}

// Upsert creates a brand, or updates it when params.ID is set.
func (s *BrandsService) Upsert(ctx context.Context, params UpsertBrandParams) (Brand, error) {
	return call[Brand](ctx, s.c, http.MethodPost, "brands", nil, params)
}

// Autofill returns the registration details of a brand inferred from its name or website.
// Nothing is saved.
func (s *BrandsService) Autofill(ctx context.Context, params AutofillBrandParams) (BrandInfo, error) {
	return call[BrandInfo](ctx, s.c, http.MethodPost, "brands/autofill", nil, params)
}

// Validate checks the registration details of a brand before it is submitted.
func (s *BrandsService) Validate(ctx context.Context, params BrandInfo) (ValidationReport, error) {
	return call[ValidationReport](ctx, s.c, http.MethodPost, "brands/validate", nil, params)
}

// Submit sends a brand for review.
func (s *BrandsService) Submit(ctx context.Context, id string) (SuccessResponse, error) {
	return call[SuccessResponse](ctx, s.c, http.MethodPost, "brands/"+pathEscape(id)+"/submit", nil, nil)
}

// Vet requests an external vetting of a submitted brand.
func (s *BrandsService) Vet(ctx context.Context, id string, params VetBrandParams) (SuccessResponse, error) {
	return call[SuccessResponse](ctx, s.c, http.MethodPost, "brands/"+pathEscape(id)+"/vet", nil, params)
}

// CampaignsService registers the three kinds of campaigns.
type CampaignsService struct {
	DLC      *DLCCampaignsService
	TollFree *TollFreeCampaignsService
	RCS      *RCSCampaignsService
}

// CampaignService manages the campaigns of one kind. C is the campaign as sent and D the
// campaign with its review state.
type CampaignService[C, D any] struct {
	c    *Client
	kind string
}

type (
	// DLCCampaignsService manages 10DLC campaigns.
	DLCCampaignsService = CampaignService[DLCCampaign, DLCCampaignDetails]
	// TollFreeCampaignsService manages toll-free verifications.
	TollFreeCampaignsService = CampaignService[TollFreeCampaign, TollFreeCampaignDetails]
	// RCSCampaignsService manages RCS agent registrations.
	RCSCampaignsService = CampaignService[RCSCampaign, RCSCampaignDetails]
)

func newCampaignService[C, D any](c *Client, kind string) *CampaignService[C, D] {
	return &CampaignService[C, D]{c: c, kind: kind}
}

func (s *CampaignService[C, D]) Get(ctx context.Context, id string) (D, error) {
	return call[D](ctx, s.c, http.MethodGet, "campaigns/"+s.kind+"/"+pathEscape(id), nil, nil)
}

// Upsert creates a campaign, or updates the one with the campaign id set in params.
func (s *CampaignService[C, D]) Upsert(ctx context.Context, params C) (C, error) {
	return call[C](ctx, s.c, http.MethodPost, "campaigns/"+s.kind, nil, params)
}

// Autofill returns a campaign filled in from its brand and params.AdditionalInfo. Nothing
// is saved.
func (s *CampaignService[C, D]) Autofill(ctx context.Context, params AutofillCampaignParams) (C, error) {
	return call[C](ctx, s.c, http.MethodPost, "campaigns/"+s.kind+"/autofill", nil, params)
}

// Validate checks a saved campaign before it is submitted.
func (s *CampaignService[C, D]) Validate(ctx context.Context, params CampaignID) (ValidationReport, error) {
	return call[ValidationReport](ctx, s.c, http.MethodPost, "campaigns/"+s.kind+"/validate", nil, params)
}

// Submit sends a campaign for review.
func (s *CampaignService[C, D]) Submit(ctx context.Context, id string) (SuccessResponse, error) {
	return call[SuccessResponse](ctx, s.c, http.MethodPost, "campaigns/"+s.kind+"/submit/"+pathEscape(id), nil, nil)
}
