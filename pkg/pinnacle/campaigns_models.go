package pinnacle

import (
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/field"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/internal/codec"
)

// Keyword is a set of words recipients text in, and the reply they get.
type Keyword struct {
	field.Meta
	Message field.Field[string]   `json:"message"`
	Values  field.Field[[]string] `json:"values"`
}

func (r Keyword) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *Keyword) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r Keyword) Validate() error                  { return codec.Validate(r) }

type CampaignKeywords struct {
	field.Meta
	Help   field.Field[Keyword] `json:"HELP"`
	OptIn  field.Field[Keyword] `json:"OPT_IN"`
	OptOut field.Field[Keyword] `json:"OPT_OUT"`
}

func (r CampaignKeywords) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *CampaignKeywords) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r CampaignKeywords) Validate() error                  { return codec.Validate(r) }

type CampaignLinks struct {
	field.Meta
	PrivacyPolicy  field.Field[string] `json:"privacyPolicy"`
	TermsOfService field.Field[string] `json:"termsOfService"`
}

func (r CampaignLinks) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *CampaignLinks) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r CampaignLinks) Validate() error                  { return codec.Validate(r) }

// CampaignID names the campaign to validate or autofill.
type CampaignID struct {
	field.Meta
	CampaignID string `json:"campaignId,required"`
}

func (r CampaignID) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *CampaignID) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r CampaignID) Validate() error                  { return codec.Validate(r) }

type AutofillCampaignParams struct {
	field.Meta
	CampaignID     string              `json:"campaignId,required"`
	AdditionalInfo field.Field[string] `json:"additionalInfo"`
}

func (r AutofillCampaignParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *AutofillCampaignParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r AutofillCampaignParams) Validate() error                  { return codec.Validate(r) }

type DLCCampaignOptions struct {
	field.Meta
	AffiliateMarketing field.Field[bool]   `json:"affiliateMarketing"`
	AgeGated           field.Field[bool]   `json:"ageGated"`
	DirectLending      field.Field[bool]   `json:"directLending"`
	EmbeddedLink       field.Field[string] `json:"embeddedLink"`
	EmbeddedPhone      field.Field[bool]   `json:"embeddedPhone"`
	NumberPooling      field.Field[bool]   `json:"numberPooling"`
}

func (r DLCCampaignOptions) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *DLCCampaignOptions) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r DLCCampaignOptions) Validate() error                  { return codec.Validate(r) }

type DLCUseCase struct {
	field.Meta
	Value field.Field[DLCUseCaseType]   `json:"value"`
	Sub   field.Field[[]DLCUseCaseType] `json:"sub"`
}

func (r DLCUseCase) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *DLCUseCase) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r DLCUseCase) Validate() error                  { return codec.Validate(r) }

// DLCCampaign is a 10DLC campaign as created, updated or autofilled.
type DLCCampaign struct {
	field.Meta
	CampaignID     field.Field[string]             `json:"campaignId"`
	AutoRenew      field.Field[bool]               `json:"autoRenew"`
	Brand          field.Field[string]             `json:"brand"`
	Description    field.Field[string]             `json:"description"`
	Keywords       field.Field[CampaignKeywords]   `json:"keywords"`
	Links          field.Field[CampaignLinks]      `json:"links"`
	MessageFlow    field.Field[string]             `json:"messageFlow"`
	Name           field.Field[string]             `json:"name"`
	Options        field.Field[DLCCampaignOptions] `json:"options"`
	SampleMessages field.Field[[]string]           `json:"sampleMessages"`
	UseCase        field.Field[DLCUseCase]         `json:"useCase"`
}

func (r DLCCampaign) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *DLCCampaign) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r DLCCampaign) Validate() error                  { return codec.Validate(r) }

// DLCCampaignDetails is a 10DLC campaign with its brand and review state.
type DLCCampaignDetails struct {
	field.Meta
	CampaignID     string                     `json:"campaignId,required"`
	AutoRenew      bool                       `json:"autoRenew,required"`
	Brand          Brand                      `json:"brand,required"`
	Status         ProfileStatus              `json:"status,required"`
	Keywords       CampaignKeywords           `json:"keywords,required"`
	Options        DLCCampaignOptions         `json:"options,required"`
	Description    field.Field[string]        `json:"description"`
	Links          field.Field[CampaignLinks] `json:"links"`
	MessageFlow    field.Field[string]        `json:"messageFlow"`
	Name           field.Field[string]        `json:"name"`
	SampleMessages field.Field[[]string]      `json:"sampleMessages"`
	UseCase        field.Field[DLCUseCase]    `json:"useCase"`
	MNOBrandTier   field.Field[string]        `json:"mnoBrandTier"`
	MNOTCRTier     field.Field[string]        `json:"mnoTcrTier"`
}

func (r DLCCampaignDetails) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *DLCCampaignDetails) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r DLCCampaignDetails) Validate() error                  { return codec.Validate(r) }

type TollFreeOptIn struct {
	field.Meta
	Method              field.Field[string] `json:"method"`
	URL                 field.Field[string] `json:"url"`
	WorkflowDescription field.Field[string] `json:"workflowDescription"`
}

func (r TollFreeOptIn) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *TollFreeOptIn) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r TollFreeOptIn) Validate() error                  { return codec.Validate(r) }

type TollFreeOptions struct {
	field.Meta
	AgeGated field.Field[bool] `json:"ageGated"`
}

func (r TollFreeOptions) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *TollFreeOptions) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r TollFreeOptions) Validate() error                  { return codec.Validate(r) }

type TollFreeUseCase struct {
	field.Meta
	Summary field.Field[string] `json:"summary"`
	Value   field.Field[string] `json:"value"`
}

func (r TollFreeUseCase) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *TollFreeUseCase) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r TollFreeUseCase) Validate() error                  { return codec.Validate(r) }

// TollFreeCampaign is a toll-free verification request.
type TollFreeCampaign struct {
	field.Meta
	CampaignID               field.Field[string]           `json:"campaignId"`
	Brand                    field.Field[string]           `json:"brand"`
	Keywords                 field.Field[CampaignKeywords] `json:"keywords"`
	Links                    field.Field[CampaignLinks]    `json:"links"`
	MonthlyVolume            field.Field[MessageVolume]    `json:"monthlyVolume"`
	Name                     field.Field[string]           `json:"name"`
	OptIn                    field.Field[TollFreeOptIn]    `json:"optIn"`
	Options                  field.Field[TollFreeOptions]  `json:"options"`
	ProductionMessageContent field.Field[string]           `json:"productionMessageContent"`
	UseCase                  field.Field[TollFreeUseCase]  `json:"useCase"`
}

func (r TollFreeCampaign) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *TollFreeCampaign) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r TollFreeCampaign) Validate() error                  { return codec.Validate(r) }

type TollFreeCampaignDetails struct {
	field.Meta
	CampaignID               string                        `json:"campaignId,required"`
	Brand                    Brand                         `json:"brand,required"`
	Status                   ProfileStatus                 `json:"status,required"`
	Keywords                 field.Field[CampaignKeywords] `json:"keywords"`
	Links                    field.Field[CampaignLinks]    `json:"links"`
	MonthlyVolume            field.Field[MessageVolume]    `json:"monthlyVolume"`
	Name                     field.Field[string]           `json:"name"`
	OptIn                    field.Field[TollFreeOptIn]    `json:"optIn"`
	Options                  field.Field[TollFreeOptions]  `json:"options"`
	ProductionMessageContent field.Field[string]           `json:"productionMessageContent"`
	UseCase                  field.Field[TollFreeUseCase]  `json:"useCase"`
}

func (r TollFreeCampaignDetails) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *TollFreeCampaignDetails) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r TollFreeCampaignDetails) Validate() error                  { return codec.Validate(r) }

type AgentEmail struct {
	field.Meta
	Email string `json:"email,required"`
	Label string `json:"label,required"`
}

func (r AgentEmail) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *AgentEmail) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r AgentEmail) Validate() error                  { return codec.Validate(r) }

type AgentPhone struct {
	field.Meta
	Phone string `json:"phone,required"`
	Label string `json:"label,required"`
}

func (r AgentPhone) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *AgentPhone) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r AgentPhone) Validate() error                  { return codec.Validate(r) }

type AgentWebsite struct {
	field.Meta
	URL   string `json:"url,required"`
	Label string `json:"label,required"`
}

func (r AgentWebsite) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *AgentWebsite) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r AgentWebsite) Validate() error                  { return codec.Validate(r) }

// RCSAgent is how the sender of RCS messages shows up on the phone of the recipient.
type RCSAgent struct {
	field.Meta
	Name        field.Field[string]         `json:"name"`
	Description field.Field[string]         `json:"description"`
	Color       field.Field[string]         `json:"color"`
	Emails      field.Field[[]AgentEmail]   `json:"emails"`
	Phones      field.Field[[]AgentPhone]   `json:"phones"`
	Websites    field.Field[[]AgentWebsite] `json:"websites"`
	HeroURL     field.Field[string]         `json:"heroUrl"`
	IconURL     field.Field[string]         `json:"iconUrl"`
}

func (r RCSAgent) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSAgent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSAgent) Validate() error                  { return codec.Validate(r) }

type RCSUseCase struct {
	field.Meta
	Behavior field.Field[string]             `json:"behavior"`
	Value    field.Field[RCSCampaignUseCase] `json:"value"`
}

func (r RCSUseCase) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSUseCase) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSUseCase) Validate() error                  { return codec.Validate(r) }

type RCSTraffic struct {
	field.Meta
	MonthlyWebsite     field.Field[int64] `json:"monthlyWebsite"`
	MonthlyRCSEstimate field.Field[int64] `json:"monthlyRcsEstimate"`
}

func (r RCSTraffic) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSTraffic) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSTraffic) Validate() error                  { return codec.Validate(r) }

// RCSCampaign is the registration of an RCS agent.
type RCSCampaign struct {
	field.Meta
	CampaignID              field.Field[string]           `json:"campaignId"`
	Agent                   field.Field[RCSAgent]         `json:"agent"`
	Brand                   field.Field[string]           `json:"brand"`
	ExpectedAgentResponses  field.Field[[]string]         `json:"expectedAgentResponses"`
	Links                   field.Field[CampaignLinks]    `json:"links"`
	UseCase                 field.Field[RCSUseCase]       `json:"useCase"`
	OptInTermsAndConditions field.Field[string]           `json:"optInTermsAndConditions"`
	MessagingType           field.Field[RCSMessagingType] `json:"messagingType"`
	CarrierDescription      field.Field[string]           `json:"carrierDescription"`
	Keywords                field.Field[CampaignKeywords] `json:"keywords"`
	Traffic                 field.Field[RCSTraffic]       `json:"traffic"`
	AgentTriggers           field.Field[string]           `json:"agentTriggers"`
	InteractionDescription  field.Field[string]           `json:"interactionDescription"`
	IsConversational        field.Field[bool]             `json:"isConversational"`
	CTALanguage             field.Field[string]           `json:"ctaLanguage"`
	DemoTrigger             field.Field[string]           `json:"demoTrigger"`
}

func (r RCSCampaign) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSCampaign) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSCampaign) Validate() error                  { return codec.Validate(r) }

type RCSCampaignDetails struct {
	field.Meta
	AgentID                string                        `json:"agentId,required"`
	Agent                  RCSAgent                      `json:"agent,required"`
	Brand                  Brand                         `json:"brand,required"`
	Status                 ProfileStatus                 `json:"status,required"`
	CampaignID             field.Field[string]           `json:"campaignId"`
	ExpectedAgentResponses field.Field[[]string]         `json:"expectedAgentResponses"`
	Links                  field.Field[CampaignLinks]    `json:"links"`
	UseCase                field.Field[RCSUseCase]       `json:"useCase"`
	MessagingType          field.Field[RCSMessagingType] `json:"messagingType"`
	Keywords               field.Field[CampaignKeywords] `json:"keywords"`
	Traffic                field.Field[RCSTraffic]       `json:"traffic"`
	IsConversational       field.Field[bool]             `json:"isConversational"`
}

func (r RCSCampaignDetails) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSCampaignDetails) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSCampaignDetails) Validate() error                  { return codec.Validate(r) }
