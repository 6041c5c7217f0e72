package pinnacle

import (
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/field"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/internal/codec"
)

// BrandContact is the person the registries reach out to about a brand.
type BrandContact struct {
	field.Meta
	Name  field.Field[string] `json:"name"`
	Email field.Field[string] `json:"email"`
	Phone field.Field[string] `json:"phone"`
	Title field.Field[string] `json:"title"`
}

func (r BrandContact) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *BrandContact) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r BrandContact) Validate() error                  { return codec.Validate(r) }

// BrandInfo holds the registration details of a brand. All of them are optional until the
// brand is submitted.
type BrandInfo struct {
	field.Meta
	Address     field.Field[string]        `json:"address"`
	Contact     field.Field[BrandContact]  `json:"contact"`
	DBA         field.Field[string]        `json:"dba"`
	Description field.Field[string]        `json:"description"`
	EIN         field.Field[string]        `json:"ein"`
	Email       field.Field[string]        `json:"email"`
	Name        field.Field[string]        `json:"name"`
	Sector      field.Field[CompanySector] `json:"sector"`
	Type        field.Field[CompanyType]   `json:"type"`
	EntityType  field.Field[string]        `json:"entityType"`
	Website     field.Field[string]        `json:"website"`
}

func (r BrandInfo) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *BrandInfo) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r BrandInfo) Validate() error                  { return codec.Validate(r) }

// UpsertBrandParams creates a brand, or updates it when ID is set.
type UpsertBrandParams struct {
	field.Meta
	ID          field.Field[string]        `json:"id"`
	Address     field.Field[string]        `json:"address"`
	Contact     field.Field[BrandContact]  `json:"contact"`
	DBA         field.Field[string]        `json:"dba"`
	Description field.Field[string]        `json:"description"`
	EIN         field.Field[string]        `json:"ein"`
	Email       field.Field[string]        `json:"email"`
	Name        field.Field[string]        `json:"name"`
	Sector      field.Field[CompanySector] `json:"sector"`
	Type        field.Field[CompanyType]   `json:"type"`
	EntityType  field.Field[string]        `json:"entityType"`
	Website     field.Field[string]        `json:"website"`
}

func (r UpsertBrandParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *UpsertBrandParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r UpsertBrandParams) Validate() error                  { return codec.Validate(r) }

type VettingHistory struct {
	field.Meta
	Provider      string             `json:"provider,required"`
	VettingClass  string             `json:"vettingClass,required"`
	VettingDate   string             `json:"vettingDate,required"`
	VettingScore  field.Field[int64] `json:"vettingScore"`
	VettingStatus string             `json:"vettingStatus,required"`
}

func (r VettingHistory) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *VettingHistory) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r VettingHistory) Validate() error                  { return codec.Validate(r) }

type VettingFeedback struct {
	field.Meta
	ID          string `json:"id,required"`
	Description string `json:"description,required"`
}

func (r VettingFeedback) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *VettingFeedback) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r VettingFeedback) Validate() error                  { return codec.Validate(r) }

// Brand is a registered brand with its state.
type Brand struct {
	field.Meta
	ID          string                     `json:"id,required"`
	Status      BrandStatus                `json:"status,required"`
	IsArchived  bool                       `json:"isArchived,required"`
	CreatedAt   string                     `json:"createdAt,required"`
	UpdatedAt   string                     `json:"updatedAt,required"`
	Address     field.Field[string]        `json:"address"`
	Contact     field.Field[BrandContact]  `json:"contact"`
	DBA         field.Field[string]        `json:"dba"`
	Description field.Field[string]        `json:"description"`
	EIN         field.Field[string]        `json:"ein"`
	Email       field.Field[string]        `json:"email"`
	Name        field.Field[string]        `json:"name"`
	Sector      field.Field[CompanySector] `json:"sector"`
	Type        field.Field[CompanyType]   `json:"type"`
	EntityType  field.Field[string]        `json:"entityType"`
	Website     field.Field[string]        `json:"website"`
}

func (r Brand) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *Brand) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r Brand) Validate() error                  { return codec.Validate(r) }

// VettedBrand is a brand with its vetting history, returned by Brands.Get.
type VettedBrand struct {
	field.Meta
	ID                 string                         `json:"id,required"`
	Status             BrandStatus                    `json:"status,required"`
	IsArchived         bool                           `json:"isArchived,required"`
	CreatedAt          string                         `json:"createdAt,required"`
	UpdatedAt          string                         `json:"updatedAt,required"`
	Name               field.Field[string]            `json:"name"`
	Website            field.Field[string]            `json:"website"`
	LastTCRVettingDate field.Field[string]            `json:"lastTcrVettingDate,required,nullable"`
	TCRFeedback        field.Field[[]VettingFeedback] `json:"tcrFeedback,required,nullable"`
	VettingHistory     []VettingHistory               `json:"vettingHistory,required"`
}

func (r VettedBrand) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *VettedBrand) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r VettedBrand) Validate() error                  { return codec.Validate(r) }

// AutofillBrandParams asks for the registration details of a brand to be filled in from
// its name or website.
type AutofillBrandParams struct {
	field.Meta
	AdditionalInfo field.Field[string] `json:"additional_info"`
	Name           field.Field[string] `json:"name"`
	Website        field.Field[string] `json:"website"`
}

func (r AutofillBrandParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *AutofillBrandParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r AutofillBrandParams) Validate() error                  { return codec.Validate(r) }

// VetBrandParams requests an external vetting of a brand.
type VetBrandParams struct {
	field.Meta
	Provider     string `json:"provider,required"`
	VettingClass string `json:"vettingClass,required"`
}

func (r VetBrandParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *VetBrandParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r VetBrandParams) Validate() error                  { return codec.Validate(r) }

type ValidationIssue struct {
	field.Meta
	Field       string `json:"field,required"`
	Description string `json:"description,required"`
}

func (r ValidationIssue) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ValidationIssue) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ValidationIssue) Validate() error                  { return codec.Validate(r) }

// ValidationReport is the result of validating a brand or a campaign before submission.
type ValidationReport struct {
	field.Meta
	IsValid bool              `json:"isValid,required"`
	Errors  []ValidationIssue `json:"errors,required"`
}

func (r ValidationReport) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ValidationReport) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ValidationReport) Validate() error                  { return codec.Validate(r) }

type BrandStatusResult struct {
	field.Meta
	ID     string      `json:"id,required"`
	Status BrandStatus `json:"status,required"`
	Issues []string    `json:"issues,required"`
}

func (r BrandStatusResult) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *BrandStatusResult) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r BrandStatusResult) Validate() error                  { return codec.Validate(r) }

type DLCNumberUpdate struct {
	field.Meta
	Number string              `json:"number,required"`
	Status DLCAssignmentStatus `json:"status,required"`
	Errors []string            `json:"errors,required"`
}

func (r DLCNumberUpdate) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *DLCNumberUpdate) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r DLCNumberUpdate) Validate() error                  { return codec.Validate(r) }

type DLCCampaignStatus struct {
	field.Meta
	ID      string          `json:"id,required"`
	Status  ProfileStatus   `json:"status,required"`
	Error   string          `json:"error,required"`
	Updates DLCNumberUpdate `json:"updates,required"`
}

func (r DLCCampaignStatus) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *DLCCampaignStatus) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r DLCCampaignStatus) Validate() error                  { return codec.Validate(r) }

type TollFreeNumberUpdate struct {
	field.Meta
	Number string         `json:"number,required"`
	Status TollFreeStatus `json:"status,required"`
	Errors []string       `json:"errors,required"`
}

func (r TollFreeNumberUpdate) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *TollFreeNumberUpdate) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r TollFreeNumberUpdate) Validate() error                  { return codec.Validate(r) }

type TollFreeCampaignStatus struct {
	field.Meta
	ID      string               `json:"id,required"`
	Status  ProfileStatus        `json:"status,required"`
	Error   string               `json:"error,required"`
	Updates TollFreeNumberUpdate `json:"updates,required"`
}

func (r TollFreeCampaignStatus) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *TollFreeCampaignStatus) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r TollFreeCampaignStatus) Validate() error                  { return codec.Validate(r) }

type RCSCampaignStatus struct {
	field.Meta
	ID     string        `json:"id,required"`
	Status ProfileStatus `json:"status,required"`
	Error  string        `json:"error,required"`
}

func (r RCSCampaignStatus) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RCSCampaignStatus) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RCSCampaignStatus) Validate() error                  { return codec.Validate(r) }

type PhoneNumberStatusResult struct {
	field.Meta
	PhoneNumber string              `json:"phoneNumber,required"`
	Status      PhoneNumberStatus   `json:"status,required"`
	Error       field.Field[string] `json:"error,required,nullable"`
}

func (r PhoneNumberStatusResult) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *PhoneNumberStatusResult) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r PhoneNumberStatusResult) Validate() error                  { return codec.Validate(r) }
