package pinnacle

import (
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/field"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/internal/codec"
)

type ShortURLOptions struct {
	field.Meta
	// ExpiresAt is an ISO 8601 timestamp after which the link stops redirecting.
	ExpiresAt field.Field[string] `json:"expiresAt"`
}

func (r ShortURLOptions) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ShortURLOptions) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ShortURLOptions) Validate() error                  { return codec.Validate(r) }

// ShortenURLParams is the body of Tools.ShortenURL and Tools.UpdateURL.
type ShortenURLParams struct {
	field.Meta
	URL     string                       `json:"url,required"`
	Options field.Field[ShortURLOptions] `json:"options"`
}

func (r ShortenURLParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ShortenURLParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ShortenURLParams) Validate() error                  { return codec.Validate(r) }

type ShortenedURL struct {
	field.Meta
	URL         string              `json:"url,required"`
	Destination string              `json:"destination,required"`
	ExpiresAt   field.Field[string] `json:"expiresAt,required,nullable"`
}

func (r ShortenedURL) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ShortenedURL) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ShortenedURL) Validate() error                  { return codec.Validate(r) }

// LinkClickEvent is one visit of a shortened link.
type LinkClickEvent struct {
	field.Meta
	CreatedAt      string                      `json:"created_at,required"`
	AcceptLanguage field.Field[string]         `json:"accept_language"`
	City           field.Field[string]         `json:"city"`
	Country        field.Field[string]         `json:"country"`
	Region         field.Field[string]         `json:"region"`
	PostalCode     field.Field[string]         `json:"postal_code"`
	ErrorDetails   field.Field[map[string]any] `json:"error_details"`
	FinalURL       field.Field[string]         `json:"final_url"`
	IPAddress      field.Field[string]         `json:"ip_address"`
	IPChain        field.Field[[]string]       `json:"ip_chain"`
	IsBot          field.Field[bool]           `json:"is_bot"`
	LatencyMS      field.Field[int64]          `json:"latency_ms"`
	Metadata       field.Field[map[string]any] `json:"metadata"`
	Method         field.Field[string]         `json:"method"`
	Referrer       field.Field[string]         `json:"referrer"`
	ResolvedAt     field.Field[string]         `json:"resolved_at"`
	StatusCode     field.Field[int64]          `json:"status_code"`
	TorExitNode    field.Field[bool]           `json:"tor_exit_node"`
	UABrowser      field.Field[string]         `json:"ua_browser"`
	UADevice       field.Field[string]         `json:"ua_device"`
	UAOS           field.Field[string]         `json:"ua_os"`
	UserAgent      field.Field[string]         `json:"user_agent"`
	UTMCampaign    field.Field[string]         `json:"utm_campaign"`
	UTMContent     field.Field[string]         `json:"utm_content"`
	UTMMedium      field.Field[string]         `json:"utm_medium"`
	UTMSource      field.Field[string]         `json:"utm_source"`
	UTMTerm        field.Field[string]         `json:"utm_term"`
}

func (r LinkClickEvent) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *LinkClickEvent) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r LinkClickEvent) Validate() error                  { return codec.Validate(r) }

// ShortenedURLClicks is a shortened link with its visits.
type ShortenedURLClicks struct {
	field.Meta
	URL         string              `json:"url,required"`
	Destination string              `json:"destination,required"`
	ExpiresAt   field.Field[string] `json:"expiresAt,required,nullable"`
	Clicks      []LinkClickEvent    `json:"clicks,required"`
}

func (r ShortenedURLClicks) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *ShortenedURLClicks) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r ShortenedURLClicks) Validate() error                  { return codec.Validate(r) }

type VCardName struct {
	field.Meta
	FamilyName        field.Field[string]   `json:"familyName"`
	GivenName         field.Field[string]   `json:"givenName"`
	AdditionalNames   field.Field[[]string] `json:"additionalNames"`
	HonorificPrefixes field.Field[[]string] `json:"honorificPrefixes"`
	HonorificSuffixes field.Field[[]string] `json:"honorificSuffixes"`
}

func (r VCardName) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *VCardName) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r VCardName) Validate() error                  { return codec.Validate(r) }

type VCardAddress struct {
	field.Meta
	CountryName     field.Field[string]   `json:"countryName"`
	ExtendedAddress field.Field[string]   `json:"extendedAddress"`
	FullAddress     field.Field[string]   `json:"fulladdress"`
	Locality        field.Field[string]   `json:"locality"`
	PostalCode      field.Field[string]   `json:"postalCode"`
	PostOfficeBox   field.Field[string]   `json:"postOfficeBox"`
	Region          field.Field[string]   `json:"region"`
	StreetAddress   field.Field[string]   `json:"streetAddress"`
	Type            field.Field[[]string] `json:"type"`
}

func (r VCardAddress) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *VCardAddress) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r VCardAddress) Validate() error                  { return codec.Validate(r) }

type VCardPhone struct {
	field.Meta
	Value string                `json:"value,required"`
	Type  field.Field[[]string] `json:"type"`
}

func (r VCardPhone) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *VCardPhone) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r VCardPhone) Validate() error                  { return codec.Validate(r) }

type VCardEmail struct {
	field.Meta
	Address string                `json:"address,required"`
	Type    field.Field[[]string] `json:"type"`
}

func (r VCardEmail) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *VCardEmail) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r VCardEmail) Validate() error                  { return codec.Validate(r) }

type VCardGeo struct {
	field.Meta
	Latitude  float64 `json:"latitude,required"`
	Longitude float64 `json:"longitude,required"`
}

func (r VCardGeo) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *VCardGeo) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r VCardGeo) Validate() error                  { return codec.Validate(r) }

type VCardOrganization struct {
	field.Meta
	Name        field.Field[string]   `json:"name"`
	Departments field.Field[[]string] `json:"departments"`
}

func (r VCardOrganization) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *VCardOrganization) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r VCardOrganization) Validate() error                  { return codec.Validate(r) }

// VCard is a contact card attached to a sender. Tools.UpsertContactCard takes it as body
// and creates the card when ID is absent.
type VCard struct {
	field.Meta
	ID            field.Field[string]            `json:"id"`
	Photo         field.Field[string]            `json:"photo"`
	FormattedName field.Field[string]            `json:"formattedName"`
	Name          field.Field[VCardName]         `json:"name"`
	Nickname      field.Field[[]string]          `json:"nickname"`
	Birthday      field.Field[string]            `json:"birthday"`
	Addresses     field.Field[[]VCardAddress]    `json:"addresses"`
	URL           field.Field[string]            `json:"url"`
	Phones        field.Field[[]VCardPhone]      `json:"phones"`
	Emails        field.Field[[]VCardEmail]      `json:"emails"`
	Timezone      field.Field[string]            `json:"timezone"`
	Geo           field.Field[VCardGeo]          `json:"geo"`
	Title         field.Field[string]            `json:"title"`
	Role          field.Field[string]            `json:"role"`
	Organization  field.Field[VCardOrganization] `json:"organization"`
	Categories    field.Field[[]string]          `json:"categories"`
	Note          field.Field[string]            `json:"note"`
}

func (r VCard) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *VCard) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r VCard) Validate() error                  { return codec.Validate(r) }

type GetContactCardParams struct {
	field.Meta
	ID string `json:"id,required"`
}

func (r GetContactCardParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *GetContactCardParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r GetContactCardParams) Validate() error                  { return codec.Validate(r) }

type UploadFileOptions struct {
	field.Meta
	// DeleteAt is an ISO 8601 timestamp at which the file is removed.
	DeleteAt field.Field[string]                `json:"deleteAt"`
	Download field.Field[UploadDownloadOptions] `json:"download"`
}

func (r UploadFileOptions) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *UploadFileOptions) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r UploadFileOptions) Validate() error                  { return codec.Validate(r) }

type UploadDownloadOptions struct {
	field.Meta
	// ExpiresAt bounds the validity of the download URL.
	ExpiresAt field.Field[string] `json:"expiresAt"`
}

func (r UploadDownloadOptions) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *UploadDownloadOptions) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r UploadDownloadOptions) Validate() error                  { return codec.Validate(r) }

// UploadFileParams asks for a presigned URL to upload a file of Size bytes.
type UploadFileParams struct {
	field.Meta
	ContentType string                         `json:"contentType,required"`
	Size        int64                          `json:"size,required"`
	Name        field.Field[string]            `json:"name"`
	Options     field.Field[UploadFileOptions] `json:"options"`
}

func (r UploadFileParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *UploadFileParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r UploadFileParams) Validate() error                  { return codec.Validate(r) }

type FileMetadata struct {
	field.Meta
	FileName    string              `json:"fileName,required"`
	ContentType string              `json:"contentType,required"`
	ExpiresAt   field.Field[string] `json:"expiresAt,required,nullable"`
	DeleteAt    field.Field[string] `json:"deleteAt"`
}

func (r FileMetadata) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *FileMetadata) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r FileMetadata) Validate() error                  { return codec.Validate(r) }

// UploadResults holds the presigned URL to PUT the file to and the URL to download it from.
type UploadResults struct {
	field.Meta
	UploadURL   string                    `json:"uploadUrl,required"`
	DownloadURL field.Field[string]       `json:"downloadUrl,required,nullable"`
	Metadata    field.Field[FileMetadata] `json:"metadata"`
}

func (r UploadResults) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *UploadResults) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r UploadResults) Validate() error                  { return codec.Validate(r) }

// RefreshFilesParams renews the download URLs of previously uploaded files.
type RefreshFilesParams struct {
	field.Meta
	URLs []string `json:"urls,required"`
}

func (r RefreshFilesParams) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RefreshFilesParams) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RefreshFilesParams) Validate() error                  { return codec.Validate(r) }

type RefreshedFile struct {
	field.Meta
	Original  string `json:"original,required"`
	Refreshed string `json:"refreshed,required"`
}

func (r RefreshedFile) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RefreshedFile) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RefreshedFile) Validate() error                  { return codec.Validate(r) }

type RefreshedFiles struct {
	field.Meta
	URLs    []RefreshedFile `json:"urls,required"`
	Invalid []string        `json:"invalidUrls,required"`
}

func (r RefreshedFiles) MarshalJSON() ([]byte, error)     { return codec.Marshal(r) }
func (r *RefreshedFiles) UnmarshalJSON(data []byte) error { return codec.Unmarshal(data, r) }
func (r RefreshedFiles) Validate() error                  { return codec.Validate(r) }
