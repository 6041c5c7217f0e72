package pinnacle

// Enums decode any string so that values added to the API later survive a round trip.
// Validate and ValidateRaw reject values outside the declared set.

// MessageStatus is the delivery state of a message.
type MessageStatus string

const (
	MessageStatusPending   MessageStatus = "PENDING"
	MessageStatusQueued    MessageStatus = "QUEUED"
	MessageStatusScheduled MessageStatus = "SCHEDULED"
	MessageStatusSent      MessageStatus = "SENT"
	MessageStatusDelivered MessageStatus = "DELIVERED"
	MessageStatusRead      MessageStatus = "READ"
	MessageStatusReceived  MessageStatus = "RECEIVED"
	MessageStatusFailed    MessageStatus = "FAILED"
	MessageStatusUnknown   MessageStatus = "UNKNOWN"
)

// IsKnown reports whether s is one of the declared values.
func (s MessageStatus) IsKnown() bool {
	switch s {
	case MessageStatusPending, MessageStatusQueued, MessageStatusScheduled, MessageStatusSent,
		MessageStatusDelivered, MessageStatusRead, MessageStatusReceived, MessageStatusFailed,
		MessageStatusUnknown:
		return true
	}
	return false
}

// MessageMethod is how a message was sent.
type MessageMethod string

const (
	MessageMethodAPI       MessageMethod = "API"
	MessageMethodBlast     MessageMethod = "BLAST"
	MessageMethodScheduled MessageMethod = "SCHEDULED"
	MessageMethodInbound   MessageMethod = "INBOUND"
)

// IsKnown reports whether m is one of the declared values.
func (m MessageMethod) IsKnown() bool {
	switch m {
	case MessageMethodAPI, MessageMethodBlast, MessageMethodScheduled, MessageMethodInbound:
		return true
	}
	return false
}

// MessageProtocol is the channel a message travels on.
type MessageProtocol string

const (
	MessageProtocolSMS MessageProtocol = "SMS"
	MessageProtocolMMS MessageProtocol = "MMS"
	MessageProtocolRCS MessageProtocol = "RCS"
)

// IsKnown reports whether p is one of the declared values.
func (p MessageProtocol) IsKnown() bool {
	switch p {
	case MessageProtocolSMS, MessageProtocolMMS, MessageProtocolRCS:
		return true
	}
	return false
}

// MessageDirection tells whether a message was sent or received by the account.
type MessageDirection string

const (
	MessageDirectionInbound  MessageDirection = "INBOUND"
	MessageDirectionOutbound MessageDirection = "OUTBOUND"
)

// IsKnown reports whether d is one of the declared values.
func (d MessageDirection) IsKnown() bool {
	return d == MessageDirectionInbound || d == MessageDirectionOutbound
}

// WebhookEventType is the type of an event delivered to webhooks.
type WebhookEventType string

const (
	WebhookEventMessageStatus   WebhookEventType = "MESSAGE.STATUS"
	WebhookEventMessageReceived WebhookEventType = "MESSAGE.RECEIVED"
	WebhookEventUserTyping      WebhookEventType = "USER.TYPING"
)

// IsKnown reports whether e is one of the declared values.
func (e WebhookEventType) IsKnown() bool {
	switch e {
	case WebhookEventMessageStatus, WebhookEventMessageReceived, WebhookEventUserTyping:
		return true
	}
	return false
}

// ProfileStatus is the review state of a campaign.
type ProfileStatus string

const (
	ProfileStatusIncomplete ProfileStatus = "INCOMPLETE"
	ProfileStatusInReview   ProfileStatus = "IN_REVIEW"
	ProfileStatusVerified   ProfileStatus = "VERIFIED"
	ProfileStatusFailed     ProfileStatus = "FAILED"
)

// IsKnown reports whether s is one of the declared values.
func (s ProfileStatus) IsKnown() bool {
	switch s {
	case ProfileStatusIncomplete, ProfileStatusInReview, ProfileStatusVerified, ProfileStatusFailed:
		return true
	}
	return false
}

// BrandStatus is the registration state of a brand.
type BrandStatus string

const (
	BrandStatusPending    BrandStatus = "PENDING"
	BrandStatusUnverified BrandStatus = "UNVERIFIED"
	BrandStatusVerified   BrandStatus = "VERIFIED"
	BrandStatusVetted     BrandStatus = "VETTED"
	BrandStatusFailed     BrandStatus = "FAILED"
	BrandStatusIncomplete BrandStatus = "INCOMPLETE"
)

// IsKnown reports whether s is one of the declared values.
func (s BrandStatus) IsKnown() bool {
	switch s {
	case BrandStatusPending, BrandStatusUnverified, BrandStatusVerified, BrandStatusVetted,
		BrandStatusFailed, BrandStatusIncomplete:
		return true
	}
	return false
}

// DLCAssignmentStatus is the state of a phone number attached to a 10DLC campaign.
type DLCAssignmentStatus string

const (
	DLCAssignmentAssigned            DLCAssignmentStatus = "ASSIGNED"
	DLCAssignmentFailedAssignment    DLCAssignmentStatus = "FAILED_ASSIGNMENT"
	DLCAssignmentFailedUnassignment  DLCAssignmentStatus = "FAILED_UNASSIGNMENT"
	DLCAssignmentPendingAssignment   DLCAssignmentStatus = "PENDING_ASSIGNMENT"
	DLCAssignmentPendingUnassignment DLCAssignmentStatus = "PENDING_UNASSIGNMENT"
)

// IsKnown reports whether s is one of the declared values.
func (s DLCAssignmentStatus) IsKnown() bool {
	switch s {
	case DLCAssignmentAssigned, DLCAssignmentFailedAssignment, DLCAssignmentFailedUnassignment,
		DLCAssignmentPendingAssignment, DLCAssignmentPendingUnassignment:
		return true
	}
	return false
}

// TollFreeStatus is the verification state of a phone number attached to a toll-free campaign.
type TollFreeStatus string

const (
	TollFreeWaitingForProvider TollFreeStatus = "WAITING_FOR_PROVIDER"
	TollFreeWaitingForCustomer TollFreeStatus = "WAITING_FOR_CUSTOMER"
	TollFreeWaitingForTeleco   TollFreeStatus = "WAITING_FOR_TELECO"
	TollFreeInProgress         TollFreeStatus = "IN_PROGRESS"
	TollFreeVerified           TollFreeStatus = "VERIFIED"
	TollFreeRejected           TollFreeStatus = "REJECTED"
)

// IsKnown reports whether s is one of the declared values.
func (s TollFreeStatus) IsKnown() bool {
	switch s {
	case TollFreeWaitingForProvider, TollFreeWaitingForCustomer, TollFreeWaitingForTeleco,
		TollFreeInProgress, TollFreeVerified, TollFreeRejected:
		return true
	}
	return false
}

// PhoneNumberStatus is the provisioning state of a purchased phone number.
type PhoneNumberStatus string

const (
	PhoneNumberStatusPending PhoneNumberStatus = "PENDING"
	PhoneNumberStatusActive  PhoneNumberStatus = "ACTIVE"
	PhoneNumberStatusFailure PhoneNumberStatus = "FAILURE"
)

// IsKnown reports whether s is one of the declared values.
func (s PhoneNumberStatus) IsKnown() bool {
	switch s {
	case PhoneNumberStatusPending, PhoneNumberStatusActive, PhoneNumberStatusFailure:
		return true
	}
	return false
}

// PhoneNumberType is the kind of number offered for purchase.
type PhoneNumberType string

const (
	PhoneNumberTypeLocal    PhoneNumberType = "LOCAL"
	PhoneNumberTypeTollFree PhoneNumberType = "TOLL_FREE"
)

// IsKnown reports whether t is one of the declared values.
func (t PhoneNumberType) IsKnown() bool {
	return t == PhoneNumberTypeLocal || t == PhoneNumberTypeTollFree
}

// PhoneFeature is a capability of a phone number.
type PhoneFeature string

const (
	PhoneFeatureSMS   PhoneFeature = "SMS"
	PhoneFeatureMMS   PhoneFeature = "MMS"
	PhoneFeatureVoice PhoneFeature = "VOICE"
)

// IsKnown reports whether f is one of the declared values.
func (f PhoneFeature) IsKnown() bool {
	switch f {
	case PhoneFeatureSMS, PhoneFeatureMMS, PhoneFeatureVoice:
		return true
	}
	return false
}

// DetailedPhoneNumberType is the line type reported by an advanced number lookup.
type DetailedPhoneNumberType string

const (
	DetailedPhoneNumberFixedLine         DetailedPhoneNumberType = "FIXED_LINE"
	DetailedPhoneNumberInvalid           DetailedPhoneNumberType = "INVALID"
	DetailedPhoneNumberMobile            DetailedPhoneNumberType = "MOBILE"
	DetailedPhoneNumberOther             DetailedPhoneNumberType = "OTHER"
	DetailedPhoneNumberPager             DetailedPhoneNumberType = "PAGER"
	DetailedPhoneNumberPayphone          DetailedPhoneNumberType = "PAYPHONE"
	DetailedPhoneNumberPersonal          DetailedPhoneNumberType = "PERSONAL"
	DetailedPhoneNumberPrepaid           DetailedPhoneNumberType = "PREPAID"
	DetailedPhoneNumberRestrictedPremium DetailedPhoneNumberType = "RESTRICTED_PREMIUM"
	DetailedPhoneNumberTollFree          DetailedPhoneNumberType = "TOLL_FREE"
	DetailedPhoneNumberVoicemail         DetailedPhoneNumberType = "VOICEMAIL"
	DetailedPhoneNumberVOIP              DetailedPhoneNumberType = "VOIP"
)

// IsKnown reports whether t is one of the declared values.
func (t DetailedPhoneNumberType) IsKnown() bool {
	switch t {
	case DetailedPhoneNumberFixedLine, DetailedPhoneNumberInvalid, DetailedPhoneNumberMobile,
		DetailedPhoneNumberOther, DetailedPhoneNumberPager, DetailedPhoneNumberPayphone,
		DetailedPhoneNumberPersonal, DetailedPhoneNumberPrepaid, DetailedPhoneNumberRestrictedPremium,
		DetailedPhoneNumberTollFree, DetailedPhoneNumberVoicemail, DetailedPhoneNumberVOIP:
		return true
	}
	return false
}

// LookupRecommendation is the action suggested by an advanced number lookup.
type LookupRecommendation string

const (
	LookupRecommendationAllow LookupRecommendation = "ALLOW"
	LookupRecommendationFlag  LookupRecommendation = "FLAG"
	LookupRecommendationBlock LookupRecommendation = "BLOCK"
)

// IsKnown reports whether r is one of the declared values.
func (r LookupRecommendation) IsKnown() bool {
	switch r {
	case LookupRecommendationAllow, LookupRecommendationFlag, LookupRecommendationBlock:
		return true
	}
	return false
}

// CampaignType is the kind of campaign a phone number is attached to.
type CampaignType string

const (
	CampaignTypeDLC      CampaignType = "10DLC"
	CampaignTypeTollFree CampaignType = "TOLL_FREE"
	CampaignTypeRCS      CampaignType = "RCS"
)

// IsKnown reports whether t is one of the declared values.
func (t CampaignType) IsKnown() bool {
	switch t {
	case CampaignTypeDLC, CampaignTypeTollFree, CampaignTypeRCS:
		return true
	}
	return false
}

// RCSCampaignUseCase is the category of an RCS agent.
type RCSCampaignUseCase string

const (
	RCSUseCaseEntertainment     RCSCampaignUseCase = "ENTERTAINMENT"
	RCSUseCaseShoppingAndRetail RCSCampaignUseCase = "SHOPPING_AND_RETAIL"
	RCSUseCaseGames             RCSCampaignUseCase = "GAMES"
	RCSUseCaseNews              RCSCampaignUseCase = "NEWS"
	RCSUseCaseHealth            RCSCampaignUseCase = "HEALTH"
	RCSUseCaseUtilities         RCSCampaignUseCase = "UTILITIES"
	RCSUseCaseFinance           RCSCampaignUseCase = "FINANCE"
	RCSUseCaseSports            RCSCampaignUseCase = "SPORTS"
	RCSUseCaseSocial            RCSCampaignUseCase = "SOCIAL"
	RCSUseCaseFoodAndBeverage   RCSCampaignUseCase = "FOOD_AND_BEVERAGE"
	RCSUseCaseUncategorized     RCSCampaignUseCase = "UNCATEGORIZED"
	RCSUseCaseTravel            RCSCampaignUseCase = "TRAVEL"
	RCSUseCaseProductivity      RCSCampaignUseCase = "PRODUCTIVITY"
	RCSUseCaseOther             RCSCampaignUseCase = "OTHER"
)

// IsKnown reports whether u is one of the declared values.
func (u RCSCampaignUseCase) IsKnown() bool {
	switch u {
	case RCSUseCaseEntertainment, RCSUseCaseShoppingAndRetail, RCSUseCaseGames, RCSUseCaseNews,
		RCSUseCaseHealth, RCSUseCaseUtilities, RCSUseCaseFinance, RCSUseCaseSports, RCSUseCaseSocial,
		RCSUseCaseFoodAndBeverage, RCSUseCaseUncategorized, RCSUseCaseTravel, RCSUseCaseProductivity,
		RCSUseCaseOther:
		return true
	}
	return false
}

// RCSMessagingType is the kind of traffic an RCS agent sends.
type RCSMessagingType string

const (
	RCSMessagingTransactional RCSMessagingType = "TRANSACTIONAL"
	RCSMessagingPromotional   RCSMessagingType = "PROMOTIONAL"
	RCSMessagingMultiUse      RCSMessagingType = "MULTI_USE"
	RCSMessagingOTP           RCSMessagingType = "OTP"
)

// IsKnown reports whether t is one of the declared values.
func (t RCSMessagingType) IsKnown() bool {
	switch t {
	case RCSMessagingTransactional, RCSMessagingPromotional, RCSMessagingMultiUse, RCSMessagingOTP:
		return true
	}
	return false
}

// DLCUseCaseType is a 10DLC campaign use case.
type DLCUseCaseType string

const (
	DLCUseCaseMarketing           DLCUseCaseType = "MARKETING"
	DLCUseCaseAccountNotification DLCUseCaseType = "ACCOUNT_NOTIFICATION"
	DLCUseCaseCustomerCare        DLCUseCaseType = "CUSTOMER_CARE"
	DLCUseCase2FA                 DLCUseCaseType = "2FA"
	DLCUseCaseDeliveryNotice      DLCUseCaseType = "DELIVERY_NOTIFICATION"
	DLCUseCaseFraudAlert          DLCUseCaseType = "FRAUD_ALERT"
	DLCUseCaseSecurityAlert       DLCUseCaseType = "SECURITY_ALERT"
	DLCUseCasePollingVoting       DLCUseCaseType = "POLLING_VOTING"
	DLCUseCasePublicService       DLCUseCaseType = "PUBLIC_SERVICE_ANNOUNCEMENT"
	DLCUseCaseMixed               DLCUseCaseType = "MIXED"
	DLCUseCaseLowVolume           DLCUseCaseType = "LOW_VOLUME"
)

// IsKnown reports whether u is one of the declared values.
func (u DLCUseCaseType) IsKnown() bool {
	switch u {
	case DLCUseCaseMarketing, DLCUseCaseAccountNotification, DLCUseCaseCustomerCare, DLCUseCase2FA,
		DLCUseCaseDeliveryNotice, DLCUseCaseFraudAlert, DLCUseCaseSecurityAlert, DLCUseCasePollingVoting,
		DLCUseCasePublicService, DLCUseCaseMixed, DLCUseCaseLowVolume:
		return true
	}
	return false
}

// MessageVolume is the expected monthly volume of a toll-free campaign.
type MessageVolume string

const (
	MessageVolume10        MessageVolume = "10"
	MessageVolume100       MessageVolume = "100"
	MessageVolume1K        MessageVolume = "1,000"
	MessageVolume10K       MessageVolume = "10,000"
	MessageVolume100K      MessageVolume = "100,000"
	MessageVolume250K      MessageVolume = "250,000"
	MessageVolume500K      MessageVolume = "500,000"
	MessageVolume750K      MessageVolume = "750,000"
	MessageVolume1M        MessageVolume = "1,000,000"
	MessageVolume5M        MessageVolume = "5,000,000"
	MessageVolume10MOrMore MessageVolume = "10,000,000+"
)

// IsKnown reports whether v is one of the declared values.
func (v MessageVolume) IsKnown() bool {
	switch v {
	case MessageVolume10, MessageVolume100, MessageVolume1K, MessageVolume10K, MessageVolume100K,
		MessageVolume250K, MessageVolume500K, MessageVolume750K, MessageVolume1M, MessageVolume5M,
		MessageVolume10MOrMore:
		return true
	}
	return false
}

// CompanySector is the industry of a brand.
type CompanySector string

const (
	CompanySectorAgriculture    CompanySector = "AGRICULTURE"
	CompanySectorCommunication  CompanySector = "COMMUNICATION"
	CompanySectorConstruction   CompanySector = "CONSTRUCTION"
	CompanySectorEducation      CompanySector = "EDUCATION"
	CompanySectorEnergy         CompanySector = "ENERGY"
	CompanySectorEntertainment  CompanySector = "ENTERTAINMENT"
	CompanySectorFinancial      CompanySector = "FINANCIAL"
	CompanySectorGambling       CompanySector = "GAMBLING"
	CompanySectorGovernment     CompanySector = "GOVERNMENT"
	CompanySectorHealthcare     CompanySector = "HEALTHCARE"
	CompanySectorHospitality    CompanySector = "HOSPITALITY"
	CompanySectorHumanResources CompanySector = "HUMAN_RESOURCES"
	CompanySectorInsurance      CompanySector = "INSURANCE"
	CompanySectorLegal          CompanySector = "LEGAL"
	CompanySectorManufacturing  CompanySector = "MANUFACTURING"
	CompanySectorNGO            CompanySector = "NGO"
	CompanySectorPolitical      CompanySector = "POLITICAL"
	CompanySectorPostal         CompanySector = "POSTAL"
	CompanySectorProfessional   CompanySector = "PROFESSIONAL"
	CompanySectorRealEstate     CompanySector = "REAL_ESTATE"
	CompanySectorRetail         CompanySector = "RETAIL"
	CompanySectorTechnology     CompanySector = "TECHNOLOGY"
	CompanySectorTransportation CompanySector = "TRANSPORTATION"
)

// IsKnown reports whether s is one of the declared values.
func (s CompanySector) IsKnown() bool {
	switch s {
	case CompanySectorAgriculture, CompanySectorCommunication, CompanySectorConstruction,
		CompanySectorEducation, CompanySectorEnergy, CompanySectorEntertainment, CompanySectorFinancial,
		CompanySectorGambling, CompanySectorGovernment, CompanySectorHealthcare, CompanySectorHospitality,
		CompanySectorHumanResources, CompanySectorInsurance, CompanySectorLegal, CompanySectorManufacturing,
		CompanySectorNGO, CompanySectorPolitical, CompanySectorPostal, CompanySectorProfessional,
		CompanySectorRealEstate, CompanySectorRetail, CompanySectorTechnology, CompanySectorTransportation:
		return true
	}
	return false
}

// CompanyType is the legal form of a brand.
type CompanyType string

const (
	CompanyTypePrivateProfit  CompanyType = "PRIVATE_PROFIT"
	CompanyTypePublicProfit   CompanyType = "PUBLIC_PROFIT"
	CompanyTypeNonProfit      CompanyType = "NON_PROFIT"
	CompanyTypeGovernment     CompanyType = "GOVERNMENT"
	CompanyTypeSoleProprietor CompanyType = "SOLE_PROPRIETOR"
)

// IsKnown reports whether t is one of the declared values.
func (t CompanyType) IsKnown() bool {
	switch t {
	case CompanyTypePrivateProfit, CompanyTypePublicProfit, CompanyTypeNonProfit,
		CompanyTypeGovernment, CompanyTypeSoleProprietor:
		return true
	}
	return false
}

// WebviewMode is how an OPEN_URL button displays its page.
type WebviewMode string

const (
	WebviewModeFull WebviewMode = "FULL"
	WebviewModeHalf WebviewMode = "HALF"
	WebviewModeTall WebviewMode = "TALL"
)

// IsKnown reports whether m is one of the declared values.
func (m WebviewMode) IsKnown() bool {
	switch m {
	case WebviewModeFull, WebviewModeHalf, WebviewModeTall:
		return true
	}
	return false
}
