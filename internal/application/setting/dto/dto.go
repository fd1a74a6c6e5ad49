package dto

import (
	"time"

	"github.com/talento-hq/talento/internal/domain/setting"
	"github.com/talento-hq/talento/internal/shared/utils"
)

// AdminSettingsDTO is the full document with credentials masked.
type AdminSettingsDTO struct {
	Branding  setting.Branding `json:"branding"`
	Homepage  setting.Homepage `json:"homepage"`
	Payments  setting.Payments `json:"payments"`
	System    setting.System   `json:"system"`
	Legal     setting.Legal    `json:"legal"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type PublicPaymentsDTO struct {
	StripePublicKey               string                  `json:"stripePublicKey"`
	ManualPaymentInstructionsHTML string                  `json:"manualPaymentInstructionsHtml"`
	PayoutAccounts                []setting.PayoutAccount `json:"payoutAccounts"`
}

type PublicLegalDTO struct {
	PrivacyPolicyHTML  string `json:"privacyPolicyHtml"`
	TermsOfServiceHTML string `json:"termsOfServiceHtml"`
	ContactEmail       string `json:"contactEmail"`
	WhatsAppNumber     string `json:"whatsappNumber"`
}

// PublicSettingsDTO is safe to serve without authentication.
type PublicSettingsDTO struct {
	Branding        setting.Branding  `json:"branding"`
	Homepage        setting.Homepage  `json:"homepage"`
	Payments        PublicPaymentsDTO `json:"payments"`
	Legal           PublicLegalDTO    `json:"legal"`
	MaintenanceMode bool              `json:"maintenanceMode"`
}

func MaskPayments(p setting.Payments) setting.Payments {
	p.StripeSecretKey = utils.MaskSecret(p.StripeSecretKey)
	p.StripeWebhookSecret = utils.MaskSecret(p.StripeWebhookSecret)
	return p
}

func MaskSystem(s setting.System) setting.System {
	s.OpenAIAPIKey = utils.MaskSecret(s.OpenAIAPIKey)
	s.SMTPPassword = utils.MaskSecret(s.SMTPPassword)
	return s
}

// MaskSection masks the credentials of a single section value.
func MaskSection(v any) any {
	switch s := v.(type) {
	case setting.Payments:
		return MaskPayments(s)
	case setting.System:
		return MaskSystem(s)
	}
	return v
}

func ToAdminSettingsDTO(s *setting.Settings) *AdminSettingsDTO {
	return &AdminSettingsDTO{
		Branding:  s.Branding(),
		Homepage:  s.Homepage(),
		Payments:  MaskPayments(s.Payments()),
		System:    MaskSystem(s.System()),
		Legal:     s.Legal(),
		UpdatedAt: s.UpdatedAt(),
	}
}
