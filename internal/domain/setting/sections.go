package setting

// Section names one independently updatable part of the settings document.
type Section string

const (
	SectionBranding Section = "branding"
	SectionHomepage Section = "homepage"
	SectionPayments Section = "payments"
	SectionSystem   Section = "system"
	SectionLegal    Section = "legal"
)

// AllSections lists sections in display order.
var AllSections = []Section{SectionBranding, SectionHomepage, SectionPayments, SectionSystem, SectionLegal}

func ParseSection(s string) (Section, error) {
	for _, sec := range AllSections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", ErrUnknownSection
}

func (s Section) String() string {
	return string(s)
}

type Branding struct {
	ProductName  string `json:"productName" validate:"required,max=100"`
	Tagline      string `json:"tagline" validate:"max=200"`
	LogoURL      string `json:"logoUrl" validate:"max=500"`
	FaviconURL   string `json:"faviconUrl" validate:"max=500"`
	PrimaryColor string `json:"primaryColor" validate:"omitempty,hexcolor"`
	HeroTitle    string `json:"heroTitle" validate:"max=200"`
	HeroSubtitle string `json:"heroSubtitle" validate:"max=500"`
}

type Feature struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Testimonial struct {
	Name      string `json:"name" validate:"required"`
	Role      string `json:"role"`
	Company   string `json:"company"`
	Quote     string `json:"quote" validate:"required"`
	AvatarURL string `json:"avatarUrl"`
}

type FAQ struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type FooterLink struct {
	Label string `json:"label" validate:"required"`
	URL   string `json:"url" validate:"required"`
}

type Homepage struct {
	Features     []Feature     `json:"features" validate:"dive"`
	Testimonials []Testimonial `json:"testimonials" validate:"dive"`
	FAQs         []FAQ         `json:"faqs" validate:"dive"`
	FooterLinks  []FooterLink  `json:"footerLinks" validate:"dive"`
	FooterText   string        `json:"footerText" validate:"max=500"`
}

type PayoutType string

const (
	PayoutJazzCash PayoutType = "jazzcash"
	PayoutPayoneer PayoutType = "payoneer"
	PayoutBank     PayoutType = "bank"
	PayoutPayPak   PayoutType = "paypak"
)

type PayoutAccount struct {
	Type          PayoutType `json:"type" validate:"required,oneof=jazzcash payoneer bank paypak"`
	Details       string     `json:"details"`
	AccountNumber string     `json:"accountNumber"`
	QRCodeURL     string     `json:"qrCodeUrl"`
}

type Payments struct {
	StripePublicKey     string `json:"stripePublicKey"`
	StripeSecretKey     string `json:"stripeSecretKey"`
	StripeWebhookSecret string `json:"stripeWebhookSecret"`
	// ManualPaymentInstructions is markdown.
	ManualPaymentInstructions string          `json:"manualPaymentInstructions" validate:"max=10000"`
	PayoutAccounts            []PayoutAccount `json:"payoutAccounts" validate:"dive"`
}

type System struct {
	OpenAIAPIKey      string `json:"openaiApiKey"`
	SMTPHost          string `json:"smtpHost"`
	SMTPPort          int    `json:"smtpPort" validate:"min=0,max=65535"`
	SMTPUser          string `json:"smtpUser"`
	SMTPPassword      string `json:"smtpPassword"`
	DataRetentionDays int    `json:"dataRetentionDays" validate:"min=1,max=3650"`
	MaintenanceMode   bool   `json:"maintenanceMode"`
}

type Legal struct {
	// PrivacyPolicy and TermsOfService are markdown.
	PrivacyPolicy  string `json:"privacyPolicy"`
	TermsOfService string `json:"termsOfService"`
	ContactEmail   string `json:"contactEmail" validate:"omitempty,email"`
	WhatsAppNumber string `json:"whatsappNumber" validate:"max=32"`
}

func DefaultBranding() Branding {
	return Branding{
		ProductName:  "Talento",
		Tagline:      "AI Interviews. Human Decisions.",
		LogoURL:      "/logo.png",
		FaviconURL:   "/favicon.ico",
		PrimaryColor: "#4F46E5",
		HeroTitle:    "AI-Powered Interview Platform",
		HeroSubtitle: "Screen candidates efficiently with AI-driven interviews",
	}
}

func DefaultHomepage() Homepage {
	return Homepage{
		Features:     []Feature{},
		Testimonials: []Testimonial{},
		FAQs:         []FAQ{},
		FooterLinks:  []FooterLink{},
		FooterText:   "© 2025 Talento. All rights reserved.",
	}
}

func DefaultPayments() Payments {
	return Payments{
		ManualPaymentInstructions: "Please transfer to the following account and upload screenshot.",
		PayoutAccounts:            []PayoutAccount{},
	}
}

func DefaultSystem() System {
	return System{
		SMTPPort:          587,
		DataRetentionDays: 90,
	}
}

func DefaultLegal() Legal {
	return Legal{
		ContactEmail: "contact@talento.com",
	}
}
