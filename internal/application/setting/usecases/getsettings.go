package usecases

import (
	"context"
	"fmt"

	"github.com/talento-hq/talento/internal/application/setting/dto"
	"github.com/talento-hq/talento/internal/domain/setting"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/services/markdown"
)

// GetSettingsUseCase returns the document for the admin console.
type GetSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewGetSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{settingRepo: settingRepo, logger: logger}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*dto.AdminSettingsDTO, error) {
	s, err := uc.settingRepo.GetOrCreate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return dto.ToAdminSettingsDTO(s), nil
}

// GetPublicSettingsUseCase returns what the marketing site needs. Markdown
// fields are rendered to sanitized HTML and no credential leaves the server.
type GetPublicSettingsUseCase struct {
	settingRepo setting.Repository
	renderer    markdown.Renderer
	logger      logger.Interface
}

func NewGetPublicSettingsUseCase(settingRepo setting.Repository, renderer markdown.Renderer, logger logger.Interface) *GetPublicSettingsUseCase {
	return &GetPublicSettingsUseCase{
		settingRepo: settingRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *GetPublicSettingsUseCase) Execute(ctx context.Context) (*dto.PublicSettingsDTO, error) {
	s, err := uc.settingRepo.GetOrCreate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	payments := s.Payments()
	legal := s.Legal()

	var instructions, privacy, terms string
	for _, r := range []struct {
		src string
		dst *string
	}{
		{payments.ManualPaymentInstructions, &instructions},
		{legal.PrivacyPolicy, &privacy},
		{legal.TermsOfService, &terms},
	} {
		html, err := uc.renderer.Render(r.src)
		if err != nil {
			uc.logger.Errorw("failed to render settings markdown", "error", err)
			return nil, err
		}
		*r.dst = html
	}

	accounts := payments.PayoutAccounts
	if accounts == nil {
		accounts = []setting.PayoutAccount{}
	}

	return &dto.PublicSettingsDTO{
		Branding: s.Branding(),
		Homepage: s.Homepage(),
		Payments: dto.PublicPaymentsDTO{
			StripePublicKey:               payments.StripePublicKey,
			ManualPaymentInstructionsHTML: instructions,
			PayoutAccounts:                accounts,
		},
		Legal: dto.PublicLegalDTO{
			PrivacyPolicyHTML:  privacy,
			TermsOfServiceHTML: terms,
			ContactEmail:       legal.ContactEmail,
			WhatsAppNumber:     legal.WhatsAppNumber,
		},
		MaintenanceMode: s.System().MaintenanceMode,
	}, nil
}
