package setting

import (
	"context"

	"github.com/talento-hq/talento/internal/application/setting/dto"
	"github.com/talento-hq/talento/internal/application/setting/usecases"
	"github.com/talento-hq/talento/internal/domain/setting"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/services/markdown"
)

// ServiceDDD aggregates all setting-related use cases
type ServiceDDD struct {
	getSettingsUC       *usecases.GetSettingsUseCase
	getPublicSettingsUC *usecases.GetPublicSettingsUseCase
	updateSectionUC     *usecases.UpdateSectionUseCase
	settingProvider     *usecases.SettingProvider
	logger              logger.Interface
}

// NewServiceDDD creates a new setting service
func NewServiceDDD(
	settingRepo setting.Repository,
	providerConfig usecases.SettingProviderConfig,
	renderer markdown.Renderer,
	logger logger.Interface,
) *ServiceDDD {
	// Create the setting provider for hot-reload support
	provider := usecases.NewSettingProvider(settingRepo, providerConfig, logger)

	return &ServiceDDD{
		getSettingsUC:       usecases.NewGetSettingsUseCase(settingRepo, logger),
		getPublicSettingsUC: usecases.NewGetPublicSettingsUseCase(settingRepo, renderer, logger),
		updateSectionUC:     usecases.NewUpdateSectionUseCase(settingRepo, provider, logger),
		settingProvider:     provider,
		logger:              logger,
	}
}

// Get returns the full document with credentials masked.
func (s *ServiceDDD) Get(ctx context.Context) (*dto.AdminSettingsDTO, error) {
	return s.getSettingsUC.Execute(ctx)
}

// GetPublic returns the unauthenticated view.
func (s *ServiceDDD) GetPublic(ctx context.Context) (*dto.PublicSettingsDTO, error) {
	return s.getPublicSettingsUC.Execute(ctx)
}

// UpdateSection applies a partial update to one section.
func (s *ServiceDDD) UpdateSection(ctx context.Context, section string, patch []byte, updatedBy uint) (any, error) {
	return s.updateSectionUC.Execute(ctx, section, patch, updatedBy)
}

// GetSettingProvider returns the setting provider for dependency injection
func (s *ServiceDDD) GetSettingProvider() *usecases.SettingProvider {
	return s.settingProvider
}

// Subscribe registers a subscriber for setting changes
func (s *ServiceDDD) Subscribe(subscriber usecases.SettingChangeSubscriber) {
	s.settingProvider.Subscribe(subscriber)
}
