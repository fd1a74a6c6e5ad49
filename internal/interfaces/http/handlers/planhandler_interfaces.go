package handlers

import (
	"context"

	planDTO "github.com/talento-hq/talento/internal/application/plan/dto"
	settingDTO "github.com/talento-hq/talento/internal/application/setting/dto"
)

type listPublicPlansUseCase interface {
	Execute(ctx context.Context) ([]*planDTO.PlanDTO, error)
}

type getPublicSettingsUseCase interface {
	GetPublic(ctx context.Context) (*settingDTO.PublicSettingsDTO, error)
}
