package handlers

import (
	"context"

	"github.com/talento-hq/talento/internal/application/account/dto"
	"github.com/talento-hq/talento/internal/application/account/usecases"
)

// Use case interfaces for AuthHandler - enables unit testing with mocks.

type signupUseCase interface {
	Execute(ctx context.Context, cmd usecases.SignupCommand) (*dto.AuthDTO, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.AuthDTO, error)
}

type getProfileUseCase interface {
	Execute(ctx context.Context, accountID uint) (*dto.ProfileDTO, error)
}
