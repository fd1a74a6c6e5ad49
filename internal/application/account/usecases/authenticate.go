package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/infrastructure/auth"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// AuthenticateUseCase resolves a bearer token to the stored account. The
// account is re-read on every call so role and plan changes apply to
// tokens issued before them.
type AuthenticateUseCase struct {
	accountRepo account.Repository
	verifier    TokenVerifier
	logger      logger.Interface
}

func NewAuthenticateUseCase(
	accountRepo account.Repository,
	verifier TokenVerifier,
	logger logger.Interface,
) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		accountRepo: accountRepo,
		verifier:    verifier,
		logger:      logger,
	}
}

func (uc *AuthenticateUseCase) Execute(ctx context.Context, token string) (*account.Account, error) {
	if token == "" {
		return nil, apperrors.NewMissingTokenError()
	}

	claims, err := uc.verifier.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, apperrors.NewTokenExpiredError()
		}
		return nil, apperrors.NewTokenInvalidError()
	}

	acc, err := uc.accountRepo.GetBySID(ctx, claims.AccountSID())
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			uc.logger.Warnw("token subject no longer exists", "account_sid", claims.AccountSID())
			return nil, apperrors.NewTokenInvalidError("User not found")
		}
		uc.logger.Errorw("failed to load account for token", "error", err)
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return acc, nil
}
