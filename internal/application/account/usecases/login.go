package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/talento-hq/talento/internal/application/account/dto"
	"github.com/talento-hq/talento/internal/domain/account"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	accountRepo account.Repository
	hasher      PasswordHasher
	tokens      TokenIssuer
	logger      logger.Interface
}

func NewLoginUseCase(
	accountRepo account.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
	}
}

// Execute never reveals whether the email or the password was wrong.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthDTO, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, apperrors.NewValidationError("Email and password are required")
	}

	acc, err := uc.accountRepo.GetByEmail(ctx, account.NormalizeEmail(cmd.Email))
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return nil, apperrors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to load account for login", "error", err)
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if err := uc.hasher.Verify(cmd.Password, acc.PasswordHash()); err != nil {
		uc.logger.Debugw("password mismatch", "account_sid", acc.SID())
		return nil, apperrors.NewInvalidCredentialsError()
	}

	token, expiresAt, err := uc.tokens.Generate(acc.SID())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "account_sid", acc.SID())
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("account logged in", "account_sid", acc.SID())

	return &dto.AuthDTO{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToAccountDTO(acc),
	}, nil
}
