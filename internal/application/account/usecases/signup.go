package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/talento-hq/talento/internal/application/account/dto"
	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/shared/authorization"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

type SignupCommand struct {
	Email       string
	Password    string
	Name        string
	CompanyName string
}

type SignupUseCase struct {
	accountRepo       account.Repository
	planRepo          plan.Repository
	hasher            PasswordHasher
	tokens            TokenIssuer
	minPasswordLength int
	logger            logger.Interface
}

func NewSignupUseCase(
	accountRepo account.Repository,
	planRepo plan.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	minPasswordLength int,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		accountRepo:       accountRepo,
		planRepo:          planRepo,
		hasher:            hasher,
		tokens:            tokens,
		minPasswordLength: minPasswordLength,
		logger:            logger,
	}
}

// Execute registers a member on the default free plan and signs them in.
func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*dto.AuthDTO, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, apperrors.NewValidationError("Name is required")
	}
	if len(cmd.Password) < uc.minPasswordLength {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Password must be at least %d characters", uc.minPasswordLength))
	}

	email := account.NormalizeEmail(cmd.Email)
	if _, err := uc.accountRepo.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewValidationError("User already exists")
	} else if !errors.Is(err, account.ErrAccountNotFound) {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	defaultPlan, err := uc.planRepo.GetDefault(ctx)
	if err != nil {
		uc.logger.Errorw("failed to resolve default plan", "error", err)
		return nil, fmt.Errorf("failed to resolve default plan: %w", err)
	}
	var planID *uint
	if defaultPlan != nil {
		id := defaultPlan.ID()
		planID = &id
	} else {
		uc.logger.Warnw("no default plan configured, account created without plan", "email", email)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acc, err := account.NewAccount(email, hash, cmd.Name, cmd.CompanyName, authorization.RoleMember, planID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Create(ctx, acc); err != nil {
		if errors.Is(err, account.ErrEmailExists) {
			return nil, apperrors.NewValidationError("User already exists")
		}
		uc.logger.Errorw("failed to create account", "error", err)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	token, expiresAt, err := uc.tokens.Generate(acc.SID())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "account_sid", acc.SID())
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("account registered", "account_sid", acc.SID(), "company", acc.CompanyName())

	return &dto.AuthDTO{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToAccountDTO(acc),
	}, nil
}
