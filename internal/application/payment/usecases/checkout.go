package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/talento-hq/talento/internal/application/payment/dto"
	"github.com/talento-hq/talento/internal/application/payment/paymentgateway"
	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/domain/payment"
	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/domain/setting"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// CheckoutURLs are the SPA pages the gateway redirects back to.
type CheckoutURLs struct {
	ClientOrigin string
	SuccessPath  string
	CancelPath   string
}

func (u CheckoutURLs) success() string {
	return strings.TrimRight(u.ClientOrigin, "/") + u.SuccessPath
}

func (u CheckoutURLs) cancel() string {
	return strings.TrimRight(u.ClientOrigin, "/") + u.CancelPath
}

type CreateCheckoutCommand struct {
	AccountID uint
	PlanSID   string
}

type CreateCheckoutUseCase struct {
	paymentRepo payment.Repository
	accountRepo account.Repository
	planRepo    plan.Repository
	gateway     paymentgateway.PaymentGateway
	credentials setting.Provider
	urls        CheckoutURLs
	logger      logger.Interface
}

func NewCreateCheckoutUseCase(
	paymentRepo payment.Repository,
	accountRepo account.Repository,
	planRepo plan.Repository,
	gateway paymentgateway.PaymentGateway,
	credentials setting.Provider,
	urls CheckoutURLs,
	logger logger.Interface,
) *CreateCheckoutUseCase {
	return &CreateCheckoutUseCase{
		paymentRepo: paymentRepo,
		accountRepo: accountRepo,
		planRepo:    planRepo,
		gateway:     gateway,
		credentials: credentials,
		urls:        urls,
		logger:      logger,
	}
}

// Execute opens a hosted checkout and records the pending payment keyed by
// the gateway session. Nothing is stored when the gateway call fails.
func (uc *CreateCheckoutUseCase) Execute(ctx context.Context, cmd CreateCheckoutCommand) (*dto.CheckoutDTO, error) {
	if cmd.PlanSID == "" {
		return nil, apperrors.NewValidationError("Plan is required")
	}
	acc, err := loadAccount(ctx, uc.accountRepo, cmd.AccountID)
	if err != nil {
		return nil, err
	}
	p, err := loadPlan(ctx, uc.planRepo, cmd.PlanSID)
	if err != nil {
		return nil, err
	}
	if err := checkPurchasable(p); err != nil {
		return nil, err
	}

	creds := uc.credentials.GetStripeConfig(ctx)
	if !paymentgateway.Configured(creds) {
		uc.logger.Warnw("checkout requested but gateway credentials are missing", "gateway", uc.gateway.Name())
		return nil, apperrors.NewGatewayNotConfiguredError()
	}

	pay, err := payment.NewGatewayPayment(acc.ID(), p.ID(), p.Price())
	if err != nil {
		return nil, err
	}

	session, err := uc.gateway.CreateCheckout(ctx, creds, paymentgateway.CheckoutRequest{
		PaymentSID:    pay.SID(),
		AccountSID:    acc.SID(),
		CustomerEmail: acc.Email(),
		PlanName:      p.Name(),
		Amount:        p.Price().AmountInCents(),
		Currency:      p.Price().Currency(),
		SuccessURL:    uc.urls.success(),
		CancelURL:     uc.urls.cancel(),
	})
	if err != nil {
		if errors.Is(err, paymentgateway.ErrNotConfigured) {
			return nil, apperrors.NewGatewayNotConfiguredError()
		}
		uc.logger.Errorw("failed to create checkout session",
			"error", err,
			"gateway", uc.gateway.Name(),
			"payment_sid", pay.SID(),
		)
		return nil, apperrors.NewGatewayError()
	}

	if err := pay.AttachExternalRef(session.SessionID); err != nil {
		return nil, err
	}
	if err := uc.paymentRepo.Create(ctx, pay); err != nil {
		uc.logger.Errorw("failed to store checkout payment", "error", err, "session_id", session.SessionID)
		return nil, err
	}

	uc.logger.Infow("checkout session created",
		"payment_sid", pay.SID(),
		"account_id", acc.ID(),
		"plan", p.Name(),
		"gateway", uc.gateway.Name(),
	)
	return &dto.CheckoutDTO{
		SessionID:   session.SessionID,
		CheckoutURL: session.CheckoutURL,
		Payment:     dto.ToPaymentDTO(pay, p),
	}, nil
}
