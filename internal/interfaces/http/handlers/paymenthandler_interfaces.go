package handlers

import (
	"context"

	"github.com/talento-hq/talento/internal/application/payment/dto"
	"github.com/talento-hq/talento/internal/application/payment/usecases"
)

type createCheckoutUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateCheckoutCommand) (*dto.CheckoutDTO, error)
}

type submitManualPaymentUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubmitManualPaymentCommand) (*dto.ManualSubmittedDTO, error)
}

type listPaymentHistoryUseCase interface {
	Execute(ctx context.Context, accountID uint) ([]*dto.PaymentDTO, error)
}

type getPaymentUseCase interface {
	Execute(ctx context.Context, accountID uint, paymentSID string) (*dto.PaymentDTO, error)
}

type getManualInstructionsUseCase interface {
	Execute(ctx context.Context) (*dto.InstructionsDTO, error)
}

type handleWebhookUseCase interface {
	Execute(ctx context.Context, payload []byte, signature string) (*usecases.WebhookResult, error)
}
