package admin

import (
	"context"

	adminDTO "github.com/talento-hq/talento/internal/application/admin/dto"
	adminUsecases "github.com/talento-hq/talento/internal/application/admin/usecases"
	paymentDTO "github.com/talento-hq/talento/internal/application/payment/dto"
	paymentUsecases "github.com/talento-hq/talento/internal/application/payment/usecases"
	planDTO "github.com/talento-hq/talento/internal/application/plan/dto"
	planUsecases "github.com/talento-hq/talento/internal/application/plan/usecases"
	settingDTO "github.com/talento-hq/talento/internal/application/setting/dto"
)

// Use case interfaces for the admin handlers - enables unit testing with mocks.

type getAdminDashboardUseCase interface {
	Execute(ctx context.Context) (*adminDTO.AdminDashboardResponse, error)
}

type settingsService interface {
	Get(ctx context.Context) (*settingDTO.AdminSettingsDTO, error)
	UpdateSection(ctx context.Context, section string, patch []byte, updatedBy uint) (any, error)
}

type testEmailSender interface {
	SendTestEmail(to string) error
}

type listPlansUseCase interface {
	Execute(ctx context.Context) ([]*planDTO.PlanDTO, error)
}

type createPlanUseCase interface {
	Execute(ctx context.Context, cmd planUsecases.CreatePlanCommand) (*planDTO.PlanDTO, error)
}

type updatePlanUseCase interface {
	Execute(ctx context.Context, cmd planUsecases.UpdatePlanCommand) (*planDTO.PlanDTO, error)
}

type deletePlanUseCase interface {
	Execute(ctx context.Context, planSID string) error
}

type togglePlanUseCase interface {
	Execute(ctx context.Context, planSID string) (*planDTO.PlanDTO, error)
}

type listAccountsUseCase interface {
	Execute(ctx context.Context, query adminUsecases.ListAccountsQuery) (*adminDTO.AccountListResponse, error)
}

type assignPlanUseCase interface {
	Execute(ctx context.Context, cmd paymentUsecases.AssignPlanCommand) (*paymentDTO.PaymentDTO, error)
}

type listPendingPaymentsUseCase interface {
	Execute(ctx context.Context) ([]*paymentDTO.PendingPaymentDTO, error)
}

type approvePaymentUseCase interface {
	Execute(ctx context.Context, cmd paymentUsecases.ApprovePaymentCommand) (*paymentDTO.PaymentDTO, error)
}

type rejectPaymentUseCase interface {
	Execute(ctx context.Context, cmd paymentUsecases.RejectPaymentCommand) (*paymentDTO.PaymentDTO, error)
}
