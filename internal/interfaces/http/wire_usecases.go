package http

import (
	accountUsecases "github.com/talento-hq/talento/internal/application/account/usecases"
	adminUsecases "github.com/talento-hq/talento/internal/application/admin/usecases"
	interviewUsecases "github.com/talento-hq/talento/internal/application/interview/usecases"
	paymentUsecases "github.com/talento-hq/talento/internal/application/payment/usecases"
	planUsecases "github.com/talento-hq/talento/internal/application/plan/usecases"
	"github.com/talento-hq/talento/internal/application/quota"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Account / Auth
	authenticateUC *accountUsecases.AuthenticateUseCase
	signupUC       *accountUsecases.SignupUseCase
	loginUC        *accountUsecases.LoginUseCase
	getProfileUC   *accountUsecases.GetProfileUseCase

	// Plan
	listPublicPlansUC *planUsecases.ListPublicPlansUseCase
	listPlansUC       *planUsecases.ListPlansUseCase
	createPlanUC      *planUsecases.CreatePlanUseCase
	updatePlanUC      *planUsecases.UpdatePlanUseCase
	deletePlanUC      *planUsecases.DeletePlanUseCase
	togglePlanUC      *planUsecases.TogglePlanUseCase

	// Quota
	quotaService *quota.Service

	// Interview
	createInterviewUC    *interviewUsecases.CreateInterviewUseCase
	listInterviewsUC     *interviewUsecases.ListInterviewsUseCase
	getReportUC          *interviewUsecases.GetReportUseCase
	memberDashboardUC    *interviewUsecases.GetMemberDashboardUseCase
	getInterviewByLinkUC *interviewUsecases.GetByLinkUseCase
	startInterviewUC     *interviewUsecases.StartInterviewUseCase
	submitInterviewUC    *interviewUsecases.SubmitInterviewUseCase

	// Payment
	paymentWorkflow         *paymentUsecases.Workflow
	createCheckoutUC        *paymentUsecases.CreateCheckoutUseCase
	submitManualPaymentUC   *paymentUsecases.SubmitManualPaymentUseCase
	listPaymentHistoryUC    *paymentUsecases.ListPaymentHistoryUseCase
	getPaymentUC            *paymentUsecases.GetPaymentUseCase
	getManualInstructionsUC *paymentUsecases.GetManualInstructionsUseCase
	handleWebhookUC         *paymentUsecases.HandleWebhookUseCase
	listPendingPaymentsUC   *paymentUsecases.ListPendingPaymentsUseCase
	approvePaymentUC        *paymentUsecases.ApprovePaymentUseCase
	rejectPaymentUC         *paymentUsecases.RejectPaymentUseCase
	assignPlanUC            *paymentUsecases.AssignPlanUseCase
	expireStaleCheckoutsUC  *paymentUsecases.ExpireStaleCheckoutsUseCase

	// Admin
	getAdminDashboardUC *adminUsecases.GetAdminDashboardUseCase
	listAccountsUC      *adminUsecases.ListAccountsUseCase
}
