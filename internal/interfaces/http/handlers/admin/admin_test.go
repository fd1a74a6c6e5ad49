package admin

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminDTO "github.com/talento-hq/talento/internal/application/admin/dto"
	adminUsecases "github.com/talento-hq/talento/internal/application/admin/usecases"
	paymentDTO "github.com/talento-hq/talento/internal/application/payment/dto"
	paymentUsecases "github.com/talento-hq/talento/internal/application/payment/usecases"
	planDTO "github.com/talento-hq/talento/internal/application/plan/dto"
	planUsecases "github.com/talento-hq/talento/internal/application/plan/usecases"
	settingDTO "github.com/talento-hq/talento/internal/application/setting/dto"
	"github.com/talento-hq/talento/internal/infrastructure/email"
	"github.com/talento-hq/talento/internal/interfaces/http/handlers/testutil"
	"github.com/talento-hq/talento/internal/shared/authorization"
	"github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// =====================================================================
// Mocks
// =====================================================================

type mockDashboardUC struct {
	result *adminDTO.AdminDashboardResponse
	err    error
}

func (m *mockDashboardUC) Execute(ctx context.Context) (*adminDTO.AdminDashboardResponse, error) {
	return m.result, m.err
}

type mockSettingsService struct {
	section   string
	patch     []byte
	updatedBy uint
	err       error
}

func (m *mockSettingsService) Get(ctx context.Context) (*settingDTO.AdminSettingsDTO, error) {
	return &settingDTO.AdminSettingsDTO{}, m.err
}

func (m *mockSettingsService) UpdateSection(ctx context.Context, section string, patch []byte, updatedBy uint) (any, error) {
	m.section = section
	m.patch = patch
	m.updatedBy = updatedBy
	if m.err != nil {
		return nil, m.err
	}
	return map[string]any{"siteName": "Talento"}, nil
}

type mockMailer struct {
	to  string
	err error
}

func (m *mockMailer) SendTestEmail(to string) error {
	m.to = to
	return m.err
}

type mockCreatePlanUC struct {
	cmd planUsecases.CreatePlanCommand
	err error
}

func (m *mockCreatePlanUC) Execute(ctx context.Context, cmd planUsecases.CreatePlanCommand) (*planDTO.PlanDTO, error) {
	m.cmd = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &planDTO.PlanDTO{ID: "plan_new", Name: cmd.Name}, nil
}

type mockUpdatePlanUC struct {
	cmd planUsecases.UpdatePlanCommand
}

func (m *mockUpdatePlanUC) Execute(ctx context.Context, cmd planUsecases.UpdatePlanCommand) (*planDTO.PlanDTO, error) {
	m.cmd = cmd
	return &planDTO.PlanDTO{ID: cmd.PlanSID}, nil
}

type mockDeletePlanUC struct {
	sid string
	err error
}

func (m *mockDeletePlanUC) Execute(ctx context.Context, planSID string) error {
	m.sid = planSID
	return m.err
}

type mockListAccountsUC struct {
	query adminUsecases.ListAccountsQuery
}

func (m *mockListAccountsUC) Execute(ctx context.Context, query adminUsecases.ListAccountsQuery) (*adminDTO.AccountListResponse, error) {
	m.query = query
	return &adminDTO.AccountListResponse{
		Items:    []*adminDTO.AdminAccountDTO{},
		Total:    41,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

type mockAssignPlanUC struct {
	cmd paymentUsecases.AssignPlanCommand
}

func (m *mockAssignPlanUC) Execute(ctx context.Context, cmd paymentUsecases.AssignPlanCommand) (*paymentDTO.PaymentDTO, error) {
	m.cmd = cmd
	return &paymentDTO.PaymentDTO{ID: "pay_assign", Status: "approved"}, nil
}

type mockApproveUC struct {
	cmd paymentUsecases.ApprovePaymentCommand
	err error
}

func (m *mockApproveUC) Execute(ctx context.Context, cmd paymentUsecases.ApprovePaymentCommand) (*paymentDTO.PaymentDTO, error) {
	m.cmd = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &paymentDTO.PaymentDTO{ID: cmd.PaymentSID, Status: "approved"}, nil
}

type mockRejectUC struct {
	cmd paymentUsecases.RejectPaymentCommand
}

func (m *mockRejectUC) Execute(ctx context.Context, cmd paymentUsecases.RejectPaymentCommand) (*paymentDTO.PaymentDTO, error) {
	m.cmd = cmd
	return &paymentDTO.PaymentDTO{ID: cmd.PaymentSID, Status: "rejected", RejectionReason: cmd.Reason}, nil
}

// =====================================================================
// Tests
// =====================================================================

func TestDashboardHandler_GetDashboard(t *testing.T) {
	handler := NewDashboardHandler(&mockDashboardUC{result: &adminDTO.AdminDashboardResponse{
		TotalUsers:      12,
		PendingPayments: 2,
		TotalRevenue:    147,
		Currency:        "USD",
	}}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/dashboard", nil)
	handler.GetDashboard(c)

	require.Equal(t, http.StatusOK, w.Code)
	var result adminDTO.AdminDashboardResponse
	require.NoError(t, testutil.DecodeData(w, &result))
	assert.Equal(t, int64(12), result.TotalUsers)
	assert.Equal(t, float64(147), result.TotalRevenue)
}

func TestSettingHandler_UpdateSection_PassesRawPatch(t *testing.T) {
	service := &mockSettingsService{}
	handler := NewSettingHandler(service, &mockMailer{}, logger.NewNopLogger())

	patch := []byte(`{"siteName":"Talento"}`)
	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/settings/general", patch)
	testutil.SetAuthContextWithRole(c, 1, authorization.RoleSuperAdmin)
	testutil.SetURLParam(c, "section", "general")
	handler.UpdateSection(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "general", service.section)
	assert.Equal(t, patch, service.patch)
	assert.Equal(t, uint(1), service.updatedBy)
}

func TestSettingHandler_UpdateSection_UnknownSection(t *testing.T) {
	service := &mockSettingsService{err: errors.NewNotFoundError("Unknown settings section")}
	handler := NewSettingHandler(service, &mockMailer{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/settings/bogus", []byte(`{}`))
	testutil.SetAuthContextWithRole(c, 1, authorization.RoleSuperAdmin)
	testutil.SetURLParam(c, "section", "bogus")
	handler.UpdateSection(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSettingHandler_SendTestEmail(t *testing.T) {
	tests := []struct {
		name       string
		mailErr    error
		wantStatus int
	}{
		{"sent", nil, http.StatusOK},
		{"not configured", email.ErrEmailServiceNotConfigured, http.StatusBadRequest},
		{"smtp failure", fmt.Errorf("dial tcp: connection refused"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &mockMailer{err: tt.mailErr}
			handler := NewSettingHandler(&mockSettingsService{}, mailer, logger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/settings/test-email",
				TestEmailRequest{Email: "ops@talento.dev"})
			handler.SendTestEmail(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "ops@talento.dev", mailer.to)
		})
	}
}

func TestPlanHandler_CreatePlan_ValidatesBody(t *testing.T) {
	create := &mockCreatePlanUC{}
	handler := NewPlanHandler(nil, create, nil, nil, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/plans", map[string]any{"price": 10})
	handler.CreatePlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, create.cmd.Name)
}

func TestPlanHandler_CreatePlan(t *testing.T) {
	create := &mockCreatePlanUC{}
	handler := NewPlanHandler(nil, create, nil, nil, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/plans", map[string]any{
		"name":           "Scale",
		"price":          199,
		"interviewLimit": -1,
		"isRecommended":  true,
	})
	handler.CreatePlan(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Scale", create.cmd.Name)
	require.NotNil(t, create.cmd.InterviewLimit)
	assert.Equal(t, -1, *create.cmd.InterviewLimit)
	assert.True(t, create.cmd.IsRecommended)
	assert.Nil(t, create.cmd.DisplayOrder)
}

func TestPlanHandler_UpdatePlan_PartialFields(t *testing.T) {
	update := &mockUpdatePlanUC{}
	handler := NewPlanHandler(nil, nil, update, nil, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/plans/plan_pro", map[string]any{"price": 59})
	testutil.SetURLParam(c, "id", "plan_pro")
	handler.UpdatePlan(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "plan_pro", update.cmd.PlanSID)
	require.NotNil(t, update.cmd.Price)
	assert.Equal(t, float64(59), *update.cmd.Price)
	assert.Nil(t, update.cmd.Name)
	assert.Nil(t, update.cmd.IsActive)
}

func TestPlanHandler_DeletePlan_InUse(t *testing.T) {
	del := &mockDeletePlanUC{err: errors.NewPlanInUseError(3)}
	handler := NewPlanHandler(nil, nil, nil, del, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/admin/plans/plan_pro", nil)
	testutil.SetURLParam(c, "id", "plan_pro")
	handler.DeletePlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "plan_pro", del.sid)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "PlanInUse", resp.Code)
}

func TestUserHandler_ListUsers_Pagination(t *testing.T) {
	list := &mockListAccountsUC{}
	handler := NewUserHandler(list, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/users?page=3&page_size=20", nil)
	handler.ListUsers(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, list.query.Page)
	assert.Equal(t, 20, list.query.PageSize)

	var page struct {
		Total      int64 `json:"total"`
		TotalPages int   `json:"total_pages"`
	}
	require.NoError(t, testutil.DecodeData(w, &page))
	assert.Equal(t, int64(41), page.Total)
}

func TestUserHandler_AssignPlan(t *testing.T) {
	assign := &mockAssignPlanUC{}
	handler := NewUserHandler(nil, assign, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/users/acc_7/plan",
		AssignPlanRequest{PlanID: "plan_pro", Note: "enterprise deal"})
	testutil.SetAuthContextWithRole(c, 1, authorization.RoleSuperAdmin)
	testutil.SetURLParam(c, "id", "acc_7")
	handler.AssignPlan(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, paymentUsecases.AssignPlanCommand{
		AdminID:    1,
		AccountSID: "acc_7",
		PlanSID:    "plan_pro",
		Note:       "enterprise deal",
	}, assign.cmd)
}

func TestPaymentHandler_Approve_AlreadyProcessed(t *testing.T) {
	approve := &mockApproveUC{err: errors.NewAlreadyProcessedError("approved")}
	handler := NewPaymentHandler(nil, approve, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/payments/pay_1/approve", nil)
	testutil.SetAuthContextWithRole(c, 1, authorization.RoleSuperAdmin)
	testutil.SetURLParam(c, "id", "pay_1")
	handler.Approve(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "pay_1", approve.cmd.PaymentSID)
	assert.Equal(t, uint(1), approve.cmd.AdminID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "AlreadyProcessed", resp.Code)
}

func TestPaymentHandler_Reject(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		reject := &mockRejectUC{}
		handler := NewPaymentHandler(nil, nil, reject, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/payments/pay_2/reject",
			RejectPaymentRequest{Reason: "receipt unreadable"})
		testutil.SetAuthContextWithRole(c, 1, authorization.RoleSuperAdmin)
		testutil.SetURLParam(c, "id", "pay_2")
		handler.Reject(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "receipt unreadable", reject.cmd.Reason)
	})

	t.Run("empty body", func(t *testing.T) {
		reject := &mockRejectUC{}
		handler := NewPaymentHandler(nil, nil, reject, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/payments/pay_3/reject", nil)
		testutil.SetAuthContextWithRole(c, 1, authorization.RoleSuperAdmin)
		testutil.SetURLParam(c, "id", "pay_3")
		handler.Reject(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pay_3", reject.cmd.PaymentSID)
		assert.Empty(t, reject.cmd.Reason)
	})
}
