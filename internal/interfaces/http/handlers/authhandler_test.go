package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talento-hq/talento/internal/application/account/dto"
	"github.com/talento-hq/talento/internal/application/account/usecases"
	"github.com/talento-hq/talento/internal/interfaces/http/handlers/testutil"
	"github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockSignupUC struct {
	result *dto.AuthDTO
	err    error
	cmd    usecases.SignupCommand
}

func (m *mockSignupUC) Execute(ctx context.Context, cmd usecases.SignupCommand) (*dto.AuthDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *dto.AuthDTO
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.AuthDTO, error) {
	return m.result, m.err
}

type mockGetProfileUC struct {
	result    *dto.ProfileDTO
	err       error
	accountID uint
}

func (m *mockGetProfileUC) Execute(ctx context.Context, accountID uint) (*dto.ProfileDTO, error) {
	m.accountID = accountID
	return m.result, m.err
}

func testAuthDTO() *dto.AuthDTO {
	return &dto.AuthDTO{
		Token:     "jwt-token",
		ExpiresAt: time.Now().Add(time.Hour),
		User:      &dto.AccountDTO{ID: "acc_1", Email: "hr@example.com", Role: "member"},
	}
}

// =====================================================================
// Tests
// =====================================================================

func TestAuthHandler_Signup(t *testing.T) {
	signup := &mockSignupUC{result: testAuthDTO()}
	handler := NewAuthHandler(signup, nil, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/signup", SignupRequest{
		Email:       "hr@example.com",
		Password:    "secret1",
		Name:        "HR",
		CompanyName: "Acme",
	})
	handler.Signup(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Acme", signup.cmd.CompanyName)

	var result dto.AuthDTO
	require.NoError(t, testutil.DecodeData(w, &result))
	assert.Equal(t, "jwt-token", result.Token)
}

func TestAuthHandler_Signup_InvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"missing company", map[string]string{"email": "hr@example.com", "password": "secret1", "name": "HR"}},
		{"bad email", map[string]string{"email": "nope", "password": "secret1", "name": "HR", "companyName": "Acme"}},
		{"malformed json", []byte(`{"email":`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockSignupUC{}, nil, nil, logger.NewNopLogger())
			c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/signup", tt.body)

			handler.Signup(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.False(t, resp.Success)
		})
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(nil, &mockLoginUC{err: errors.NewInvalidCredentialsError()}, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", LoginRequest{Email: "hr@example.com", Password: "wrong"})
	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "InvalidCredentials", resp.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	profile := &mockGetProfileUC{result: &dto.ProfileDTO{
		User:  &dto.AccountDTO{ID: "acc_1"},
		Usage: dto.UsageDTO{InterviewsUsed: 2, InterviewLimit: 5, Remaining: 3},
	}}
	handler := NewAuthHandler(nil, nil, profile, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)
	testutil.SetAuthContext(c, 42)
	handler.Me(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), profile.accountID)

	var result dto.ProfileDTO
	require.NoError(t, testutil.DecodeData(w, &result))
	assert.Equal(t, 3, result.Usage.Remaining)
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	handler := NewAuthHandler(nil, nil, &mockGetProfileUC{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)
	handler.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
