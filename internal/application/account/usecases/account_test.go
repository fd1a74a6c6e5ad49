package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/talento-hq/talento/internal/application/quota"
	"github.com/talento-hq/talento/internal/application/testutil"
	"github.com/talento-hq/talento/internal/infrastructure/auth"
	"github.com/talento-hq/talento/internal/shared/authorization"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/testdata"
)

type fixture struct {
	store   *testutil.Store
	hasher  *auth.BcryptPasswordHasher
	jwt     *auth.JWTService
	signup  *SignupUseCase
	login   *LoginUseCase
	authn   *AuthenticateUseCase
	profile *GetProfileUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := testutil.NewStore(t)
	hasher := auth.NewBcryptPasswordHasher(bcrypt.MinCost)
	jwtSvc := auth.NewJWTService("test-secret", 30)
	return &fixture{
		store:   s,
		hasher:  hasher,
		jwt:     jwtSvc,
		signup:  NewSignupUseCase(s.Accounts, s.Plans, hasher, jwtSvc, 6, s.Logger),
		login:   NewLoginUseCase(s.Accounts, hasher, jwtSvc, s.Logger),
		authn:   NewAuthenticateUseCase(s.Accounts, jwtSvc, s.Logger),
		profile: NewGetProfileUseCase(s.Accounts, quota.NewService(s.Accounts, s.Plans, nil, s.Logger), s.Logger),
	}
}

func TestSignup_AssignsDefaultPlan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.store.CreatePlan(t, testdata.PlanOptions{PriceCents: 900, Quota: 10, Order: 0})
	free := f.store.CreatePlan(t, testdata.PlanOptions{Quota: 5, Order: 1})
	f.store.CreatePlan(t, testdata.PlanOptions{Quota: -1, IsCustom: true, Order: 0})

	res, err := f.signup.Execute(ctx, SignupCommand{
		Email:       " HR@Acme.com",
		Password:    "secret1",
		Name:        "Jane",
		CompanyName: "Acme",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "hr@acme.com", res.User.Email)
	assert.Equal(t, "member", res.User.Role)

	acc, err := f.store.Accounts.GetByEmail(ctx, "hr@acme.com")
	require.NoError(t, err)
	require.NotNil(t, acc.PlanID())
	assert.Equal(t, free.ID(), *acc.PlanID())
	assert.Zero(t, acc.InterviewsUsed())
	assert.NotEqual(t, "secret1", acc.PasswordHash())
}

func TestSignup_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	valid := SignupCommand{Email: "a@b.com", Password: "secret1", Name: "Jane", CompanyName: "Acme"}
	_, err := f.signup.Execute(ctx, valid)
	require.NoError(t, err)

	tests := []struct {
		name string
		mod  func(c *SignupCommand)
	}{
		{"duplicate email differing in case", func(c *SignupCommand) { c.Email = "A@B.com" }},
		{"short password", func(c *SignupCommand) { c.Email = "x@b.com"; c.Password = "12345" }},
		{"missing name", func(c *SignupCommand) { c.Email = "y@b.com"; c.Name = " " }},
		{"missing company", func(c *SignupCommand) { c.Email = "z@b.com"; c.CompanyName = "" }},
		{"bad email", func(c *SignupCommand) { c.Email = "nope" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := valid
			tt.mod(&cmd)
			_, err := f.signup.Execute(ctx, cmd)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err), "got %v", err)
		})
	}
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.signup.Execute(ctx, SignupCommand{Email: "a@b.com", Password: "secret1", Name: "Jane", CompanyName: "Acme"})
	require.NoError(t, err)

	res, err := f.login.Execute(ctx, LoginCommand{Email: "A@b.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	for _, cmd := range []LoginCommand{
		{Email: "a@b.com", Password: "wrong"},
		{Email: "nobody@b.com", Password: "secret1"},
	} {
		_, err := f.login.Execute(ctx, cmd)
		assert.True(t, apperrors.HasReason(err, apperrors.ReasonInvalidCredentials), "got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.signup.Execute(ctx, SignupCommand{Email: "a@b.com", Password: "secret1", Name: "Jane", CompanyName: "Acme"})
	require.NoError(t, err)

	acc, err := f.authn.Execute(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, acc.SID())
	assert.Equal(t, authorization.RoleMember, acc.Role())

	// a role change in storage applies to a token issued before it
	require.NoError(t, f.store.Accounts.UpdateRole(ctx, acc.ID(), authorization.RoleSuperAdmin))
	acc, err = f.authn.Execute(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleSuperAdmin, acc.Role())

	_, err = f.authn.Execute(ctx, "")
	assert.True(t, apperrors.HasReason(err, apperrors.ReasonMissingToken))

	_, err = f.authn.Execute(ctx, "garbage")
	assert.True(t, apperrors.HasReason(err, apperrors.ReasonInvalidToken))

	orphan, _, err := f.jwt.Generate("acct_missing")
	require.NoError(t, err)
	_, err = f.authn.Execute(ctx, orphan)
	assert.True(t, apperrors.HasReason(err, apperrors.ReasonInvalidToken))
}

func TestGetProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.store.CreatePlan(t, testdata.PlanOptions{PriceCents: 1800, Quota: 30})
	acc := f.store.CreateMember(t, p)
	ok, err := f.store.Accounts.IncrementUsage(ctx, acc.ID(), p.ID(), 30)
	require.NoError(t, err)
	require.True(t, ok)

	profile, err := f.profile.Execute(ctx, acc.ID())
	require.NoError(t, err)
	require.NotNil(t, profile.Plan)
	assert.Equal(t, p.SID(), profile.Plan.ID)
	assert.Equal(t, 1, profile.Usage.InterviewsUsed)
	assert.Equal(t, 29, profile.Usage.Remaining)
	assert.True(t, profile.Usage.CanStartInterview)

	noPlan := f.store.CreateMember(t, nil)
	profile, err = f.profile.Execute(ctx, noPlan.ID())
	require.NoError(t, err)
	assert.Nil(t, profile.Plan)
	assert.Zero(t, profile.Usage.InterviewLimit)
	assert.False(t, profile.Usage.CanStartInterview)

	_, err = f.profile.Execute(ctx, 9999)
	assert.True(t, apperrors.HasReason(err, apperrors.ReasonAccountNotFound))
}

func TestGetProfile_ExhaustedQuotaStillRenders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.store.CreatePlan(t, testdata.PlanOptions{Quota: 1})
	acc := f.store.CreateMember(t, p)
	ok, err := f.store.Accounts.IncrementUsage(ctx, acc.ID(), p.ID(), 1)
	require.NoError(t, err)
	require.True(t, ok)

	profile, err := f.profile.Execute(ctx, acc.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, profile.Usage.InterviewsUsed)
	assert.Equal(t, 1, profile.Usage.InterviewLimit)
	assert.Zero(t, profile.Usage.Remaining)
	assert.False(t, profile.Usage.CanStartInterview)
}
