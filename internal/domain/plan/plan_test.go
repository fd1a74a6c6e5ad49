package plan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talento-hq/talento/internal/domain/shared/valueobjects"
)

func validPlan(t *testing.T) *Plan {
	t.Helper()
	p, err := NewPlan("Professional", valueobjects.NewMoneyFromMajor(18, "USD"), 30, Options{
		Features: []string{"30 interviews", " ", "AI reports"},
		IsActive: true,
	})
	require.NoError(t, err)
	return p
}

func TestNewPlan(t *testing.T) {
	tests := []struct {
		name    string
		planNm  string
		price   valueobjects.Money
		quota   InterviewQuota
		wantErr error
	}{
		{"valid", "Starter", valueobjects.NewMoney(900, "USD"), 10, nil},
		{"free plan", "Free", valueobjects.NewMoney(0, "USD"), 5, nil},
		{"unlimited", "Business", valueobjects.NewMoney(3000, "USD"), Unlimited, nil},
		{"empty name", "  ", valueobjects.NewMoney(900, "USD"), 10, ErrPlanNameRequired},
		{"long name", strings.Repeat("x", 101), valueobjects.NewMoney(900, "USD"), 10, ErrPlanNameTooLong},
		{"negative price", "Bad", valueobjects.NewMoney(-1, "USD"), 10, ErrNegativePrice},
		{"invalid quota", "Bad", valueobjects.NewMoney(900, "USD"), -5, ErrInvalidQuota},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlan(tt.planNm, tt.price, tt.quota, Options{IsActive: true})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(p.SID(), "plan_"))
		})
	}
}

func TestPlan_FeaturesAreCleanedAndCopied(t *testing.T) {
	p := validPlan(t)

	features := p.Features()
	assert.Equal(t, []string{"30 interviews", "AI reports"}, features)

	features[0] = "mutated"
	assert.Equal(t, "30 interviews", p.Features()[0])
}

func TestPlan_CheckSelfServiceCheckout(t *testing.T) {
	p := validPlan(t)
	assert.NoError(t, p.CheckSelfServiceCheckout())

	p.SetCustom(true)
	assert.ErrorIs(t, p.CheckSelfServiceCheckout(), ErrPlanContactSales)

	p.SetCustom(false)
	p.SetActive(false)
	assert.ErrorIs(t, p.CheckSelfServiceCheckout(), ErrPlanInactive)
}

func TestPlan_ToggleActive(t *testing.T) {
	p := validPlan(t)
	assert.False(t, p.ToggleActive())
	assert.True(t, p.ToggleActive())
}

func TestInterviewQuota(t *testing.T) {
	tests := []struct {
		name      string
		quota     InterviewQuota
		used      int
		allows    bool
		remaining int
	}{
		{"under limit", 5, 3, true, 2},
		{"one left", 5, 4, true, 1},
		{"at limit", 5, 5, false, 0},
		{"over limit after downgrade", 5, 8, false, 0},
		{"zero quota", 0, 0, false, 0},
		{"unlimited at zero", Unlimited, 0, true, -1},
		{"unlimited with heavy usage", Unlimited, 1 << 20, true, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allows, tt.quota.Allows(tt.used))
			assert.Equal(t, tt.remaining, tt.quota.Remaining(tt.used))
		})
	}
}

func TestNewInterviewQuota(t *testing.T) {
	_, err := NewInterviewQuota(-2)
	assert.Error(t, err)

	q, err := NewInterviewQuota(-1)
	require.NoError(t, err)
	assert.True(t, q.IsUnlimited())
}
