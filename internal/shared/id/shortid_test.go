package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		s, err := Generate(DefaultLength)
		require.NoError(t, err)
		assert.Len(t, s, DefaultLength)
		for _, ch := range s {
			assert.True(t, strings.ContainsRune(alphabet, ch))
		}
		_, dup := seen[s]
		assert.False(t, dup)
		seen[s] = struct{}{}
	}
}

func TestGenerate_DefaultsLength(t *testing.T) {
	s, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, s, DefaultLength)
}

func TestPrefixedIDs(t *testing.T) {
	tests := []struct {
		prefix string
		gen    func() (string, error)
	}{
		{PrefixAccount, NewAccountSID},
		{PrefixPlan, NewPlanSID},
		{PrefixPayment, NewPaymentSID},
		{PrefixInterview, NewInterviewSID},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			sid, err := tt.gen()
			require.NoError(t, err)

			prefix, rest, ok := strings.Cut(sid, "_")
			require.True(t, ok)
			assert.Equal(t, tt.prefix, prefix)
			assert.Len(t, rest, DefaultLength)
		})
	}
}

func TestNewInterviewLink(t *testing.T) {
	link, err := NewInterviewLink()
	require.NoError(t, err)
	assert.Len(t, link, InterviewLinkLength)
	assert.NotContains(t, link, "_")
}
