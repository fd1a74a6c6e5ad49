// Package testdata generates realistic domain fixtures for tests.
package testdata

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/domain/shared/valueobjects"
	"github.com/talento-hq/talento/internal/shared/authorization"
)

// Seed makes generated values reproducible within a test run.
func Seed(seed int64) {
	gofakeit.Seed(seed)
}

// Email returns a unique-looking lower-case address.
func Email() string {
	return strings.ToLower(fmt.Sprintf("%s.%d@%s", gofakeit.Username(), gofakeit.Number(1000, 999999), gofakeit.DomainName()))
}

// Account builds a member account on planID with a placeholder hash.
func Account(planID *uint) (*account.Account, error) {
	return account.NewAccount(
		Email(),
		"$2a$10$"+gofakeit.LetterN(53),
		gofakeit.Name(),
		gofakeit.Company(),
		authorization.RoleMember,
		planID,
	)
}

// PlanOptions tunes Plan.
type PlanOptions struct {
	PriceCents int64
	Quota      int
	IsCustom   bool
	Inactive   bool
	Order      int
}

// Plan builds a plan with a generated unique name.
func Plan(opts PlanOptions) (*plan.Plan, error) {
	quota, err := plan.NewInterviewQuota(opts.Quota)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%s %d", gofakeit.BuzzWord(), gofakeit.Number(1, 1_000_000))
	return plan.NewPlan(name, valueobjects.NewMoney(opts.PriceCents, "USD"), quota, plan.Options{
		Features:     []string{gofakeit.HackerPhrase()},
		IsActive:     !opts.Inactive,
		IsCustom:     opts.IsCustom,
		DisplayOrder: opts.Order,
	})
}

// JobTitle returns a plausible job title.
func JobTitle() string {
	return gofakeit.JobTitle()
}
