package account

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/talento-hq/talento/internal/shared/authorization"
	"github.com/talento-hq/talento/internal/shared/biztime"
	"github.com/talento-hq/talento/internal/shared/id"
)

// Account is an HR tenant's login identity and subscription state.
// The plan reference and usage counter are only changed by the quota
// increment and the payment approval workflow, both of which go through
// the repository's guarded updates.
type Account struct {
	id             uint
	sid            string
	email          string
	passwordHash   string
	name           string
	companyName    string
	role           authorization.UserRole
	planID         *uint
	interviewsUsed int
	paymentStatus  PaymentStatus
	createdAt      time.Time
	updatedAt      time.Time
}

// NormalizeEmail lower-cases and trims an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NewAccount(email, passwordHash, name, companyName string, role authorization.UserRole, defaultPlanID *uint) (*Account, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, ErrInvalidEmail
	}
	if passwordHash == "" {
		return nil, ErrPasswordHashMissing
	}
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, ErrCompanyRequired
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	sid, err := id.NewAccountSID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Account{
		sid:           sid,
		email:         email,
		passwordHash:  passwordHash,
		name:          strings.TrimSpace(name),
		companyName:   companyName,
		role:          role,
		planID:        defaultPlanID,
		paymentStatus: PaymentStatusActive,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructAccount rebuilds an account from persistence without validation.
func ReconstructAccount(
	id uint,
	sid, email, passwordHash, name, companyName string,
	role authorization.UserRole,
	planID *uint,
	interviewsUsed int,
	paymentStatus PaymentStatus,
	createdAt, updatedAt time.Time,
) *Account {
	return &Account{
		id:             id,
		sid:            sid,
		email:          email,
		passwordHash:   passwordHash,
		name:           name,
		companyName:    companyName,
		role:           role,
		planID:         planID,
		interviewsUsed: interviewsUsed,
		paymentStatus:  paymentStatus,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (a *Account) ID() uint                     { return a.id }
func (a *Account) SID() string                  { return a.sid }
func (a *Account) Email() string                { return a.email }
func (a *Account) PasswordHash() string         { return a.passwordHash }
func (a *Account) Name() string                 { return a.name }
func (a *Account) CompanyName() string          { return a.companyName }
func (a *Account) Role() authorization.UserRole { return a.role }
func (a *Account) PlanID() *uint                { return a.planID }
func (a *Account) InterviewsUsed() int          { return a.interviewsUsed }
func (a *Account) PaymentStatus() PaymentStatus { return a.paymentStatus }
func (a *Account) CreatedAt() time.Time         { return a.createdAt }
func (a *Account) UpdatedAt() time.Time         { return a.updatedAt }

func (a *Account) SetID(id uint) {
	a.id = id
}

func (a *Account) HasPlan() bool {
	return a.planID != nil
}

func (a *Account) IsSuperAdmin() bool {
	return a.role.IsSuperAdmin()
}

// ApplyPlan mirrors the repository's account update in memory: new plan,
// fresh quota window, active billing status.
func (a *Account) ApplyPlan(planID uint) {
	a.planID = &planID
	a.interviewsUsed = 0
	a.paymentStatus = PaymentStatusActive
	a.updatedAt = biztime.NowUTC()
}
