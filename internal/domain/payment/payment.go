package payment

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/talento-hq/talento/internal/domain/payment/valueobjects"
	"github.com/talento-hq/talento/internal/domain/shared/valueobjects"
	"github.com/talento-hq/talento/internal/shared/biztime"
	"github.com/talento-hq/talento/internal/shared/id"
)

// DefaultRejectionReason is recorded when an admin rejects without a reason.
const DefaultRejectionReason = "Payment rejected by admin"

// Payment is one attempt to purchase or change a plan. Status moves
// pending -> completed | failed exactly once.
type Payment struct {
	id        uint
	sid       string
	accountID uint
	planID    uint
	amount    valueobjects.Money
	method    vo.PaymentMethod
	status    vo.PaymentStatus

	// manual payments
	evidenceRef string
	note        string

	// gateway payments
	externalRef *string

	approvedBy      *uint
	approvedAt      *time.Time
	rejectionReason string

	createdAt time.Time
	updatedAt time.Time
}

func newPayment(accountID, planID uint, amount valueobjects.Money, method vo.PaymentMethod) (*Payment, error) {
	if accountID == 0 {
		return nil, ErrAccountRequired
	}
	if planID == 0 {
		return nil, ErrPlanRequired
	}
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	sid, err := id.NewPaymentSID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate payment SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Payment{
		sid:       sid,
		accountID: accountID,
		planID:    planID,
		amount:    amount,
		method:    method,
		status:    vo.PaymentStatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewManualPayment records out-of-band payment evidence awaiting admin review.
func NewManualPayment(accountID, planID uint, amount valueobjects.Money, evidenceRef, note string) (*Payment, error) {
	evidenceRef = strings.TrimSpace(evidenceRef)
	if evidenceRef == "" {
		return nil, ErrEvidenceRequired
	}
	p, err := newPayment(accountID, planID, amount, vo.PaymentMethodManual)
	if err != nil {
		return nil, err
	}
	p.evidenceRef = evidenceRef
	p.note = strings.TrimSpace(note)
	return p, nil
}

// NewGatewayPayment records a hosted checkout awaiting the gateway callback.
// The session reference is attached once the gateway has issued it.
func NewGatewayPayment(accountID, planID uint, amount valueobjects.Money) (*Payment, error) {
	return newPayment(accountID, planID, amount, vo.PaymentMethodGateway)
}

// ReconstructPayment rebuilds a payment from persistence without validation.
func ReconstructPayment(
	id uint,
	sid string,
	accountID, planID uint,
	amount valueobjects.Money,
	method vo.PaymentMethod,
	status vo.PaymentStatus,
	evidenceRef, note string,
	externalRef *string,
	approvedBy *uint,
	approvedAt *time.Time,
	rejectionReason string,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:              id,
		sid:             sid,
		accountID:       accountID,
		planID:          planID,
		amount:          amount,
		method:          method,
		status:          status,
		evidenceRef:     evidenceRef,
		note:            note,
		externalRef:     externalRef,
		approvedBy:      approvedBy,
		approvedAt:      approvedAt,
		rejectionReason: rejectionReason,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// AttachExternalRef stores the gateway session reference. Only valid before
// the payment leaves pending.
func (p *Payment) AttachExternalRef(ref string) error {
	if p.method != vo.PaymentMethodGateway {
		return ErrNotGatewayPayment
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ErrExternalRefMissing
	}
	p.externalRef = &ref
	p.updatedAt = biztime.NowUTC()
	return nil
}

// Approve completes a pending manual payment on behalf of an admin.
func (p *Payment) Approve(adminID uint) error {
	if p.method != vo.PaymentMethodManual {
		return ErrNotManualPayment
	}
	if !p.status.IsPending() {
		return ErrAlreadyProcessed
	}
	now := biztime.NowUTC()
	p.status = vo.PaymentStatusCompleted
	p.approvedBy = &adminID
	p.approvedAt = &now
	p.updatedAt = now
	return nil
}

// Reject fails a pending manual payment with a reason.
func (p *Payment) Reject(reason string) error {
	if p.method != vo.PaymentMethodManual {
		return ErrNotManualPayment
	}
	if !p.status.IsPending() {
		return ErrAlreadyProcessed
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultRejectionReason
	}
	p.status = vo.PaymentStatusFailed
	p.rejectionReason = reason
	p.updatedAt = biztime.NowUTC()
	return nil
}

// ConfirmByGateway completes a pending gateway payment. It returns false
// without error when the payment is already completed, so duplicate
// callbacks are no-ops.
func (p *Payment) ConfirmByGateway() (bool, error) {
	if p.method != vo.PaymentMethodGateway {
		return false, ErrNotGatewayPayment
	}
	switch {
	case p.status.IsCompleted():
		return false, nil
	case !p.status.IsPending():
		return false, ErrAlreadyProcessed
	}
	now := biztime.NowUTC()
	p.status = vo.PaymentStatusCompleted
	p.approvedAt = &now
	p.updatedAt = now
	return true, nil
}

// Expire fails a pending gateway payment whose checkout was never completed.
func (p *Payment) Expire(reason string) error {
	if p.method != vo.PaymentMethodGateway {
		return ErrNotGatewayPayment
	}
	if !p.status.IsPending() {
		return ErrAlreadyProcessed
	}
	p.status = vo.PaymentStatusFailed
	p.rejectionReason = reason
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Payment) ID() uint                   { return p.id }
func (p *Payment) SID() string                { return p.sid }
func (p *Payment) AccountID() uint            { return p.accountID }
func (p *Payment) PlanID() uint               { return p.planID }
func (p *Payment) Amount() valueobjects.Money { return p.amount }
func (p *Payment) Method() vo.PaymentMethod   { return p.method }
func (p *Payment) Status() vo.PaymentStatus   { return p.status }
func (p *Payment) EvidenceRef() string        { return p.evidenceRef }
func (p *Payment) Note() string               { return p.note }
func (p *Payment) ExternalRef() *string       { return p.externalRef }
func (p *Payment) ApprovedBy() *uint          { return p.approvedBy }
func (p *Payment) ApprovedAt() *time.Time     { return p.approvedAt }
func (p *Payment) RejectionReason() string    { return p.rejectionReason }
func (p *Payment) CreatedAt() time.Time       { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time       { return p.updatedAt }

func (p *Payment) SetID(id uint) {
	p.id = id
}
