package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/talento-hq/talento/internal/domain/shared/valueobjects"
	"github.com/talento-hq/talento/internal/shared/biztime"
	"github.com/talento-hq/talento/internal/shared/id"
)

const maxNameLength = 100

// Plan is a priced tier defining an interview quota and a feature list.
type Plan struct {
	id             uint
	sid            string
	name           string
	price          valueobjects.Money
	interviewQuota InterviewQuota
	features       []string
	isActive       bool
	isCustom       bool
	isRecommended  bool
	displayOrder   int
	createdAt      time.Time
	updatedAt      time.Time
}

// Options holds the optional attributes of a plan.
type Options struct {
	Features      []string
	IsActive      bool
	IsCustom      bool
	IsRecommended bool
	DisplayOrder  int
}

func NewPlan(name string, price valueobjects.Money, quota InterviewQuota, opts Options) (*Plan, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if !quota.IsValid() {
		return nil, ErrInvalidQuota
	}

	sid, err := id.NewPlanSID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate plan SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Plan{
		sid:            sid,
		name:           name,
		price:          price,
		interviewQuota: quota,
		features:       cleanFeatures(opts.Features),
		isActive:       opts.IsActive,
		isCustom:       opts.IsCustom,
		isRecommended:  opts.IsRecommended,
		displayOrder:   opts.DisplayOrder,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence without validation.
func ReconstructPlan(
	id uint,
	sid, name string,
	price valueobjects.Money,
	quota InterviewQuota,
	features []string,
	isActive, isCustom, isRecommended bool,
	displayOrder int,
	createdAt, updatedAt time.Time,
) *Plan {
	return &Plan{
		id:             id,
		sid:            sid,
		name:           name,
		price:          price,
		interviewQuota: quota,
		features:       features,
		isActive:       isActive,
		isCustom:       isCustom,
		isRecommended:  isRecommended,
		displayOrder:   displayOrder,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func validateName(name string) error {
	if name == "" {
		return ErrPlanNameRequired
	}
	if len(name) > maxNameLength {
		return ErrPlanNameTooLong
	}
	return nil
}

func cleanFeatures(features []string) []string {
	out := make([]string, 0, len(features))
	for _, f := range features {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func (p *Plan) ID() uint                       { return p.id }
func (p *Plan) SID() string                    { return p.sid }
func (p *Plan) Name() string                   { return p.name }
func (p *Plan) Price() valueobjects.Money      { return p.price }
func (p *Plan) InterviewQuota() InterviewQuota { return p.interviewQuota }
func (p *Plan) IsActive() bool                 { return p.isActive }
func (p *Plan) IsCustom() bool                 { return p.isCustom }
func (p *Plan) IsRecommended() bool            { return p.isRecommended }
func (p *Plan) DisplayOrder() int              { return p.displayOrder }
func (p *Plan) CreatedAt() time.Time           { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time           { return p.updatedAt }

func (p *Plan) Features() []string {
	out := make([]string, len(p.features))
	copy(out, p.features)
	return out
}

func (p *Plan) SetID(id uint) {
	p.id = id
}

// IsFree reports whether the plan costs nothing and therefore needs no payment.
func (p *Plan) IsFree() bool {
	return p.price.IsZero()
}

// CheckSelfServiceCheckout validates that the plan can be bought without
// talking to sales.
func (p *Plan) CheckSelfServiceCheckout() error {
	if !p.isActive {
		return ErrPlanInactive
	}
	if p.isCustom {
		return ErrPlanContactSales
	}
	return nil
}

func (p *Plan) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	p.name = name
	p.touch()
	return nil
}

func (p *Plan) UpdatePrice(price valueobjects.Money) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	p.price = price
	p.touch()
	return nil
}

func (p *Plan) UpdateQuota(quota InterviewQuota) error {
	if !quota.IsValid() {
		return ErrInvalidQuota
	}
	p.interviewQuota = quota
	p.touch()
	return nil
}

func (p *Plan) UpdateFeatures(features []string) {
	p.features = cleanFeatures(features)
	p.touch()
}

func (p *Plan) SetCustom(custom bool) {
	p.isCustom = custom
	p.touch()
}

func (p *Plan) SetRecommended(recommended bool) {
	p.isRecommended = recommended
	p.touch()
}

func (p *Plan) SetDisplayOrder(order int) {
	p.displayOrder = order
	p.touch()
}

func (p *Plan) SetActive(active bool) {
	p.isActive = active
	p.touch()
}

// ToggleActive flips the active flag and returns the new value.
func (p *Plan) ToggleActive() bool {
	p.SetActive(!p.isActive)
	return p.isActive
}

func (p *Plan) touch() {
	p.updatedAt = biztime.NowUTC()
}
