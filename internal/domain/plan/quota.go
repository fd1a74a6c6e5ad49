package plan

import "fmt"

// InterviewQuota is the number of interviews a plan grants per billing
// window. Unlimited is a sentinel, not a large number.
type InterviewQuota int

// Unlimited marks a plan without an interview cap.
const Unlimited InterviewQuota = -1

func NewInterviewQuota(n int) (InterviewQuota, error) {
	q := InterviewQuota(n)
	if !q.IsValid() {
		return 0, fmt.Errorf("%w: must be non-negative or %d for unlimited", ErrInvalidQuota, Unlimited)
	}
	return q, nil
}

func (q InterviewQuota) IsValid() bool {
	return q >= 0 || q == Unlimited
}

func (q InterviewQuota) IsUnlimited() bool {
	return q == Unlimited
}

// Allows reports whether one more action fits after used actions.
func (q InterviewQuota) Allows(used int) bool {
	return q.IsUnlimited() || used < int(q)
}

// Remaining returns how many actions are left, or -1 when unlimited.
func (q InterviewQuota) Remaining(used int) int {
	if q.IsUnlimited() {
		return int(Unlimited)
	}
	if left := int(q) - used; left > 0 {
		return left
	}
	return 0
}

func (q InterviewQuota) Int() int {
	return int(q)
}
