package account

// PaymentStatus is the billing standing of an account.
type PaymentStatus string

const (
	PaymentStatusActive    PaymentStatus = "active"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusExpired   PaymentStatus = "expired"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusActive, PaymentStatusPending, PaymentStatusExpired, PaymentStatusCancelled:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) String() string {
	return string(s)
}
