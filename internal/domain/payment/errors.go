package payment

import "errors"

var (
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrAlreadyProcessed   = errors.New("payment already processed")
	ErrNotManualPayment   = errors.New("only manual payments can be decided by an admin")
	ErrNotGatewayPayment  = errors.New("payment was not made through the gateway")
	ErrEvidenceRequired   = errors.New("payment evidence is required")
	ErrAccountRequired    = errors.New("account ID is required")
	ErrPlanRequired       = errors.New("plan ID is required")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrExternalRefMissing = errors.New("gateway session reference is required")
)
