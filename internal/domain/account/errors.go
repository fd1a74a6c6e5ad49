package account

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailRequired       = errors.New("email is required")
	ErrInvalidEmail        = errors.New("email is invalid")
	ErrEmailExists         = errors.New("email already registered")
	ErrCompanyRequired     = errors.New("company name is required")
	ErrPasswordHashMissing = errors.New("password hash is required")
	ErrInvalidRole         = errors.New("invalid role")
)
