package domain

import "errors"

var (
	// Voucher errors
	ErrVoucherUnbalanced = errors.New("voucher rows do not balance")
	ErrVoucherNotFound   = errors.New("voucher not found")
	ErrAlreadyPosted     = errors.New("voucher is already posted")
	ErrNotPosted         = errors.New("voucher is not posted")

	// Period lock errors
	ErrPeriodLocked     = errors.New("date falls within a locked period")
	ErrLockOverlap      = errors.New("period lock overlaps an existing lock")
	ErrInvalidLockRange = errors.New("period lock range is invalid")

	// Registry errors
	ErrCompanyNotFound = errors.New("company not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrSeriesNotFound  = errors.New("voucher series not found")

	// Input errors
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrInvalidAccountNumber = errors.New("invalid account number")
)
