package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Listing errors
	ErrListingNotFound    = errors.New("listing not found")
	ErrListingNotAccepted = errors.New("listing not accepted yet")
	ErrOutOfStock         = errors.New("listing out of stock")
	ErrSelfPurchase       = errors.New("cannot purchase own listing")

	// Wallet errors
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrCodeInvalidOrUsed   = errors.New("invalid or already used code")

	// User errors
	ErrProfileMissing = errors.New("user profile not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Transient store conflict surfaced after retry exhaustion.
	// Distinct from business failures so clients can safely resubmit.
	ErrConflict = errors.New("transaction conflict")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
