package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Order errors
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrConcurrentModification = errors.New("concurrent order modification")

	// Cart errors
	ErrCartNotFound        = errors.New("cart not found")
	ErrStaleCartRevision   = errors.New("stale cart revision")
	ErrInvalidCartQuantity = errors.New("invalid cart quantity")

	// Recovery errors
	ErrRecoveryTokenNotFound = errors.New("recovery token not found")
	ErrRecoveryTokenConsumed = errors.New("recovery token already consumed")
	ErrRecoveryDisabled      = errors.New("cart recovery disabled")

	// Broadcast / notification errors
	ErrDeliveryFailure        = errors.New("subscriber delivery failure")
	ErrNotificationSendFailed = errors.New("notification send failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
