package errs

import "errors"

// Sentinel errors shared by the command and query sides
var (
	// Order errors
	ErrOrderNotFound = errors.New("order not found")

	// Reference data errors
	ErrDeviceNotFound = errors.New("device not found")

	// Commit errors
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrCommitFailed      = errors.New("order commit failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
