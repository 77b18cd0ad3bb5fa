// Package errors provides custom error types for the propfund API.
// All service-layer errors should use AppError so callers get a stable code
// and a message that never leaks internal details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrNotKYCApproved     = &AppError{Code: "KYC_REQUIRED", Message: "Address is not KYC approved", StatusCode: http.StatusForbidden}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
	ErrBlacklisted        = &AppError{Code: "BLACKLISTED", Message: "Address is blacklisted", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInvalidState   = &AppError{Code: "INVALID_STATE", Message: "Operation not allowed in the current state", StatusCode: http.StatusConflict}
	ErrAlreadyDone    = &AppError{Code: "ALREADY_DONE", Message: "Operation was already performed", StatusCode: http.StatusConflict}
	ErrReentrantCall  = &AppError{Code: "REENTRANT_CALL", Message: "Another ledger operation is already in progress on this call path", StatusCode: http.StatusConflict}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound     = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail   = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
	ErrDuplicateAddress = &AppError{Code: "DUPLICATE_ADDRESS", Message: "A user with this address already exists", StatusCode: http.StatusConflict}
	ErrReservedAddress  = &AppError{Code: "RESERVED_ADDRESS", Message: "Address is reserved for a custody account", StatusCode: http.StatusBadRequest}
)

// Platform configuration errors.
var (
	ErrNotInitialized      = &AppError{Code: "NOT_INITIALIZED", Message: "Platform has not been initialized", StatusCode: http.StatusConflict}
	ErrSystemPaused        = &AppError{Code: "SYSTEM_PAUSED", Message: "Platform is paused", StatusCode: http.StatusServiceUnavailable}
	ErrFeeOutOfBounds      = &AppError{Code: "FEE_OUT_OF_BOUNDS", Message: "Fee basis points out of bounds", StatusCode: http.StatusBadRequest}
	ErrAssetNotWhitelisted = &AppError{Code: "ASSET_NOT_WHITELISTED", Message: "Asset is not whitelisted", StatusCode: http.StatusBadRequest}
)

// Property lifecycle errors.
var (
	ErrPropertyNotFound   = &AppError{Code: "PROPERTY_NOT_FOUND", Message: "Property not found", StatusCode: http.StatusNotFound}
	ErrPropertyDead       = &AppError{Code: "PROPERTY_CANCELED", Message: "Property has been canceled", StatusCode: http.StatusConflict}
	ErrNotApproved        = &AppError{Code: "PROPERTY_NOT_APPROVED", Message: "Property is not approved", StatusCode: http.StatusConflict}
	ErrRaiseCompleted     = &AppError{Code: "RAISE_COMPLETED", Message: "Raise is already completed", StatusCode: http.StatusConflict}
	ErrRaiseNotCompleted  = &AppError{Code: "RAISE_NOT_COMPLETED", Message: "Raise is not completed", StatusCode: http.StatusConflict}
	ErrRaiseExpired       = &AppError{Code: "RAISE_EXPIRED", Message: "Raise deadline has passed", StatusCode: http.StatusConflict}
	ErrRaiseActive        = &AppError{Code: "RAISE_ACTIVE", Message: "Raise deadline has not passed", StatusCode: http.StatusConflict}
	ErrCapacityExceeded   = &AppError{Code: "CAPACITY_EXCEEDED", Message: "Not enough shares left for sale", StatusCode: http.StatusConflict}
	ErrBelowMinInvestment = &AppError{Code: "BELOW_MIN_INVESTMENT", Message: "Investment is below the minimum value", StatusCode: http.StatusBadRequest}
	ErrThresholdNotMet    = &AppError{Code: "THRESHOLD_NOT_MET", Message: "Raise has not reached its threshold", StatusCode: http.StatusConflict}
	ErrThresholdMet       = &AppError{Code: "THRESHOLD_MET", Message: "Raise reached its threshold; funds are not recoverable", StatusCode: http.StatusConflict}
	ErrAlreadyExtended    = &AppError{Code: "ALREADY_EXTENDED", Message: "Raise was already extended", StatusCode: http.StatusConflict}
	ErrNothingToRecover   = &AppError{Code: "NOTHING_TO_RECOVER", Message: "No recoverable investment for this address", StatusCode: http.StatusConflict}
	ErrLedgerNotFound     = &AppError{Code: "LEDGER_ENTRY_NOT_FOUND", Message: "Investor ledger entry not found", StatusCode: http.StatusNotFound}
)

// Asset ledger errors.
var (
	ErrAssetNotFound      = &AppError{Code: "ASSET_NOT_FOUND", Message: "Asset not found", StatusCode: http.StatusNotFound}
	ErrInsufficientFunds  = &AppError{Code: "INSUFFICIENT_FUNDS", Message: "Insufficient balance", StatusCode: http.StatusUnprocessableEntity}
	ErrAllowanceExceeded  = &AppError{Code: "ALLOWANCE_EXCEEDED", Message: "Transfer exceeds approved allowance", StatusCode: http.StatusUnprocessableEntity}
	ErrTransferFailed     = &AppError{Code: "TRANSFER_FAILED", Message: "Asset transfer failed", StatusCode: http.StatusUnprocessableEntity}
	ErrDuplicateAssetCode = &AppError{Code: "DUPLICATE_ASSET", Message: "An asset with this symbol already exists", StatusCode: http.StatusConflict}
)

// Referral errors.
var (
	ErrReferrerNotFound = &AppError{Code: "REFERRER_NOT_FOUND", Message: "Referrer not registered", StatusCode: http.StatusNotFound}
	ErrReferrerInactive = &AppError{Code: "REFERRER_INACTIVE", Message: "Referrer is not active", StatusCode: http.StatusConflict}
)

// Dividend errors.
var (
	ErrDepositTooSmall     = &AppError{Code: "DEPOSIT_TOO_SMALL", Message: "Revenue deposit is below the minimum", StatusCode: http.StatusBadRequest}
	ErrNoCirculatingSupply = &AppError{Code: "NO_CIRCULATING_SUPPLY", Message: "No shares are held outside escrow", StatusCode: http.StatusConflict}
)
