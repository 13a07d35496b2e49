package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authentication (AUTH) ----

func ErrInvalidLoginPayload() *AppError {
	return New("AUTH_001", "Telegram login payload failed verification", http.StatusUnauthorized)
}

func ErrLoginExpired() *AppError {
	return New("AUTH_002", "Telegram login payload is too old", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Gift & Marketplace (GIFT) ----

func ErrGiftUnavailable() *AppError {
	return New("GIFT_001", "Gift is not available for purchase", http.StatusConflict)
}

func ErrGiftReserved() *AppError {
	return New("GIFT_002", "Gift is reserved by another buyer", http.StatusConflict)
}

func ErrGiftNotFound() *AppError {
	return New("GIFT_003", "Gift not found", http.StatusNotFound)
}

func ErrNotGiftOwner() *AppError {
	return New("GIFT_004", "Gift belongs to another user", http.StatusForbidden)
}

func ErrGiftAlreadySold() *AppError {
	return New("GIFT_005", "Sold gifts cannot be relisted", http.StatusConflict)
}

// ---- Payment & Settlement (PAY) ----

func ErrInvalidPayload() *AppError {
	return New("PAY_001", "Malformed invoice payload", http.StatusBadRequest)
}

func ErrInvalidPrice() *AppError {
	return New("PAY_002", "Price must be a positive number of stars", http.StatusBadRequest)
}

func ErrSelfPurchase() *AppError {
	return New("PAY_003", "Cannot purchase your own gift", http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrProviderUnavailable signals a failed outbound call to the payment provider.
func ErrProviderUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Payment provider request failed", http.StatusBadGateway, err)
}

// Validation returns a request-validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
