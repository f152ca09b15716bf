package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "message only",
			err: &Error{
				Code:    EINVALID,
				Message: "invalid input",
			},
			expected: "invalid input",
		},
		{
			name: "with operation",
			err: &Error{
				Code:    EINVALID,
				Op:      "cart.add",
				Message: "invalid input",
			},
			expected: "cart.add: invalid input",
		},
		{
			name: "with wrapped error",
			err: &Error{
				Code:    EINTERNAL,
				Op:      "ledger.debit",
				Message: "failed to persist balance",
				Err:     errors.New("store unavailable"),
			},
			expected: "ledger.debit: failed to persist balance: store unavailable",
		},
		{
			name: "wrapped error without op",
			err: &Error{
				Code:    EINTERNAL,
				Message: "failed to persist balance",
				Err:     errors.New("store unavailable"),
			},
			expected: "failed to persist balance: store unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"domain error", ErrProductNotFound, ENOTFOUND},
		{"wrapped domain error", fmt.Errorf("dispatch: %w", ErrInsufficientBalance), EPAYMENT},
		{"plain error", errors.New("boom"), EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.expected {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	if got := ErrorMessage(ErrInvalidCoupon); got != "Invalid coupon code." {
		t.Errorf("ErrorMessage() = %q, want coupon rejection message", got)
	}

	// Internal errors must not leak details to users.
	internal := Internal(errors.New("pgx: connection refused"), "kv.set", "failed to write balance")
	if got := ErrorMessage(internal); got != "An internal error occurred. Please try again later." {
		t.Errorf("ErrorMessage() leaked internal detail: %q", got)
	}

	if got := ErrorMessage(errors.New("boom")); got != "An internal error occurred. Please try again later." {
		t.Errorf("ErrorMessage() leaked unknown error detail: %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	base := errors.New("disk full")
	err := Internal(base, "kv.set", "failed to write balance")
	if !errors.Is(err, base) {
		t.Error("expected errors.Is to reach the wrapped error")
	}
}
