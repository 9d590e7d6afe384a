package testutil

import (
	"errors"
	"testing"

	apperrors "poseidon/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertFieldError checks that err is a validation error naming field.
func AssertFieldError(t *testing.T, err error, field string) {
	t.Helper()

	AssertAppError(t, err, apperrors.ErrValidation.Code)
	var appErr *apperrors.AppError
	errors.As(err, &appErr)
	for _, d := range appErr.Details {
		if d.Field == field {
			return
		}
	}
	t.Errorf("expected a violation on %q, got %v", field, appErr.Details)
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// Int returns a pointer to i.
func Int(i int) *int { return &i }
