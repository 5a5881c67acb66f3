// FILE: utility_test.go
package joblog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity(t *testing.T) {
	tests := []struct {
		severity Severity
		label    string
	}{
		{SeverityStatus, "STATUS"},
		{SeverityInfo, "INFO"},
		{SeverityWarning, "WARNING"},
		{SeverityError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.severity.String())
			assert.Len(t, tt.severity.padding()+tt.severity.String(), severityWidth)
		})
	}

	assert.Equal(t, "UNKNOWN", Severity(9).String())
	assert.Equal(t, "recoverable", OutcomeRecoverable.String())
	assert.Equal(t, "fatal", OutcomeFatal.String())
}

func TestUserError(t *testing.T) {
	plain := &UserError{Message: "bad input"}
	assert.Equal(t, "bad input", plain.Error())
	assert.ErrorIs(t, plain, ErrUser)
	assert.NoError(t, errors.Unwrap(plain))

	section := &UserError{Message: noOpenSection, cause: ErrNoOpenSection}
	assert.ErrorIs(t, section, ErrUser)
	assert.ErrorIs(t, section, ErrNoOpenSection)

	wrapped := fmt.Errorf("step failed: %w", plain)
	var userErr *UserError
	assert.True(t, errors.As(wrapped, &userErr))
	assert.Equal(t, "bad input", userErr.Message)
}

func TestFmtErrorf(t *testing.T) {
	err := fmtErrorf("x %d: %w", 1, ErrInvalidArgument)
	assert.Equal(t, "joblog: x 1: invalid argument", err.Error())
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = fmtErrorf("joblog: once")
	assert.Equal(t, "joblog: once", err.Error())
}

func TestCombineErrors(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")

	assert.Nil(t, combineErrors(nil, nil))
	assert.Equal(t, first, combineErrors(first, nil))
	assert.Equal(t, second, combineErrors(nil, second))

	combined := combineErrors(first, second)
	assert.Equal(t, "first; second", combined.Error())
	assert.ErrorIs(t, combined, second)
}
