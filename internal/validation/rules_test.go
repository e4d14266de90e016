package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/cms/internal/errors"
)

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid string", "hello", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"tab and newline", "\t\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid email", "user@example.com", false},
		{"valid email with plus", "user+tag@example.com", false},
		{"empty string skipped", "", false},
		{"missing at", "userexample.com", true},
		{"missing domain", "user@", true},
		{"missing tld", "user@example", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGender(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"male", "M", false},
		{"female", "F", false},
		{"lowercase accepted", "m", false},
		{"empty string skipped", "", false},
		{"invalid", "X", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Gender.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPasswordStrength(t *testing.T) {
	rule := PasswordStrength{
		MinLength:      8,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"strong password", "Str0ng!pass", false},
		{"too short", "S1!a", true},
		{"missing uppercase", "weak1!pass", true},
		{"missing lowercase", "WEAK1!PASS", true},
		{"missing number", "Weakness!x", true},
		{"missing special", "Weakness1x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func strPtr(s string) *string { return &s }

// The partial-update inputs carry *string fields, so every rule must see
// through pointers and skip fields that were not sent.
func TestRulesWithPointerValues(t *testing.T) {
	passwordRule := PasswordStrength{
		MinLength:      8,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}

	t.Run("valid pointer values pass", func(t *testing.T) {
		assert.NoError(t, NotBlank.Validate(strPtr("hello")))
		assert.NoError(t, Email.Validate(strPtr("user@example.com")))
		assert.NoError(t, Gender.Validate(strPtr("F")))
		assert.NoError(t, passwordRule.Validate(strPtr("Str0ng!pass")))
	})

	t.Run("invalid pointer values fail", func(t *testing.T) {
		assert.Error(t, NotBlank.Validate(strPtr("   ")))
		assert.Error(t, Email.Validate(strPtr("not-an-email")))
		assert.Error(t, Gender.Validate(strPtr("X")))
		assert.Error(t, passwordRule.Validate(strPtr("weak")))
	})

	t.Run("nil pointers are skipped", func(t *testing.T) {
		var s *string
		assert.NoError(t, NotBlank.Validate(s))
		assert.NoError(t, Email.Validate(s))
		assert.NoError(t, Gender.Validate(s))
		assert.NoError(t, passwordRule.Validate(s))
	})
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("non-nil error", func(t *testing.T) {
		err := WrapValidationError(apperrors.New("field is required"))
		assert.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}
