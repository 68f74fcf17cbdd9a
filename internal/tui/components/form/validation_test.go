package form

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldValidation_ValidateText(t *testing.T) {
	tests := []struct {
		name  string
		v     FieldValidation
		value string
		want  string
	}{
		{"no rules, empty", FieldValidation{}, "", ""},
		{"no rules, non-empty", FieldValidation{}, "hello", ""},
		{"required, empty", FieldValidation{Required: true}, "", "required"},
		{"required, non-empty", FieldValidation{Required: true}, "hello", ""},
		{"required, blank", FieldValidation{Required: true}, "   ", "required"},
		{"max_length, too long", FieldValidation{MaxLength: 3}, "hello", "maximum 3 characters"},
		{"max_length, exact", FieldValidation{MaxLength: 5}, "hello", ""},
		{"max_length, counts runes", FieldValidation{MaxLength: 3}, "셔츠다", ""},
		{"numeric, valid", FieldValidation{Numeric: true}, "39000", ""},
		{"numeric, grouped", FieldValidation{Numeric: true}, "39,000", ""},
		{"numeric, negative", FieldValidation{Numeric: true}, "-1", "must be a whole number"},
		{"numeric, decimal", FieldValidation{Numeric: true}, "1.5", "must be a whole number"},
		{"numeric, empty skips", FieldValidation{Numeric: true}, "", ""},
		{"pattern, matches", FieldValidation{Pattern: regexp.MustCompile(`^\d+$`)}, "123", ""},
		{"pattern, no match", FieldValidation{Pattern: regexp.MustCompile(`^\d+$`)}, "abc", "must match pattern: ^\\d+$"},
		{"pattern, empty skips", FieldValidation{Pattern: regexp.MustCompile(`^\d+$`)}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ValidateText(tt.value)
			assert.Equal(t, tt.want, got)
		})
	}
}
