package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FieldValidation holds runtime validation rules for a text field.
type FieldValidation struct {
	Required  bool
	MaxLength int
	Pattern   *regexp.Regexp
	Numeric   bool // non-negative whole number
}

// ValidateText checks a text value against the validation rules and returns
// a short message, or "" when the value is valid.
func (v FieldValidation) ValidateText(value string) string {
	value = strings.TrimSpace(value)
	if v.Required && value == "" {
		return "required"
	}
	if value == "" {
		return ""
	}
	if v.MaxLength > 0 && utf8.RuneCountInString(value) > v.MaxLength {
		return fmt.Sprintf("maximum %d characters", v.MaxLength)
	}
	if v.Numeric {
		n, err := strconv.ParseInt(strings.ReplaceAll(value, ",", ""), 10, 64)
		if err != nil || n < 0 {
			return "must be a whole number"
		}
	}
	if v.Pattern != nil && !v.Pattern.MatchString(value) {
		return fmt.Sprintf("must match pattern: %s", v.Pattern.String())
	}
	return ""
}
