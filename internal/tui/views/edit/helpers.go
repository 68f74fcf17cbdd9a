package edit

import (
	"regexp"
	"strings"
)

var purchasePattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

func joinList(values []string) string {
	return strings.Join(values, ", ")
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
