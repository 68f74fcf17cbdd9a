package closet

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// Placeholder is shown for absent values.
const Placeholder = "-"

// DisplayOr returns s, or Placeholder when s is blank.
func DisplayOr(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

// FormatPrice renders a price with thousands separators, e.g. "12,000 won".
// A nil or zero price renders as Placeholder.
func FormatPrice(p *int64) string {
	if p == nil || *p == 0 {
		return Placeholder
	}
	return humanize.Comma(*p) + " won"
}

// FormatPurchase renders the purchase month as YYYY-MM.
func FormatPurchase(ym *YearMonth) string {
	if ym == nil || !ym.Valid() {
		return Placeholder
	}
	return ym.String()
}

// Tags joins values for single-line display.
func Tags(values []string) string {
	if len(values) == 0 {
		return Placeholder
	}
	return strings.Join(values, ", ")
}

// SplitList parses a comma separated list, dropping blank entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
