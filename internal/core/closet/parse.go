package closet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Categories are the categories offered by the item editor. Items may carry
// any category; these are suggestions.
var Categories = []string{"Tops", "Bottoms", "Outerwear", "Dresses", "Shoes", "Bags", "Accessories"}

var (
	ErrInvalidPrice = errors.New("price must be a non-negative whole number")
	ErrInvalidMonth = errors.New("purchase month must be YYYY-MM")
)

// ParsePrice parses user input such as "39000" or "39,000". Blank input
// yields nil.
func ParsePrice(s string) (*int64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	return &n, nil
}

// ParseYearMonth parses "YYYY-MM". Blank input yields nil.
func ParseYearMonth(s string) (*YearMonth, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	year, month, ok := strings.Cut(s, "-")
	if !ok || len(year) != 4 || len(month) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	y, yerr := strconv.Atoi(year)
	m, merr := strconv.Atoi(month)
	ym := YearMonth{Year: y, Month: m}
	if yerr != nil || merr != nil || !ym.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return &ym, nil
}

// PriceInput renders a price for editing, "" when absent.
func PriceInput(p *int64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatInt(*p, 10)
}

// YearMonthInput renders a purchase month for editing, "" when absent.
func YearMonthInput(ym *YearMonth) string {
	if ym == nil {
		return ""
	}
	return ym.String()
}
