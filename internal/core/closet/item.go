// Package closet defines the wardrobe item domain model and its store contract.
package closet

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hay-kot/criterio"
)

// YearMonth is a purchase date with month precision.
type YearMonth struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
}

// Valid reports whether the year is positive and the month is 1..12.
func (ym YearMonth) Valid() bool {
	return ym.Year > 0 && ym.Month >= 1 && ym.Month <= 12
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// Item is a single closet entry.
//
// Optional scalar fields use the zero value ("" for strings) or a nil pointer
// to mean "absent". Slices may be empty. Images holds opaque references
// (paths or URLs); the order is the gallery order.
type Item struct {
	ID          string     `json:"id" yaml:"id"`
	ProductName string     `json:"product_name" yaml:"product_name"`
	Brand       string     `json:"brand,omitempty" yaml:"brand,omitempty"`
	Price       *int64     `json:"price,omitempty" yaml:"price,omitempty"`
	Size        string     `json:"size,omitempty" yaml:"size,omitempty"`
	Purchase    *YearMonth `json:"purchase,omitempty" yaml:"purchase,omitempty"`
	Category    string     `json:"category,omitempty" yaml:"category,omitempty"`
	Materials   []string   `json:"materials,omitempty" yaml:"materials,omitempty"`
	Colors      []string   `json:"colors,omitempty" yaml:"colors,omitempty"`
	StyleTags   []string   `json:"style_tags,omitempty" yaml:"style_tags,omitempty"`
	Images      []string   `json:"images,omitempty" yaml:"images,omitempty"`
	CreatedAt   time.Time  `json:"created_at" yaml:"-"`
	UpdatedAt   time.Time  `json:"updated_at" yaml:"-"`
}

// NewID returns a fresh opaque item identifier.
func NewID() string {
	return uuid.NewString()
}

// Validate checks the invariants every stored item must satisfy.
func (it Item) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if strings.TrimSpace(it.ID) == "" {
		errs = errs.Append("id", fmt.Errorf("id is required"))
	}
	if strings.TrimSpace(it.ProductName) == "" {
		errs = errs.Append("product_name", fmt.Errorf("product name is required"))
	}
	if it.Price != nil && *it.Price < 0 {
		errs = errs.Append("price", fmt.Errorf("price must not be negative, got %d", *it.Price))
	}
	if it.Purchase != nil && !it.Purchase.Valid() {
		errs = errs.Append("purchase", fmt.Errorf("invalid purchase date %d/%d", it.Purchase.Year, it.Purchase.Month))
	}
	for i, img := range it.Images {
		if strings.TrimSpace(img) == "" {
			errs = errs.Append(fmt.Sprintf("images[%d]", i), fmt.Errorf("image reference is empty"))
		}
	}

	return errs.ToError()
}

// PriceOf returns a pointer to v, for building items with a price.
func PriceOf(v int64) *int64 {
	return &v
}
