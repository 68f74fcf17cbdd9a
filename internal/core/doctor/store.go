package doctor

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/colonyops/closet/internal/core/closet"
)

// statFunc is used to check local image files.
// Package-level variable to allow test overrides.
var statFunc = os.Stat

// StoreCheck lists every item and validates it. Local image references are
// checked for existence relative to imageDir.
type StoreCheck struct {
	store    closet.Store
	imageDir string
}

// NewStoreCheck creates a new store check.
func NewStoreCheck(store closet.Store, imageDir string) *StoreCheck {
	return &StoreCheck{store: store, imageDir: imageDir}
}

func (c *StoreCheck) Name() string {
	return "Items"
}

func (c *StoreCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	items, err := c.store.List(ctx)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "store",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "store",
		Status: StatusPass,
		Detail: fmt.Sprintf("%d item(s)", len(items)),
	})

	for _, it := range items {
		if err := it.Validate(); err != nil {
			result.Items = append(result.Items, CheckItem{
				Label:  it.ID,
				Status: StatusFail,
				Detail: err.Error(),
			})
			continue
		}

		for _, img := range it.Images {
			if isRemote(img) {
				continue
			}
			path := img
			if !filepath.IsAbs(path) {
				path = filepath.Join(c.imageDir, path)
			}
			if _, err := statFunc(path); err != nil {
				result.Items = append(result.Items, CheckItem{
					Label:  it.ID,
					Status: StatusWarn,
					Detail: fmt.Sprintf("image %s not found", img),
				})
			}
		}
	}

	return result
}

func isRemote(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && u.Scheme != "" && u.Host != ""
}
