package stores

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/closet/internal/core/closet"
)

// SeedFile is the YAML document accepted by LoadSeedFiles.
//
//	items:
//	  - product_name: Oxford shirt
//	    brand: Uniqlo
//	    images: [front.jpg, back.jpg]
type SeedFile struct {
	Items []closet.Item `yaml:"items"`
}

// LoadSeedFiles expands the glob patterns (doublestar syntax) and decodes every
// matching YAML file. Items without an ID get a generated one. Files are read
// in sorted path order so the result is deterministic.
func LoadSeedFiles(patterns ...string) ([]closet.Item, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)

	var items []closet.Item
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}

		var doc SeedFile
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse seed file %s: %w", path, err)
		}

		for i := range doc.Items {
			if doc.Items[i].ID == "" {
				doc.Items[i].ID = closet.NewID()
			}
			if err := doc.Items[i].Validate(); err != nil {
				return nil, fmt.Errorf("%s: items[%d]: %w", path, i, err)
			}
		}

		log.Debug().Str("path", path).Int("items", len(doc.Items)).Msg("loaded seed file")
		items = append(items, doc.Items...)
	}

	return items, nil
}

// Import saves items into store, returning the number written.
func Import(ctx context.Context, store closet.Store, items []closet.Item) (int, error) {
	for i, it := range items {
		if err := store.Save(ctx, it); err != nil {
			return i, fmt.Errorf("import %s: %w", it.ID, err)
		}
	}
	return len(items), nil
}
