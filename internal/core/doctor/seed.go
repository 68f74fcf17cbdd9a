package doctor

import (
	"context"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// SeedFilesCheck reports how many files each seed pattern matches.
type SeedFilesCheck struct {
	patterns []string
}

// NewSeedFilesCheck creates a new seed files check.
func NewSeedFilesCheck(patterns []string) *SeedFilesCheck {
	return &SeedFilesCheck{patterns: patterns}
}

func (c *SeedFilesCheck) Name() string {
	return "Seed files"
}

func (c *SeedFilesCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if len(c.patterns) == 0 {
		result.Items = append(result.Items, CheckItem{
			Label:  "seed_files",
			Status: StatusPass,
			Detail: "none configured",
		})
		return result
	}

	for _, pattern := range c.patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		switch {
		case err != nil:
			result.Items = append(result.Items, CheckItem{Label: pattern, Status: StatusFail, Detail: err.Error()})
		case len(matches) == 0:
			result.Items = append(result.Items, CheckItem{Label: pattern, Status: StatusWarn, Detail: "no files match"})
		default:
			result.Items = append(result.Items, CheckItem{Label: pattern, Status: StatusPass, Detail: fmt.Sprintf("%d file(s)", len(matches))})
		}
	}

	return result
}
