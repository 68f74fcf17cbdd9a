package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string
	Item     string
	Message  string
}

// ValidateDeep performs comprehensive validation of the configuration including
// glob syntax and file accessibility. The configPath argument specifies the
// config file location to validate (empty string skips config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateSeedFiles(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Store.Latency > 0 && c.Store.Backend != BackendMemory {
		warnings = append(warnings, ValidationWarning{
			Category: "Store",
			Item:     "store.latency",
			Message:  "latency only applies to the memory backend",
		})
	}
	if c.Store.Backend == BackendMemory && len(c.SeedFiles) == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Store",
			Item:     "seed_files",
			Message:  "memory backend starts empty without seed_files",
		})
	}

	for i, pattern := range c.SeedFiles {
		matches, err := doublestar.FilepathGlob(pattern)
		if err == nil && len(matches) == 0 {
			warnings = append(warnings, ValidationWarning{
				Category: "Seed files",
				Item:     fmt.Sprintf("seed_files[%d]", i),
				Message:  fmt.Sprintf("pattern %q matches no files", pattern),
			})
		}
	}

	return warnings
}

// validateFileAccess checks config file and data directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// validateSeedFiles checks every seed pattern is valid doublestar syntax.
func (c *Config) validateSeedFiles() error {
	var errs criterio.FieldErrorsBuilder
	for i, pattern := range c.SeedFiles {
		if !doublestar.ValidatePathPattern(pattern) {
			errs = errs.Append(fmt.Sprintf("seed_files[%d]", i), fmt.Errorf("invalid glob pattern %q", pattern))
		}
	}
	return errs.ToError()
}
