package doctor

import (
	"context"
	"fmt"
)

// SchemaVersioner reports applied and embedded schema versions.
type SchemaVersioner interface {
	SchemaVersion(ctx context.Context) (current, latest int, err error)
}

// DatabaseCheck verifies the SQLite schema is fully migrated.
type DatabaseCheck struct {
	db   SchemaVersioner
	path string
}

// NewDatabaseCheck creates a new database check. path is only used for display.
func NewDatabaseCheck(db SchemaVersioner, path string) *DatabaseCheck {
	return &DatabaseCheck{db: db, path: path}
}

func (c *DatabaseCheck) Name() string {
	return "Database"
}

func (c *DatabaseCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	current, latest, err := c.db.SchemaVersion(ctx)
	switch {
	case err != nil:
		result.Items = append(result.Items, CheckItem{Label: c.path, Status: StatusFail, Detail: err.Error()})
	case current < latest:
		result.Items = append(result.Items, CheckItem{
			Label:  c.path,
			Status: StatusWarn,
			Detail: fmt.Sprintf("schema at version %d, latest is %d", current, latest),
		})
	default:
		result.Items = append(result.Items, CheckItem{
			Label:  c.path,
			Status: StatusPass,
			Detail: fmt.Sprintf("schema version %d", current),
		})
	}

	return result
}
