package db

import (
	"cmp"
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var migrationFile = regexp.MustCompile(`^(\d+)_([a-z0-9_]+)\.(up|down)\.sql$`)

// Migration is one schema version with its forward and reverse SQL.
type Migration struct {
	Version int
	Name    string
	UpSQL   string
	DownSQL string
}

// parseFilename splits "NNNN_name.up.sql" into its version, name and direction.
func parseFilename(filename string) (int, string, string, error) {
	m := migrationFile.FindStringSubmatch(filename)
	if m == nil {
		return 0, "", "", fmt.Errorf("expected NNNN_name.{up,down}.sql, got %q", filename)
	}

	version, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", "", fmt.Errorf("version %q: %w", m[1], err)
	}
	if version == 0 {
		return 0, "", "", fmt.Errorf("version must be positive")
	}

	return version, m[2], m[3], nil
}

// loadMigrations reads the embedded SQL files. Every version needs exactly one
// up and one down file; the result is sorted by version.
func loadMigrations() ([]Migration, error) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("listing migrations: %w", err)
	}

	byVersion := make(map[int]*Migration)
	for _, file := range files {
		base := path.Base(file)
		version, name, direction, err := parseFilename(base)
		if err != nil {
			return nil, fmt.Errorf("migration %s: %w", base, err)
		}

		body, err := fs.ReadFile(migrationsFS, file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", base, err)
		}

		m, ok := byVersion[version]
		if !ok {
			m = &Migration{Version: version, Name: name}
			byVersion[version] = m
		}

		slot := &m.UpSQL
		if direction == "down" {
			slot = &m.DownSQL
		}
		if *slot != "" {
			return nil, fmt.Errorf("duplicate %s migration for version %04d", direction, version)
		}
		*slot = string(body)
	}

	migrations := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		switch {
		case m.UpSQL == "":
			return nil, fmt.Errorf("migration %04d has no up file", m.Version)
		case m.DownSQL == "":
			return nil, fmt.Errorf("migration %04d has no down file", m.Version)
		}
		migrations = append(migrations, *m)
	}

	slices.SortFunc(migrations, func(a, b Migration) int {
		return cmp.Compare(a.Version, b.Version)
	})
	return migrations, nil
}

// migrator applies embedded migrations to one connection.
type migrator struct {
	conn       *sql.DB
	migrations []Migration
}

func newMigrator(ctx context.Context, conn *sql.DB) (*migrator, error) {
	migrations, err := loadMigrations()
	if err != nil {
		return nil, err
	}

	_, err = conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("creating schema_migrations table: %w", err)
	}

	return &migrator{conn: conn, migrations: migrations}, nil
}

func (mg *migrator) applied(ctx context.Context) (map[int]bool, error) {
	rows, err := mg.conn.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("querying applied versions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	done := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning version: %w", err)
		}
		done[v] = true
	}
	return done, rows.Err()
}

// step runs body and the bookkeeping statement in one transaction.
func (mg *migrator) step(ctx context.Context, body, record string, args ...any) error {
	tx, err := mg.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, body); err != nil {
		return fmt.Errorf("executing SQL: %w", err)
	}
	if _, err := tx.ExecContext(ctx, record, args...); err != nil {
		return fmt.Errorf("recording migration: %w", err)
	}
	return tx.Commit()
}

func (mg *migrator) up(ctx context.Context) error {
	done, err := mg.applied(ctx)
	if err != nil {
		return err
	}

	for _, m := range mg.migrations {
		if done[m.Version] {
			continue
		}
		log.Debug().Int("version", m.Version).Str("name", m.Name).Msg("applying migration")
		err := mg.step(ctx, m.UpSQL,
			"INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)",
			m.Version, m.Name, time.Now().UnixNano(),
		)
		if err != nil {
			return fmt.Errorf("migration %04d (%s): %w", m.Version, m.Name, err)
		}
	}
	return nil
}

func (mg *migrator) down(ctx context.Context, n int) error {
	done, err := mg.applied(ctx)
	if err != nil {
		return err
	}

	var revert []Migration
	for _, m := range slices.Backward(mg.migrations) {
		if done[m.Version] {
			revert = append(revert, m)
		}
	}
	if n > len(revert) {
		return fmt.Errorf("requested %d down migrations but only %d are applied", n, len(revert))
	}

	for _, m := range revert[:n] {
		log.Debug().Int("version", m.Version).Str("name", m.Name).Msg("reverting migration")
		err := mg.step(ctx, m.DownSQL, "DELETE FROM schema_migrations WHERE version = ?", m.Version)
		if err != nil {
			return fmt.Errorf("revert migration %04d (%s): %w", m.Version, m.Name, err)
		}
	}
	return nil
}

// migrateUp applies every pending migration in version order.
func migrateUp(ctx context.Context, conn *sql.DB) error {
	mg, err := newMigrator(ctx, conn)
	if err != nil {
		return err
	}
	return mg.up(ctx)
}

// MigrateDown reverts the last n applied migrations, newest first.
func MigrateDown(ctx context.Context, conn *sql.DB, n int) error {
	if n <= 0 {
		return fmt.Errorf("n must be positive, got %d", n)
	}

	mg, err := newMigrator(ctx, conn)
	if err != nil {
		return err
	}
	return mg.down(ctx, n)
}

// SchemaVersion reports the newest applied migration and the newest one
// embedded in the binary.
func (db *DB) SchemaVersion(ctx context.Context) (current, latest int, err error) {
	mg, err := newMigrator(ctx, db.conn)
	if err != nil {
		return 0, 0, err
	}

	done, err := mg.applied(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, m := range mg.migrations {
		if done[m.Version] {
			current = m.Version
		}
	}
	if n := len(mg.migrations); n > 0 {
		latest = mg.migrations[n-1].Version
	}
	return current, latest, nil
}
