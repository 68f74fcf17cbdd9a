package stores

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/colonyops/closet/internal/core/closet"
	"github.com/colonyops/closet/internal/data/db"
)

// ErrBusy reports that the closet database stayed locked past its busy
// timeout, usually because another closet process holds a write lock.
var ErrBusy = errors.New("closet database is busy")

var (
	corruptCodes    = []int{sqlite3.SQLITE_CORRUPT, sqlite3.SQLITE_NOTADB, sqlite3.SQLITE_CANTOPEN}
	corruptMessages = []string{"database disk image is malformed", "file is not a database", "database corruption"}
)

// sqliteCode returns the primary result code of a driver error.
func sqliteCode(err error) (int, bool) {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return 0, false
	}
	return sqliteErr.Code() & 0xff, true
}

// itemError maps a driver error from an item statement onto the closet
// errors. op names the statement for the wrapped message.
func itemError(op, id string, err error) error {
	if err == nil {
		return nil
	}
	switch code, _ := sqliteCode(err); {
	case errors.Is(err, sql.ErrNoRows), errors.Is(err, closet.ErrNotFound):
		return closet.ErrNotFound
	case code == sqlite3.SQLITE_BUSY:
		return fmt.Errorf("%s item %q: %w", op, id, ErrBusy)
	default:
		return fmt.Errorf("%s item %q: %w", op, id, err)
	}
}

// IsCorruptionError reports whether err means closet.db cannot be read as a
// database at all.
func IsCorruptionError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := sqliteCode(err); ok {
		return slices.Contains(corruptCodes, code)
	}
	msg := err.Error()
	return slices.ContainsFunc(corruptMessages, func(s string) bool {
		return strings.Contains(msg, s)
	})
}

// RecoverFromCorruption moves closet.db and its -wal and -shm companions
// aside as closet.db.corrupt.<timestamp> so the next Open starts fresh. It
// returns the backup path of the main file, or "" when there was none.
func RecoverFromCorruption(dataDir string, log zerolog.Logger) (string, error) {
	dbPath := filepath.Join(dataDir, db.FileName)
	backup := fmt.Sprintf("%s.corrupt.%s", dbPath, time.Now().Format("20060102-150405"))

	// Companions must not survive: SQLite would replay an orphaned WAL
	// against the new file.
	moved := ""
	for _, suffix := range []string{"", "-wal", "-shm"} {
		src, dst := dbPath+suffix, backup+suffix

		err := os.Rename(src, dst)
		switch {
		case err == nil:
			log.Warn().Str("file", src).Str("backup", dst).Msg("moved corrupt closet database aside")
			if suffix == "" {
				moved = dst
			}
		case errors.Is(err, fs.ErrNotExist):
		case suffix == "":
			return "", fmt.Errorf("failed to back up corrupt closet database: %w", err)
		default:
			if rmErr := os.Remove(src); rmErr != nil {
				return moved, fmt.Errorf("failed to back up or remove %s: %w", filepath.Base(src), err)
			}
			log.Warn().Str("file", src).Msg("removed corrupt closet database file")
		}
	}
	return moved, nil
}
