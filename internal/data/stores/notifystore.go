package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/colonyops/closet/internal/core/notify"
	"github.com/colonyops/closet/internal/data/db"
)

// DefaultHistoryLimit is how many notifications the history keeps.
const DefaultHistoryLimit = 200

// NotifyStore keeps the toast history shown by the `n` dialog and the
// `closet notifications` command. Only the newest limit rows are kept.
type NotifyStore struct {
	db    *db.DB
	limit int
}

var _ notify.Store = (*NotifyStore)(nil)

// NewNotifyStore creates a history store holding DefaultHistoryLimit rows.
func NewNotifyStore(db *db.DB) *NotifyStore {
	return &NotifyStore{db: db, limit: DefaultHistoryLimit}
}

// WithLimit returns a copy of s that keeps at most limit rows. Values below 1
// disable pruning.
func (s *NotifyStore) WithLimit(limit int) *NotifyStore {
	return &NotifyStore{db: s.db, limit: limit}
}

// Save records n and prunes rows beyond the history limit.
func (s *NotifyStore) Save(ctx context.Context, n notify.Notification) (int64, error) {
	if !n.Level.Valid() {
		return 0, fmt.Errorf("save notification: unknown level %q", n.Level)
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	var id int64
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO notifications (level, message, created_at) VALUES (?, ?, ?)",
			string(n.Level), n.Message, n.CreatedAt.UnixNano(),
		)
		if err != nil {
			return err
		}
		if id, err = res.LastInsertId(); err != nil {
			return err
		}
		if s.limit < 1 {
			return nil
		}
		_, err = tx.ExecContext(ctx, `
			DELETE FROM notifications WHERE id NOT IN (
				SELECT id FROM notifications ORDER BY created_at DESC, id DESC LIMIT ?
			)`, s.limit)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("save notification: %w", err)
	}
	return id, nil
}

// List returns the history, newest first.
func (s *NotifyStore) List(ctx context.Context) ([]notify.Notification, error) {
	rows, err := s.db.Conn().QueryContext(ctx,
		"SELECT id, level, message, created_at FROM notifications ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]notify.Notification, 0)
	for rows.Next() {
		var (
			n         notify.Notification
			level     string
			createdAt int64
		)
		if err := rows.Scan(&n.ID, &level, &n.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.Level = notify.Level(level)
		n.CreatedAt = time.Unix(0, createdAt)
		result = append(result, n)
	}
	return result, rows.Err()
}

// Clear empties the history.
func (s *NotifyStore) Clear(ctx context.Context) error {
	if _, err := s.db.Conn().ExecContext(ctx, "DELETE FROM notifications"); err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	return nil
}

// Count returns the number of stored notifications.
func (s *NotifyStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.Conn().QueryRowContext(ctx, "SELECT COUNT(*) FROM notifications").Scan(&count); err != nil {
		return 0, fmt.Errorf("count notifications: %w", err)
	}
	return count, nil
}
