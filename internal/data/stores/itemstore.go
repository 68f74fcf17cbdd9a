package stores

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/colonyops/closet/internal/core/closet"
	"github.com/colonyops/closet/internal/data/db"
)

// ItemStore implements closet.Store using SQLite.
type ItemStore struct {
	db *db.DB
}

var _ closet.Store = (*ItemStore)(nil)

// NewItemStore creates a new SQLite-backed item store.
func NewItemStore(db *db.DB) *ItemStore {
	return &ItemStore{db: db}
}

const selectItemColumns = `
	SELECT id, product_name, brand, price, size, purchase_year, purchase_month,
	       category, materials, colors, style_tags, created_at, updated_at
	FROM items`

// FindByID returns an item by ID. Returns closet.ErrNotFound if not found.
func (s *ItemStore) FindByID(ctx context.Context, id string) (closet.Item, error) {
	row := s.db.Conn().QueryRowContext(ctx, selectItemColumns+" WHERE id = ?", id)

	item, err := scanItem(row)
	if err != nil {
		return closet.Item{}, itemError("get", id, err)
	}

	images, err := s.images(ctx, id)
	if err != nil {
		return closet.Item{}, err
	}
	item.Images = images

	return item, nil
}

// List returns all items, newest first.
func (s *ItemStore) List(ctx context.Context) ([]closet.Item, error) {
	rows, err := s.db.Conn().QueryContext(ctx, selectItemColumns+" ORDER BY created_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]closet.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to convert item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	for i := range items {
		images, err := s.images(ctx, items[i].ID)
		if err != nil {
			return nil, err
		}
		items[i].Images = images
	}

	return items, nil
}

// Save creates or replaces an item and its image list in one transaction.
func (s *ItemStore) Save(ctx context.Context, item closet.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid item: %w", err)
	}

	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	materials, err := marshalList(item.Materials)
	if err != nil {
		return err
	}
	colors, err := marshalList(item.Colors)
	if err != nil {
		return err
	}
	styleTags, err := marshalList(item.StyleTags)
	if err != nil {
		return err
	}

	var price sql.NullInt64
	if item.Price != nil {
		price = sql.NullInt64{Int64: *item.Price, Valid: true}
	}
	var year, month sql.NullInt64
	if item.Purchase != nil {
		year = sql.NullInt64{Int64: int64(item.Purchase.Year), Valid: true}
		month = sql.NullInt64{Int64: int64(item.Purchase.Month), Valid: true}
	}

	err = s.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO items (id, product_name, brand, price, size, purchase_year, purchase_month,
			                   category, materials, colors, style_tags, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				product_name = excluded.product_name,
				brand = excluded.brand,
				price = excluded.price,
				size = excluded.size,
				purchase_year = excluded.purchase_year,
				purchase_month = excluded.purchase_month,
				category = excluded.category,
				materials = excluded.materials,
				colors = excluded.colors,
				style_tags = excluded.style_tags,
				updated_at = excluded.updated_at`,
			item.ID, item.ProductName, item.Brand, price, item.Size, year, month,
			item.Category, materials, colors, styleTags,
			item.CreatedAt.UnixNano(), item.UpdatedAt.UnixNano(),
		)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM item_images WHERE item_id = ?", item.ID); err != nil {
			return fmt.Errorf("failed to clear item images: %w", err)
		}
		for i, ref := range item.Images {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO item_images (item_id, position, ref) VALUES (?, ?, ?)",
				item.ID, i, ref,
			)
			if err != nil {
				return fmt.Errorf("failed to save item image %d: %w", i, err)
			}
		}
		return nil
	})
	return itemError("save", item.ID, err)
}

// DeleteByID removes an item by ID. Returns closet.ErrNotFound if not found.
func (s *ItemStore) DeleteByID(ctx context.Context, id string) error {
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM item_images WHERE item_id = ?", id); err != nil {
			return fmt.Errorf("failed to delete item images: %w", err)
		}

		res, err := tx.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
		if err != nil {
			return err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check deleted rows: %w", err)
		}
		if n == 0 {
			return closet.ErrNotFound
		}
		return nil
	})
	return itemError("delete", id, err)
}

func (s *ItemStore) images(ctx context.Context, itemID string) ([]string, error) {
	rows, err := s.db.Conn().QueryContext(ctx, "SELECT ref FROM item_images WHERE item_id = ? ORDER BY position", itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list item images: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var refs []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, fmt.Errorf("failed to scan item image: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

// scanItem converts a row from selectItemColumns into a closet.Item.
func scanItem(row scanner) (closet.Item, error) {
	var (
		item                    closet.Item
		price, year, month      sql.NullInt64
		materials, colors, tags string
		createdAt, updatedAt    int64
	)

	err := row.Scan(
		&item.ID, &item.ProductName, &item.Brand, &price, &item.Size, &year, &month,
		&item.Category, &materials, &colors, &tags, &createdAt, &updatedAt,
	)
	if err != nil {
		return closet.Item{}, err
	}

	if price.Valid {
		item.Price = closet.PriceOf(price.Int64)
	}
	if year.Valid && month.Valid {
		item.Purchase = &closet.YearMonth{Year: int(year.Int64), Month: int(month.Int64)}
	}

	if item.Materials, err = unmarshalList(materials); err != nil {
		return closet.Item{}, err
	}
	if item.Colors, err = unmarshalList(colors); err != nil {
		return closet.Item{}, err
	}
	if item.StyleTags, err = unmarshalList(tags); err != nil {
		return closet.Item{}, err
	}

	item.CreatedAt = time.Unix(0, createdAt)
	item.UpdatedAt = time.Unix(0, updatedAt)

	return item, nil
}

func marshalList(values []string) (string, error) {
	if len(values) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to marshal list: %w", err)
	}
	return string(data), nil
}

func unmarshalList(data string) ([]string, error) {
	if data == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal list: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}
