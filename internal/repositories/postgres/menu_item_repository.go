package postgres

import (
	"context"
	"fmt"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type MenuItemRepository struct {
	pool Querier
}

var _ repositories.MenuItemRepository = (*MenuItemRepository)(nil)

func NewMenuItemRepository(pool Querier) *MenuItemRepository {
	return &MenuItemRepository{pool: pool}
}

// Connect opens a pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolConfig.MaxConns = 4

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

const createMenuItemsSQL = `
    CREATE TABLE IF NOT EXISTS menu_items (
        id                INTEGER PRIMARY KEY,
        category          TEXT NOT NULL,
        category_position INTEGER NOT NULL,
        item_position     INTEGER NOT NULL,
        name              TEXT NOT NULL,
        price             DOUBLE PRECISION NOT NULL CHECK (price >= 0),
        rating            DOUBLE PRECISION NOT NULL CHECK (rating >= 0 AND rating <= 5)
    )
`

func (r *MenuItemRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, createMenuItemsSQL)
	return err
}

func (r *MenuItemRepository) BulkCreate(ctx context.Context, categories []models.Category) error {
	rows := flatten(categories)
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"menu_items"},
		[]string{"id", "category", "category_position", "item_position", "name", "price", "rating"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			return []any{
				rows[i].Item.ID,
				rows[i].Category,
				rows[i].CategoryPosition,
				rows[i].ItemPosition,
				rows[i].Item.Name,
				rows[i].Item.Price,
				rows[i].Item.Rating,
			}, nil
		}),
	)
	return err
}

func (r *MenuItemRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	query := `
        SELECT id, category, category_position, item_position, name, price, rating
        FROM menu_items
        ORDER BY category_position, item_position, id
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []menuItemRow
	for rows.Next() {
		var row menuItemRow
		err := rows.Scan(
			&row.Item.ID,
			&row.Category,
			&row.CategoryPosition,
			&row.ItemPosition,
			&row.Item.Name,
			&row.Item.Price,
			&row.Item.Rating,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return group(out), nil
}

func (r *MenuItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}

func (r *MenuItemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE menu_items")
	return err
}

type menuItemRow struct {
	Category         string
	CategoryPosition int
	ItemPosition     int
	Item             models.MenuItem
}

func flatten(categories []models.Category) []menuItemRow {
	var rows []menuItemRow
	for ci, cat := range categories {
		for ii, item := range cat.Items {
			rows = append(rows, menuItemRow{
				Category:         cat.Name,
				CategoryPosition: ci,
				ItemPosition:     ii,
				Item:             item,
			})
		}
	}
	return rows
}

// group rebuilds categories from rows already sorted by position.
func group(rows []menuItemRow) []models.Category {
	var categories []models.Category
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.Category]
		if !ok {
			i = len(categories)
			index[row.Category] = i
			categories = append(categories, models.Category{Name: row.Category})
		}
		categories[i].Items = append(categories[i].Items, row.Item)
	}
	return categories
}
