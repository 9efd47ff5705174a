package repositories

import (
	"context"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
)

// MenuItemRepository stores the catalog. Orders are never stored.
type MenuItemRepository interface {
	EnsureSchema(ctx context.Context) error
	BulkCreate(ctx context.Context, categories []models.Category) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
