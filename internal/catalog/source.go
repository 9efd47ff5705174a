package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/cloudstore"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/repositories"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/repositories/postgres"
	"github.com/spf13/viper"
)

// Source yields the raw categories a Catalog is built from.
type Source interface {
	LoadCategories(ctx context.Context) ([]models.Category, error)
}

type StaticSource struct{}

func (StaticSource) LoadCategories(context.Context) ([]models.Category, error) {
	return DefaultCategories(), nil
}

// FileSource reads a YAML, JSON or TOML file with a top-level "categories"
// list.
type FileSource struct {
	Path string
}

func (s FileSource) LoadCategories(context.Context) ([]models.Category, error) {
	v := viper.New()
	v.SetConfigFile(s.Path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}
	var doc struct {
		Categories []models.Category `mapstructure:"categories"`
	}
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("unable to decode catalog file, %w", err)
	}
	return doc.Categories, nil
}

// S3Source reads a JSON document shaped like {"categories": [...]}.
type S3Source struct {
	Reader cloudstore.ObjectReader
	Bucket string
	Key    string
}

func (s S3Source) LoadCategories(ctx context.Context) ([]models.Category, error) {
	data, err := s.Reader.ReadObject(ctx, s.Bucket, s.Key)
	if err != nil {
		return nil, err
	}
	return decodeJSON(data)
}

type RepositorySource struct {
	Repo repositories.MenuItemRepository
}

func (s RepositorySource) LoadCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func decodeJSON(data []byte) ([]models.Category, error) {
	var doc struct {
		Categories []models.Category `json:"categories"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unable to decode catalog document: %w", err)
	}
	return doc.Categories, nil
}

// FromSource loads and validates a catalog.
func FromSource(ctx context.Context, src Source) (*Catalog, error) {
	categories, err := src.LoadCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return New(categories)
}

// Load builds the catalog named by cfg.Source.
func Load(ctx context.Context, cfg models.CatalogConfig) (*Catalog, error) {
	switch cfg.Source {
	case "", models.CatalogSourceStatic:
		return FromSource(ctx, StaticSource{})
	case models.CatalogSourceFile:
		if cfg.File == "" {
			return nil, fmt.Errorf("catalog.file is required for the file source")
		}
		return FromSource(ctx, FileSource{Path: cfg.File})
	case models.CatalogSourceS3:
		store, err := cloudstore.NewS3Store(ctx, cfg.S3.Region)
		if err != nil {
			return nil, err
		}
		return FromSource(ctx, S3Source{Reader: store, Bucket: cfg.S3.Bucket, Key: cfg.S3.Key})
	case models.CatalogSourcePostgres:
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		// the catalog is immutable once loaded, so the pool is not kept
		defer pool.Close()
		return FromSource(ctx, RepositorySource{Repo: postgres.NewMenuItemRepository(pool)})
	default:
		return nil, fmt.Errorf("unsupported catalog source: %s", cfg.Source)
	}
}
