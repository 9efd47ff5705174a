package postgres

import (
	"context"
	"os"
	"reflect"
	"testing"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
)

var sample = []models.Category{
	{Name: "snacks", Items: []models.MenuItem{
		{ID: 1, Name: "Veg Sandwich", Price: 40, Rating: 4.5},
		{ID: 2, Name: "Maggie", Price: 30, Rating: 4.2},
	}},
	{Name: "beverages", Items: []models.MenuItem{
		{ID: 4, Name: "Cold Coffee", Price: 50, Rating: 4.7},
	}},
}

func TestFlattenGroupRoundTrip(t *testing.T) {
	rows := flatten(sample)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[2].Category != "beverages" || rows[2].CategoryPosition != 1 || rows[2].ItemPosition != 0 {
		t.Errorf("unexpected positions for last row: %+v", rows[2])
	}
	if got := group(rows); !reflect.DeepEqual(got, sample) {
		t.Errorf("group(flatten(x)) = %+v, want %+v", got, sample)
	}
}

func TestGroup_Empty(t *testing.T) {
	if got := group(nil); len(got) != 0 {
		t.Errorf("expected no categories, got %+v", got)
	}
}

// Runs only when a scratch database is provided.
func TestMenuItemRepository_Postgres(t *testing.T) {
	url := os.Getenv("CAMPUS_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("CAMPUS_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := Connect(ctx, url)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer pool.Close()

	repo := NewMenuItemRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if err := repo.BulkCreate(ctx, sample); err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil || count != 3 {
		t.Fatalf("Count = %d, %v; want 3", count, err)
	}
	got, err := repo.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if !reflect.DeepEqual(got, sample) {
		t.Errorf("ListCategories = %+v, want %+v", got, sample)
	}
}
