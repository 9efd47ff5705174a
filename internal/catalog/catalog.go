// Package catalog holds the static, categorized menu and the filtering rules
// the storefront applies to it.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidMenuItem = errors.New("invalid menu item")
	ErrEmptyCatalog    = errors.New("catalog has no categories")
)

// Catalog is immutable after construction. Accessors return copies.
type Catalog struct {
	categories []models.Category
	index      map[string]int
	items      map[int]models.MenuItem
}

// New validates the categories and builds a Catalog from them.
func New(categories []models.Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		categories: make([]models.Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
		items:      make(map[int]models.MenuItem),
	}
	for _, cat := range categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: category without a name", ErrInvalidMenuItem)
		}
		if _, dup := c.index[name]; dup {
			return nil, fmt.Errorf("duplicate category %q", name)
		}
		for _, item := range cat.Items {
			if err := Validate(item); err != nil {
				return nil, fmt.Errorf("category %s: %w", name, err)
			}
			if _, dup := c.items[item.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidMenuItem, item.ID)
			}
			c.items[item.ID] = item
		}
		c.index[name] = len(c.categories)
		c.categories = append(c.categories, models.Category{
			Name:  name,
			Items: append([]models.MenuItem(nil), cat.Items...),
		})
	}
	return c, nil
}

// Validate checks the MenuItem invariants: a name, a non-negative price and a
// rating within [0,5].
func Validate(item models.MenuItem) error {
	switch {
	case strings.TrimSpace(item.Name) == "":
		return fmt.Errorf("%w: id %d has no name", ErrInvalidMenuItem, item.ID)
	case item.Price < 0:
		return fmt.Errorf("%w: %s has negative price %v", ErrInvalidMenuItem, item.Name, item.Price)
	case item.Rating < models.MinRating || item.Rating > models.MaxRating:
		return fmt.Errorf("%w: %s has rating %v outside [%v,%v]", ErrInvalidMenuItem, item.Name, item.Rating, models.MinRating, models.MaxRating)
	}
	return nil
}

// CategoryNames returns the categories in display order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// DefaultCategory is the first category, the tab the storefront opens on.
func (c *Catalog) DefaultCategory() string {
	return c.categories[0].Name
}

func (c *Catalog) HasCategory(name string) bool {
	_, ok := c.index[name]
	return ok
}

func (c *Catalog) Items(category string) ([]models.MenuItem, error) {
	i, ok := c.index[category]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	return append([]models.MenuItem(nil), c.categories[i].Items...), nil
}

// Filter returns, in catalog order, the items of category whose name contains
// query case-insensitively. An unknown category or no match yields an empty
// slice.
func (c *Catalog) Filter(category, query string) []models.MenuItem {
	i, ok := c.index[category]
	if !ok {
		return []models.MenuItem{}
	}
	return FilterItems(c.categories[i].Items, query)
}

func FilterItems(items []models.MenuItem, query string) []models.MenuItem {
	q := strings.ToLower(query)
	out := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Catalog) Lookup(id int) (models.MenuItem, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Categories returns a deep copy of every category.
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = models.Category{
			Name:  cat.Name,
			Items: append([]models.MenuItem(nil), cat.Items...),
		}
	}
	return out
}
