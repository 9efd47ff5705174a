package catalog

import "github.com/ArchitCodes1204/campus-delivery-platform/internal/models"

// DefaultCategories is the built-in campus menu.
func DefaultCategories() []models.Category {
	return []models.Category{
		{
			Name: models.CategorySnacks,
			Items: []models.MenuItem{
				{ID: 1, Name: "Veg Sandwich", Price: 40, Rating: 4.5},
				{ID: 2, Name: "Maggie", Price: 30, Rating: 4.2},
				{ID: 3, Name: "Samosa", Price: 20, Rating: 4.0},
			},
		},
		{
			Name: models.CategoryBeverages,
			Items: []models.MenuItem{
				{ID: 4, Name: "Cold Coffee", Price: 50, Rating: 4.7},
				{ID: 5, Name: "Tea", Price: 15, Rating: 4.3},
				{ID: 6, Name: "Lemonade", Price: 30, Rating: 4.1},
			},
		},
		{
			Name: models.CategoryMeals,
			Items: []models.MenuItem{
				{ID: 7, Name: "Veg Thali", Price: 80, Rating: 4.8},
				{ID: 8, Name: "Pasta", Price: 60, Rating: 4.4},
				{ID: 9, Name: "Burger", Price: 70, Rating: 4.6},
			},
		},
	}
}

// Default returns the built-in catalog. It panics only if the built-in data
// violates the MenuItem invariants.
func Default() *Catalog {
	c, err := New(DefaultCategories())
	if err != nil {
		panic(err)
	}
	return c
}
