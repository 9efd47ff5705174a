package factories

import (
	"math/rand"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/jaswdr/faker"
)

var canteenDishes = map[string][]string{
	models.CategorySnacks:    {"Vada Pav", "Spring Roll", "Paneer Puff", "Kachori", "French Fries", "Bhel Puri"},
	models.CategoryBeverages: {"Masala Chai", "Filter Coffee", "Mango Lassi", "Iced Tea", "Buttermilk", "Hot Chocolate"},
	models.CategoryMeals:     {"Rajma Chawal", "Chole Bhature", "Masala Dosa", "Veg Biryani", "Paneer Wrap", "Fried Rice"},
}

// MenuItemFactory generates demo menu items for seeding a catalog store.
type MenuItemFactory struct {
	fake   faker.Faker
	rng    *rand.Rand
	nextID int
}

// NewMenuItemFactory numbers items from firstID upwards.
func NewMenuItemFactory(seed int64, firstID int) *MenuItemFactory {
	return &MenuItemFactory{
		fake:   faker.NewWithSeed(rand.NewSource(seed)),
		rng:    rand.New(rand.NewSource(seed)),
		nextID: firstID,
	}
}

func (f *MenuItemFactory) CreateMenuItem(category string) models.MenuItem {
	item := models.MenuItem{
		ID:     f.nextID,
		Name:   f.dishName(category),
		Price:  float64(5 * f.fake.IntBetween(2, 24)),
		Rating: f.fake.Float64(1, 30, 50) / 10,
	}
	f.nextID++
	return item
}

func (f *MenuItemFactory) CreateCategory(name string, n int) models.Category {
	cat := models.Category{Name: name, Items: make([]models.MenuItem, 0, n)}
	for i := 0; i < n; i++ {
		cat.Items = append(cat.Items, f.CreateMenuItem(name))
	}
	return cat
}

func (f *MenuItemFactory) dishName(category string) string {
	if dishes, ok := canteenDishes[category]; ok {
		return dishes[f.rng.Intn(len(dishes))]
	}
	return "Special " + f.fake.Lorem().Word()
}
