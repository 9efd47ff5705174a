package factories

import (
	"math/rand"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/jaswdr/faker"
)

// Student describes a simulated shopper: a display name and how they browse.
type Student struct {
	Name        string
	Favourite   string // preferred category
	MaxItems    int
	SearchRatio float64 // chance of typing a query before picking
}

type StudentFactory struct {
	fake faker.Faker
	rng  *rand.Rand
}

func NewStudentFactory(seed int64) *StudentFactory {
	return &StudentFactory{
		fake: faker.NewWithSeed(rand.NewSource(seed)),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (f *StudentFactory) CreateStudent(categories []string, maxItems int) Student {
	if maxItems < 1 {
		maxItems = 1
	}
	s := Student{
		Name:        f.fake.Person().Name(),
		MaxItems:    1 + f.rng.Intn(maxItems),
		SearchRatio: f.fake.Float64(2, 0, 50) / 100,
	}
	if len(categories) > 0 {
		s.Favourite = categories[f.rng.Intn(len(categories))]
	}
	return s
}

func (f *StudentFactory) CreateStudents(n int, categories []string, maxItems int) []Student {
	students := make([]Student, n)
	for i := range students {
		students[i] = f.CreateStudent(categories, maxItems)
	}
	return students
}

// User is the identity a student signs in with when no provider is involved.
func (s Student) User(id string) models.User {
	return models.User{ID: id, Name: s.Name}
}
